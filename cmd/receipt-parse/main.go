package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joseph-ayodele/receipt-ocr-engine/internal/ingest"
	"github.com/joseph-ayodele/receipt-ocr-engine/internal/ocr"
	"github.com/joseph-ayodele/receipt-ocr-engine/internal/parser"
	"github.com/joseph-ayodele/receipt-ocr-engine/internal/schema"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		file  = flag.String("file", "", "recognition payload JSON file (required)")
		debug = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	if *file == "" {
		printError("Error: --file is required\n")
		os.Exit(1)
	}

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	payload, err := ingest.LoadFile(*file)
	if err != nil {
		logger.Error("failed to load payload", "path", *file, "error", err)
		os.Exit(1)
	}

	text := ocr.Normalize(payload.RawText)
	res := parser.Parse(text, payload.Blocks, payload.Barcodes)
	doc := schema.FromExtraction(res)

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		logger.Error("failed to encode document", "error", err)
		os.Exit(1)
	}
	if err := schema.Validate(out); err != nil {
		logger.Error("document failed schema validation", "error", err)
		os.Exit(1)
	}

	fmt.Println(string(out))
}
