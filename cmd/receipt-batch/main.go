package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/receipt-ocr-engine/internal/async"
	"github.com/joseph-ayodele/receipt-ocr-engine/internal/common"
	"github.com/joseph-ayodele/receipt-ocr-engine/internal/export"
	"github.com/joseph-ayodele/receipt-ocr-engine/internal/ingest"
	"github.com/joseph-ayodele/receipt-ocr-engine/internal/pipeline"
	repo "github.com/joseph-ayodele/receipt-ocr-engine/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir     = flag.String("dir", "", "directory of recognition payloads to process (required)")
		out     = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		driver  = flag.String("driver", "", "database driver, sqlite or postgres (overrides DB_DRIVER)")
		dsn     = flag.String("db", "", "database DSN (overrides DB_URL)")
		fromStr = flag.String("from", "", "from date YYYY-MM-DD")
		toStr   = flag.String("to", "", "to date YYYY-MM-DD")
		workers = flag.Int("workers", 0, "number of parse workers (overrides PARSER_WORKERS)")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}

	if *out == "" {
		parentDir := filepath.Dir(*dir)
		*out = filepath.Join(parentDir, "receipts.xlsx")
	}

	var from, to *time.Time
	if *fromStr != "" {
		if parsed, err := time.Parse("2006-01-02", *fromStr); err != nil {
			printError("Error: invalid --from date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		} else {
			from = &parsed
		}
	}
	if *toStr != "" {
		if parsed, err := time.Parse("2006-01-02", *toStr); err != nil {
			printError("Error: invalid --to date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		} else {
			to = &parsed
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()
	if *driver != "" {
		cfg.Database.Driver = *driver
	}
	if *dsn != "" {
		cfg.Database.DSN = *dsn
	}
	if *workers > 0 {
		cfg.Parser.Workers = *workers
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	db, err := repo.Open(ctx, repo.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	if err := repo.Migrate(ctx, db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	receiptsRepo := repo.NewReceiptRepository(db, logger)
	processor := pipeline.NewProcessor(logger, receiptsRepo, pipeline.Config{
		MinConfidence: cfg.Parser.MinConfidence,
	})

	logger.Info("scanning payload directory", "dir", *dir)
	paths, err := ingest.ScanDirectory(*dir)
	if err != nil {
		logger.Error("failed to scan directory", "error", err)
		os.Exit(1)
	}
	logger.Info("scan complete", "payloads", len(paths))

	queue := async.NewParseQueue(processor, logger,
		async.WithWorkers(cfg.Parser.Workers),
		async.WithQueueSize(cfg.Parser.QueueSize),
		async.WithProcessTimeout(cfg.Parser.JobTimeout),
	)
	for _, path := range paths {
		_ = queue.Enqueue(ctx, async.Job{
			Path:        path,
			SubmittedAt: time.Now().UTC(),
			TraceID:     uuid.NewString(),
		})
	}
	queue.Shutdown(ctx)
	stats := queue.Stats()

	logger.Info("exporting to XLSX", "output", *out)
	exportService := export.NewService(receiptsRepo, logger)
	xlsxBytes, err := exportService.ExportReceiptsXLSX(ctx, from, to)
	if err != nil {
		logger.Error("failed to export receipts", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	logger.Info("batch processing complete",
		"payloads_scanned", len(paths),
		"payloads_processed", stats.Processed,
		"failures", stats.Failed,
		"output_file", *out)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Payloads scanned: %d\n", len(paths))
	fmt.Printf("- Payloads processed: %d\n", stats.Processed)
	fmt.Printf("- Failures: %d\n", stats.Failed)
	fmt.Printf("- Output: %s\n", *out)
}
