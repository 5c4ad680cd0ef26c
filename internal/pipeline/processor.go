// Package pipeline coordinates one payload's journey from recognizer output
// to a stored receipt: load, normalize, parse, validate, persist.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/receipt-ocr-engine/constants"
	"github.com/joseph-ayodele/receipt-ocr-engine/internal/ingest"
	"github.com/joseph-ayodele/receipt-ocr-engine/internal/ocr"
	"github.com/joseph-ayodele/receipt-ocr-engine/internal/parser"
	"github.com/joseph-ayodele/receipt-ocr-engine/internal/repository"
	"github.com/joseph-ayodele/receipt-ocr-engine/internal/schema"
)

// Config tunes the processing pipeline.
type Config struct {
	// MinConfidence flags receipts whose aggregate recognition confidence
	// falls below it for review.
	MinConfidence float64
}

// Processor runs the extract stage for one payload file and stores the result.
type Processor struct {
	logger        *slog.Logger
	receiptsRepo  repository.ReceiptRepository
	minConfidence float64
}

func NewProcessor(logger *slog.Logger, receiptsRepo repository.ReceiptRepository, cfg Config) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MinConfidence == 0 {
		cfg.MinConfidence = 0.60
	}
	return &Processor{
		logger:        logger,
		receiptsRepo:  receiptsRepo,
		minConfidence: cfg.MinConfidence,
	}
}

// ProcessFile loads a recognition payload, parses it into structured fields,
// validates the document, and persists the receipt. Returns the stored
// receipt's ID.
func (p *Processor) ProcessFile(ctx context.Context, path string) (uuid.UUID, error) {
	payload, err := ingest.LoadFile(path)
	if err != nil {
		p.logger.Error("processor.load.failed", "path", path, "err", err)
		return uuid.Nil, err
	}

	text := ocr.Normalize(payload.RawText)

	p.logger.Debug("parse fields start",
		"path", path,
		"text_bytes", len(text),
		"blocks", len(payload.Blocks),
		"barcodes", len(payload.Barcodes),
	)

	res := parser.Parse(text, payload.Blocks, payload.Barcodes)

	doc := schema.FromExtraction(res)
	raw, err := json.Marshal(doc)
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal document: %w", err)
	}
	if err := schema.Validate(raw); err != nil {
		p.logger.Error("processor.validate.failed", "path", path, "err", err)
		return uuid.Nil, fmt.Errorf("validate document: %w", err)
	}

	// Heuristic needs_review
	status := constants.StatusParsed
	if res.Parsed.MerchantName == nil || res.Parsed.Date == nil || res.Parsed.TotalAmount == nil {
		status = constants.StatusNeedsReview
	}
	if res.Confidence < p.minConfidence {
		p.logger.Warn("recognition confidence low; needs review", "path", path, "conf", res.Confidence)
		status = constants.StatusNeedsReview
	}

	req := &repository.CreateReceiptRequest{
		SourcePath:    path,
		Extraction:    res,
		Status:        status,
		ExtractedJSON: raw,
	}
	rec, err := p.receiptsRepo.CreateFromExtraction(ctx, req)
	if err != nil {
		return uuid.Nil, fmt.Errorf("store receipt: %w", err)
	}

	p.logger.Info("parsed fields successfully",
		"receipt_id", rec.ID,
		"merchant", doc.MerchantName,
		"date", doc.TxDate, "total", doc.Total,
		"items", len(doc.Items),
		"status", string(status),
		"confidence", res.Confidence,
	)
	return rec.ID, nil
}
