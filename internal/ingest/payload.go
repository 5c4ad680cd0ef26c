// Package ingest reads recognition payloads: JSON documents emitted by the
// on-device text/barcode recognizer, one per captured receipt.
package ingest

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/joseph-ayodele/receipt-ocr-engine/constants"
	"github.com/joseph-ayodele/receipt-ocr-engine/internal/common"
	"github.com/joseph-ayodele/receipt-ocr-engine/internal/parser"
)

// Payload is the recognizer's output for one receipt image.
type Payload struct {
	RawText  string                   `json:"raw_text"`
	Blocks   []parser.RecognizedBlock `json:"blocks"`
	Barcodes []string                 `json:"barcodes"`
}

// LoadFile reads and decodes one recognition payload. Unreadable or
// structurally broken documents are upstream failures, reported as
// common.ErrUpstream so callers can tell them apart from receipts that
// parsed to nothing.
func LoadFile(path string) (*Payload, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, common.NewAppError("PAYLOAD_READ", "reading recognition payload", err)
	}
	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, common.NewAppError("PAYLOAD_DECODE", err.Error(), common.ErrUpstream)
	}
	return &p, nil
}

// ScanDirectory walks dir and returns the paths of all ingestible payload
// files, sorted for deterministic processing order.
func ScanDirectory(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if constants.IsAllowedExt(filepath.Ext(path)) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, common.WrapError(err, "scanning payload directory")
	}
	sort.Strings(paths)
	return paths, nil
}
