// Package parser turns raw recognized receipt text, per-block confidence
// metadata and barcodes into a structured receipt record.
//
// Every extractor is a pure function over its input and the package holds no
// state across calls; the pattern library is immutable package-level data.
// Arbitrarily many extractions may therefore run concurrently with no shared
// mutable state. Extraction is best-effort: absent fields are the correct
// representation of "not found", never an error.
package parser

import (
	"slices"
	"strings"
)

// Parse runs all field extractors over one recognizer output and assembles
// the structured result. It never fails: malformed or empty text yields a
// result with every optional field absent and the currency at its default.
// Nil block and barcode slices are valid empty sequences.
//
// Repeated calls with identical input produce identical results.
func Parse(rawText string, blocks []RecognizedBlock, barcodes []string) ExtractionResult {
	lines := strings.Split(rawText, "\n")

	parsed := ParsedReceipt{
		Currency:       DefaultCurrency,
		AdditionalData: make(map[string]string),
	}

	parsed.MerchantName = extractMerchantName(lines)
	parsed.ReceiptNumber = extractReceiptNumber(rawText)
	parsed.Date = extractDate(rawText)

	// Total and tax are independent; a missing one never blocks the other.
	parsed.TotalAmount = extractAmount(rawText, totalPatterns)
	parsed.TaxAmount = extractAmount(rawText, taxPatterns)
	if parsed.TotalAmount != nil && parsed.TaxAmount != nil {
		sub := parsed.TotalAmount.Sub(*parsed.TaxAmount)
		parsed.Subtotal = &sub
	}

	if code, ok := extractCurrency(rawText); ok {
		parsed.Currency = code
	}

	parsed.Items = extractLineItems(lines)
	extractContactInfo(rawText, parsed.AdditionalData)

	return ExtractionResult{
		RawText:    rawText,
		Confidence: ScoreBlocks(blocks),
		Parsed:     parsed,
		Barcodes:   slices.Clone(barcodes),
		Blocks:     slices.Clone(blocks),
	}
}
