package parser

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is used whenever no currency symbol or code is found in the text.
const DefaultCurrency = "USD"

// BoundingBox locates a recognized block within the source image.
// Coordinates are in the recognizer's image space and pass through untouched.
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RecognizedBlock is one contiguous region of recognized text, as produced by
// the external text-recognition collaborator. Confidence is nil when the
// recognizer reported none for the block.
type RecognizedBlock struct {
	Text        string      `json:"text"`
	BoundingBox BoundingBox `json:"bounding_box"`
	Confidence  *float64    `json:"confidence,omitempty"`
}

// LineItem is a single purchased item extracted from the receipt body.
// Price is always positive and Name non-empty; candidates violating either
// are discarded during extraction, never stored.
type LineItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity decimal.Decimal `json:"quantity"`
}

// ParsedReceipt holds the structured fields extracted from one receipt.
// Optional fields are nil when no pattern matched; that is the normal
// outcome for noisy text, not an error.
type ParsedReceipt struct {
	MerchantName   *string           `json:"merchant_name,omitempty"`
	ReceiptNumber  *string           `json:"receipt_number,omitempty"`
	Date           *time.Time        `json:"date,omitempty"`
	TotalAmount    *decimal.Decimal  `json:"total_amount,omitempty"`
	TaxAmount      *decimal.Decimal  `json:"tax_amount,omitempty"`
	Subtotal       *decimal.Decimal  `json:"subtotal,omitempty"`
	Currency       string            `json:"currency"`
	Items          []LineItem        `json:"items,omitempty"`
	AdditionalData map[string]string `json:"additional_data,omitempty"`
}

// ExtractionResult is the full outcome of one extraction call: the raw
// recognizer output carried through, the structured fields, and the
// aggregate recognition confidence. Immutable after construction.
type ExtractionResult struct {
	RawText    string            `json:"raw_text"`
	Confidence float64           `json:"confidence"`
	Parsed     ParsedReceipt     `json:"parsed_data"`
	Barcodes   []string          `json:"barcodes,omitempty"`
	Blocks     []RecognizedBlock `json:"blocks,omitempty"`
}
