package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/receipt-ocr-engine/constants"
)

// Receipt represents a stored receipt for data transfer between layers.
// Money fields are decimal strings, matching how they are persisted.
type Receipt struct {
	ID            uuid.UUID             `json:"id"`
	MerchantName  *string               `json:"merchant_name,omitempty"`
	ReceiptNumber *string               `json:"receipt_number,omitempty"`
	TxDate        *time.Time            `json:"tx_date,omitempty"`
	Subtotal      *string               `json:"subtotal,omitempty"`
	Tax           *string               `json:"tax,omitempty"`
	Total         *string               `json:"total,omitempty"`
	CurrencyCode  string                `json:"currency_code"`
	Confidence    float64               `json:"confidence"`
	Status        constants.ParseStatus `json:"status"`
	SourcePath    string                `json:"source_path"`
	ExtractedJSON []byte                `json:"extracted_json,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	Items         []ReceiptItem         `json:"items,omitempty"`
}

// ReceiptItem is one stored line item.
type ReceiptItem struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity string `json:"quantity"`
}
