// Package schema defines the persisted receipt document and its JSON-Schema
// contract. Every extraction is serialized to this shape and validated
// before it reaches storage.
package schema

import (
	"github.com/joseph-ayodele/receipt-ocr-engine/internal/parser"
)

// Document is the normalized wire shape of one parsed receipt.
// Money fields are decimal strings; the date is YYYY-MM-DD.
type Document struct {
	MerchantName   string            `json:"merchant_name,omitempty"`
	ReceiptNumber  string            `json:"receipt_number,omitempty"`
	TxDate         string            `json:"tx_date,omitempty"`
	Subtotal       string            `json:"subtotal,omitempty"`
	Tax            string            `json:"tax,omitempty"`
	Total          string            `json:"total,omitempty"`
	CurrencyCode   string            `json:"currency_code"`
	Confidence     float64           `json:"confidence"`
	Items          []DocumentItem    `json:"items,omitempty"`
	AdditionalData map[string]string `json:"additional_data,omitempty"`
}

// DocumentItem is one line item on the document.
type DocumentItem struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity string `json:"quantity"`
}

// FromExtraction flattens an extraction result into its document form.
func FromExtraction(res parser.ExtractionResult) Document {
	p := res.Parsed
	doc := Document{
		CurrencyCode:   p.Currency,
		Confidence:     res.Confidence,
		AdditionalData: p.AdditionalData,
	}
	if p.MerchantName != nil {
		doc.MerchantName = *p.MerchantName
	}
	if p.ReceiptNumber != nil {
		doc.ReceiptNumber = *p.ReceiptNumber
	}
	if p.Date != nil {
		doc.TxDate = p.Date.Format("2006-01-02")
	}
	if p.Subtotal != nil {
		doc.Subtotal = p.Subtotal.StringFixed(2)
	}
	if p.TaxAmount != nil {
		doc.Tax = p.TaxAmount.StringFixed(2)
	}
	if p.TotalAmount != nil {
		doc.Total = p.TotalAmount.StringFixed(2)
	}
	for _, it := range p.Items {
		doc.Items = append(doc.Items, DocumentItem{
			Name:     it.Name,
			Price:    it.Price.StringFixed(2),
			Quantity: it.Quantity.String(),
		})
	}
	return doc
}

// BuildReceiptJSONSchema returns the document's JSON-Schema (draft 2020-12
// subset) as a generic map, used locally to validate documents before
// persistence.
func BuildReceiptJSONSchema() map[string]any {
	props := map[string]any{
		"merchant_name":  map[string]any{"type": "string", "minLength": 1},
		"receipt_number": map[string]any{"type": "string", "minLength": 1},
		"tx_date":        map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
		"subtotal":       decimalProp(),
		"tax":            decimalProp(),
		"total":          decimalProp(),
		"currency_code":  map[string]any{"type": "string", "minLength": 3, "maxLength": 3},
		"confidence":     map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		"items": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"name":     map[string]any{"type": "string", "minLength": 1},
					"price":    decimalProp(),
					"quantity": map[string]any{"type": "string", "pattern": `^\d+(\.\d+)?$`},
				},
				"required": []string{"name", "price", "quantity"},
			},
		},
		"additional_data": map[string]any{
			"type":                 "object",
			"additionalProperties": map[string]any{"type": "string"},
		},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             []string{"currency_code", "confidence"},
	}
}

// subtotal may be negative when tax exceeds a discounted total
func decimalProp() map[string]any {
	return map[string]any{
		"type":    "string",
		"pattern": `^-?\d+(\.\d{1,2})?$`,
	}
}
