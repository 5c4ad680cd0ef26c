package parser

import (
	"strings"

	"github.com/shopspring/decimal"
)

var quantityOne = decimal.NewFromInt(1)

// extractLineItems scans every line for a "name, whitespace, trailing amount"
// shape. Header and footer lines (totals, payment, pleasantries) are rejected
// up front; lines whose amount does not clean to a positive decimal, or whose
// name trims to nothing, are silently skipped. Partial success is the normal
// outcome and never fails the parse.
func extractLineItems(lines []string) []LineItem {
	var items []LineItem
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if containsAnyFold(line, itemSkipWords) {
			continue
		}
		m := lineItemPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if name == "" {
			continue
		}
		price, ok := ParseAmount(m[2])
		if !ok || !price.IsPositive() {
			continue
		}
		items = append(items, LineItem{
			Name:     name,
			Price:    price,
			Quantity: quantityOne,
		})
	}
	return items
}
