package parser

import (
	"strings"

	"github.com/shopspring/decimal"
)

// amountCleaner strips currency symbols, grouping separators and whitespace
// from a matched amount substring before numeric conversion.
var amountCleaner = strings.NewReplacer(
	"$", "", "€", "", "£", "", "¥", "", "₹", "",
	",", "", " ", "",
)

// ParseAmount normalizes a matched amount substring into a decimal value.
// Decimal point only; no locale-specific decimal-comma conventions.
// The second return is false when the cleaned string is not numeric.
func ParseAmount(s string) (decimal.Decimal, bool) {
	cleaned := strings.TrimSpace(amountCleaner.Replace(s))
	if cleaned == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}
