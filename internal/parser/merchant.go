package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// merchantScanWindow bounds how many non-empty lines of the header are
// examined for a merchant name. Merchant names conventionally sit at the top
// of a receipt; scanning further only picks up item noise.
const merchantScanWindow = 5

// extractMerchantName returns the first header line that looks like a company
// name: longer than 5 runes with at least one letter, not purely numeric, not
// boilerplate ("receipt", "invoice", "bill"). Nil when no line qualifies.
func extractMerchantName(lines []string) *string {
	seen := 0
	for _, line := range lines {
		t := strings.TrimSpace(line)
		if t == "" {
			continue
		}
		seen++
		if seen > merchantScanWindow {
			break
		}
		if utf8.RuneCountInString(t) < 3 || isNumericLine(t) || containsAnyFold(t, merchantSkipWords) {
			continue
		}
		if utf8.RuneCountInString(t) > 5 && hasLetter(t) {
			name := t
			return &name
		}
	}
	return nil
}

// isNumericLine reports whether a line consists only of digits, separators
// and spaces, with at least one digit. Dates, totals and register codes in
// the header look like this.
func isNumericLine(s string) bool {
	hasDigit := false
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case r == ' ' || r == '.' || r == ',' || r == '-' || r == '/' || r == ':' || r == '#':
		default:
			return false
		}
	}
	return hasDigit
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// containsAnyFold reports whether s contains any of the words,
// case-insensitively.
func containsAnyFold(s string, words []string) bool {
	lower := strings.ToLower(s)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
