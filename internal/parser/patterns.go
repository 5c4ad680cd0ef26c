package parser

import "regexp"

// The pattern library. Every list below is ordered: extractors try the rules
// top to bottom and accept the first one that matches. Order is the entire
// tie-break policy; there is no scoring among candidates within a field.

const monthNames = `jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec`

// datePatterns are tried strictly in this order:
// D/M/Y, Y/M/D, "Month D, Y", "D Month Y".
var datePatterns = []datePattern{
	{
		re:    regexp.MustCompile(`\b(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{2,4})\b`),
		build: buildDayMonthYear,
	},
	{
		re:    regexp.MustCompile(`\b(\d{4})[/\-.](\d{1,2})[/\-.](\d{1,2})\b`),
		build: buildYearMonthDay,
	},
	{
		re:    regexp.MustCompile(`(?i)\b(` + monthNames + `)[a-z]*\.?\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{2,4})\b`),
		build: buildMonthNameFirst,
	},
	{
		re:    regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+(` + monthNames + `)[a-z]*\.?,?\s+(\d{2,4})\b`),
		build: buildDayMonthName,
	},
}

// totalPatterns extract the receipt total: label-before-amount first, then
// amount-before-label as fallback.
var totalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:grand\s*total|total\s*due|amount\s*due|balance\s*due|total)\b\s*:?\s*(?:[$€£¥₹]|[A-Za-z]{3}\b)?\s*(\d[\d,]*(?:\.\d{1,2})?)`),
	regexp.MustCompile(`(?i)([$€£¥₹]?\s?\d[\d,]*\.\d{2})\s+(?:total|due)\b`),
}

// taxPatterns are independent of the total rules; a missing tax never blocks
// total extraction and vice versa.
var taxPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:sales\s*tax|tax|vat|gst|hst)\b\s*:?\s*(?:[$€£¥₹]|[A-Za-z]{3}\b)?\s*(\d[\d,]*(?:\.\d{1,2})?)`),
	regexp.MustCompile(`(?i)([$€£¥₹]?\s?\d[\d,]*\.\d{2})\s+(?:tax|vat|gst|hst)\b`),
}

// currencyRules map symbols and ISO 4217 codes to currency codes. The first
// rule whose pattern occurs anywhere in the text wins; symbols outrank codes.
type currencyRule struct {
	re   *regexp.Regexp
	code string
}

var currencyRules = []currencyRule{
	{regexp.MustCompile(`\$`), "USD"},
	{regexp.MustCompile(`€`), "EUR"},
	{regexp.MustCompile(`£`), "GBP"},
	{regexp.MustCompile(`¥`), "JPY"},
	{regexp.MustCompile(`₹`), "INR"},
	{regexp.MustCompile(`(?i)\busd\b`), "USD"},
	{regexp.MustCompile(`(?i)\beur\b`), "EUR"},
	{regexp.MustCompile(`(?i)\bgbp\b`), "GBP"},
	{regexp.MustCompile(`(?i)\bcad\b`), "CAD"},
	{regexp.MustCompile(`(?i)\baud\b`), "AUD"},
	{regexp.MustCompile(`(?i)\binr\b`), "INR"},
	{regexp.MustCompile(`(?i)\bjpy\b`), "JPY"},
	{regexp.MustCompile(`(?i)\bchf\b`), "CHF"},
	{regexp.MustCompile(`(?i)\bmxn\b`), "MXN"},
}

// receiptNumberPatterns: label-prefixed token first, bare #token fallback.
// Tokens must carry at least one digit so stray words after a label are
// not mistaken for numbers.
var receiptNumberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:receipt|rcpt|invoice|inv|order|trans(?:action)?)\s*(?:no|num|number)?\.?\s*[:#]?\s*#?\s*([A-Za-z0-9-]*\d[A-Za-z0-9-]*)`),
	regexp.MustCompile(`#\s*([A-Za-z0-9-]*\d[A-Za-z0-9-]*)`),
}

// Contact rules are independent and non-exclusive; all three may populate
// additional data at once.
var (
	phonePattern   = regexp.MustCompile(`(?i)\b(?:tel|phone|ph)\b\.?\s*:?\s*(\+?[\d()][\d()\s.-]{5,}\d)`)
	emailPattern   = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	websitePattern = regexp.MustCompile(`(?i)\b(?:https?://)?(?:www\.)?[a-z0-9-]+\.(?:com|net|org|io|co)\b`)
)

// lineItemPattern matches "name, whitespace, trailing amount" on one line.
var lineItemPattern = regexp.MustCompile(`^(.+?)\s+([$€£¥₹]?\s?\d[\d,]*\.\d{2})$`)

// itemSkipWords reject header/footer lines from line-item extraction
// (case-insensitive substring match).
var itemSkipWords = []string{
	"receipt", "thank you", "total", "subtotal", "tax", "change", "card", "cash",
}

// merchantSkipWords reject boilerplate lines from merchant-name extraction.
var merchantSkipWords = []string{"receipt", "invoice", "bill"}
