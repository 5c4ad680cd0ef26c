package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// datePattern couples a compiled expression with the interpretation of its
// three capture groups.
type datePattern struct {
	re    *regexp.Regexp
	build func(m []string) (time.Time, bool)
}

// extractDate tries the date rules in library order and returns the first
// match that survives calendar validation. A match whose captured value does
// not form a real calendar date is treated as no-match for that rule.
func extractDate(text string) *time.Time {
	for _, p := range datePatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if t, ok := p.build(m); ok {
			return &t
		}
	}
	return nil
}

func buildDayMonthYear(m []string) (time.Time, bool) {
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year := normalizeYear(m[3])
	// Receipts from month-first locales print 03/14/2024; when the middle
	// field cannot be a month but the first can, the two are swapped.
	if month > 12 && day <= 12 {
		day, month = month, day
	}
	return makeDate(year, month, day)
}

func buildYearMonthDay(m []string) (time.Time, bool) {
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	return makeDate(year, month, day)
}

func buildMonthNameFirst(m []string) (time.Time, bool) {
	month, ok := monthFromName(m[1])
	if !ok {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(m[2])
	year := normalizeYear(m[3])
	return makeDate(year, month, day)
}

func buildDayMonthName(m []string) (time.Time, bool) {
	day, _ := strconv.Atoi(m[1])
	month, ok := monthFromName(m[2])
	if !ok {
		return time.Time{}, false
	}
	year := normalizeYear(m[3])
	return makeDate(year, month, day)
}

func monthFromName(name string) (int, bool) {
	switch strings.ToLower(name)[:3] {
	case "jan":
		return 1, true
	case "feb":
		return 2, true
	case "mar":
		return 3, true
	case "apr":
		return 4, true
	case "may":
		return 5, true
	case "jun":
		return 6, true
	case "jul":
		return 7, true
	case "aug":
		return 8, true
	case "sep":
		return 9, true
	case "oct":
		return 10, true
	case "nov":
		return 11, true
	case "dec":
		return 12, true
	}
	return 0, false
}

// normalizeYear expands two-digit years, pivoting at 50.
func normalizeYear(s string) int {
	year, _ := strconv.Atoi(s)
	if year < 100 {
		if year > 50 {
			year += 1900
		} else {
			year += 2000
		}
	}
	return year
}

// makeDate builds a midnight-UTC date and rejects values that time.Date
// would silently normalize (e.g. February 31st).
func makeDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// extractAmount tries the given amount rules in order and returns the first
// captured value that cleans to a decimal. A match whose capture is not
// numeric is treated as no-match for that rule.
func extractAmount(text string, patterns []*regexp.Regexp) *decimal.Decimal {
	for _, p := range patterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if d, ok := ParseAmount(m[1]); ok {
			return &d
		}
	}
	return nil
}

// extractCurrency returns the ISO code of the first currency rule whose
// symbol or code occurs anywhere in the text.
func extractCurrency(text string) (string, bool) {
	for _, rule := range currencyRules {
		if rule.re.MatchString(text) {
			return rule.code, true
		}
	}
	return "", false
}

// extractReceiptNumber applies the receipt-number rules in order: a
// label-prefixed token first, then a bare #token fallback.
func extractReceiptNumber(text string) *string {
	for _, p := range receiptNumberPatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		token := strings.TrimSpace(m[1])
		if token != "" {
			return &token
		}
	}
	return nil
}

// extractContactInfo populates phone, email and website entries. The three
// rules are independent and non-exclusive.
func extractContactInfo(text string, dst map[string]string) {
	if m := phonePattern.FindStringSubmatch(text); m != nil {
		dst["phone"] = strings.TrimSpace(m[1])
	}
	if m := emailPattern.FindString(text); m != "" {
		dst["email"] = m
	}
	if m := websitePattern.FindString(text); m != "" {
		dst["website"] = m
	}
}
