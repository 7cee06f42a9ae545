// Package receipt pulls amount, date and vendor out of receipt text.
package receipt

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/SscSPs/hesabdar/internal/parser"
	"github.com/shopspring/decimal"
)

// maxVendorLines is how many leading lines are considered for the vendor name.
const maxVendorLines = 5

var (
	amountPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:مبلغ|جمع|کل|total|amount)[:\s]*(\d+[\d,]*)`),
		regexp.MustCompile(`(?i)(\d+[\d,]*)\s*(?:ریال|تومان|rials?)`),
		regexp.MustCompile(`(?i)(?:قابل\s+پرداخت)[:\s]*(\d+[\d,]*)`),
	}

	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d{4})[/-](\d{1,2})[/-](\d{1,2})`),
		regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})[/-](\d{4})`),
		regexp.MustCompile(`(\d{2})[/-](\d{2})[/-](\d{2})`),
	}

	leadingDigits   = regexp.MustCompile(`^\d+`)
	nonVendorWords  = []string{"receipt", "invoice", "فاکتور", "رسید"}
	amountSeparator = strings.NewReplacer(",", "", "،", "")
)

// Result is what could be read from a receipt. Success is true exactly when an amount was found.
type Result struct {
	Success bool
	Amount  *decimal.Decimal
	Date    *string // YYYY/MM/DD
	Vendor  *string
}

// Parse never fails; missing fields are left nil.
func Parse(text string) Result {
	text = parser.NormalizeDigits(text)

	var res Result
	if amount, ok := extractAmount(text); ok {
		res.Amount = &amount
		res.Success = true
	}
	if date, ok := extractDate(text); ok {
		res.Date = &date
	}
	if vendor, ok := extractVendor(text); ok {
		res.Vendor = &vendor
	}
	return res
}

// extractAmount returns the largest amount matched by any pattern.
func extractAmount(text string) (decimal.Decimal, bool) {
	text = strings.ReplaceAll(text, "،", ",")

	var best decimal.Decimal
	found := false
	for _, re := range amountPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			amount, err := decimal.NewFromString(amountSeparator.Replace(m[1]))
			if err != nil {
				continue
			}
			if !found || amount.GreaterThan(best) {
				best = amount
				found = true
			}
		}
	}
	return best, found
}

func extractDate(text string) (string, bool) {
	for _, re := range datePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		var year, month, day string
		if len(m[1]) == 4 {
			year, month, day = m[1], m[2], m[3]
		} else {
			day, month, year = m[1], m[2], m[3]
		}
		if len(year) == 2 {
			year = "14" + year
		}
		return fmt.Sprintf("%s/%s/%s", year, zeroPad(month), zeroPad(day)), true
	}
	return "", false
}

func zeroPad(s string) string {
	if len(s) < 2 {
		return "0" + s
	}
	return s
}

func extractVendor(text string) (string, bool) {
	lines := strings.Split(text, "\n")
	if len(lines) > maxVendorLines {
		lines = lines[:maxVendorLines]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if utf8.RuneCountInString(line) <= 3 || leadingDigits.MatchString(line) {
			continue
		}
		lower := strings.ToLower(line)
		skip := false
		for _, kw := range nonVendorWords {
			if strings.Contains(lower, kw) {
				skip = true
				break
			}
		}
		if !skip {
			return line, true
		}
	}
	return "", false
}
