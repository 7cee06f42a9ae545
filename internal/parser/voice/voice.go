// Package voice extracts a financial intent from a transcribed Persian voice command.
package voice

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/SscSPs/hesabdar/internal/core/domain"
	"github.com/SscSPs/hesabdar/internal/parser"
	"github.com/shopspring/decimal"
)

const (
	// ErrAmountMissing is reported when no amount can be found in the text.
	ErrAmountMissing = "مبلغ تراکنش مشخص نیست"

	DefaultExpensePurpose = "هزینه‌های متفرقه"
	DefaultIncomePurpose  = "درآمدهای متفرقه"
)

type numberWord struct {
	word  string
	value int64
}

// numberWords is sorted longest first at init so that compound words win over their parts.
var numberWords = []numberWord{
	{"صفر", 0}, {"یک", 1}, {"دو", 2}, {"سه", 3}, {"چهار", 4}, {"پنج", 5},
	{"شش", 6}, {"هفت", 7}, {"هشت", 8}, {"نه", 9}, {"ده", 10},
	{"یازده", 11}, {"دوازده", 12}, {"سیزده", 13}, {"چهارده", 14}, {"پانزده", 15},
	{"شانزده", 16}, {"هفده", 17}, {"هجده", 18}, {"نوزده", 19}, {"بیست", 20},
	{"سی", 30}, {"چهل", 40}, {"پنجاه", 50}, {"شصت", 60}, {"هفتاد", 70},
	{"هشتاد", 80}, {"نود", 90}, {"صد", 100}, {"یکصد", 100}, {"دویست", 200},
	{"سیصد", 300}, {"چهارصد", 400}, {"پانصد", 500}, {"ششصد", 600},
	{"هفتصد", 700}, {"هشتصد", 800}, {"نهصد", 900},
}

func init() {
	sort.SliceStable(numberWords, func(i, j int) bool {
		return utf8.RuneCountInString(numberWords[i].word) > utf8.RuneCountInString(numberWords[j].word)
	})
}

type keywordGroup struct {
	direction domain.Direction
	words     []string
}

// keywordGroups are payment, receive, purchase and sale, checked in that order.
// The first group with a match decides the direction.
var keywordGroups = []keywordGroup{
	{domain.DirectionPayment, []string{"پرداخت", "پرداختی", "دادم", "دادیم", "پرداخته", "کردم", "کردیم"}},
	{domain.DirectionReceive, []string{"دریافت", "دریافتی", "گرفتم", "گرفتیم", "دریافته", "آوردم"}},
	{domain.DirectionPayment, []string{"خرید", "خریداری", "خریدم"}},
	{domain.DirectionReceive, []string{"فروش", "فروخته", "فروختم"}},
}

var (
	amountPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+(?:\.\d+)?)\s*میلیون`),
		regexp.MustCompile(`(\d+(?:\.\d+)?)\s*هزار`),
		regexp.MustCompile(`(\d+(?:\.\d+)?)`),
	}

	counterpartyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:به|از)\s+(\S+(?:\s+\S+)?(?:\s+\S+)?)`),
		regexp.MustCompile(`(?:بابت|برای)\s+(\S+(?:\s+\S+)?)`),
	}

	purposePatterns = []*regexp.Regexp{
		regexp.MustCompile(`بابت\s+(.+?)\s*$`),
		regexp.MustCompile(`برای\s+(.+?)\s*$`),
	}
	purposeTrailer = regexp.MustCompile(`\s+(?:به|از|کن|کنید)\s*$`)

	thousandsSeparators = strings.NewReplacer("،", "", ",", "")
	million             = decimal.NewFromInt(1_000_000)
	thousand            = decimal.NewFromInt(1_000)
	ten                 = decimal.NewFromInt(10)
)

// Result is the outcome of parsing one command. Unparsable text yields Success=false and Error.
type Result struct {
	Success         bool
	Amount          decimal.Decimal // rials
	TransactionType domain.Direction
	AccountName     string // purpose
	Counterparty    string
	Description     string
	Error           string
}

// Parse extracts amount, direction, counterparty and purpose from text.
func Parse(text string) Result {
	text = strings.ToLower(strings.TrimSpace(text))
	res := Result{Description: text}

	amount, ok := extractAmount(text)
	if !ok || !amount.IsPositive() {
		res.Error = ErrAmountMissing
		return res
	}
	res.Amount = amount
	res.TransactionType = detectDirection(text)
	res.Counterparty = extractCounterparty(text)

	res.AccountName = extractPurpose(text)
	if res.AccountName == "" {
		if res.TransactionType == domain.DirectionPayment {
			res.AccountName = DefaultExpensePurpose
		} else {
			res.AccountName = DefaultIncomePurpose
		}
	}

	res.Success = true
	return res
}

// Intent converts a successful result into a domain intent.
func (r Result) Intent() domain.Intent {
	return domain.Intent{
		Amount:       r.Amount,
		Direction:    r.TransactionType,
		Counterparty: r.Counterparty,
		Purpose:      r.AccountName,
	}
}

// ToMap renders the result with snake_case keys for storage and API responses.
func (r Result) ToMap() map[string]any {
	m := map[string]any{
		"success":          r.Success,
		"amount":           nil,
		"transaction_type": nil,
		"account_name":     nil,
		"counterparty":     nil,
		"description":      r.Description,
		"error":            nil,
	}
	if r.Success {
		m["amount"] = r.Amount.InexactFloat64()
		m["transaction_type"] = string(r.TransactionType)
		m["account_name"] = r.AccountName
	}
	if r.Counterparty != "" {
		m["counterparty"] = r.Counterparty
	}
	if r.Error != "" {
		m["error"] = r.Error
	}
	return m
}

func extractAmount(text string) (decimal.Decimal, bool) {
	text = thousandsSeparators.Replace(text)
	converted := wordsToDigits(parser.NormalizeDigits(text))

	for _, re := range amountPatterns {
		m := re.FindStringSubmatch(converted)
		if m == nil {
			continue
		}
		amount, err := decimal.NewFromString(m[1])
		if err != nil {
			continue
		}
		if strings.Contains(text, "میلیون") {
			amount = amount.Mul(million)
		} else if strings.Contains(text, "هزار") {
			amount = amount.Mul(thousand)
		}
		if strings.Contains(text, "تومان") {
			amount = amount.Mul(ten)
		}
		return amount, true
	}
	return decimal.Zero, false
}

// wordsToDigits replaces number words with digits and sums runs like "500 و 50".
func wordsToDigits(text string) string {
	for _, nw := range numberWords {
		text = strings.ReplaceAll(text, nw.word, strconv.FormatInt(nw.value, 10))
	}

	parts := strings.Fields(text)
	out := make([]string, 0, len(parts))
	for i := 0; i < len(parts); i++ {
		n, ok := parseDigits(parts[i])
		if !ok {
			out = append(out, parts[i])
			continue
		}
		for i+2 < len(parts) && parts[i+1] == "و" {
			next, ok := parseDigits(parts[i+2])
			if !ok {
				break
			}
			n += next
			i += 2
		}
		out = append(out, strconv.FormatInt(n, 10))
	}
	return strings.Join(out, " ")
}

func parseDigits(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	return n, err == nil
}

// detectDirection defaults to payment when no keyword is present.
func detectDirection(text string) domain.Direction {
	for _, group := range keywordGroups {
		for _, kw := range group.words {
			if strings.Contains(text, kw) {
				return group.direction
			}
		}
	}
	return domain.DirectionPayment
}

func extractCounterparty(text string) string {
	for _, re := range counterpartyPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		// the name ends where the purpose begins
		name := m[1]
		for _, marker := range []string{"بابت", "برای"} {
			if idx := strings.Index(name, marker); idx >= 0 {
				name = name[:idx]
			}
		}
		name = strings.TrimSpace(purposeTrailer.ReplaceAllString(name, ""))
		if utf8.RuneCountInString(name) > 1 {
			return name
		}
	}
	return ""
}

func extractPurpose(text string) string {
	for _, re := range purposePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		purpose := purposeTrailer.ReplaceAllString(strings.TrimSpace(m[1]), "")
		if utf8.RuneCountInString(purpose) > 2 {
			return purpose
		}
	}
	return ""
}
