package receipt

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// Confidence is the fixed confidence reported for parsed receipts.
	Confidence = 0.8

	UnknownMerchant = "Unknown Merchant"
	GeneralCategory = "General"
)

type Source string

const (
	SourceLearned Source = "learned"
	SourceKeyword Source = "keyword"
)

var (
	totalRe    = regexp.MustCompile(`(?is)total.*?(?:rs|₹|\.|\|)?\s*(\d+\.\d{2})`)
	netRe      = regexp.MustCompile(`(?is)net amount.*?(\d+\.\d{2})`)
	anyAmount  = regexp.MustCompile(`(\d+\.\d{2})`)
	dateRe     = regexp.MustCompile(`(\d{2})[-/](\d{2})[-/](\d{4})`)
	amountsRes = []*regexp.Regexp{totalRe, netRe, anyAmount}
)

type keywordRule struct {
	category string
	keywords []string
}

// keywordRules are checked in order against the lowercased text.
var keywordRules = []keywordRule{
	{"Food & Dining", []string{"zomato", "swiggy", "restaurant"}},
	{"Shopping", []string{"reliance", "dmart", "bazaar"}},
	{"Transport", []string{"uber", "ola", "petrol"}},
	{"Insurance", []string{"lic", "hdfc life"}},
}

type Receipt struct {
	// Amount is nil when the text holds no decimal amount.
	Amount            *float64
	Date              time.Time
	DateFound         bool
	Merchant          string
	SuggestedCategory string
	CategorySource    Source
	Confidence        float64
	RawText           string
}

// Parse extracts the fields of a receipt from OCR text. The date defaults to
// now when none can be read.
func Parse(text string, now time.Time) Receipt {
	r := Receipt{
		Date:              now,
		Merchant:          merchant(text),
		SuggestedCategory: InferCategory(text),
		CategorySource:    SourceKeyword,
		Confidence:        Confidence,
		RawText:           text,
	}

	for _, re := range amountsRes {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			r.Amount = &v
			break
		}
	}

	if m := dateRe.FindStringSubmatch(text); m != nil {
		if d, err := time.Parse("02-01-2006", m[1]+"-"+m[2]+"-"+m[3]); err == nil {
			r.Date = d
			r.DateFound = true
		}
	}

	return r
}

// InferCategory guesses a category from well known merchant keywords.
func InferCategory(text string) string {
	lower := strings.ToLower(text)

	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}

	return GeneralCategory
}

func merchant(text string) string {
	first, _, _ := strings.Cut(text, "\n")
	if first = strings.TrimSpace(first); first != "" {
		return first
	}

	return UnknownMerchant
}
