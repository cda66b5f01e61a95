package stock

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrNotFound = errors.New("stock not found")

//go:embed catalog.yaml
var defaultCatalog []byte

// Series describes a deterministic synthetic daily price history: a linear
// trend from Start by Drift per day with a seasonal wave on top.
type Series struct {
	Days      int     `yaml:"days"`
	Start     float64 `yaml:"start"`
	Drift     float64 `yaml:"drift"`
	Amplitude float64 `yaml:"amplitude"`
	Period    int     `yaml:"period"`
	Volume    float64 `yaml:"volume"`
}

type Listing struct {
	Ticker           string    `yaml:"ticker"`
	Company          string    `yaml:"company"`
	Sector           string    `yaml:"sector"`
	MarketCap        float64   `yaml:"market_cap"`
	CurrentVsAverage float64   `yaml:"current_vs_average"`
	Return5Y         float64   `yaml:"return_5y"`
	Resilience       Rating    `yaml:"resilience"`
	InvestedBefore   bool      `yaml:"invested_before"`
	TimesInvested    int       `yaml:"times_invested"`
	PastReturns      []float64 `yaml:"past_returns"`
	Series           Series    `yaml:"series"`
}

type PricePoint struct {
	Date  time.Time
	Price float64
}

type Stock struct {
	Ticker            string
	Company           string
	Sector            string
	CurrentPrice      float64
	PriceChange       float64 // percent, versus the previous close
	PriceChangeAmount float64
	MarketCap         float64
	Week52Low         float64
	Week52High        float64
	Fundamentals      Fundamentals
	Technicals        Technicals
	Recommendation    Recommendation
	History           []PricePoint
}

type Catalog struct {
	listings []Listing
}

// LoadCatalog parses the bundled demo listings.
func LoadCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalog)
}

func ParseCatalog(data []byte) (*Catalog, error) {
	var doc struct {
		Stocks []Listing `yaml:"stocks"`
	}

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	seen := make(map[string]bool, len(doc.Stocks))
	for i, l := range doc.Stocks {
		if l.Ticker == "" {
			return nil, fmt.Errorf("catalog entry %d: ticker is required", i+1)
		}

		key := strings.ToUpper(l.Ticker)
		if seen[key] {
			return nil, fmt.Errorf("catalog entry %d: duplicate ticker %s", i+1, l.Ticker)
		}

		seen[key] = true
	}

	return &Catalog{listings: doc.Stocks}, nil
}

// Stocks evaluates every listing with its history ending on asOf.
func (c *Catalog) Stocks(asOf time.Time) []Stock {
	out := make([]Stock, 0, len(c.listings))
	for _, l := range c.listings {
		out = append(out, Evaluate(l, asOf))
	}

	slices.SortStableFunc(out, func(a, b Stock) int {
		return b.Recommendation.Confidence - a.Recommendation.Confidence
	})

	return out
}

func (c *Catalog) Stock(ticker string, asOf time.Time) (Stock, error) {
	for _, l := range c.listings {
		if strings.EqualFold(l.Ticker, ticker) {
			return Evaluate(l, asOf), nil
		}
	}

	return Stock{}, ErrNotFound
}

// Evaluate builds the price history for l and scores it.
func Evaluate(l Listing, asOf time.Time) Stock {
	prices, volumes := l.Series.Generate()

	s := Stock{
		Ticker:    l.Ticker,
		Company:   l.Company,
		Sector:    l.Sector,
		MarketCap: l.MarketCap,
		History:   make([]PricePoint, len(prices)),
	}

	end := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC)
	for i, p := range prices {
		s.History[i] = PricePoint{Date: end.AddDate(0, 0, i-len(prices)+1), Price: p}
	}

	if n := len(prices); n > 0 {
		s.CurrentPrice = prices[n-1]

		if n > 1 && prices[n-2] != 0 {
			s.PriceChangeAmount = prices[n-1] - prices[n-2]
			s.PriceChange = s.PriceChangeAmount / prices[n-2] * 100
		}

		year := prices[max(0, n-252):]
		s.Week52Low = slices.Min(year)
		s.Week52High = slices.Max(year)
	}

	s.Fundamentals = AnalyzeFundamentals(FundamentalInput{
		MarketCap:        l.MarketCap,
		CurrentVsAverage: l.CurrentVsAverage,
		Return5Y:         l.Return5Y,
		Resilience:       l.Resilience,
		History: PersonalHistory{
			InvestedBefore: l.InvestedBefore,
			TimesInvested:  l.TimesInvested,
			PastReturns:    l.PastReturns,
		},
	})
	s.Technicals = AnalyzeTechnicals(prices, volumes)
	s.Recommendation = Recommend(s.Fundamentals, s.Technicals)

	return s
}

// Generate returns Days prices and volumes, oldest first. Prices never drop
// below one cent.
func (s Series) Generate() ([]float64, []float64) {
	if s.Days <= 0 {
		return nil, nil
	}

	prices := make([]float64, s.Days)
	volumes := make([]float64, s.Days)

	for i := range s.Days {
		p := s.Start + s.Drift*float64(i)
		if s.Period > 0 {
			p += s.Amplitude * math.Sin(2*math.Pi*float64(i)/float64(s.Period))
		}

		prices[i] = math.Max(0.01, math.Round(p*100)/100)

		if s.Volume > 0 {
			volumes[i] = math.Round(s.Volume * (1 + 0.25*math.Cos(2*math.Pi*float64(i)/7)))
		}
	}

	if s.Volume <= 0 {
		volumes = nil
	}

	return prices, volumes
}
