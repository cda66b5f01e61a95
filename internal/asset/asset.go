package asset

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("asset not found")
	ErrInvalid  = errors.New("invalid asset")
)

// DefaultHorizon is the number of years covered by a value projection.
const DefaultHorizon = 10

// growthRates holds the assumed annual appreciation per asset type.
var growthRates = map[string]float64{
	"Real Estate":   0.08,
	"Gold":          0.06,
	"Vehicle":       -0.15,
	"Crypto":        0.25,
	"Fixed Deposit": 0.07,
	"Courses":       0,
}

const defaultGrowthRate = 0.05

// GrowthRate returns the annual appreciation assumed for assets of type t.
func GrowthRate(t string) float64 {
	if r, ok := growthRates[t]; ok {
		return r
	}

	return defaultGrowthRate
}

type Asset struct {
	ID            uuid.UUID
	Name          string
	Type          string
	CurrentValue  float64
	PurchaseValue float64
	PurchaseDate  time.Time
	Location      string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

func (a *Asset) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}

	if a.Type == "" {
		return fmt.Errorf("%w: type is required", ErrInvalid)
	}

	for _, v := range []float64{a.CurrentValue, a.PurchaseValue} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%w: values must be finite and non-negative", ErrInvalid)
		}
	}

	return nil
}

func (a *Asset) Gain() float64 {
	return a.CurrentValue - a.PurchaseValue
}

// Appreciation is the gain relative to the purchase value, in percent.
func (a *Asset) Appreciation() float64 {
	if a.PurchaseValue <= 0 {
		return 0
	}

	return a.Gain() / a.PurchaseValue * 100
}

type YearValue struct {
	Label string
	Year  int
	Value float64
}

// Project compounds the current value by the type's growth rate for each of
// the next years, starting with today's value at offset 0.
func Project(a *Asset, years int, now time.Time) []YearValue {
	if years < 0 {
		years = 0
	}

	rate := GrowthRate(a.Type)
	out := make([]YearValue, 0, years+1)

	for i := 0; i <= years; i++ {
		year := now.Year() + i
		out = append(out, YearValue{
			Label: strconv.Itoa(year),
			Year:  year,
			Value: a.CurrentValue * math.Pow(1+rate, float64(i)),
		})
	}

	return out
}

type Summary struct {
	Count              int
	TotalValue         float64
	TotalPurchaseValue float64
	TotalGains         float64
	PercentageGains    float64
	ByType             map[string]float64
}

func Summarize(assets []*Asset) Summary {
	s := Summary{ByType: make(map[string]float64)}

	for _, a := range assets {
		s.Count++
		s.TotalValue += a.CurrentValue
		s.TotalPurchaseValue += a.PurchaseValue
		s.ByType[a.Type] += a.CurrentValue
	}

	s.TotalGains = s.TotalValue - s.TotalPurchaseValue
	if s.TotalPurchaseValue > 0 {
		s.PercentageGains = s.TotalGains / s.TotalPurchaseValue * 100
	}

	return s
}
