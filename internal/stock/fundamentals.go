package stock

import "math"

type Size string

const (
	SizeMega  Size = "mega"
	SizeLarge Size = "large"
	SizeMid   Size = "mid"
	SizeSmall Size = "small"
)

type Valuation string

const (
	Undervalued  Valuation = "undervalued"
	FairlyValued Valuation = "fairly-valued"
	Overvalued   Valuation = "overvalued"
)

type Rating string

const (
	RatingHigh   Rating = "high"
	RatingMedium Rating = "medium"
	RatingLow    Rating = "low"
)

const (
	megaCap  = 200_000_000_000
	largeCap = 10_000_000_000
	midCap   = 2_000_000_000

	// valuationBand is the distance from the five-year average price, in
	// percent, beyond which a stock stops being fairly valued.
	valuationBand = 5
)

type PersonalHistory struct {
	InvestedBefore bool
	TimesInvested  int
	PastReturns    []float64
}

// TrustScore rates past returns: high when they average 10% or better, low
// when they average a loss or there are none.
func (h PersonalHistory) TrustScore() Rating {
	if len(h.PastReturns) == 0 {
		return RatingLow
	}

	var sum float64
	for _, r := range h.PastReturns {
		sum += r
	}

	switch avg := sum / float64(len(h.PastReturns)); {
	case avg >= 10:
		return RatingHigh
	case avg >= 0:
		return RatingMedium
	default:
		return RatingLow
	}
}

type FundamentalInput struct {
	MarketCap        float64
	CurrentVsAverage float64 // percent above (+) or below (-) the five-year average price
	Return5Y         float64 // percent
	Resilience       Rating
	History          PersonalHistory
}

type Fundamentals struct {
	Size              Size
	MarketCapTier     string
	Valuation         Valuation
	CurrentVsAverage  float64
	TooBigToFailScore int
	TooBigToFailNote  string
	Return5Y          float64
	Consistency       Rating
	Resilience        Rating
	History           PersonalHistory
	TrustScore        Rating
	Score             float64
}

func classify(marketCap float64) (Size, string) {
	switch {
	case marketCap > megaCap:
		return SizeMega, "Mega Cap (>$200B)"
	case marketCap > largeCap:
		return SizeLarge, "Large Cap ($10B-$200B)"
	case marketCap > midCap:
		return SizeMid, "Mid Cap ($2B-$10B)"
	default:
		return SizeSmall, "Small Cap (<$2B)"
	}
}

func tooBigToFail(s Size) (int, string) {
	switch s {
	case SizeMega:
		return 9, "Critical systemic importance with massive market share."
	case SizeLarge:
		return 6, "Significant industry player with high visibility."
	default:
		return 1, "Niche market player with limited systemic impact."
	}
}

func valuationOf(currentVsAverage float64) Valuation {
	switch {
	case currentVsAverage <= -valuationBand:
		return Undervalued
	case currentVsAverage >= valuationBand:
		return Overvalued
	default:
		return FairlyValued
	}
}

func consistencyOf(return5Y float64) Rating {
	switch {
	case return5Y > 80:
		return RatingHigh
	case return5Y > 40:
		return RatingMedium
	default:
		return RatingLow
	}
}

// AnalyzeFundamentals buckets the company by size and scores it out of 100.
// Non-finite inputs are treated as zero.
func AnalyzeFundamentals(in FundamentalInput) Fundamentals {
	size, tier := classify(finite(in.MarketCap))
	tbtf, note := tooBigToFail(size)

	resilience := in.Resilience
	if resilience == "" {
		resilience = RatingMedium
	}

	f := Fundamentals{
		Size:              size,
		MarketCapTier:     tier,
		Valuation:         valuationOf(finite(in.CurrentVsAverage)),
		CurrentVsAverage:  finite(in.CurrentVsAverage),
		TooBigToFailScore: tbtf,
		TooBigToFailNote:  note,
		Return5Y:          finite(in.Return5Y),
		Consistency:       consistencyOf(finite(in.Return5Y)),
		Resilience:        resilience,
		History:           in.History,
		TrustScore:        in.History.TrustScore(),
	}

	score := 50.0
	if size == SizeMega || size == SizeLarge {
		score += 20
	}

	if f.Valuation == Undervalued {
		score += 20
	}

	if f.Consistency == RatingHigh {
		score += 10
	}

	f.Score = math.Min(score, 100)

	return f
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}

	return v
}
