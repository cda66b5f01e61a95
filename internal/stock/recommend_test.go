package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/wealthboard/internal/stock"
)

func TestAnalyzeFundamentals(t *testing.T) {
	type testCase struct {
		name          string
		input         stock.FundamentalInput
		wantSize      stock.Size
		wantTier      string
		wantTBTF      int
		wantValuation stock.Valuation
		wantScore     float64
	}

	tests := []testCase{
		{
			name:          "MegaUndervaluedConsistent",
			input:         stock.FundamentalInput{MarketCap: 2.8e12, CurrentVsAverage: -8, Return5Y: 120},
			wantSize:      stock.SizeMega,
			wantTier:      "Mega Cap (>$200B)",
			wantTBTF:      9,
			wantValuation: stock.Undervalued,
			wantScore:     100,
		},
		{
			name:          "LargeAtMegaBoundary",
			input:         stock.FundamentalInput{MarketCap: 200_000_000_000, CurrentVsAverage: 5, Return5Y: 50},
			wantSize:      stock.SizeLarge,
			wantTier:      "Large Cap ($10B-$200B)",
			wantTBTF:      6,
			wantValuation: stock.Overvalued,
			wantScore:     70,
		},
		{
			name:          "MidFairlyValued",
			input:         stock.FundamentalInput{MarketCap: 5e9, CurrentVsAverage: -4.9, Return5Y: 81},
			wantSize:      stock.SizeMid,
			wantTier:      "Mid Cap ($2B-$10B)",
			wantTBTF:      1,
			wantValuation: stock.FairlyValued,
			wantScore:     60,
		},
		{
			name:          "SmallUndervalued",
			input:         stock.FundamentalInput{MarketCap: 1e9, CurrentVsAverage: -5, Return5Y: 10},
			wantSize:      stock.SizeSmall,
			wantTier:      "Small Cap (<$2B)",
			wantTBTF:      1,
			wantValuation: stock.Undervalued,
			wantScore:     70,
		},
		{
			name:          "MissingMarketCap",
			input:         stock.FundamentalInput{},
			wantSize:      stock.SizeSmall,
			wantTier:      "Small Cap (<$2B)",
			wantTBTF:      1,
			wantValuation: stock.FairlyValued,
			wantScore:     50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stock.AnalyzeFundamentals(tt.input)

			assert.Equal(t, tt.wantSize, got.Size)
			assert.Equal(t, tt.wantTier, got.MarketCapTier)
			assert.Equal(t, tt.wantTBTF, got.TooBigToFailScore)
			assert.Equal(t, tt.wantValuation, got.Valuation)
			assert.InDelta(t, tt.wantScore, got.Score, 1e-9)
		})
	}
}

func TestPersonalHistory_TrustScore(t *testing.T) {
	assert.Equal(t, stock.RatingLow, stock.PersonalHistory{}.TrustScore())
	assert.Equal(t, stock.RatingHigh, stock.PersonalHistory{PastReturns: []float64{12, 15}}.TrustScore())
	assert.Equal(t, stock.RatingMedium, stock.PersonalHistory{PastReturns: []float64{2, 4}}.TrustScore())
	assert.Equal(t, stock.RatingLow, stock.PersonalHistory{PastReturns: []float64{-12, -4}}.TrustScore())
}

func TestRecommend_Thresholds(t *testing.T) {
	type testCase struct {
		name       string
		fund, tech float64
		want       stock.Action
		confidence int
	}

	tests := []testCase{
		{name: "ExactlyBuy", fund: 70, tech: 70, want: stock.Buy, confidence: 70},
		{name: "ExactlySell", fund: 40, tech: 40, want: stock.Sell, confidence: 40},
		{name: "JustBelowBuy", fund: 70, tech: 65, want: stock.Hold, confidence: 68},
		{name: "JustAboveSell", fund: 40, tech: 45, want: stock.Hold, confidence: 42},
		{name: "MaxScores", fund: 100, tech: 100, want: stock.Buy, confidence: 100},
		{name: "Neutral", fund: 50, tech: 50, want: stock.Hold, confidence: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stock.Recommend(stock.Fundamentals{Score: tt.fund}, stock.Technicals{Score: tt.tech, RSI: 50})

			assert.Equal(t, tt.want, got.Action)
			assert.Equal(t, tt.confidence, got.Confidence)
		})
	}
}

func TestRecommend_Reasoning(t *testing.T) {
	f := stock.AnalyzeFundamentals(stock.FundamentalInput{
		MarketCap:        2.8e12,
		CurrentVsAverage: -8,
		Return5Y:         120,
		History:          stock.PersonalHistory{InvestedBefore: true, TimesInvested: 3},
	})

	got := stock.Recommend(f, stock.Technicals{RSI: 25, Score: 70})

	assert.Equal(t, stock.Buy, got.Action)
	assert.Equal(t, "We recommend BUYing because: mega company with 9/10 stability score. "+
		"Stocks appear undervalued based on historical averages. "+
		"Technical indicators suggest oversold conditions (potential entry point). "+
		"Aligns with your history of 3 previous investments.", got.Reasoning)
}

func TestRecommend_ReasoningVariants(t *testing.T) {
	small := stock.AnalyzeFundamentals(stock.FundamentalInput{MarketCap: 1e9, CurrentVsAverage: 10})

	overbought := stock.Recommend(small, stock.Technicals{RSI: 75, Score: 60})
	assert.Equal(t, "We recommend HOLDing because: small company with 1/10 stability score. "+
		"Current valuation is higher than historical norms. RSI indicates overbought conditions.", overbought.Reasoning)

	momentum := stock.Recommend(small, stock.Technicals{RSI: 55, Score: 70})
	assert.Contains(t, momentum.Reasoning, "Momentum indicators are positive")

	quiet := stock.Recommend(stock.Fundamentals{Size: stock.SizeMid, TooBigToFailScore: 1, Score: 20}, stock.Technicals{RSI: 50, Score: 50})
	assert.Equal(t, stock.Sell, quiet.Action)
	assert.Equal(t, "We recommend SELLing because: mid company with 1/10 stability score.", quiet.Reasoning)
}
