package stock

import (
	"fmt"
	"math"
	"strings"
)

type Action string

const (
	Buy  Action = "buy"
	Hold Action = "hold"
	Sell Action = "sell"
)

const (
	fundamentalWeight = 0.6
	technicalWeight   = 0.4

	buyThreshold  = 70
	sellThreshold = 40
)

type Recommendation struct {
	Action     Action
	Confidence int
	Score      float64
	Reasoning  string
}

// Recommend blends both scores and explains the resulting action.
func Recommend(f Fundamentals, t Technicals) Recommendation {
	overall := f.Score*fundamentalWeight + t.Score*technicalWeight

	action := Hold
	switch {
	case overall >= buyThreshold:
		action = Buy
	case overall <= sellThreshold:
		action = Sell
	}

	return Recommendation{
		Action:     action,
		Confidence: int(math.Round(overall)),
		Score:      overall,
		Reasoning:  reasoning(f, t, action),
	}
}

func reasoning(f Fundamentals, t Technicals, action Action) string {
	parts := []string{
		fmt.Sprintf("%s company with %d/10 stability score", f.Size, f.TooBigToFailScore),
	}

	switch f.Valuation {
	case Undervalued:
		parts = append(parts, "Stocks appear undervalued based on historical averages")
	case Overvalued:
		parts = append(parts, "Current valuation is higher than historical norms")
	}

	switch {
	case t.RSI < 30:
		parts = append(parts, "Technical indicators suggest oversold conditions (potential entry point)")
	case t.RSI > 70:
		parts = append(parts, "RSI indicates overbought conditions")
	case t.Score > 60:
		parts = append(parts, "Momentum indicators are positive")
	}

	if f.History.InvestedBefore {
		parts = append(parts, fmt.Sprintf("Aligns with your history of %d previous investments", f.History.TimesInvested))
	}

	return fmt.Sprintf("We recommend %sing because: %s.", strings.ToUpper(string(action)), strings.Join(parts, ". "))
}
