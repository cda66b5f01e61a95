package stock

import (
	"time"

	"github.com/MrJamesThe3rd/wealthboard/internal/stock"
)

type fundamentalsResponse struct {
	Size              stock.Size      `json:"size"`
	MarketCapTier     string          `json:"market_cap_tier"`
	Valuation         stock.Valuation `json:"valuation"`
	CurrentVsAverage  float64         `json:"current_vs_average"`
	TooBigToFailScore int             `json:"too_big_to_fail_score"`
	TooBigToFailNote  string          `json:"too_big_to_fail_note"`
	Return5Y          float64         `json:"return_5y"`
	Consistency       stock.Rating    `json:"consistency"`
	Resilience        stock.Rating    `json:"resilience"`
	InvestedBefore    bool            `json:"invested_before"`
	TimesInvested     int             `json:"times_invested"`
	PastReturns       []float64       `json:"past_returns"`
	TrustScore        stock.Rating    `json:"trust_score"`
	Score             float64         `json:"score"`
}

type technicalsResponse struct {
	SMA50         float64 `json:"sma_50"`
	SMA200        float64 `json:"sma_200"`
	RSI           float64 `json:"rsi"`
	MACD          float64 `json:"macd"`
	MACDSignal    float64 `json:"macd_signal"`
	MACDHistogram float64 `json:"macd_histogram"`
	VolumeAvg     float64 `json:"volume_avg"`
	VolumeCurrent float64 `json:"volume_current"`
	Score         float64 `json:"score"`
}

type recommendationResponse struct {
	Action     stock.Action `json:"action"`
	Confidence int          `json:"confidence"`
	Score      float64      `json:"score"`
	Reasoning  string       `json:"reasoning"`
}

type pricePoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

type stockResponse struct {
	Ticker            string                 `json:"ticker"`
	Company           string                 `json:"company"`
	Sector            string                 `json:"sector"`
	CurrentPrice      float64                `json:"current_price"`
	PriceChange       float64                `json:"price_change"`
	PriceChangeAmount float64                `json:"price_change_amount"`
	MarketCap         float64                `json:"market_cap"`
	Week52Low         float64                `json:"week_52_low"`
	Week52High        float64                `json:"week_52_high"`
	Fundamentals      fundamentalsResponse   `json:"fundamentals"`
	Technicals        technicalsResponse     `json:"technicals"`
	Recommendation    recommendationResponse `json:"recommendation"`
	History           []pricePoint           `json:"history,omitempty"`
}

func toResponse(s stock.Stock, withHistory bool) stockResponse {
	f, t := s.Fundamentals, s.Technicals

	resp := stockResponse{
		Ticker:            s.Ticker,
		Company:           s.Company,
		Sector:            s.Sector,
		CurrentPrice:      s.CurrentPrice,
		PriceChange:       s.PriceChange,
		PriceChangeAmount: s.PriceChangeAmount,
		MarketCap:         s.MarketCap,
		Week52Low:         s.Week52Low,
		Week52High:        s.Week52High,
		Fundamentals: fundamentalsResponse{
			Size:              f.Size,
			MarketCapTier:     f.MarketCapTier,
			Valuation:         f.Valuation,
			CurrentVsAverage:  f.CurrentVsAverage,
			TooBigToFailScore: f.TooBigToFailScore,
			TooBigToFailNote:  f.TooBigToFailNote,
			Return5Y:          f.Return5Y,
			Consistency:       f.Consistency,
			Resilience:        f.Resilience,
			InvestedBefore:    f.History.InvestedBefore,
			TimesInvested:     f.History.TimesInvested,
			PastReturns:       f.History.PastReturns,
			TrustScore:        f.TrustScore,
			Score:             f.Score,
		},
		Technicals: technicalsResponse{
			SMA50:         t.SMA50,
			SMA200:        t.SMA200,
			RSI:           t.RSI,
			MACD:          t.MACD.Value,
			MACDSignal:    t.MACD.Signal,
			MACDHistogram: t.MACD.Histogram,
			VolumeAvg:     t.VolumeAvg,
			VolumeCurrent: t.VolumeCurrent,
			Score:         t.Score,
		},
		Recommendation: recommendationResponse{
			Action:     s.Recommendation.Action,
			Confidence: s.Recommendation.Confidence,
			Score:      s.Recommendation.Score,
			Reasoning:  s.Recommendation.Reasoning,
		},
	}

	if withHistory {
		resp.History = make([]pricePoint, len(s.History))
		for i, p := range s.History {
			resp.History[i] = pricePoint{Date: p.Date.Format(time.DateOnly), Price: p.Price}
		}
	}

	return resp
}
