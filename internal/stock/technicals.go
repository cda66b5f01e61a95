package stock

import "math"

const (
	minTechnicalHistory = 200
	rsiPeriod           = 14
	volumeWindow        = 20
)

type Technicals struct {
	SMA50         float64
	SMA200        float64
	RSI           float64
	MACD          MACD
	VolumeAvg     float64
	VolumeCurrent float64
	Score         float64
}

func neutralTechnicals() Technicals {
	return Technicals{RSI: 50, Score: 50}
}

// AnalyzeTechnicals scores the latest price in prices, oldest first. Volumes
// are optional and aligned with prices when present.
func AnalyzeTechnicals(prices, volumes []float64) Technicals {
	if len(prices) < minTechnicalHistory {
		return neutralTechnicals()
	}

	current := prices[len(prices)-1]

	t := Technicals{
		SMA50:  SMA(prices, 50),
		SMA200: SMA(prices, 200),
		RSI:    RSI(prices, rsiPeriod),
		MACD:   ComputeMACD(prices),
	}

	if n := len(volumes); n > 0 {
		t.VolumeCurrent = volumes[n-1]
		t.VolumeAvg = SMA(volumes, min(n, volumeWindow))
	}

	score := 50.0
	if current > t.SMA50 {
		score += 10
	}

	if current > t.SMA200 {
		score += 20
	}

	if t.RSI > 30 && t.RSI < 70 {
		score += 10
	}

	if t.RSI < 30 {
		score += 20
	}

	t.Score = math.Min(score, 100)

	return t
}
