package stock

// SMA returns the simple moving average of the last period prices, or 0 when
// fewer than period prices are available.
func SMA(prices []float64, period int) float64 {
	if period <= 0 || len(prices) < period {
		return 0
	}

	sum := 0.0
	for _, p := range prices[len(prices)-period:] {
		sum += p
	}

	return sum / float64(period)
}

// RSI computes the relative strength index over the last period changes using
// plain average gain and average loss. It returns the neutral 50 when fewer
// than period+1 prices are available and 100 when the window has no losses.
func RSI(prices []float64, period int) float64 {
	if period <= 0 || len(prices) < period+1 {
		return 50
	}

	var gains, losses float64

	for i := len(prices) - period; i < len(prices); i++ {
		diff := prices[i] - prices[i-1]
		if diff >= 0 {
			gains += diff
		} else {
			losses -= diff
		}
	}

	if losses == 0 {
		return 100
	}

	avgGain := gains / float64(period)
	avgLoss := losses / float64(period)

	return 100 - 100/(1+avgGain/avgLoss)
}

// EMA returns the exponential moving average series of prices, seeded with the
// SMA of the first period values. The result is aligned with prices; entries
// before the seed are zero.
func EMA(prices []float64, period int) []float64 {
	if period <= 0 || len(prices) < period {
		return nil
	}

	out := make([]float64, len(prices))
	out[period-1] = SMA(prices[:period], period)

	k := 2 / float64(period+1)
	for i := period; i < len(prices); i++ {
		out[i] = prices[i]*k + out[i-1]*(1-k)
	}

	return out
}

type MACD struct {
	Value     float64
	Signal    float64
	Histogram float64
}

const (
	macdFast   = 12
	macdSlow   = 26
	macdSignal = 9
)

// ComputeMACD returns the 12/26/9 MACD of the latest price. The zero value is
// returned when the series is too short to seed the signal line.
func ComputeMACD(prices []float64) MACD {
	if len(prices) < macdSlow+macdSignal-1 {
		return MACD{}
	}

	fast := EMA(prices, macdFast)
	slow := EMA(prices, macdSlow)

	line := make([]float64, 0, len(prices)-macdSlow+1)
	for i := macdSlow - 1; i < len(prices); i++ {
		line = append(line, fast[i]-slow[i])
	}

	signal := EMA(line, macdSignal)

	value := line[len(line)-1]
	sig := signal[len(signal)-1]

	return MACD{Value: value, Signal: sig, Histogram: value - sig}
}
