package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/wealthboard/internal/stock"
)

func linear(n int, start, step float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}

	return out
}

func TestSMA(t *testing.T) {
	prices := []float64{1, 2, 3, 4, 5}

	assert.InDelta(t, 4.0, stock.SMA(prices, 3), 1e-9)
	assert.InDelta(t, 3.0, stock.SMA(prices, 5), 1e-9)
	assert.Zero(t, stock.SMA(prices, 6))
	assert.Zero(t, stock.SMA(prices, 0))
}

func TestRSI(t *testing.T) {
	type testCase struct {
		name   string
		prices []float64
		want   float64
	}

	alternating := make([]float64, 15)
	for i := range alternating {
		alternating[i] = 100 + float64(i%2)
	}

	tests := []testCase{
		{name: "NoLosses", prices: linear(15, 100, 1), want: 100},
		{name: "FlatCountsAsNoLoss", prices: linear(20, 100, 0), want: 100},
		{name: "OnlyLosses", prices: linear(15, 100, -1), want: 0},
		{name: "Balanced", prices: alternating, want: 50},
		{name: "TooShort", prices: linear(14, 100, 1), want: 50},
		{name: "OnlyLastWindowCounts", prices: append(linear(30, 200, -2), linear(15, 142, 1)...), want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, stock.RSI(tt.prices, 14), 1e-9)
		})
	}
}

func TestRSI_Mixed(t *testing.T) {
	// 11 gains of 2 and 3 losses of 1 over the window: RS = 22/3.
	prices := []float64{100}
	for i := range 14 {
		last := prices[len(prices)-1]
		if i%4 == 3 {
			prices = append(prices, last-1)
		} else {
			prices = append(prices, last+2)
		}
	}

	require.Len(t, prices, 15)
	assert.InDelta(t, 88.0, stock.RSI(prices, 14), 1e-9)
}

func TestEMA(t *testing.T) {
	got := stock.EMA([]float64{2, 4, 6, 8}, 2)
	require.Len(t, got, 4)

	assert.InDelta(t, 3.0, got[1], 1e-9)
	assert.InDelta(t, 6*2.0/3+3.0/3, got[2], 1e-9)
	assert.Nil(t, stock.EMA([]float64{1}, 2))
}

func TestComputeMACD(t *testing.T) {
	flat := stock.ComputeMACD(linear(60, 50, 0))
	assert.InDelta(t, 0.0, flat.Value, 1e-9)
	assert.InDelta(t, 0.0, flat.Histogram, 1e-9)

	rising := stock.ComputeMACD(linear(60, 50, 1))
	assert.Greater(t, rising.Value, 0.0)
	assert.InDelta(t, rising.Value-rising.Signal, rising.Histogram, 1e-9)

	assert.Equal(t, stock.MACD{}, stock.ComputeMACD(linear(33, 50, 1)))
}

func TestAnalyzeTechnicals(t *testing.T) {
	type testCase struct {
		name      string
		prices    []float64
		wantScore float64
		wantRSI   float64
	}

	tests := []testCase{
		{name: "InsufficientHistory", prices: linear(199, 100, 1), wantScore: 50, wantRSI: 50},
		{name: "UptrendOverbought", prices: linear(250, 100, 1), wantScore: 80, wantRSI: 100},
		{name: "DowntrendOversold", prices: linear(250, 400, -1), wantScore: 70, wantRSI: 0},
		{name: "Flat", prices: linear(250, 100, 0), wantScore: 50, wantRSI: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stock.AnalyzeTechnicals(tt.prices, nil)

			assert.InDelta(t, tt.wantScore, got.Score, 1e-9)
			assert.InDelta(t, tt.wantRSI, got.RSI, 1e-9)
		})
	}
}

func TestAnalyzeTechnicals_Volume(t *testing.T) {
	volumes := linear(250, 1000, 0)
	volumes[len(volumes)-1] = 3000

	got := stock.AnalyzeTechnicals(linear(250, 100, 1), volumes)
	assert.InDelta(t, 3000.0, got.VolumeCurrent, 1e-9)
	assert.InDelta(t, 1100.0, got.VolumeAvg, 1e-9)
	assert.InDelta(t, 324.5, got.SMA50, 1e-9)
}
