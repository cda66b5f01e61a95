package stock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/wealthboard/internal/stock"
)

var asOf = time.Date(2024, 6, 28, 15, 0, 0, 0, time.UTC)

func TestLoadCatalog(t *testing.T) {
	c, err := stock.LoadCatalog()
	require.NoError(t, err)

	stocks := c.Stocks(asOf)
	require.Len(t, stocks, 6)

	for i := 1; i < len(stocks); i++ {
		assert.GreaterOrEqual(t, stocks[i-1].Recommendation.Confidence, stocks[i].Recommendation.Confidence)
	}
}

func TestCatalog_Stock(t *testing.T) {
	c, err := stock.LoadCatalog()
	require.NoError(t, err)

	aapl, err := c.Stock("aapl", asOf)
	require.NoError(t, err)

	assert.Equal(t, "AAPL", aapl.Ticker)
	assert.Len(t, aapl.History, 260)
	assert.Equal(t, time.Date(2024, 6, 28, 0, 0, 0, 0, time.UTC), aapl.History[len(aapl.History)-1].Date)
	assert.Equal(t, aapl.History[len(aapl.History)-1].Price, aapl.CurrentPrice)
	assert.LessOrEqual(t, aapl.Week52Low, aapl.CurrentPrice)
	assert.GreaterOrEqual(t, aapl.Week52High, aapl.CurrentPrice)
	assert.Equal(t, stock.SizeMega, aapl.Fundamentals.Size)
	assert.InDelta(t, 100.0, aapl.Fundamentals.Score, 1e-9)
	assert.Equal(t, stock.Buy, aapl.Recommendation.Action)

	tiny, err := c.Stock("TINY", asOf)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, tiny.Technicals.Score, 1e-9, "short history stays neutral")
	assert.Equal(t, stock.Hold, tiny.Recommendation.Action)

	_, err = c.Stock("NOPE", asOf)
	assert.ErrorIs(t, err, stock.ErrNotFound)
}

func TestParseCatalog_Errors(t *testing.T) {
	_, err := stock.ParseCatalog([]byte("stocks: [ {ticker: A}, {ticker: a} ]"))
	assert.Error(t, err)

	_, err = stock.ParseCatalog([]byte("stocks: [ {company: Nameless} ]"))
	assert.Error(t, err)

	_, err = stock.ParseCatalog([]byte("stocks: {"))
	assert.Error(t, err)
}

func TestSeries_Generate(t *testing.T) {
	prices, volumes := stock.Series{Days: 10, Start: 1, Drift: -1}.Generate()
	require.Len(t, prices, 10)
	assert.Nil(t, volumes)

	for _, p := range prices {
		assert.GreaterOrEqual(t, p, 0.01)
	}

	again, _ := stock.Series{Days: 10, Start: 1, Drift: -1}.Generate()
	assert.Equal(t, prices, again)
}
