package stock_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpstock "github.com/MrJamesThe3rd/wealthboard/internal/http/stock"
	"github.com/MrJamesThe3rd/wealthboard/internal/stock"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()

	catalog, err := stock.LoadCatalog()
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Route("/stocks", httpstock.NewHandler(catalog).Routes)

	return r
}

type listed struct {
	Ticker         string `json:"ticker"`
	Recommendation struct {
		Action stock.Action `json:"action"`
	} `json:"recommendation"`
	History []json.RawMessage `json:"history"`
}

func TestHandler_List(t *testing.T) {
	r := newRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stocks", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var all []listed
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	require.NotEmpty(t, all)

	for _, s := range all {
		assert.Empty(t, s.History, "list omits price history")
	}

	t.Run("action filter", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stocks?action=HOLD", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var held []listed
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &held))

		for _, s := range held {
			assert.Equal(t, stock.Hold, s.Recommendation.Action)
		}
	})
}

func TestHandler_Get(t *testing.T) {
	r := newRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stocks/aapl", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var s listed
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	assert.Equal(t, "AAPL", s.Ticker)
	assert.NotEmpty(t, s.History)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stocks/NOPE", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
