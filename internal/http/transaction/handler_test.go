package transaction_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	txhttp "github.com/MrJamesThe3rd/wealthboard/internal/http/transaction"
	"github.com/MrJamesThe3rd/wealthboard/internal/transaction"
)

func newRouter(t *testing.T) (http.Handler, *transaction.MockRepository) {
	t.Helper()

	repo := transaction.NewMockRepository(gomock.NewController(t))

	r := chi.NewRouter()
	r.Route("/transactions", txhttp.NewHandler(transaction.NewService(repo), nil).Routes)

	return r, repo
}

func TestHandler_ListRejectsMalformedQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "Acknowledged", query: "acknowledged=maybe"},
		{name: "StartDate", query: "start_date=2024-13-01"},
		{name: "EndDate", query: "end_date=yesterday"},
		{name: "Limit", query: "limit=ten"},
		{name: "NonPositiveLimit", query: "limit=0"},
		{name: "Type", query: "type=gift"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newRouter(t)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/transactions?"+tt.query, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandler_ListAppliesFilter(t *testing.T) {
	router, repo := newRouter(t)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	want := transaction.ListFilter{
		StartDate:    &start,
		Acknowledged: new(false),
		Newest:       true,
		Limit:        5,
	}

	repo.EXPECT().ListTransactions(gomock.Any(), want).Return(nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/transactions?acknowledged=false&start_date=2024-03-01&limit=5", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
