package report

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/wealthboard/internal/http/render"
	httptx "github.com/MrJamesThe3rd/wealthboard/internal/http/transaction"
	"github.com/MrJamesThe3rd/wealthboard/internal/report"
)

type Handler struct {
	svc *report.Service
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) DashboardRoutes(r chi.Router) {
	r.Get("/", h.dashboard)
}

func (h *Handler) ReportRoutes(r chi.Router) {
	r.Get("/{month}", h.monthly)
}

type totalsResponse struct {
	Income      float64 `json:"income"`
	Expenses    float64 `json:"expenses"`
	Investments float64 `json:"investments"`
	Net         float64 `json:"net"`
}

func toTotals(t report.Totals) totalsResponse {
	return totalsResponse{Income: t.Income, Expenses: t.Expenses, Investments: t.Investments, Net: t.Net}
}

type dashboardResponse struct {
	totalsResponse
	AvailableCash      float64           `json:"available_cash"`
	RecentTransactions []httptx.Response `json:"recent_transactions"`
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Dashboard(r.Context(), time.Now())
	if err != nil {
		render.Error(w, err)
		return
	}

	render.JSON(w, http.StatusOK, dashboardResponse{
		totalsResponse:     toTotals(d.Totals),
		AvailableCash:      d.AvailableCash,
		RecentTransactions: httptx.ToResponseList(d.Recent),
	})
}

type categoryAmount struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Share    float64 `json:"share"`
}

type dailyFlow struct {
	Day     int     `json:"day"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

type monthlyResponse struct {
	Month             string           `json:"month"`
	Totals            totalsResponse   `json:"totals"`
	Previous          totalsResponse   `json:"previous"`
	Change            totalsResponse   `json:"change"`
	IncomeBreakdown   []categoryAmount `json:"income_breakdown"`
	ExpenseBreakdown  []categoryAmount `json:"expense_breakdown"`
	Daily             []dailyFlow      `json:"daily"`
	SavingsRate       float64          `json:"savings_rate"`
	TransactionsCount int              `json:"transactions_count"`
}

func toCategoryAmounts(in []report.CategoryAmount) []categoryAmount {
	out := make([]categoryAmount, len(in))
	for i, c := range in {
		out[i] = categoryAmount{Category: c.Category, Amount: c.Amount, Share: c.Share}
	}

	return out
}

func (h *Handler) monthly(w http.ResponseWriter, r *http.Request) {
	month, err := report.ParseMonth(chi.URLParam(r, "month"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	m, err := h.svc.Monthly(r.Context(), month)
	if err != nil {
		render.Error(w, err)
		return
	}

	resp := monthlyResponse{
		Month:    m.Month.Format("2006-01"),
		Totals:   toTotals(m.Totals),
		Previous: toTotals(m.Previous),
		Change: totalsResponse{
			Income:      m.Change.Income,
			Expenses:    m.Change.Expenses,
			Investments: m.Change.Investments,
			Net:         m.Change.Net,
		},
		IncomeBreakdown:   toCategoryAmounts(m.IncomeBreakdown),
		ExpenseBreakdown:  toCategoryAmounts(m.ExpenseBreakdown),
		Daily:             make([]dailyFlow, len(m.Daily)),
		SavingsRate:       m.SavingsRate,
		TransactionsCount: m.TransactionsCount,
	}

	for i, d := range m.Daily {
		resp.Daily[i] = dailyFlow{Day: d.Day, Income: d.Income, Expense: d.Expense}
	}

	render.JSON(w, http.StatusOK, resp)
}
