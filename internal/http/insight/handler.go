package insight

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/wealthboard/internal/http/render"
	"github.com/MrJamesThe3rd/wealthboard/internal/insight"
)

type Handler struct {
	svc *insight.Service
}

func NewHandler(svc *insight.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/expenses", h.expenses)
}

type suggestionResponse struct {
	ID               string           `json:"id"`
	Kind             insight.Kind     `json:"kind"`
	Category         string           `json:"category"`
	CurrentSpending  float64          `json:"current_spending"`
	AverageSpending  float64          `json:"average_spending"`
	PercentageChange float64          `json:"percentage_change"`
	Suggestion       string           `json:"suggestion"`
	PotentialSavings float64          `json:"potential_savings"`
	Priority         insight.Priority `json:"priority"`
}

type expensesResponse struct {
	TotalPotentialSavings float64              `json:"total_potential_savings"`
	Suggestions           []suggestionResponse `json:"suggestions"`
}

func (h *Handler) expenses(w http.ResponseWriter, r *http.Request) {
	suggestions, err := h.svc.ExpenseSuggestions(r.Context(), time.Now())
	if err != nil {
		render.Error(w, err)
		return
	}

	resp := expensesResponse{Suggestions: make([]suggestionResponse, len(suggestions))}

	for i, s := range suggestions {
		resp.TotalPotentialSavings += s.PotentialSavings
		resp.Suggestions[i] = suggestionResponse{
			ID:               s.ID,
			Kind:             s.Kind,
			Category:         s.Category,
			CurrentSpending:  s.CurrentSpending,
			AverageSpending:  s.AverageSpending,
			PercentageChange: s.PercentageChange,
			Suggestion:       s.Text,
			PotentialSavings: s.PotentialSavings,
			Priority:         s.Priority,
		}
	}

	render.JSON(w, http.StatusOK, resp)
}
