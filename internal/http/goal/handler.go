package goal

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/wealthboard/internal/goal"
	"github.com/MrJamesThe3rd/wealthboard/internal/http/render"
)

type Handler struct {
	svc *goal.Service
}

func NewHandler(svc *goal.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/summary", h.summary)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

var goalErrors = []render.Status{
	render.NotFound(goal.ErrNotFound),
	render.BadRequest(goal.ErrInvalid),
}

type goalRequest struct {
	Name                string      `json:"name"`
	Description         string      `json:"description"`
	CurrentAmount       float64     `json:"current_amount"`
	TargetAmount        float64     `json:"target_amount"`
	TargetYear          int         `json:"target_year"`
	InflationRate       float64     `json:"inflation_rate"`
	Status              goal.Status `json:"status"`
	Category            string      `json:"category"`
	MonthlyContribution float64     `json:"monthly_contribution"`
	ExpectedReturn      float64     `json:"expected_return"`
}

func (req goalRequest) goal(id uuid.UUID) *goal.Goal {
	return &goal.Goal{
		ID:                  id,
		Name:                req.Name,
		Description:         req.Description,
		CurrentAmount:       req.CurrentAmount,
		TargetAmount:        req.TargetAmount,
		TargetYear:          req.TargetYear,
		InflationRate:       req.InflationRate,
		Status:              req.Status,
		Category:            req.Category,
		MonthlyContribution: req.MonthlyContribution,
		ExpectedReturn:      req.ExpectedReturn,
	}
}

type goalResponse struct {
	ID                  uuid.UUID   `json:"id"`
	Name                string      `json:"name"`
	Description         string      `json:"description"`
	CurrentAmount       float64     `json:"current_amount"`
	TargetAmount        float64     `json:"target_amount"`
	InflatedTarget      float64     `json:"inflated_target"`
	TargetYear          int         `json:"target_year"`
	InflationRate       float64     `json:"inflation_rate"`
	Status              goal.Status `json:"status"`
	Category            string      `json:"category"`
	MonthlyContribution float64     `json:"monthly_contribution"`
	ExpectedReturn      float64     `json:"expected_return"`
	Progress            float64     `json:"progress"`
	CreatedAt           time.Time   `json:"created_at"`
}

func toResponse(g *goal.Goal, now time.Time) goalResponse {
	return goalResponse{
		ID:                  g.ID,
		Name:                g.Name,
		Description:         g.Description,
		CurrentAmount:       g.CurrentAmount,
		TargetAmount:        g.TargetAmount,
		InflatedTarget:      g.InflatedTarget(now),
		TargetYear:          g.TargetYear,
		InflationRate:       g.InflationRate,
		Status:              g.Status,
		Category:            g.Category,
		MonthlyContribution: g.MonthlyContribution,
		ExpectedReturn:      g.ExpectedReturn,
		Progress:            g.Progress(),
		CreatedAt:           g.CreatedAt,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req goalRequest
	if !render.Decode(w, r, &req) {
		return
	}

	g := req.goal(uuid.Nil)
	if err := h.svc.Create(r.Context(), g); err != nil {
		render.Error(w, err, goalErrors...)
		return
	}

	render.JSON(w, http.StatusCreated, toResponse(g, time.Now()))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	goals, err := h.svc.List(r.Context())
	if err != nil {
		render.Error(w, err)
		return
	}

	now := time.Now()

	resp := make([]goalResponse, len(goals))
	for i, g := range goals {
		resp[i] = toResponse(g, now)
	}

	render.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := render.ID(w, r)
	if !ok {
		return
	}

	g, err := h.svc.Get(r.Context(), id)
	if err != nil {
		render.Error(w, err, goalErrors...)
		return
	}

	render.JSON(w, http.StatusOK, toResponse(g, time.Now()))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := render.ID(w, r)
	if !ok {
		return
	}

	var req goalRequest
	if !render.Decode(w, r, &req) {
		return
	}

	g := req.goal(id)
	if err := h.svc.Update(r.Context(), g); err != nil {
		render.Error(w, err, goalErrors...)
		return
	}

	render.JSON(w, http.StatusOK, toResponse(g, time.Now()))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := render.ID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		render.Error(w, err, goalErrors...)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type summaryResponse struct {
	TotalTarget     float64 `json:"total_target"`
	TotalSaved      float64 `json:"total_saved"`
	OverallProgress float64 `json:"overall_progress"`
	Active          int     `json:"active"`
	Achieved        int     `json:"achieved"`
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Summary(r.Context())
	if err != nil {
		render.Error(w, err)
		return
	}

	render.JSON(w, http.StatusOK, summaryResponse{
		TotalTarget:     s.TotalTarget,
		TotalSaved:      s.TotalSaved,
		OverallProgress: s.OverallProgress,
		Active:          s.Active,
		Achieved:        s.Achieved,
	})
}
