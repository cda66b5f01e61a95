package recurring

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/wealthboard/internal/http/render"
	httptx "github.com/MrJamesThe3rd/wealthboard/internal/http/transaction"
	"github.com/MrJamesThe3rd/wealthboard/internal/recurring"
	"github.com/MrJamesThe3rd/wealthboard/internal/transaction"
)

type Handler struct {
	svc *recurring.Service
}

func NewHandler(svc *recurring.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Post("/generate", h.generate)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type ruleRequest struct {
	Name            string               `json:"name"`
	Type            transaction.Type     `json:"type"`
	Category        string               `json:"category"`
	Amount          float64              `json:"amount"`
	Recurrence      recurring.Recurrence `json:"recurrence"`
	StartDate       string               `json:"start_date"`
	AutoAcknowledge bool                 `json:"auto_acknowledge"`
	IsActive        *bool                `json:"is_active,omitempty"`
}

func (req ruleRequest) rule(id uuid.UUID) (*recurring.Rule, error) {
	start, err := time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		return nil, err
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	return &recurring.Rule{
		ID:              id,
		Name:            req.Name,
		Type:            req.Type,
		Category:        req.Category,
		Amount:          req.Amount,
		Recurrence:      req.Recurrence,
		StartDate:       start,
		AutoAcknowledge: req.AutoAcknowledge,
		IsActive:        active,
	}, nil
}

type ruleResponse struct {
	ID               uuid.UUID            `json:"id"`
	Name             string               `json:"name"`
	Type             transaction.Type     `json:"type"`
	Category         string               `json:"category"`
	Amount           float64              `json:"amount"`
	Recurrence       recurring.Recurrence `json:"recurrence"`
	StartDate        string               `json:"start_date"`
	AutoAcknowledge  bool                 `json:"auto_acknowledge"`
	LastGenerated    *time.Time           `json:"last_generated,omitempty"`
	LastAcknowledged *time.Time           `json:"last_acknowledged,omitempty"`
	IsActive         bool                 `json:"is_active"`
	CreatedAt        time.Time            `json:"created_at"`
}

func toResponse(r *recurring.Rule) ruleResponse {
	return ruleResponse{
		ID:               r.ID,
		Name:             r.Name,
		Type:             r.Type,
		Category:         r.Category,
		Amount:           r.Amount,
		Recurrence:       r.Recurrence,
		StartDate:        r.StartDate.Format(time.DateOnly),
		AutoAcknowledge:  r.AutoAcknowledge,
		LastGenerated:    r.LastGenerated,
		LastAcknowledged: r.LastAcknowledged,
		IsActive:         r.IsActive,
		CreatedAt:        r.CreatedAt,
	}
}

var ruleErrors = []render.Status{
	render.NotFound(recurring.ErrNotFound),
	render.BadRequest(recurring.ErrInvalid),
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req ruleRequest
	if !render.Decode(w, r, &req) {
		return
	}

	rule, err := req.rule(uuid.Nil)
	if err != nil {
		http.Error(w, "start_date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	if err := h.svc.Create(r.Context(), rule); err != nil {
		render.Error(w, err, ruleErrors...)
		return
	}

	render.JSON(w, http.StatusCreated, toResponse(rule))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	rules, err := h.svc.List(r.Context())
	if err != nil {
		render.Error(w, err)
		return
	}

	resp := make([]ruleResponse, len(rules))
	for i, rule := range rules {
		resp[i] = toResponse(rule)
	}

	render.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := render.ID(w, r)
	if !ok {
		return
	}

	rule, err := h.svc.Get(r.Context(), id)
	if err != nil {
		render.Error(w, err, ruleErrors...)
		return
	}

	render.JSON(w, http.StatusOK, toResponse(rule))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := render.ID(w, r)
	if !ok {
		return
	}

	var req ruleRequest
	if !render.Decode(w, r, &req) {
		return
	}

	rule, err := req.rule(id)
	if err != nil {
		http.Error(w, "start_date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	if err := h.svc.Update(r.Context(), rule); err != nil {
		render.Error(w, err, ruleErrors...)
		return
	}

	render.JSON(w, http.StatusOK, toResponse(rule))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := render.ID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		render.Error(w, err, ruleErrors...)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type generateResponse struct {
	Generated    int               `json:"generated"`
	Transactions []httptx.Response `json:"transactions"`
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	created, err := h.svc.Generate(r.Context(), time.Now())
	if err != nil {
		render.Error(w, err)
		return
	}

	render.JSON(w, http.StatusOK, generateResponse{
		Generated:    len(created),
		Transactions: httptx.ToResponseList(created),
	})
}
