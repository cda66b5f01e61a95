package transaction

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/wealthboard/internal/http/render"
	"github.com/MrJamesThe3rd/wealthboard/internal/recurring"
	"github.com/MrJamesThe3rd/wealthboard/internal/transaction"
)

type Handler struct {
	svc       *transaction.Service
	recurring *recurring.Service
}

// NewHandler wires acknowledgement through recurring so generated
// transactions also stamp their rule.
func NewHandler(svc *transaction.Service, recurringSvc *recurring.Service) *Handler {
	return &Handler{svc: svc, recurring: recurringSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
	r.Patch("/{id}/acknowledge", h.acknowledge)
	r.Patch("/{id}", h.update)
}

var validationErrors = []render.Status{
	render.NotFound(transaction.ErrNotFound),
	render.BadRequest(transaction.ErrInvalidAmount),
	render.BadRequest(transaction.ErrInvalidType),
	render.BadRequest(transaction.ErrMissingCategory),
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req ParamsDTO
	if !render.Decode(w, r, &req) {
		return
	}

	params, err := req.Params()
	if err != nil {
		http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	tx, err := h.svc.Create(r.Context(), params)
	if err != nil {
		render.Error(w, err, validationErrors...)
		return
	}

	render.JSON(w, http.StatusCreated, ToResponse(tx))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	txs, err := h.svc.List(r.Context(), filter)
	if err != nil {
		render.Error(w, err)
		return
	}

	render.JSON(w, http.StatusOK, ToResponseList(txs))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := render.ID(w, r)
	if !ok {
		return
	}

	tx, err := h.svc.Get(r.Context(), id)
	if err != nil {
		render.Error(w, err, render.NotFound(transaction.ErrNotFound))
		return
	}

	render.JSON(w, http.StatusOK, ToResponse(tx))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := render.ID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		render.Error(w, err, render.NotFound(transaction.ErrNotFound))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type updateTransactionRequest struct {
	Date         *string           `json:"date,omitempty"`
	Type         *transaction.Type `json:"type,omitempty"`
	Category     *string           `json:"category,omitempty"`
	Amount       *float64          `json:"amount,omitempty"`
	Description  *string           `json:"description,omitempty"`
	Acknowledged *bool             `json:"acknowledged,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := render.ID(w, r)
	if !ok {
		return
	}

	var req updateTransactionRequest
	if !render.Decode(w, r, &req) {
		return
	}

	tx, err := h.svc.Get(r.Context(), id)
	if err != nil {
		render.Error(w, err, render.NotFound(transaction.ErrNotFound))
		return
	}

	if req.Date != nil {
		d, err := time.Parse(time.DateOnly, *req.Date)
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		tx.Date = d
	}

	if req.Type != nil {
		tx.Type = *req.Type
	}

	if req.Category != nil {
		tx.Category = *req.Category
	}

	if req.Amount != nil {
		tx.Amount = *req.Amount
	}

	if req.Description != nil {
		tx.Description = *req.Description
	}

	if req.Acknowledged != nil {
		tx.Acknowledged = *req.Acknowledged
	}

	if err := h.svc.Update(r.Context(), tx); err != nil {
		render.Error(w, err, validationErrors...)
		return
	}

	render.JSON(w, http.StatusOK, ToResponse(tx))
}

func (h *Handler) acknowledge(w http.ResponseWriter, r *http.Request) {
	id, ok := render.ID(w, r)
	if !ok {
		return
	}

	err := h.recurring.Acknowledge(r.Context(), id, time.Now())
	if errors.Is(err, recurring.ErrNotRecurring) {
		err = h.svc.Acknowledge(r.Context(), id)
	}

	if err != nil {
		render.Error(w, err, render.NotFound(transaction.ErrNotFound), render.NotFound(recurring.ErrNotFound))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseListFilter(q url.Values) (transaction.ListFilter, error) {
	filter := transaction.ListFilter{Newest: true}

	if s := q.Get("type"); s != "" {
		t := transaction.Type(s)
		if !t.Valid() {
			return filter, errors.New("invalid type")
		}

		filter.Type = &t
	}

	if s := q.Get("category"); s != "" {
		filter.Category = new(s)
	}

	for _, p := range []struct {
		key string
		dst **time.Time
	}{
		{"start_date", &filter.StartDate},
		{"end_date", &filter.EndDate},
	} {
		s := q.Get(p.key)
		if s == "" {
			continue
		}

		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return filter, fmt.Errorf("%s must be YYYY-MM-DD", p.key)
		}

		*p.dst = &t
	}

	if s := q.Get("acknowledged"); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return filter, errors.New("acknowledged must be true or false")
		}

		filter.Acknowledged = &b
	}

	if s := q.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return filter, errors.New("limit must be a positive integer")
		}

		filter.Limit = n
	}

	return filter, nil
}
