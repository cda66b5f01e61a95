package liability

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/wealthboard/internal/http/render"
	"github.com/MrJamesThe3rd/wealthboard/internal/liability"
)

type Handler struct {
	svc *liability.Service
}

func NewHandler(svc *liability.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/summary", h.summary)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Get("/{id}/projection", h.projection)
}

var liabilityErrors = []render.Status{
	render.NotFound(liability.ErrNotFound),
	render.BadRequest(liability.ErrInvalid),
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req liabilityRequest
	if !render.Decode(w, r, &req) {
		return
	}

	l, err := req.liability(uuid.Nil)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.Create(r.Context(), l); err != nil {
		render.Error(w, err, liabilityErrors...)
		return
	}

	render.JSON(w, http.StatusCreated, toResponse(l))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	ls, err := h.svc.List(r.Context())
	if err != nil {
		render.Error(w, err)
		return
	}

	resp := make([]liabilityResponse, len(ls))
	for i, l := range ls {
		resp[i] = toResponse(l)
	}

	render.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := render.ID(w, r)
	if !ok {
		return
	}

	l, err := h.svc.Get(r.Context(), id)
	if err != nil {
		render.Error(w, err, liabilityErrors...)
		return
	}

	render.JSON(w, http.StatusOK, toResponse(l))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := render.ID(w, r)
	if !ok {
		return
	}

	var req liabilityRequest
	if !render.Decode(w, r, &req) {
		return
	}

	l, err := req.liability(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.Update(r.Context(), l); err != nil {
		render.Error(w, err, liabilityErrors...)
		return
	}

	render.JSON(w, http.StatusOK, toResponse(l))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := render.ID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		render.Error(w, err, liabilityErrors...)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Summary(r.Context())
	if err != nil {
		render.Error(w, err)
		return
	}

	render.JSON(w, http.StatusOK, summaryResponse{
		Count:             s.Count,
		TotalOriginal:     s.TotalOriginal,
		TotalOutstanding:  s.TotalOutstanding,
		TotalEMI:          s.TotalEMI,
		AverageRate:       s.AverageRate,
		RepaymentProgress: s.RepaymentProgress,
	})
}

func (h *Handler) projection(w http.ResponseWriter, r *http.Request) {
	id, ok := render.ID(w, r)
	if !ok {
		return
	}

	l, p, err := h.svc.Projection(r.Context(), id, time.Now())
	if err != nil {
		render.Error(w, err, liabilityErrors...)
		return
	}

	render.JSON(w, http.StatusOK, toProjectionResponse(l, p))
}
