package matching

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/wealthboard/internal/http/render"
	"github.com/MrJamesThe3rd/wealthboard/internal/matching"
)

type Handler struct {
	svc *matching.Service
}

func NewHandler(svc *matching.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/suggest", h.suggest)
	r.Get("/", h.list)
	r.Post("/", h.learn)
	r.Delete("/", h.forget)
}

var matchingErrors = []render.Status{
	render.NotFound(matching.ErrNotFound),
	render.BadRequest(matching.ErrEmptyPattern),
}

type suggestResponse struct {
	Raw      string `json:"raw"`
	Category string `json:"category"`
}

func (h *Handler) suggest(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("raw")
	if raw == "" {
		http.Error(w, "raw query parameter is required", http.StatusBadRequest)
		return
	}

	category, err := h.svc.Suggest(r.Context(), raw)
	if err != nil {
		render.Error(w, err)
		return
	}

	render.JSON(w, http.StatusOK, suggestResponse{Raw: raw, Category: category})
}

type mappingDTO struct {
	Pattern   string    `json:"pattern"`
	Category  string    `json:"category"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	mappings, err := h.svc.List(r.Context())
	if err != nil {
		render.Error(w, err)
		return
	}

	resp := make([]mappingDTO, len(mappings))
	for i, m := range mappings {
		resp[i] = mappingDTO{Pattern: m.Pattern, Category: m.Category, UpdatedAt: m.UpdatedAt}
	}

	render.JSON(w, http.StatusOK, resp)
}

func (h *Handler) learn(w http.ResponseWriter, r *http.Request) {
	var req mappingDTO
	if !render.Decode(w, r, &req) {
		return
	}

	if err := h.svc.Learn(r.Context(), req.Pattern, req.Category); err != nil {
		render.Error(w, err, matchingErrors...)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) forget(w http.ResponseWriter, r *http.Request) {
	pattern := r.URL.Query().Get("pattern")
	if pattern == "" {
		http.Error(w, "pattern query parameter is required", http.StatusBadRequest)
		return
	}

	if err := h.svc.Forget(r.Context(), pattern); err != nil {
		render.Error(w, err, matchingErrors...)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
