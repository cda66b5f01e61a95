package asset

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/wealthboard/internal/asset"
	"github.com/MrJamesThe3rd/wealthboard/internal/http/render"
)

// maxHorizon caps the projection length a client may request.
const maxHorizon = 50

type Handler struct {
	svc *asset.Service
}

func NewHandler(svc *asset.Service) *Handler {
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

var assetErrors = []render.Status{
	render.NotFound(asset.ErrNotFound),
	render.BadRequest(asset.ErrInvalid),
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req assetRequest
	if !render.Decode(w, r, &req) {
		return
	}

	a, err := req.asset(uuid.Nil)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.Create(r.Context(), a); err != nil {
		render.Error(w, err, assetErrors...)
		return
	}

	render.JSON(w, http.StatusCreated, toResponse(a))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	assets, err := h.svc.List(r.Context())
	if err != nil {
		render.Error(w, err)
		return
	}

	resp := make([]assetResponse, len(assets))
	for i, a := range assets {
		resp[i] = toResponse(a)
	}

	render.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := render.ID(w, r)
	if !ok {
		return
	}

	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		render.Error(w, err, assetErrors...)
		return
	}

	render.JSON(w, http.StatusOK, toResponse(a))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := render.ID(w, r)
	if !ok {
		return
	}

	var req assetRequest
	if !render.Decode(w, r, &req) {
		return
	}

	a, err := req.asset(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.Update(r.Context(), a); err != nil {
		render.Error(w, err, assetErrors...)
		return
	}

	render.JSON(w, http.StatusOK, toResponse(a))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := render.ID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		render.Error(w, err, assetErrors...)
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
		Count:              s.Count,
		TotalValue:         s.TotalValue,
		TotalPurchaseValue: s.TotalPurchaseValue,
		TotalGains:         s.TotalGains,
		PercentageGains:    s.PercentageGains,
		ByType:             s.ByType,
	})
}

func (h *Handler) projection(w http.ResponseWriter, r *http.Request) {
	id, ok := render.ID(w, r)
	if !ok {
		return
	}

	years := asset.DefaultHorizon

	if v := r.URL.Query().Get("years"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > maxHorizon {
			http.Error(w, "years must be between 0 and "+strconv.Itoa(maxHorizon), http.StatusBadRequest)
			return
		}

		years = n
	}

	a, points, err := h.svc.Projection(r.Context(), id, years, time.Now())
	if err != nil {
		render.Error(w, err, assetErrors...)
		return
	}

	resp := projectionResponse{
		Asset:      toResponse(a),
		GrowthRate: asset.GrowthRate(a.Type) * 100,
		Points:     make([]yearValue, len(points)),
	}

	for i, p := range points {
		resp.Points[i] = yearValue{Label: p.Label, Year: p.Year, Value: p.Value}
	}

	render.JSON(w, http.StatusOK, resp)
}

type assetRequest struct {
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	CurrentValue  float64 `json:"current_value"`
	PurchaseValue float64 `json:"purchase_value"`
	PurchaseDate  string  `json:"purchase_date"`
	Location      string  `json:"location"`
	Notes         string  `json:"notes"`
}

func (req assetRequest) asset(id uuid.UUID) (*asset.Asset, error) {
	purchased, err := time.Parse(time.DateOnly, req.PurchaseDate)
	if err != nil {
		return nil, errors.New("purchase_date must be YYYY-MM-DD")
	}

	return &asset.Asset{
		ID:            id,
		Name:          req.Name,
		Type:          req.Type,
		CurrentValue:  req.CurrentValue,
		PurchaseValue: req.PurchaseValue,
		PurchaseDate:  purchased,
		Location:      req.Location,
		Notes:         req.Notes,
	}, nil
}

type assetResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	CurrentValue  float64   `json:"current_value"`
	PurchaseValue float64   `json:"purchase_value"`
	PurchaseDate  string    `json:"purchase_date"`
	Location      string    `json:"location"`
	Notes         string    `json:"notes"`
	Gain          float64   `json:"gain"`
	Appreciation  float64   `json:"appreciation"`
	CreatedAt     time.Time `json:"created_at"`
}

func toResponse(a *asset.Asset) assetResponse {
	return assetResponse{
		ID:            a.ID,
		Name:          a.Name,
		Type:          a.Type,
		CurrentValue:  a.CurrentValue,
		PurchaseValue: a.PurchaseValue,
		PurchaseDate:  a.PurchaseDate.Format(time.DateOnly),
		Location:      a.Location,
		Notes:         a.Notes,
		Gain:          a.Gain(),
		Appreciation:  a.Appreciation(),
		CreatedAt:     a.CreatedAt,
	}
}

type summaryResponse struct {
	Count              int                `json:"count"`
	TotalValue         float64            `json:"total_value"`
	TotalPurchaseValue float64            `json:"total_purchase_value"`
	TotalGains         float64            `json:"total_gains"`
	PercentageGains    float64            `json:"percentage_gains"`
	ByType             map[string]float64 `json:"by_type"`
}

type yearValue struct {
	Label string  `json:"label"`
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

type projectionResponse struct {
	Asset      assetResponse `json:"asset"`
	GrowthRate float64       `json:"growth_rate"`
	Points     []yearValue   `json:"points"`
}
