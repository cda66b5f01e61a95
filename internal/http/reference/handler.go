package reference

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/wealthboard/internal/http/render"
	"github.com/MrJamesThe3rd/wealthboard/internal/reference"
)

// Handler serves the lookup lists: categories, banks and brokers.
type Handler struct {
	svc *reference.Service
}

func NewHandler(svc *reference.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) CategoryRoutes(r chi.Router) {
	r.Post("/", h.createCategory)
	r.Get("/", h.listCategories)
	r.Delete("/{id}", h.deleteCategory)
}

func (h *Handler) BankRoutes(r chi.Router) {
	r.Post("/", h.createBank)
	r.Get("/", h.listBanks)
	r.Put("/{id}", h.updateBank)
	r.Delete("/{id}", h.deleteBank)
}

func (h *Handler) BrokerRoutes(r chi.Router) {
	r.Post("/", h.createBroker)
	r.Get("/", h.listBrokers)
	r.Put("/{id}", h.updateBroker)
	r.Delete("/{id}", h.deleteBroker)
}

var referenceErrors = []render.Status{
	render.NotFound(reference.ErrNotFound),
	render.BadRequest(reference.ErrInvalid),
}

func intID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}

	return id, true
}

type categoryDTO struct {
	ID   int            `json:"id"`
	Name string         `json:"name"`
	Kind reference.Kind `json:"kind"`
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryDTO
	if !render.Decode(w, r, &req) {
		return
	}

	c := &reference.Category{Name: req.Name, Kind: req.Kind}
	if err := h.svc.CreateCategory(r.Context(), c); err != nil {
		render.Error(w, err, referenceErrors...)
		return
	}

	render.JSON(w, http.StatusCreated, categoryDTO{ID: c.ID, Name: c.Name, Kind: c.Kind})
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	var kind *reference.Kind

	if v := r.URL.Query().Get("kind"); v != "" {
		k := reference.Kind(v)
		if !k.Valid() {
			http.Error(w, "kind must be income, expense or asset", http.StatusBadRequest)
			return
		}

		kind = &k
	}

	cs, err := h.svc.ListCategories(r.Context(), kind)
	if err != nil {
		render.Error(w, err)
		return
	}

	resp := make([]categoryDTO, len(cs))
	for i, c := range cs {
		resp[i] = categoryDTO{ID: c.ID, Name: c.Name, Kind: c.Kind}
	}

	render.JSON(w, http.StatusOK, resp)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := intID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteCategory(r.Context(), id); err != nil {
		render.Error(w, err, referenceErrors...)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type bankDTO struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Type    string  `json:"type"`
	Last4   string  `json:"last4"`
	Balance float64 `json:"balance"`
	Primary bool    `json:"primary"`
}

func (d bankDTO) bank(id int) *reference.Bank {
	return &reference.Bank{ID: id, Name: d.Name, Type: d.Type, Last4: d.Last4, Balance: d.Balance, Primary: d.Primary}
}

func toBankDTO(b *reference.Bank) bankDTO {
	return bankDTO{ID: b.ID, Name: b.Name, Type: b.Type, Last4: b.Last4, Balance: b.Balance, Primary: b.Primary}
}

func (h *Handler) createBank(w http.ResponseWriter, r *http.Request) {
	var req bankDTO
	if !render.Decode(w, r, &req) {
		return
	}

	b := req.bank(0)
	if err := h.svc.CreateBank(r.Context(), b); err != nil {
		render.Error(w, err, referenceErrors...)
		return
	}

	render.JSON(w, http.StatusCreated, toBankDTO(b))
}

func (h *Handler) listBanks(w http.ResponseWriter, r *http.Request) {
	banks, err := h.svc.ListBanks(r.Context())
	if err != nil {
		render.Error(w, err)
		return
	}

	resp := make([]bankDTO, len(banks))
	for i, b := range banks {
		resp[i] = toBankDTO(b)
	}

	render.JSON(w, http.StatusOK, resp)
}

func (h *Handler) updateBank(w http.ResponseWriter, r *http.Request) {
	id, ok := intID(w, r)
	if !ok {
		return
	}

	var req bankDTO
	if !render.Decode(w, r, &req) {
		return
	}

	b := req.bank(id)
	if err := h.svc.UpdateBank(r.Context(), b); err != nil {
		render.Error(w, err, referenceErrors...)
		return
	}

	render.JSON(w, http.StatusOK, toBankDTO(b))
}

func (h *Handler) deleteBank(w http.ResponseWriter, r *http.Request) {
	id, ok := intID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteBank(r.Context(), id); err != nil {
		render.Error(w, err, referenceErrors...)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type brokerDTO struct {
	ID          int                    `json:"id"`
	Name        string                 `json:"name"`
	Status      reference.BrokerStatus `json:"status"`
	LastSync    *time.Time             `json:"last_sync,omitempty"`
	SyncEnabled bool                   `json:"sync_enabled"`
}

func (d brokerDTO) broker(id int) *reference.Broker {
	return &reference.Broker{ID: id, Name: d.Name, Status: d.Status, LastSync: d.LastSync, SyncEnabled: d.SyncEnabled}
}

func toBrokerDTO(b *reference.Broker) brokerDTO {
	return brokerDTO{ID: b.ID, Name: b.Name, Status: b.Status, LastSync: b.LastSync, SyncEnabled: b.SyncEnabled}
}

func (h *Handler) createBroker(w http.ResponseWriter, r *http.Request) {
	var req brokerDTO
	if !render.Decode(w, r, &req) {
		return
	}

	b := req.broker(0)
	if err := h.svc.CreateBroker(r.Context(), b); err != nil {
		render.Error(w, err, referenceErrors...)
		return
	}

	render.JSON(w, http.StatusCreated, toBrokerDTO(b))
}

func (h *Handler) listBrokers(w http.ResponseWriter, r *http.Request) {
	brokers, err := h.svc.ListBrokers(r.Context())
	if err != nil {
		render.Error(w, err)
		return
	}

	resp := make([]brokerDTO, len(brokers))
	for i, b := range brokers {
		resp[i] = toBrokerDTO(b)
	}

	render.JSON(w, http.StatusOK, resp)
}

func (h *Handler) updateBroker(w http.ResponseWriter, r *http.Request) {
	id, ok := intID(w, r)
	if !ok {
		return
	}

	var req brokerDTO
	if !render.Decode(w, r, &req) {
		return
	}

	b := req.broker(id)
	if err := h.svc.UpdateBroker(r.Context(), b); err != nil {
		render.Error(w, err, referenceErrors...)
		return
	}

	render.JSON(w, http.StatusOK, toBrokerDTO(b))
}

func (h *Handler) deleteBroker(w http.ResponseWriter, r *http.Request) {
	id, ok := intID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteBroker(r.Context(), id); err != nil {
		render.Error(w, err, referenceErrors...)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
