package export

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/wealthboard/internal/export"
	"github.com/MrJamesThe3rd/wealthboard/internal/http/render"
	"github.com/MrJamesThe3rd/wealthboard/internal/transaction"
)

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.download)
	r.Post("/summary", h.summary)
}

type exportRequest struct {
	StartDate *string           `json:"start_date,omitempty"`
	EndDate   *string           `json:"end_date,omitempty"`
	Type      *transaction.Type `json:"type,omitempty"`
	Category  *string           `json:"category,omitempty"`
}

func (req exportRequest) filter() (transaction.ListFilter, error) {
	filter := transaction.ListFilter{Type: req.Type, Category: req.Category}

	if req.StartDate != nil {
		d, err := time.Parse(time.DateOnly, *req.StartDate)
		if err != nil {
			return filter, errors.New("start_date must be YYYY-MM-DD")
		}

		filter.StartDate = &d
	}

	if req.EndDate != nil {
		d, err := time.Parse(time.DateOnly, *req.EndDate)
		if err != nil {
			return filter, errors.New("end_date must be YYYY-MM-DD")
		}

		filter.EndDate = &d
	}

	return filter, nil
}

type summaryResponse struct {
	Count       int     `json:"count"`
	Income      float64 `json:"income"`
	Expenses    float64 `json:"expenses"`
	Investments float64 `json:"investments"`
	From        string  `json:"from,omitempty"`
	To          string  `json:"to,omitempty"`
	Text        string  `json:"text"`
}

func (h *Handler) decodeFilter(w http.ResponseWriter, r *http.Request) (transaction.ListFilter, bool) {
	var req exportRequest
	if !render.Decode(w, r, &req) {
		return transaction.ListFilter{}, false
	}

	filter, err := req.filter()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return transaction.ListFilter{}, false
	}

	return filter, true
}

// download streams the CSV. It is buffered so a failing query still
// produces a proper error status.
func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	filter, ok := h.decodeFilter(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if _, err := h.svc.Export(r.Context(), filter, &buf); err != nil {
		render.Error(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(filter)))
	w.Write(buf.Bytes())
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	filter, ok := h.decodeFilter(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer

	sum, err := h.svc.Export(r.Context(), filter, &buf)
	if err != nil {
		render.Error(w, err)
		return
	}

	resp := summaryResponse{
		Count:       sum.Count,
		Income:      sum.Income,
		Expenses:    sum.Expenses,
		Investments: sum.Investments,
		Text:        sum.Text(),
	}

	if sum.Count > 0 {
		resp.From = sum.From.Format(time.DateOnly)
		resp.To = sum.To.Format(time.DateOnly)
	}

	render.JSON(w, http.StatusOK, resp)
}
