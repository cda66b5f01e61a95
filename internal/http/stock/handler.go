package stock

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/wealthboard/internal/http/render"
	"github.com/MrJamesThe3rd/wealthboard/internal/stock"
)

type Handler struct {
	catalog *stock.Catalog
}

func NewHandler(catalog *stock.Catalog) *Handler {
	return &Handler{catalog: catalog}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{ticker}", h.get)
}

// list answers with every listing ranked by confidence, optionally narrowed
// with ?action=buy|hold|sell.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	action := stock.Action(strings.ToLower(r.URL.Query().Get("action")))

	stocks := h.catalog.Stocks(time.Now())
	resp := make([]stockResponse, 0, len(stocks))

	for _, s := range stocks {
		if action != "" && s.Recommendation.Action != action {
			continue
		}

		resp = append(resp, toResponse(s, false))
	}

	render.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	s, err := h.catalog.Stock(chi.URLParam(r, "ticker"), time.Now())
	if err != nil {
		render.Error(w, err, render.NotFound(stock.ErrNotFound))
		return
	}

	render.JSON(w, http.StatusOK, toResponse(s, true))
}
