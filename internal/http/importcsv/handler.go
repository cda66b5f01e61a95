package importcsv

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/wealthboard/internal/http/render"
	httptx "github.com/MrJamesThe3rd/wealthboard/internal/http/transaction"
	"github.com/MrJamesThe3rd/wealthboard/internal/importer"
	"github.com/MrJamesThe3rd/wealthboard/internal/importer/sheet"
	"github.com/MrJamesThe3rd/wealthboard/internal/transaction"
)

const maxUpload = 10 << 20

type Handler struct {
	svc *importer.Service
}

func NewHandler(svc *importer.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/sheet", h.importSheet)
	r.Post("/confirm", h.confirm)
	r.Post("/receipt", h.receipt)
}

var importErrors = []render.Status{
	render.BadRequest(sheet.ErrEmpty),
	render.BadRequest(sheet.ErrNoMonths),
	render.BadRequest(transaction.ErrInvalidAmount),
	render.BadRequest(transaction.ErrInvalidType),
	render.BadRequest(transaction.ErrMissingCategory),
}

type importSuccessResponse struct {
	Imported     int               `json:"imported"`
	Transactions []httptx.Response `json:"transactions"`
	Unmapped     []string          `json:"unmapped,omitempty"`
	Skipped      int               `json:"skipped"`
	Charset      string            `json:"charset,omitempty"`
}

type conflictDTO struct {
	Incoming httptx.ParamsDTO `json:"incoming"`
	Existing httptx.Response  `json:"existing"`
}

type importConflictResponse struct {
	New       []httptx.ParamsDTO `json:"new"`
	Conflicts []conflictDTO      `json:"conflicts"`
	Unmapped  []string           `json:"unmapped,omitempty"`
}

type confirmRequest struct {
	Params []httptx.ParamsDTO `json:"params"`
}

func (h *Handler) importSheet(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUpload); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	out, err := h.svc.ImportSheet(r.Context(), file)
	if err != nil {
		render.Error(w, err, importErrors...)
		return
	}

	if len(out.Result.Conflicts) > 0 {
		resp := importConflictResponse{
			New:       make([]httptx.ParamsDTO, 0, len(out.Result.New)),
			Conflicts: make([]conflictDTO, 0, len(out.Result.Conflicts)),
			Unmapped:  out.Unmapped,
		}

		for _, p := range out.Result.New {
			resp.New = append(resp.New, httptx.ToParamsDTO(p))
		}

		for _, c := range out.Result.Conflicts {
			resp.Conflicts = append(resp.Conflicts, conflictDTO{
				Incoming: httptx.ToParamsDTO(c.Incoming),
				Existing: httptx.ToResponse(c.Existing),
			})
		}

		render.JSON(w, http.StatusConflict, resp)

		return
	}

	render.JSON(w, http.StatusCreated, importSuccessResponse{
		Imported:     len(out.Result.Imported),
		Transactions: httptx.ToResponseList(out.Result.Imported),
		Unmapped:     out.Unmapped,
		Skipped:      out.Skipped,
		Charset:      out.Charset,
	})
}

func (h *Handler) confirm(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if !render.Decode(w, r, &req) {
		return
	}

	params := make([]transaction.CreateParams, 0, len(req.Params))

	for i, dto := range req.Params {
		p, err := dto.Params()
		if err != nil {
			http.Error(w, fmt.Sprintf("row %d: date must be YYYY-MM-DD", i+1), http.StatusBadRequest)
			return
		}

		params = append(params, p)
	}

	txs, err := h.svc.Confirm(r.Context(), params)
	if err != nil {
		render.Error(w, err, importErrors...)
		return
	}

	render.JSON(w, http.StatusCreated, importSuccessResponse{
		Imported:     len(txs),
		Transactions: httptx.ToResponseList(txs),
	})
}

type receiptRequest struct {
	Text string `json:"text"`
}

type receiptResponse struct {
	Amount            *float64 `json:"amount"`
	Date              string   `json:"date"`
	DateFound         bool     `json:"date_found"`
	Merchant          string   `json:"merchant"`
	SuggestedCategory string   `json:"suggested_category"`
	CategorySource    string   `json:"category_source"`
	Confidence        float64  `json:"confidence"`
	RawText           string   `json:"raw_text"`
}

func (h *Handler) receipt(w http.ResponseWriter, r *http.Request) {
	var req receiptRequest
	if !render.Decode(w, r, &req) {
		return
	}

	if req.Text == "" {
		http.Error(w, "text is required", http.StatusBadRequest)
		return
	}

	rc, err := h.svc.ParseReceipt(r.Context(), req.Text, time.Now())
	if err != nil {
		render.Error(w, err)
		return
	}

	render.JSON(w, http.StatusOK, receiptResponse{
		Amount:            rc.Amount,
		Date:              rc.Date.Format(time.DateOnly),
		DateFound:         rc.DateFound,
		Merchant:          rc.Merchant,
		SuggestedCategory: rc.SuggestedCategory,
		CategorySource:    string(rc.CategorySource),
		Confidence:        rc.Confidence,
		RawText:           rc.RawText,
	})
}
