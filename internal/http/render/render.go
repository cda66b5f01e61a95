// Package render holds the JSON plumbing shared by the API handlers.
package render

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func Decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return false
	}

	return true
}

// ID parses the {id} URL parameter, answering 400 when it is not a UUID.
func ID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return uuid.Nil, false
	}

	return id, true
}

// Status pairs a sentinel error with the HTTP status it maps to.
type Status struct {
	Err  error
	Code int
}

// Error answers with the code of the first sentinel err wraps. Anything else
// is logged and reported as a 500 without details.
func Error(w http.ResponseWriter, err error, statuses ...Status) {
	for _, s := range statuses {
		if errors.Is(err, s.Err) {
			http.Error(w, err.Error(), s.Code)
			return
		}
	}

	slog.Error("request failed", "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func NotFound(err error) Status   { return Status{Err: err, Code: http.StatusNotFound} }
func BadRequest(err error) Status { return Status{Err: err, Code: http.StatusBadRequest} }
