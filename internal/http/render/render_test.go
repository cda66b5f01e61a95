package render_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/wealthboard/internal/http/render"
)

var errMissing = errors.New("missing")

func TestError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "wrapped sentinel", err: fmt.Errorf("get: %w", errMissing), want: http.StatusNotFound},
		{name: "unknown error", err: errors.New("db down"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			render.Error(rec, tt.err, render.NotFound(errMissing))

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	render.JSON(rec, http.StatusCreated, map[string]int{"n": 1})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"n":1}`, rec.Body.String())
}

func TestID(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/{id}", func(w http.ResponseWriter, r *http.Request) {
		if id, ok := render.ID(w, r); ok {
			w.Write([]byte(id.String()))
		}
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	const id = "6f1c1d1e-8f57-4d8e-9f4e-2b7c2d9d2a11"

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/"+id, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), id))
}
