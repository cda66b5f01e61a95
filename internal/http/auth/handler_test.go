package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/wealthboard/internal/auth"
	httpauth "github.com/MrJamesThe3rd/wealthboard/internal/http/auth"
)

func TestHandler_Login(t *testing.T) {
	svc := auth.NewService(auth.Config{
		Username: "admin",
		Password: "admin",
		Secret:   "test-secret",
		TTL:      time.Hour,
	})

	r := chi.NewRouter()
	r.Route("/auth", httpauth.NewHandler(svc).Routes)

	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "valid credentials", body: `{"username":"admin","password":"admin"}`, want: http.StatusOK},
		{name: "wrong password", body: `{"username":"admin","password":"nope"}`, want: http.StatusUnauthorized},
		{name: "malformed body", body: `{`, want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			require.Equal(t, tt.want, rec.Code)

			if tt.want != http.StatusOK {
				return
			}

			var resp struct {
				AccessToken string `json:"access_token"`
				TokenType   string `json:"token_type"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "bearer", resp.TokenType)

			subject, err := svc.Verify(resp.AccessToken)
			require.NoError(t, err)
			assert.Equal(t, "admin", subject)
		})
	}
}
