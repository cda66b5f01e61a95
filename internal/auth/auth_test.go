package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestService(cfg Config) *Service {
	cfg.Secret = "secret"
	cfg.TTL = time.Hour

	s := NewService(cfg)
	s.now = func() time.Time { return epoch }

	return s
}

func TestService_Login(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	tests := []struct {
		name     string
		cfg      Config
		username string
		password string
		wantErr  bool
	}{
		{name: "plain password", cfg: Config{Username: "admin", Password: "admin"}, username: "admin", password: "admin"},
		{name: "wrong password", cfg: Config{Username: "admin", Password: "admin"}, username: "admin", password: "nope", wantErr: true},
		{name: "wrong user", cfg: Config{Username: "admin", Password: "admin"}, username: "root", password: "admin", wantErr: true},
		{name: "hash wins over plain", cfg: Config{Username: "admin", Password: "admin", PasswordHash: hash}, username: "admin", password: "s3cret"},
		{name: "hash rejects plain", cfg: Config{Username: "admin", Password: "admin", PasswordHash: hash}, username: "admin", password: "admin", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestService(tt.cfg)

			tok, err := s.Login(tt.username, tt.password)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, epoch.Add(time.Hour), tok.ExpiresAt)

			sub, err := s.Verify(tok.Value)
			require.NoError(t, err)
			assert.Equal(t, tt.username, sub)
		})
	}
}

func TestService_Verify_Expired(t *testing.T) {
	s := newTestService(Config{Username: "admin", Password: "admin"})

	tok, err := s.Login("admin", "admin")
	require.NoError(t, err)

	s.now = func() time.Time { return epoch.Add(2 * time.Hour) }

	_, err = s.Verify(tok.Value)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_Verify_WrongSecret(t *testing.T) {
	s := newTestService(Config{Username: "admin", Password: "admin"})

	tok, err := s.Login("admin", "admin")
	require.NoError(t, err)

	other := newTestService(Config{})
	other.cfg.Secret = "different"

	_, err = other.Verify(tok.Value)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_Middleware(t *testing.T) {
	s := newTestService(Config{Username: "admin", Password: "admin"})

	tok, err := s.Login("admin", "admin")
	require.NoError(t, err)

	h := s.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sub, _ := Subject(r.Context())
		w.Write([]byte(sub))
	}))

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "valid token", header: "Bearer " + tok.Value, wantStatus: http.StatusOK, wantBody: "admin"},
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer abc.def.ghi", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
