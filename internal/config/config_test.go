package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/wealthboard/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "Wealthboard", cfg.App.Name)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.InDelta(t, 15000.0, cfg.App.OpeningBalance, 0.001)
	assert.Equal(t, "admin", cfg.Auth.Username)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 3, cfg.Insights.HistoryMonths)
	assert.Equal(t, "postgres://postgres:@localhost:5432/wealthboard?sslmode=disable", cfg.ConnectionString())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_NAME", "ledger")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("INSIGHTS_HISTORY_MONTHS", "6")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, "ledger", cfg.DB.Name)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.App.AllowedOrigins)
	assert.Equal(t, 6, cfg.Insights.HistoryMonths)
}

func TestLoad_InvalidHistoryMonths(t *testing.T) {
	t.Setenv("INSIGHTS_HISTORY_MONTHS", "0")

	_, err := config.Load()
	assert.Error(t, err)
}
