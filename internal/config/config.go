package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name           string   `envconfig:"APP_NAME" default:"Wealthboard"`
		Port           int      `envconfig:"PORT" default:"8080"`
		OpeningBalance float64  `envconfig:"OPENING_BALANCE" default:"15000"`
		AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"wealthboard"`
		Migrate  bool   `envconfig:"DB_MIGRATE" default:"true"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Auth struct {
		Username string `envconfig:"AUTH_USERNAME" default:"admin"`
		Password string `envconfig:"AUTH_PASSWORD" default:"admin"`
		// PasswordHash takes precedence over Password when set.
		PasswordHash string        `envconfig:"AUTH_PASSWORD_HASH"`
		JWTSecret    string        `envconfig:"JWT_SECRET" default:"change-me"`
		TokenTTL     time.Duration `envconfig:"TOKEN_TTL" default:"24h"`
	}

	Insights struct {
		HistoryMonths int `envconfig:"INSIGHTS_HISTORY_MONTHS" default:"3"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if cfg.Insights.HistoryMonths < 1 {
		return nil, fmt.Errorf("INSIGHTS_HISTORY_MONTHS must be positive, got %d", cfg.Insights.HistoryMonths)
	}

	return &cfg, nil
}
