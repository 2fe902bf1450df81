package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type envConfig struct {
	BaseURL        string        `env:"MEALMATE_API_URL"`
	RequestTimeout time.Duration `env:"MEALMATE_REQUEST_TIMEOUT"`
	DatabasePath   string        `env:"MEALMATE_DB_PATH"`
}

// parseEnv overlays Config with values from environment variables.
// Unset variables leave the corresponding field untouched.
func parseEnv(cfg *Config) {
	var raw envConfig
	if err := env.Parse(&raw); err != nil {
		panic(err)
	}
	if raw.BaseURL != "" {
		cfg.BaseURL = raw.BaseURL
	}
	if raw.RequestTimeout != 0 {
		cfg.RequestTimeout = raw.RequestTimeout
	}
	if raw.DatabasePath != "" {
		cfg.DatabasePath = raw.DatabasePath
	}
}
