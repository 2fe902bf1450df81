package config

import "time"

// Config holds runtime settings for the MealMate CLI.
//
// Fields:
//   - BaseURL: root of the backend REST API, including the /api prefix.
//   - RequestTimeout: per-request deadline for API calls.
//   - DatabasePath: SQLite file holding the persisted session.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:5000/api"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "mealmate.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from environment variables, a JSON file (if present) and command-line
// flags (if present). Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
