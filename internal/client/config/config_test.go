package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:5000/api", c.BaseURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, "mealmate.db", c.DatabasePath)
}

func TestParseEnv_Overlay(t *testing.T) {
	t.Setenv("MEALMATE_API_URL", "https://api.example.com/api")
	t.Setenv("MEALMATE_REQUEST_TIMEOUT", "30s")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "https://api.example.com/api", c.BaseURL)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Equal(t, "mealmate.db", c.DatabasePath, "unset vars keep defaults")
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:5000/api", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}
