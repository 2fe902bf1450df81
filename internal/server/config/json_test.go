package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	data, err := json.Marshal(map[string]any{
		"endpoint_addr":           ":7070",
		"secret_key":              "fromjson",
		"token_validity_duration": "30m",
	})
	require.NoError(t, err)
	path := filepath.Join(dir, "cfg.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{DatabaseDSN: "keep"}
		parseJson(cfg)

		assert.Equal(t, ":7070", cfg.EndpointAddr)
		assert.Equal(t, "fromjson", cfg.SecretKey)
		assert.Equal(t, 30*time.Minute, cfg.TokenValidityDuration)
		assert.Equal(t, "keep", cfg.DatabaseDSN, "fields absent from JSON stay put")
	})

	t.Run("no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{EndpointAddr: ":1234"}
		parseJson(cfg)

		assert.Equal(t, ":1234", cfg.EndpointAddr)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ nope`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
