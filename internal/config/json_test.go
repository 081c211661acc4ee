package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJsonConfigUnmarshal(t *testing.T) {
	data := []byte(`{
		"api_base_url": "https://api.planarstandard.gg",
		"mode": "production",
		"db_path": "/var/lib/planar/client.db",
		"api_max_attempts": 50,
		"api_rate_window": "15s",
		"auth_max_attempts": 3,
		"auth_rate_window": 600000000000
	}`)

	var jc JsonConfig
	require.NoError(t, json.Unmarshal(data, &jc))

	assert.Equal(t, "https://api.planarstandard.gg", jc.APIBaseURL)
	assert.Equal(t, "production", jc.Mode)
	assert.Equal(t, "/var/lib/planar/client.db", jc.DBPath)
	assert.Equal(t, 50, jc.APIMaxAttempts)
	assert.Equal(t, 15*time.Second, jc.APIRateWindow.Duration)
	assert.Equal(t, 3, jc.AuthMaxAttempts)
	assert.Equal(t, 10*time.Minute, jc.AuthRateWindow.Duration)
}

func TestJsonConfigPartialFieldsKeepDefaults(t *testing.T) {
	var jc JsonConfig
	require.NoError(t, json.Unmarshal([]byte(`{"mode":"production"}`), &jc))

	var cfg Config
	cfg.LoadDefaults()

	if jc.Mode != "" {
		cfg.Mode = jc.Mode
	}

	assert.Equal(t, "production", cfg.Mode)
	assert.Equal(t, "http://127.0.0.1:3000", cfg.APIBaseURL)
}
