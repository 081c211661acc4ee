package config

import (
	"encoding/json"
	"os"

	"github.com/PlanarStandardMTG/planar-cli/internal/flagx"
	"github.com/PlanarStandardMTG/planar-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// may be written either as strings like "30s" or as integer nanoseconds.
type JsonConfig struct {
	APIBaseURL string `json:"api_base_url"`
	Mode       string `json:"mode"`
	DBPath     string `json:"db_path"`

	APIMaxAttempts  int            `json:"api_max_attempts"`
	APIRateWindow   timex.Duration `json:"api_rate_window"`
	AuthMaxAttempts int            `json:"auth_max_attempts"`
	AuthRateWindow  timex.Duration `json:"auth_rate_window"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c/-config flag. When no file is given the layer is skipped. Only
// fields present in the file override earlier layers.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.Mode != "" {
		cfg.Mode = jc.Mode
	}
	if jc.DBPath != "" {
		cfg.DBPath = jc.DBPath
	}
	if jc.APIMaxAttempts > 0 {
		cfg.APIMaxAttempts = jc.APIMaxAttempts
	}
	if jc.APIRateWindow.Duration > 0 {
		cfg.APIRateWindow = jc.APIRateWindow.Duration
	}
	if jc.AuthMaxAttempts > 0 {
		cfg.AuthMaxAttempts = jc.AuthMaxAttempts
	}
	if jc.AuthRateWindow.Duration > 0 {
		cfg.AuthRateWindow = jc.AuthRateWindow.Duration
	}
}
