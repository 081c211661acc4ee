// Package config assembles the client's runtime settings. Sources are
// layered, later ones winning: built-in defaults, environment (including a
// local .env file), a JSON config file, command-line flags.
package config

import "time"

// Config holds runtime settings for the Planar Standard CLI.
//
// Mode gates transport hardening: "production" refuses plain-HTTP API
// URLs, anything else (development) allows them. The rate-limit values
// configure the client-side throttles only; the backend enforces real
// limits regardless.
type Config struct {
	APIBaseURL string
	Mode       string
	DBPath     string

	APIMaxAttempts  int
	APIRateWindow   time.Duration
	AuthMaxAttempts int
	AuthRateWindow  time.Duration
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:3000"
	c.Mode = "development"
	c.DBPath = "planar.db"

	c.APIMaxAttempts = 100
	c.APIRateWindow = 30 * time.Second
	c.AuthMaxAttempts = 5
	c.AuthRateWindow = 5 * time.Minute
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if given) and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
