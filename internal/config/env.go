package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment. A
// .env file in the working directory is folded in first when present;
// real environment variables win over it.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("PLANAR_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("PLANAR_MODE"); v != "" {
		cfg.Mode = v
	}
	if v := os.Getenv("PLANAR_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := envInt("PLANAR_API_MAX_ATTEMPTS"); v > 0 {
		cfg.APIMaxAttempts = v
	}
	if v := envDuration("PLANAR_API_RATE_WINDOW"); v > 0 {
		cfg.APIRateWindow = v
	}
	if v := envInt("PLANAR_AUTH_MAX_ATTEMPTS"); v > 0 {
		cfg.AuthMaxAttempts = v
	}
	if v := envDuration("PLANAR_AUTH_RATE_WINDOW"); v > 0 {
		cfg.AuthRateWindow = v
	}
}

func envInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return parsed
}

func envDuration(key string) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return 0
	}
	return parsed
}
