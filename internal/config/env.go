package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables, after loading a .env
// file from the working directory when one exists. Recognized variables:
//
//	POS_API_URL          backend base URL
//	POS_DB_PATH          session database path
//	POS_REQUEST_TIMEOUT  request timeout as a duration string ("10s")
func parseEnv(cfg *Config) {
	// Missing .env is the normal case.
	_ = godotenv.Load()

	if v := os.Getenv("POS_API_URL"); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv("POS_DB_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("POS_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
}
