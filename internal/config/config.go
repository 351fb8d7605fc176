// Package config assembles runtime settings for the poscli client.
//
// Sources are applied in order, later ones overriding earlier ones:
// defaults, environment (optionally loaded from a .env file), a JSON config
// file (-c/-config), and command-line flags.
package config

import "time"

// Config holds runtime settings for the POS admin client.
type Config struct {
	// ServerBaseURL is the backend REST base URL, including the /api prefix.
	ServerBaseURL string
	// DatabasePath is the sqlite file holding the persisted session.
	DatabasePath string
	// RequestTimeout bounds every backend call.
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8000/api"
	c.DatabasePath = "poscli.db"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config from all sources.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
