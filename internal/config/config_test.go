package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"poscli"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	require.Equal(t, "http://localhost:8000/api", cfg.ServerBaseURL)
	require.Equal(t, "poscli.db", cfg.DatabasePath)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	resetArgs(t, "-a", "https://pos.example.com/api", "-t", "5")

	cfg := LoadConfig()

	require.Equal(t, "https://pos.example.com/api", cfg.ServerBaseURL)
	require.Equal(t, "poscli.db", cfg.DatabasePath)
	require.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	resetArgs(t)
	t.Setenv("POS_API_URL", "http://env.example.com/api")
	t.Setenv("POS_DB_PATH", "/tmp/env.db")
	t.Setenv("POS_REQUEST_TIMEOUT", "30s")

	cfg := LoadConfig()

	require.Equal(t, "http://env.example.com/api", cfg.ServerBaseURL)
	require.Equal(t, "/tmp/env.db", cfg.DatabasePath)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	resetArgs(t, "-a", "http://flag.example.com/api")
	t.Setenv("POS_API_URL", "http://env.example.com/api")

	cfg := LoadConfig()

	require.Equal(t, "http://flag.example.com/api", cfg.ServerBaseURL)
}

func TestLoadConfig_InvalidTimeoutEnvIgnored(t *testing.T) {
	resetArgs(t)
	t.Setenv("POS_REQUEST_TIMEOUT", "soon")

	cfg := LoadConfig()

	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
}
