package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJson_OverlaysFields(t *testing.T) {
	path := writeConfigFile(t, `{
		"server_base_url": "https://json.example.com/api",
		"database_path": "/tmp/json.db",
		"request_timeout": "15s"
	}`)
	resetArgs(t, "-c", path)

	cfg := LoadConfig()

	require.Equal(t, "https://json.example.com/api", cfg.ServerBaseURL)
	require.Equal(t, "/tmp/json.db", cfg.DatabasePath)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestParseJson_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfigFile(t, `{"server_base_url": "https://json.example.com/api"}`)
	resetArgs(t, "-config", path)

	cfg := LoadConfig()

	require.Equal(t, "https://json.example.com/api", cfg.ServerBaseURL)
	require.Equal(t, "poscli.db", cfg.DatabasePath)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestParseJson_FlagsStillWin(t *testing.T) {
	path := writeConfigFile(t, `{"server_base_url": "https://json.example.com/api"}`)
	resetArgs(t, "-c", path, "-a", "https://flag.example.com/api")

	cfg := LoadConfig()

	require.Equal(t, "https://flag.example.com/api", cfg.ServerBaseURL)
}

func TestParseJson_MissingFilePanics(t *testing.T) {
	resetArgs(t, "-c", filepath.Join(t.TempDir(), "nope.json"))

	require.Panics(t, func() { LoadConfig() })
}
