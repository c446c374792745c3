package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	home := t.TempDir()
	v, err := newViper(home)
	require.NoError(t, err)

	cfg, err := loadConfig(v, home)
	require.NoError(t, err)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "127.0.0.1:1318", cfg.HTTP.ListenAddr)
	require.True(t, cfg.Journal.Enabled)
	require.Equal(t, filepath.Join(home, "data", "events.db"), cfg.Journal.Path)
	require.False(t, cfg.Tracing.Enabled)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	home := t.TempDir()
	toml := `
log_level = "debug"

[http]
listen = "0.0.0.0:9000"
rate_limit = 5
cors_origins = ["https://a.example"]

[journal]
path = "/var/lib/ammd/events.db"
`
	require.NoError(t, os.WriteFile(filepath.Join(home, configFileName), []byte(toml), 0o600))
	t.Setenv("AMMD_HTTP_RATE_BURST", "7")
	t.Setenv("AMMD_HTTP_CORS_ORIGINS", "https://b.example, https://c.example")
	t.Setenv("AMMD_JOURNAL_ENABLED", "false")

	v, err := newViper(home)
	require.NoError(t, err)
	cfg, err := loadConfig(v, home)
	require.NoError(t, err)

	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "0.0.0.0:9000", cfg.HTTP.ListenAddr)
	require.Equal(t, 5.0, cfg.HTTP.RateLimit)
	require.Equal(t, 7, cfg.HTTP.RateBurst)
	require.Equal(t, []string{"https://b.example", "https://c.example"}, cfg.HTTP.CORSOrigins)
	require.False(t, cfg.Journal.Enabled)
	require.Equal(t, "/var/lib/ammd/events.db", cfg.Journal.Path)
}

func TestLoadConfig_Invalid(t *testing.T) {
	home := t.TempDir()
	t.Setenv("AMMD_HTTP_RATE_BURST", "lots")

	v, err := newViper(home)
	require.NoError(t, err)
	_, err = loadConfig(v, home)
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	for _, level := range []string{"info", "debug", "x/dex:debug,*:error"} {
		_, err := newLogger(os.Stderr, level)
		require.NoError(t, err, level)
	}
	_, err := newLogger(os.Stderr, "loud")
	require.Error(t, err)
}
