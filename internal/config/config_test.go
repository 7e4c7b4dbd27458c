package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("JOTDECK_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Log.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 0, cfg.Store.DispatchDelayMS)
	assert.Equal(t, "pink", cfg.UI.Accent)
	assert.Equal(t, 50, cfg.Search.MaxResults)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("JOTDECK_CONFIG", "")
	t.Setenv("JOTDECK_LOG_LEVEL", "debug")
	t.Setenv("JOTDECK_STORE_DISPATCH_DELAY_MS", "250")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 250, cfg.Store.DispatchDelayMS)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("JOTDECK_CONFIG", path)

	in := Config{
		Log:    LogConfig{Path: "/tmp/jotdeck.log", Level: "warn"},
		Store:  StoreConfig{DispatchDelayMS: 1000},
		UI:     UIConfig{Accent: "teal"},
		Search: SearchConfig{MaxResults: 10},
	}
	require.NoError(t, Save(in))

	out, err := Load()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
