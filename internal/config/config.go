package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Log    LogConfig
	Store  StoreConfig
	UI     UIConfig
	Search SearchConfig
}

// LogConfig holds structured-logging settings. An empty path disables
// logging entirely.
type LogConfig struct {
	Path  string
	Level string
}

// StoreConfig holds dispatch pipeline settings.
type StoreConfig struct {
	// DispatchDelayMS installs the delay middleware when > 0. Mostly a
	// debugging aid for watching async dispatch behave.
	DispatchDelayMS int `mapstructure:"dispatch_delay_ms"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Accent string
}

// SearchConfig holds list-filter settings.
type SearchConfig struct {
	MaxResults int `mapstructure:"max_results"`
}

// Load reads configuration from file and env. Env var overrides use prefix JOTDECK_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("store.dispatch_delay_ms", 0)
	v.SetDefault("ui.accent", "pink")
	v.SetDefault("search.max_results", 50)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("JOTDECK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "jotdeck"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("JOTDECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed. Used by the settings flow for non-sensitive preferences.
func Save(cfg Config) error {
	path := os.Getenv("JOTDECK_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "jotdeck", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("store.dispatch_delay_ms", cfg.Store.DispatchDelayMS)
	v.Set("ui.accent", cfg.UI.Accent)
	v.Set("search.max_results", cfg.Search.MaxResults)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
