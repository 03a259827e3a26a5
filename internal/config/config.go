// Package config provides configuration management.
// Settings come from an optional JSON file with environment-variable
// overrides applied on top.
package config

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/caarlos0/env/v9"

	errs "tradequote/internal/errors"
	"tradequote/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// SettingsFile is the path to the admin-settings JSON file;
	// empty means the documented default rates apply
	SettingsFile string `json:"settings_file" env:"TRADEQUOTE_SETTINGS_FILE"`

	// Workers bounds per-product calculation concurrency
	Workers int `json:"workers" env:"TRADEQUOTE_WORKERS"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// Format is the default output format (cli, json)
	Format string `json:"format" env:"TRADEQUOTE_OUTPUT_FORMAT"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Logging: logging.DefaultConfig(),
		Output:  OutputConfig{Format: "cli"},
		Workers: 4,
	}
}

// Load reads a configuration file and applies environment overrides.
// An empty path loads defaults plus environment only.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, errs.Wrap(errs.TypeConfig, "reading config file", err)
		}
		if err := json.Unmarshal(raw, &cfg); err != nil {
			return cfg, errs.Wrap(errs.TypeConfig, "parsing config file", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, errs.Wrap(errs.TypeConfig, "reading environment", err)
	}
	return cfg, nil
}

var (
	mu     sync.RWMutex
	global = Default()
)

// Get returns the global configuration
func Get() Config {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Set replaces the global configuration
func Set(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	global = cfg
}
