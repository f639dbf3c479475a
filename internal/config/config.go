// Package config loads server configuration from a YAML file, with
// defaults that work without any file at all.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all anthrobot server configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Store configures the optional invocation log.
	Store StoreConfig `yaml:"store"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// StoreConfig configures the SQLite invocation log.
type StoreConfig struct {
	// Enabled turns persistence on. Off by default: the engine itself
	// holds no mutable state.
	Enabled bool `yaml:"enabled"`

	// DatabasePath is the SQLite file location.
	DatabasePath string `yaml:"database_path"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level      string   `yaml:"level"`
	JSONFormat bool     `yaml:"json_format"`
	Disabled   []string `yaml:"disabled"` // categories to silence
}

// DisabledSet converts the disabled category list to lookup form.
func (l LoggingConfig) DisabledSet() map[string]bool {
	if len(l.Disabled) == 0 {
		return nil
	}
	set := make(map[string]bool, len(l.Disabled))
	for _, c := range l.Disabled {
		set[c] = true
	}
	return set
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Name:    "anthrobot",
		Version: "1.0.0",
		Store: StoreConfig{
			Enabled:      false,
			DatabasePath: filepath.Join(".anthrobot", "invocations.db"),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from path. A missing file yields the defaults;
// a present file overlays them.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Name == "" {
		return fmt.Errorf("config name must not be empty")
	}
	if c.Store.Enabled && c.Store.DatabasePath == "" {
		return fmt.Errorf("store enabled but database_path is empty")
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	return nil
}
