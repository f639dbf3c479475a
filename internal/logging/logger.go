// Package logging provides categorized structured logging over zap. Each
// subsystem gets a named child logger; categories can be silenced from
// config without touching call sites.
package logging

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category names a logging subsystem.
type Category string

const (
	CategoryBoot     Category = "boot"     // startup, taxonomy load
	CategoryTaxonomy Category = "taxonomy" // store lookups
	CategoryTools    Category = "tools"    // tool registration and execution
	CategoryServer   Category = "server"   // MCP transport
	CategoryStore    Category = "store"    // invocation log
)

// Config controls logger construction.
type Config struct {
	Level      string `yaml:"level"`       // debug, info, warn, error
	JSONFormat bool   `yaml:"json_format"` // JSON encoder instead of console
	Disabled   map[string]bool `yaml:"disabled"` // categories to silence
}

var (
	mu       sync.RWMutex
	root     = zap.NewNop()
	disabled map[string]bool
)

// Initialize builds the process logger. Call once at startup; before then,
// all categories log to a nop logger.
func Initialize(cfg Config) error {
	zcfg := zap.NewProductionConfig()
	if !cfg.JSONFormat {
		zcfg.Encoding = "console"
		zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	if cfg.Level != "" {
		lvl, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return err
		}
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	root = logger
	disabled = cfg.Disabled
	return nil
}

// Get returns the sugared logger for a category. Silenced categories get a
// nop logger.
func Get(c Category) *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	if disabled[string(c)] {
		return zap.NewNop().Sugar()
	}
	return root.Named(string(c)).Sugar()
}

// Sync flushes buffered log entries. Safe to call on shutdown.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = root.Sync()
}
