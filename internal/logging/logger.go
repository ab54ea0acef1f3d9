// Package logging builds the process zap logger and hands out named
// per-category loggers.
package logging

import (
	"fmt"
	"sync"

	"aoc2024/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot   Category = "boot"   // Startup, config loading
	CategoryRunner Category = "runner" // Job scheduling and answers
	CategoryFetch  Category = "fetch"  // Downloading inputs
	CategoryStore  Category = "store"  // Answer history
	CategoryWatch  Category = "watch"  // Input file watcher
)

var (
	root      = zap.NewNop()
	loggers   = make(map[Category]*zap.Logger)
	loggersMu sync.RWMutex
)

// New builds a logger from the logging config. verbose forces debug level.
func New(cfg config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Format == "console" {
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	level := cfg.Level
	if verbose {
		level = "debug"
	}
	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		zc.Level = zap.NewAtomicLevelAt(lvl)
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Initialize installs the process logger. Category loggers handed out
// earlier keep their old parent.
func Initialize(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	loggersMu.Lock()
	defer loggersMu.Unlock()
	root = logger
	loggers = make(map[Category]*zap.Logger)
}

// Get returns the logger for a category, named after it.
func Get(category Category) *zap.Logger {
	loggersMu.RLock()
	l, ok := loggers[category]
	loggersMu.RUnlock()
	if ok {
		return l
	}

	loggersMu.Lock()
	defer loggersMu.Unlock()
	if l, ok := loggers[category]; ok {
		return l
	}
	l = root.Named(string(category))
	loggers[category] = l
	return l
}

// Sync flushes the process logger.
func Sync() error {
	loggersMu.RLock()
	defer loggersMu.RUnlock()
	return root.Sync()
}

// Named derives a category logger from an explicit parent.
func Named(logger *zap.Logger, category Category) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger.Named(string(category))
}
