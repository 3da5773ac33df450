// Package cli implements the callprof command implementations.
package cli

import (
	"fmt"
	"os"

	"github.com/callprof/callprof/internal/config"
	"github.com/callprof/callprof/internal/logger"
)

// resolveConfig loads the explicit config file when given, otherwise the
// first supported config file found in the current directory, otherwise
// the defaults.
func resolveConfig(explicit string) (config.Config, error) {
	if explicit != "" {
		cfg, err := config.Load(explicit)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, nil
	}

	dir, err := os.Getwd()
	if err != nil {
		return config.Default(), fmt.Errorf("failed to get current directory: %w", err)
	}
	if path, found := config.FindConfig(dir); found {
		cfg, err := config.Load(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, nil
	}
	return config.Default(), nil
}

// newLogger builds the CLI logger, preferring the explicit level over the
// configured one.
func newLogger(explicit string, cfg config.Config) *logger.Logger {
	level := cfg.LogLevel
	if explicit != "" {
		level = explicit
	}
	return logger.New(level, nil)
}
