package types

import (
	"fmt"
	"log/slog"
	"strings"
)

const (
	DefaultLogLevel       = "info"
	DefaultMaxCalculators = 16
)

// Config represents the configuration for the calcpad server
type Config struct {
	LogLevel       string `json:"log_level,omitempty"`
	MaxCalculators int    `json:"max_calculators,omitempty"`
}

// Validate checks the configuration for invalid values
func (c Config) Validate() error {
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.MaxCalculators < 1 {
		return fmt.Errorf("invalid config: max calculators must be positive, got %d", c.MaxCalculators)
	}
	return nil
}

// ParseLogLevel converts a log level name to a slog.Level
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %q", level)
	}
}
