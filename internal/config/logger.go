package config

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Log encodings accepted in LOG_FORMAT.
const (
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

// LoggerConfig holds logger configuration.
type LoggerConfig struct {
	// Level is one of debug, info, warn, error.
	Level string
	// Format is json or console.
	Format string
	// Output is stdout, stderr or a file path.
	Output string
}

// LoadLoggerConfigFromEnv loads logger configuration from environment variables.
func LoadLoggerConfigFromEnv() LoggerConfig {
	return LoggerConfig{
		Level:  strings.ToLower(GetEnv("LOG_LEVEL", "info")),
		Format: strings.ToLower(GetEnv("LOG_FORMAT", LogFormatJSON)),
		Output: GetEnv("LOG_OUTPUT", "stdout"),
	}
}

// ZapLevel parses Level.
func (c LoggerConfig) ZapLevel() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.Level)
}

// Validate validates logger configuration.
func (c LoggerConfig) Validate() error {
	level, err := c.ZapLevel()
	if err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if level > zapcore.ErrorLevel {
		return fmt.Errorf("LOG_LEVEL %q is not allowed, use debug, info, warn or error", c.Level)
	}

	switch c.Format {
	case LogFormatJSON, LogFormatConsole:
	default:
		return fmt.Errorf("LOG_FORMAT %q is not supported, use json or console", c.Format)
	}

	if strings.TrimSpace(c.Output) == "" {
		return errors.New("LOG_OUTPUT must not be empty")
	}
	return nil
}

// Development reports whether zap's development preset applies.
func (c LoggerConfig) Development() bool {
	return c.Format == LogFormatConsole || c.Level == "debug"
}
