package config

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// Config is the full service configuration.
type Config struct {
	Server ServerConfig
	Logger LoggerConfig
	Auth   AuthConfig
	// GinMode is one of gin's debug, release or test modes.
	GinMode string
}

// LoadFromEnv loads all configuration from environment variables.
func LoadFromEnv() Config {
	return Config{
		Server:  LoadServerConfigFromEnv(),
		Logger:  LoadLoggerConfigFromEnv(),
		Auth:    LoadAuthConfigFromEnv(),
		GinMode: GetEnv("GIN_MODE", gin.ReleaseMode),
	}
}

// Validate checks every section and reports the first failure.
func (c Config) Validate() error {
	sections := []struct {
		name     string
		validate func() error
	}{
		{"server", c.Server.Validate},
		{"logger", c.Logger.Validate},
		{"auth", c.Auth.Validate},
	}
	for _, s := range sections {
		if err := s.validate(); err != nil {
			return fmt.Errorf("%s config: %w", s.name, err)
		}
	}

	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		return nil
	}
	return fmt.Errorf("GIN_MODE %q is not supported, use debug, release or test", c.GinMode)
}
