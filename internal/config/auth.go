package config

import (
	"fmt"
	"time"
)

// minSecretLength is the shortest HS256 secret accepted.
const minSecretLength = 16

// AuthConfig holds bearer token configuration.
type AuthConfig struct {
	// Secret is the HMAC key used to sign and verify tokens.
	Secret string
	// Issuer is the expected "iss" claim. Empty disables the check.
	Issuer string
	// TokenTTL is the lifetime of tokens minted by the token command.
	TokenTTL time.Duration
}

// LoadAuthConfigFromEnv loads auth configuration from environment variables.
func LoadAuthConfigFromEnv() AuthConfig {
	return AuthConfig{
		Secret:   GetEnv("AUTH_JWT_SECRET", ""),
		Issuer:   GetEnv("AUTH_JWT_ISSUER", ""),
		TokenTTL: GetEnvDuration("AUTH_TOKEN_TTL", time.Hour),
	}
}

// Validate validates auth configuration.
func (c AuthConfig) Validate() error {
	if c.Secret == "" {
		return fmt.Errorf("AUTH_JWT_SECRET is required")
	}
	if len(c.Secret) < minSecretLength {
		return fmt.Errorf("AUTH_JWT_SECRET must be at least %d bytes", minSecretLength)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("AUTH_TOKEN_TTL must be greater than 0")
	}
	return nil
}
