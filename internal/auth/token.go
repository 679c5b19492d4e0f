// Package auth issues and verifies HS256 bearer tokens. The "sub" claim
// carries the user id.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/staffhub/staffhub/internal/config"
)

var (
	// ErrInvalidToken indicates a malformed token or a bad signature.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken indicates a token past its expiry.
	ErrExpiredToken = errors.New("token expired")
	// ErrInvalidSigningMethod indicates a token not signed with HS256.
	ErrInvalidSigningMethod = errors.New("invalid signing method")
	// ErrMissingSubject indicates a token without a "sub" claim.
	ErrMissingSubject = errors.New("token has no subject")
)

// Claims are the claims carried by a bearer token.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Verifier validates a bearer token and returns its claims.
type Verifier interface {
	Verify(token string) (*Claims, error)
}

// Manager signs and verifies tokens with a shared secret.
type Manager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewManager creates a Manager from auth configuration.
func NewManager(cfg config.AuthConfig) *Manager {
	return &Manager{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
		ttl:    cfg.TokenTTL,
		now:    time.Now,
	}
}

// Generate mints a token for userID valid for the configured TTL.
func (m *Manager) Generate(userID, email string) (string, error) {
	return m.GenerateWithTTL(userID, email, m.ttl)
}

// GenerateWithTTL mints a token for userID valid for ttl.
func (m *Manager) GenerateWithTTL(userID, email string, ttl time.Duration) (string, error) {
	if userID == "" {
		return "", ErrMissingSubject
	}

	now := m.now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses tokenString and checks its signature, expiry, issuer and subject.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidSigningMethod
		}
		return m.secret, nil
	}, opts...)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidSigningMethod):
			return nil, ErrInvalidSigningMethod
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrMissingSubject
	}

	return claims, nil
}
