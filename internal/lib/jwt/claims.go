// Package jwt implements generation and parsing of JWT session tokens
// with custom claim fields.
package jwt

import (
	"time"
)

// Maker describes generation and parsing of JWT tokens.
type Maker interface {
	// GenerateToken issues a token for the given user identity.
	GenerateToken(email, role, userUID string) (string, error)
	// ParseToken validates a token and returns its CustomClaims.
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl implements Maker with an HMAC secret key and a token TTL.
type MakerImpl struct {
	secretKey string
	tokenTTL  time.Duration
}

// NewJWTMaker creates a MakerImpl from a secret key and TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
