// Package token issues and validates bearer tokens. PASETO v2 local tokens are
// the default; HS256 JWTs are available for clients that need them.
package token

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	FormatPaseto = "paseto"
	FormatJWT    = "jwt"
)

// SuperAdminID is the subject of tokens issued to the configured super-admin,
// who has no user document.
const SuperAdminID = "superadmin"

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

type Claims struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Issuer signs claims into a token string and validates it back.
type Issuer interface {
	Issue(claims Claims) (string, time.Time, error)
	Validate(token string) (*Claims, error)
}

// New builds the issuer for format. The PASETO secret is a base64 encoded
// 32-byte key; the JWT secret is used as is.
func New(format, pasetoSecret, jwtSecret string, ttl time.Duration) (Issuer, error) {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	switch strings.ToLower(format) {
	case "", FormatPaseto:
		key, err := DecodeKey(pasetoSecret)
		if err != nil {
			return nil, err
		}
		return NewPasetoIssuer(key, ttl)
	case FormatJWT:
		return NewJWTIssuer([]byte(jwtSecret), ttl)
	default:
		return nil, fmt.Errorf("unsupported token format %q", format)
	}
}
