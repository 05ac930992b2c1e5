package token

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/o1egl/paseto"
)

const pasetoKeySize = 32

type PasetoIssuer struct {
	v2  *paseto.V2
	key []byte
	ttl time.Duration
	now func() time.Time
}

func NewPasetoIssuer(key []byte, ttl time.Duration) (*PasetoIssuer, error) {
	if len(key) != pasetoKeySize {
		return nil, fmt.Errorf("PASETO v2 local requires a %d-byte key, got %d bytes", pasetoKeySize, len(key))
	}
	return &PasetoIssuer{v2: paseto.NewV2(), key: key, ttl: ttl, now: time.Now}, nil
}

func (p *PasetoIssuer) Issue(c Claims) (string, time.Time, error) {
	now := p.now()
	exp := now.Add(p.ttl)

	jt := paseto.JSONToken{
		Subject:    c.UserID,
		IssuedAt:   now,
		Expiration: exp,
		NotBefore:  now,
	}
	jt.Set("email", c.Email)
	jt.Set("role", c.Role)

	tok, err := p.v2.Encrypt(p.key, jt, "")
	if err != nil {
		return "", time.Time{}, fmt.Errorf("encrypt paseto token: %w", err)
	}
	return tok, exp, nil
}

func (p *PasetoIssuer) Validate(tok string) (*Claims, error) {
	var jt paseto.JSONToken
	var footer string
	if err := p.v2.Decrypt(tok, p.key, &jt, &footer); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if err := jt.Validate(paseto.ValidAt(p.now())); err != nil {
		if p.now().After(jt.Expiration) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if jt.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return &Claims{
		UserID:    jt.Subject,
		Email:     jt.Get("email"),
		Role:      jt.Get("role"),
		IssuedAt:  jt.IssuedAt,
		ExpiresAt: jt.Expiration,
	}, nil
}

// DecodeKey accepts URL-safe or standard base64, padded or not.
func DecodeKey(secret string) ([]byte, error) {
	encodings := []*base64.Encoding{
		base64.URLEncoding,
		base64.RawURLEncoding,
		base64.StdEncoding,
		base64.RawStdEncoding,
	}
	var lastErr error
	for _, enc := range encodings {
		key, err := enc.DecodeString(secret)
		if err != nil {
			lastErr = err
			continue
		}
		if len(key) != pasetoKeySize {
			return nil, fmt.Errorf("PASETO_SECRET must be exactly %d bytes after base64 decoding, got %d bytes", pasetoKeySize, len(key))
		}
		return key, nil
	}
	return nil, fmt.Errorf("decode PASETO_SECRET: %w", lastErr)
}

// GenerateKey returns a fresh URL-safe base64 PASETO key.
func GenerateKey() (string, error) {
	key := make([]byte, pasetoKeySize)
	if _, err := rand.Read(key); err != nil {
		return "", fmt.Errorf("failed to generate random key: %w", err)
	}
	return base64.URLEncoding.EncodeToString(key), nil
}
