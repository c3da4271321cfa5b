// Package token issues and verifies the signed session tokens that bind a
// user identity to a request.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that fails verification:
// bad signature, unparseable payload, or expiry. The causes are not
// distinguished so callers cannot leak verification internals.
var ErrInvalidToken = errors.New("invalid token")

// DefaultTTL is the session token lifetime used when none is configured.
const DefaultTTL = 24 * time.Hour

// Manager creates and verifies HS256-signed session tokens.
// It is safe for concurrent use: the secret and clock are read-only
// after construction.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewManager constructs a Manager signing with secret and issuing tokens
// valid for ttl. now supplies the current time; pass nil for time.Now.
// Tests inject a fixed clock to exercise expiry deterministically.
func NewManager(secret string, ttl time.Duration, now func() time.Time) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Manager{secret: []byte(secret), ttl: ttl, now: now}
}

// Issue creates a signed token for the given user id, valid from now
// until now+ttl.
func (m *Manager) Issue(userID string) (string, error) {
	issued := m.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(issued),
		ExpiresAt: jwt.NewNumericDate(issued.Add(m.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify checks the signature and expiry of a token and returns the user id
// it was issued for. Any failure is reported as ErrInvalidToken.
func (m *Manager) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
