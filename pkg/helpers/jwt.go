package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token verification failures. Handlers collapse all three into a single 401
// so callers cannot probe which check failed; logs may keep the distinction.
var (
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenExpired          = errors.New("token expired")
)

// JWTManager issues and verifies HS256 bearer tokens. Tokens are fully
// self-contained: subject (user email) and expiry live in the signed claims,
// so any instance holding the secret can verify any token.
type JWTManager struct {
	Secret []byte
	TTL    time.Duration
}

func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	return &JWTManager{Secret: []byte(secret), TTL: ttl}
}

// Issue signs a token for subject valid from now until now+TTL. Time is an
// explicit input so expiry behaviour is deterministic under test.
func (m *JWTManager) Issue(subject string, now time.Time) (string, time.Time, error) {
	exp := now.Add(m.TTL)
	claims := &jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

// Verify parses and validates tokenStr against the shared secret at the given
// instant and returns the embedded subject. Unsigned claims are never trusted.
func (m *JWTManager) Verify(tokenStr string, now time.Time) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenSignatureInvalid
		}
		return m.Secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return now }))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return "", ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrTokenExpired
		default:
			return "", ErrTokenSignatureInvalid
		}
	}
	if !tkn.Valid {
		return "", ErrTokenSignatureInvalid
	}
	return claims.Subject, nil
}
