// Package admin issues and verifies the signed admin session tokens carried
// in the admin_session cookie.
package admin

import (
	"crypto/subtle"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"recipe-chat/internal/infrastructure/config"
)

// Sessions signs and checks admin session tokens.
type Sessions struct {
	password []byte
	secret   []byte
	ttl      time.Duration
}

// NewSessions builds the session helper from the admin config.
func NewSessions(cfg config.AdminConfig) *Sessions {
	return &Sessions{
		password: []byte(cfg.Password),
		secret:   []byte(cfg.SessionSecret),
		ttl:      cfg.SessionTTL,
	}
}

// TTL is the configured session lifetime.
func (s *Sessions) TTL() time.Duration {
	return s.ttl
}

// CheckPassword compares the candidate against the configured admin password
// in constant time.
func (s *Sessions) CheckPassword(candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(candidate), s.password) == 1
}

// Issue signs a fresh admin session token.
func (s *Sessions) Issue() (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "admin",
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	})
	return token.SignedString(s.secret)
}

// Verify reports whether the token is a valid, unexpired admin session.
func (s *Sessions) Verify(tokenText string) bool {
	if tokenText == "" {
		return false
	}
	token, err := jwt.Parse(tokenText, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	role, _ := claims["role"].(string)
	return role == "admin"
}
