package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the decoded subject of a session token. The backend has a
// single configured admin, so role is always "admin" for issued tokens.
type Identity struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// ErrInvalidToken covers every verification failure (bad signature, expired,
// malformed). Callers must not distinguish the cause towards clients.
var ErrInvalidToken = errors.New("invalid token")

// Issue creates a signed HS256 session token for id, valid for ttl.
func Issue(secret string, id Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"username": id.Username,
		"role":     id.Role,
		"iat":      now.Unix(),
		"exp":      now.Add(ttl).Unix(),
	}
	jt := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return jt.SignedString([]byte(secret))
}

// Parse verifies signature and expiry and returns the embedded identity.
func Parse(secret string, raw string) (Identity, error) {
	parsed, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return Identity{}, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	if username == "" {
		return Identity{}, ErrInvalidToken
	}
	return Identity{Username: username, Role: role}, nil
}
