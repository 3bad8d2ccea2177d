// Package auth implements the signed-token credentials: HS256 JWTs with a
// short-lived access token and a long-lived refresh token, signed with
// separate injected secrets.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/todoapp/api/internal/core/domain"
)

type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

type Config struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

type Manager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewManager(cfg Config) *Manager {
	return &Manager{
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessTTL:     cfg.AccessTTL,
		refreshTTL:    cfg.RefreshTTL,
	}
}

func (m *Manager) GenerateAccessToken(userID string) (string, error) {
	return generate(userID, m.accessSecret, m.accessTTL)
}

func (m *Manager) GenerateRefreshToken(userID string) (string, error) {
	return generate(userID, m.refreshSecret, m.refreshTTL)
}

func (m *Manager) VerifyAccessToken(token string) (string, error) {
	return verify(token, m.accessSecret)
}

func (m *Manager) VerifyRefreshToken(token string) (string, error) {
	return verify(token, m.refreshSecret)
}

func generate(userID string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func verify(tokenString string, secret []byte) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrInvalidToken
	}
	if !token.Valid {
		return "", domain.ErrInvalidToken
	}
	return claims.UserID, nil
}
