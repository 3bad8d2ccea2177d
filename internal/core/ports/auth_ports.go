package ports

import (
	"context"

	"github.com/todoapp/api/internal/core/domain"
)

// TokenManager mints and verifies the signed credentials. Verify methods
// return the user id carried in the claims.
type TokenManager interface {
	GenerateAccessToken(userID string) (string, error)
	GenerateRefreshToken(userID string) (string, error)
	VerifyAccessToken(token string) (string, error)
	VerifyRefreshToken(token string) (string, error)
}

type AuthService interface {
	Signup(ctx context.Context, email, password string) (*domain.TokenPair, *domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.TokenPair, error)
	Logout(ctx context.Context, userID string) error

	// Authenticate resolves a bearer access token, silently refreshing it
	// against the stored refresh token when expired. A non-empty
	// newAccessToken signals the caller to hand the rotated credential back
	// to the client.
	Authenticate(ctx context.Context, accessToken, refreshToken string) (userID, newAccessToken string, err error)
}
