package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/todoapp/api/internal/core/domain"
	"github.com/todoapp/api/internal/core/ports"
)

// RefreshTokenKey builds the cache key tracking the single valid refresh
// token of a user.
func RefreshTokenKey(userID string) string {
	return "refreshToken:" + userID
}

type AuthService struct {
	users      ports.UserRepository
	cache      ports.CacheStore
	tokens     ports.TokenManager
	refreshTTL time.Duration
}

func NewAuthService(users ports.UserRepository, cache ports.CacheStore, tokens ports.TokenManager, refreshTTL time.Duration) ports.AuthService {
	return &AuthService{
		users:      users,
		cache:      cache,
		tokens:     tokens,
		refreshTTL: refreshTTL,
	}
}

func (s *AuthService) Signup(ctx context.Context, email, password string) (*domain.TokenPair, *domain.User, error) {
	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if existing != nil {
		return nil, nil, domain.AlreadyExists("user already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:    email,
		Password: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	pair, err := s.issueTokens(ctx, user.ID.Hex())
	if err != nil {
		return nil, nil, err
	}
	return pair, user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.TokenPair, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, domain.NotFound("requested user does not exist")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, domain.InvalidToken("incorrect password")
	}

	return s.issueTokens(ctx, user.ID.Hex())
}

// Logout drops the stored refresh token. Deleting an absent key is not an
// error, so logout is idempotent.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	return s.cache.Delete(ctx, RefreshTokenKey(userID))
}

func (s *AuthService) Authenticate(ctx context.Context, accessToken, refreshToken string) (string, string, error) {
	userID, err := s.tokens.VerifyAccessToken(accessToken)
	if err == nil {
		return userID, "", nil
	}
	if !errors.Is(err, domain.ErrTokenExpired) {
		return "", "", domain.Unauthorized("token is invalid")
	}

	if refreshToken == "" {
		return "", "", domain.Unauthorized("please provide a refresh token")
	}

	userID, err = s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", "", domain.Unauthorized("refresh token is invalid")
	}

	stored, ok, err := s.cache.Get(ctx, RefreshTokenKey(userID))
	if err != nil {
		return "", "", fmt.Errorf("failed to read refresh token: %w", err)
	}
	if !ok || string(stored) != refreshToken {
		return "", "", domain.Unauthorized("token not matched")
	}

	newAccessToken, err := s.tokens.GenerateAccessToken(userID)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return userID, newAccessToken, nil
}

// issueTokens mints a token pair and records the refresh token as the only
// valid one for the user, overwriting whatever was stored before.
func (s *AuthService) issueTokens(ctx context.Context, userID string) (*domain.TokenPair, error) {
	accessToken, err := s.tokens.GenerateAccessToken(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, err := s.tokens.GenerateRefreshToken(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.cache.Set(ctx, RefreshTokenKey(userID), []byte(refreshToken), s.refreshTTL); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &domain.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
