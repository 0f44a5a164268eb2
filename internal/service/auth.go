// Package service contains the business logic for the Mealboard server.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mealboardapp/mealboard-server/internal/auth"
	"github.com/mealboardapp/mealboard-server/internal/domain"
	domainerrors "github.com/mealboardapp/mealboard-server/internal/errors"
	"github.com/mealboardapp/mealboard-server/internal/store"
)

// AuthService handles login and credential verification.
type AuthService struct {
	users  store.UserStore
	tokens *auth.TokenService
	logger *slog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(users store.UserStore, tokens *auth.TokenService, logger *slog.Logger) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// LoginResult is a successful authentication: the user and their access token.
type LoginResult struct {
	User        *domain.User
	AccessToken string
}

// Login verifies credentials and issues an access token.
// Unknown emails and wrong passwords produce the same error so the
// response doesn't reveal which accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.InvalidCredentials("invalid email or password")
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	ok, err := auth.VerifyPassword(user.PasswordHash, password)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		s.logger.Warn("failed login attempt", "user_id", user.ID)
		return nil, domainerrors.InvalidCredentials("invalid email or password")
	}

	token, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return &LoginResult{User: user, AccessToken: token}, nil
}

// VerifyAccessToken validates a token and loads the user it belongs to.
func (s *AuthService) VerifyAccessToken(ctx context.Context, token string) (*domain.User, *auth.AccessClaims, error) {
	claims, err := s.tokens.VerifyAccessToken(token)
	if err != nil {
		return nil, nil, domainerrors.Unauthorized("invalid or expired token").WithCause(err)
	}

	user, err := s.users.GetUser(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, domainerrors.Unauthorized("user no longer exists")
		}
		return nil, nil, fmt.Errorf("get user: %w", err)
	}
	return user, claims, nil
}
