// Package auth composes the user directory and the token manager into the
// authentication flows the HTTP layer exposes.
package auth

import (
	"github.com/pkg/errors"

	apperrors "github.com/soundcrate/go-music-server/internal/errors"
	"github.com/soundcrate/go-music-server/token"
	"github.com/soundcrate/go-music-server/users"
)

// Service provides registration, login, token refresh and logout.
type Service struct {
	users  *users.Service
	tokens *token.Manager
}

func NewService(userService *users.Service, tokenManager *token.Manager) (*Service, error) {
	if userService == nil {
		return nil, errors.New("[auth.NewService] user service is required")
	}
	if tokenManager == nil {
		return nil, errors.New("[auth.NewService] token manager is required")
	}
	return &Service{users: userService, tokens: tokenManager}, nil
}

// Register creates a new user account and returns its ID.
func (s *Service) Register(username, password, fullName string) (string, error) {
	return s.users.Register(username, password, fullName)
}

// Login verifies credentials and issues an access/refresh token pair. The
// refresh token is persisted so it can later be revoked.
func (s *Service) Login(username, password string) (accessToken, refreshToken string, err error) {
	userID, err := s.users.VerifyCredentials(username, password)
	if err != nil {
		return "", "", err
	}

	accessToken, err = s.tokens.IssueAccessToken(userID)
	if err != nil {
		return "", "", apperrors.Wrapf(err, "auth.Service.Login IssueAccessToken")
	}
	refreshToken, err = s.tokens.IssueRefreshToken(userID)
	if err != nil {
		return "", "", apperrors.Wrapf(err, "auth.Service.Login IssueRefreshToken")
	}
	return accessToken, refreshToken, nil
}

// Refresh mints a new access token from a valid, still-stored refresh token.
func (s *Service) Refresh(refreshToken string) (string, error) {
	return s.tokens.Refresh(refreshToken)
}

// Logout revokes the refresh token. Revoking an unknown token is an error.
func (s *Service) Logout(refreshToken string) error {
	return s.tokens.Revoke(refreshToken)
}
