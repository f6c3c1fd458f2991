package auth_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/soundcrate/go-music-server/auth"
	apperrors "github.com/soundcrate/go-music-server/internal/errors"
	"github.com/soundcrate/go-music-server/token"
	tokenfake "github.com/soundcrate/go-music-server/token/repofake"
	"github.com/soundcrate/go-music-server/users"
	userfake "github.com/soundcrate/go-music-server/users/repofake"
)

type testFixture struct {
	service *auth.Service
	tokens  *token.Manager
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()

	tokenManager := token.New(
		tokenfake.NewFakeRefreshTokenRepo(),
		token.NewHMACSigner("test-access-secret"),
		token.NewHMACSigner("test-refresh-secret"),
	)
	service, err := auth.NewService(users.NewService(userfake.NewFakeUserRepo()), tokenManager)
	require.NoError(t, err)

	return &testFixture{service: service, tokens: tokenManager}
}

func TestNewServiceRequiresDependencies(t *testing.T) {
	_, err := auth.NewService(nil, nil)
	require.Error(t, err)
}

func TestRegisterAndLogin(t *testing.T) {
	f := setupTestFixture(t)

	userID, err := f.service.Register("johndoe", "secret123", "John Doe")
	require.NoError(t, err)
	require.NotEmpty(t, userID)

	accessToken, refreshToken, err := f.service.Login("johndoe", "secret123")
	require.NoError(t, err)

	subject, err := f.tokens.VerifyAccessToken(accessToken)
	require.NoError(t, err)
	require.Equal(t, userID, subject)

	subject, err = f.tokens.VerifyRefreshToken(refreshToken)
	require.NoError(t, err)
	require.Equal(t, userID, subject)
}

func TestLoginBadCredentials(t *testing.T) {
	f := setupTestFixture(t)

	_, err := f.service.Register("johndoe", "secret123", "John Doe")
	require.NoError(t, err)

	_, _, err = f.service.Login("johndoe", "wrong-password")
	require.ErrorIs(t, err, apperrors.ErrAuthentication)

	_, _, err = f.service.Login("nobody", "secret123")
	require.ErrorIs(t, err, apperrors.ErrAuthentication)
}

func TestRefreshAfterLogin(t *testing.T) {
	f := setupTestFixture(t)

	userID, err := f.service.Register("johndoe", "secret123", "John Doe")
	require.NoError(t, err)
	_, refreshToken, err := f.service.Login("johndoe", "secret123")
	require.NoError(t, err)

	accessToken, err := f.service.Refresh(refreshToken)
	require.NoError(t, err)

	subject, err := f.tokens.VerifyAccessToken(accessToken)
	require.NoError(t, err)
	require.Equal(t, userID, subject)
}

func TestLogoutInvalidatesRefreshToken(t *testing.T) {
	f := setupTestFixture(t)

	_, err := f.service.Register("johndoe", "secret123", "John Doe")
	require.NoError(t, err)
	_, refreshToken, err := f.service.Login("johndoe", "secret123")
	require.NoError(t, err)

	require.NoError(t, f.service.Logout(refreshToken))

	_, err = f.service.Refresh(refreshToken)
	require.ErrorIs(t, err, apperrors.ErrInvariant)

	// A second logout with the same token also fails.
	err = f.service.Logout(refreshToken)
	require.ErrorIs(t, err, apperrors.ErrInvariant)
}
