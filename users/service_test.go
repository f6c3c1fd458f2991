package users_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/soundcrate/go-music-server/internal/errors"
	"github.com/soundcrate/go-music-server/users"
	"github.com/soundcrate/go-music-server/users/repofake"
)

func TestRegisterAndLookup(t *testing.T) {
	repo := repofake.NewFakeUserRepo()
	service := users.NewService(repo)

	userID, err := service.Register("johndoe", "secretpass", "John Doe")
	require.NoError(t, err)
	require.NotEmpty(t, userID)

	user, err := repo.GetByUsername("johndoe")
	require.NoError(t, err)
	require.Equal(t, userID, user.ID)
	require.Equal(t, "John Doe", user.FullName)
	require.NotEqual(t, "secretpass", user.PasswordHash)
}

func TestRegisterDuplicateUsernameFails(t *testing.T) {
	service := users.NewService(repofake.NewFakeUserRepo())

	_, err := service.Register("johndoe", "secretpass", "John Doe")
	require.NoError(t, err)

	_, err = service.Register("johndoe", "otherpass", "Impostor")
	require.ErrorIs(t, err, apperrors.ErrInvariant)
}

func TestVerifyCredentials(t *testing.T) {
	service := users.NewService(repofake.NewFakeUserRepo())

	userID, err := service.Register("johndoe", "secretpass", "John Doe")
	require.NoError(t, err)

	verifiedID, err := service.VerifyCredentials("johndoe", "secretpass")
	require.NoError(t, err)
	require.Equal(t, userID, verifiedID)

	_, err = service.VerifyCredentials("johndoe", "wrongpass")
	require.ErrorIs(t, err, apperrors.ErrAuthentication)

	_, err = service.VerifyCredentials("nobody", "secretpass")
	require.ErrorIs(t, err, apperrors.ErrAuthentication)
}

func TestGetByIDUnknownUser(t *testing.T) {
	service := users.NewService(repofake.NewFakeUserRepo())

	_, err := service.GetByID("user-missing")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}
