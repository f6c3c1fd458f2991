package token_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/soundcrate/go-music-server/internal/errors"
	"github.com/soundcrate/go-music-server/token"
	"github.com/soundcrate/go-music-server/token/repofake"
)

const (
	accessSecret  = "access-secret-1234"
	refreshSecret = "refresh-secret-1234"
	testUserID    = "user-1"
)

type testFixture struct {
	repo    *repofake.FakeRefreshTokenRepo
	manager *token.Manager
	now     time.Time
}

func setupTestFixture(t *testing.T, options ...token.ManagerOption) *testFixture {
	t.Helper()

	f := &testFixture{
		repo: repofake.NewFakeRefreshTokenRepo(),
		now:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	options = append([]token.ManagerOption{token.WithNowFunc(func() time.Time { return f.now })}, options...)
	f.manager = token.New(
		f.repo,
		token.NewHMACSigner(accessSecret),
		token.NewHMACSigner(refreshSecret),
		options...,
	)
	return f
}

func TestAccessTokenRoundTrip(t *testing.T) {
	f := setupTestFixture(t)

	accessToken, err := f.manager.IssueAccessToken(testUserID)
	require.NoError(t, err)

	userID, err := f.manager.VerifyAccessToken(accessToken)
	require.NoError(t, err)
	require.Equal(t, testUserID, userID)
}

func TestExpiredAccessTokenRejected(t *testing.T) {
	f := setupTestFixture(t, token.WithTokenAges(time.Minute, time.Hour))

	accessToken, err := f.manager.IssueAccessToken(testUserID)
	require.NoError(t, err)

	f.now = f.now.Add(2 * time.Minute)

	_, err = f.manager.VerifyAccessToken(accessToken)
	require.ErrorIs(t, err, apperrors.ErrAuthentication)
}

func TestAccessTokenRejectedAsRefreshToken(t *testing.T) {
	f := setupTestFixture(t)

	accessToken, err := f.manager.IssueAccessToken(testUserID)
	require.NoError(t, err)

	// Not in the refresh store, so the store authority rejects it before any
	// signature consideration.
	_, err = f.manager.VerifyRefreshToken(accessToken)
	require.ErrorIs(t, err, apperrors.ErrInvariant)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	f := setupTestFixture(t)

	refreshToken, err := f.manager.IssueRefreshToken(testUserID)
	require.NoError(t, err)

	userID, err := f.manager.VerifyRefreshToken(refreshToken)
	require.NoError(t, err)
	require.Equal(t, testUserID, userID)
}

func TestUnissuedRefreshTokenRejectedDespiteValidSignature(t *testing.T) {
	f := setupTestFixture(t)

	// A second manager sharing the signing secrets but not the store: its
	// tokens carry valid signatures yet were never persisted here.
	other := token.New(
		repofake.NewFakeRefreshTokenRepo(),
		token.NewHMACSigner(accessSecret),
		token.NewHMACSigner(refreshSecret),
	)
	foreignToken, err := other.IssueRefreshToken(testUserID)
	require.NoError(t, err)

	_, err = f.manager.VerifyRefreshToken(foreignToken)
	require.ErrorIs(t, err, apperrors.ErrInvariant)
}

func TestStoredButUnsignedRefreshTokenRejected(t *testing.T) {
	f := setupTestFixture(t)

	err := f.repo.Add(&token.StoredRefreshToken{Token: "not-a-jwt", UserID: testUserID, Iat: f.now})
	require.NoError(t, err)

	_, err = f.manager.VerifyRefreshToken("not-a-jwt")
	require.ErrorIs(t, err, apperrors.ErrAuthentication)
}

func TestRefreshTokenExpiresByStoreAge(t *testing.T) {
	f := setupTestFixture(t, token.WithTokenAges(time.Minute, time.Hour))

	refreshToken, err := f.manager.IssueRefreshToken(testUserID)
	require.NoError(t, err)

	f.now = f.now.Add(2 * time.Hour)

	_, err = f.manager.VerifyRefreshToken(refreshToken)
	require.ErrorIs(t, err, apperrors.ErrInvariant)

	// The expired token was dropped from the store.
	_, err = f.repo.Get(refreshToken)
	require.Error(t, err)
}

func TestRefreshMintsNewAccessTokenWithoutRotation(t *testing.T) {
	f := setupTestFixture(t)

	refreshToken, err := f.manager.IssueRefreshToken(testUserID)
	require.NoError(t, err)

	accessToken, err := f.manager.Refresh(refreshToken)
	require.NoError(t, err)

	userID, err := f.manager.VerifyAccessToken(accessToken)
	require.NoError(t, err)
	require.Equal(t, testUserID, userID)

	// The refresh token remains valid until explicit revocation.
	userID, err = f.manager.VerifyRefreshToken(refreshToken)
	require.NoError(t, err)
	require.Equal(t, testUserID, userID)
}

func TestRevokeIsPermanent(t *testing.T) {
	f := setupTestFixture(t)

	refreshToken, err := f.manager.IssueRefreshToken(testUserID)
	require.NoError(t, err)

	require.NoError(t, f.manager.Revoke(refreshToken))

	_, err = f.manager.VerifyRefreshToken(refreshToken)
	require.ErrorIs(t, err, apperrors.ErrInvariant)

	// Revoking an absent token is an error, not a no-op.
	err = f.manager.Revoke(refreshToken)
	require.ErrorIs(t, err, apperrors.ErrInvariant)
}

func TestRevokeUnknownTokenFails(t *testing.T) {
	f := setupTestFixture(t)

	err := f.manager.Revoke("never-issued")
	require.ErrorIs(t, err, apperrors.ErrInvariant)
}

// failingRefreshTokenRepo simulates a store outage: every lookup fails with
// an unclassified error.
type failingRefreshTokenRepo struct {
	err error
}

func (r *failingRefreshTokenRepo) Add(*token.StoredRefreshToken) error { return r.err }

func (r *failingRefreshTokenRepo) Get(string) (*token.StoredRefreshToken, error) {
	return nil, r.err
}

func (r *failingRefreshTokenRepo) Delete(string) error { return r.err }

func TestStoreFaultIsNotTreatedAsRevocation(t *testing.T) {
	storeErr := errors.New("connection refused")
	manager := token.New(
		&failingRefreshTokenRepo{err: storeErr},
		token.NewHMACSigner(accessSecret),
		token.NewHMACSigner(refreshSecret),
	)

	// A store fault must stay an unclassified error so the transport maps it
	// to a server fault, not a revoked-session client error.
	_, err := manager.VerifyRefreshToken("some-token")
	require.Error(t, err)
	require.NotErrorIs(t, err, apperrors.ErrInvariant)
	require.ErrorIs(t, err, storeErr)

	err = manager.Revoke("some-token")
	require.Error(t, err)
	require.NotErrorIs(t, err, apperrors.ErrInvariant)
	require.ErrorIs(t, err, storeErr)
}
