package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	apperrors "github.com/soundcrate/go-music-server/internal/errors"
)

// Manager issues and verifies the two token kinds. Access tokens are
// stateless: signature and expiry are the only authority, so verification
// never touches the store and an access token cannot be revoked before it
// expires. Refresh tokens are signed with a distinct secret and persisted;
// the store decides validity, the signature only authenticates the payload.
type Manager struct {
	repo            RefreshTokenRepo
	accessSigner    Signer
	refreshSigner   Signer
	accessTokenAge  time.Duration
	refreshTokenAge time.Duration
	nowFunc         func() time.Time
}

type ManagerOption func(*Manager)

func WithTokenAges(accessTokenAge time.Duration, refreshTokenAge time.Duration) ManagerOption {
	return func(m *Manager) {
		m.accessTokenAge = accessTokenAge
		m.refreshTokenAge = refreshTokenAge
	}
}

func WithNowFunc(now func() time.Time) ManagerOption {
	return func(m *Manager) {
		m.nowFunc = now
	}
}

func New(repo RefreshTokenRepo, accessSigner Signer, refreshSigner Signer, options ...ManagerOption) *Manager {
	m := &Manager{
		repo:          repo,
		accessSigner:  accessSigner,
		refreshSigner: refreshSigner,
	}

	for _, opt := range options {
		opt(m)
	}

	if m.accessTokenAge == 0 {
		m.accessTokenAge = 30 * time.Minute
	}
	if m.refreshTokenAge == 0 {
		m.refreshTokenAge = 30 * 24 * time.Hour
	}
	if m.nowFunc == nil {
		m.nowFunc = time.Now
	}
	return m
}

// IssueAccessToken signs a short-lived token carrying the user ID. No side
// effects; identical input and clock produce an equivalent token.
func (m *Manager) IssueAccessToken(userID string) (string, error) {
	now := m.nowFunc()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(m.accessTokenAge).Unix(),
		"jti": uuid.New().String(),
	}
	signed, err := m.accessSigner.Sign(claims)
	if err != nil {
		return "", apperrors.Wrapf(err, "token.Manager.IssueAccessToken Sign")
	}
	return signed, nil
}

// IssueRefreshToken signs a long-lived token with the refresh secret and
// persists it verbatim. The signature carries no expiry; token age is
// enforced against the stored issue time.
func (m *Manager) IssueRefreshToken(userID string) (string, error) {
	now := m.nowFunc()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"jti": uuid.New().String(),
	}
	signed, err := m.refreshSigner.Sign(claims)
	if err != nil {
		return "", apperrors.Wrapf(err, "token.Manager.IssueRefreshToken Sign")
	}

	if err := m.repo.Add(&StoredRefreshToken{
		Token:  signed,
		UserID: userID,
		Iat:    now,
	}); err != nil {
		return "", apperrors.Wrapf(err, "token.Manager.IssueRefreshToken Add")
	}
	return signed, nil
}

// VerifyAccessToken checks signature and expiry only and returns the user ID.
func (m *Manager) VerifyAccessToken(rawToken string) (string, error) {
	userID, err := m.parseSubject(rawToken, m.accessSigner)
	if err != nil {
		return "", apperrors.Authenticationf("invalid access token")
	}
	return userID, nil
}

// VerifyRefreshToken returns the user ID carried by a refresh token. The
// store lookup comes first: a token absent from the store fails with an
// ErrInvariant kind no matter how well-formed its signature is.
func (m *Manager) VerifyRefreshToken(rawToken string) (string, error) {
	stored, err := m.repo.Get(rawToken)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.Invariantf("refresh token not found in database")
		}
		return "", apperrors.Wrapf(err, "token.Manager.VerifyRefreshToken Get")
	}

	if m.nowFunc().Sub(stored.Iat) > m.refreshTokenAge {
		_ = m.repo.Delete(rawToken)
		return "", apperrors.Invariantf("refresh token expired")
	}

	userID, err := m.parseSubject(rawToken, m.refreshSigner)
	if err != nil {
		return "", apperrors.Authenticationf("invalid refresh token")
	}
	return userID, nil
}

// Refresh verifies a refresh token and mints a new access token. The refresh
// token stays valid until explicit revocation; it is not rotated here.
func (m *Manager) Refresh(rawRefreshToken string) (string, error) {
	userID, err := m.VerifyRefreshToken(rawRefreshToken)
	if err != nil {
		return "", err
	}
	return m.IssueAccessToken(userID)
}

// Revoke deletes a refresh token from the store. Revoking a token that is
// not stored is an error surfaced to the caller, not a no-op.
func (m *Manager) Revoke(rawRefreshToken string) error {
	if _, err := m.repo.Get(rawRefreshToken); err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return apperrors.Invariantf("refresh token not found in database")
		}
		return apperrors.Wrapf(err, "token.Manager.Revoke Get")
	}
	if err := m.repo.Delete(rawRefreshToken); err != nil {
		return apperrors.Wrapf(err, "token.Manager.Revoke Delete")
	}
	return nil
}

func (m *Manager) parseSubject(rawToken string, signer Signer) (string, error) {
	parser := jwt.NewParser(
		jwt.WithTimeFunc(m.nowFunc),
		jwt.WithValidMethods([]string{signer.GetSigningMethod().Alg()}),
	)

	parsed, err := parser.Parse(rawToken, signer.GetVerificationKey)
	if err != nil || !parsed.Valid {
		if err == nil {
			err = jwt.ErrTokenUnverifiable
		}
		return "", err
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", jwt.ErrTokenInvalidClaims
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return sub, nil
}
