package token

import "time"

// StoredRefreshToken is the server-side record of an issued refresh token.
// Presence in the repo is the sole validity authority: a token deleted from
// the repo is rejected even when its signature still verifies.
type StoredRefreshToken struct {
	Token  string    `gorm:"primaryKey;size:512"`
	UserID string    `gorm:"size:64;index;not null"`
	Iat    time.Time `gorm:"not null"`
}

// RefreshTokenRepo manages server-side storage of refresh tokens, keyed by
// the exact token string. Get returns an errors.ErrNotFound-kinded error for
// tokens that were never stored or have been deleted.
type RefreshTokenRepo interface {
	Add(refreshToken *StoredRefreshToken) error
	Get(token string) (*StoredRefreshToken, error)
	Delete(token string) error
}
