// Package postgres implements every repository interface over gorm.
package postgres

import (
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/soundcrate/go-music-server/albums"
	apperrors "github.com/soundcrate/go-music-server/internal/errors"
	"github.com/soundcrate/go-music-server/playlists"
	"github.com/soundcrate/go-music-server/songs"
	"github.com/soundcrate/go-music-server/token"
	"github.com/soundcrate/go-music-server/users"
)

// Connect opens a gorm handle on the given DSN. The handle is constructed
// once at process start and passed down; nothing in this module reaches for
// a global connection.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, apperrors.Wrapf(err, "postgres.Connect")
	}
	return db, nil
}

// Migrate creates or updates the schema for every persisted type.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&users.User{},
		&token.StoredRefreshToken{},
		&albums.Album{},
		&songs.Song{},
		&playlists.Playlist{},
		&playlists.Membership{},
		&playlists.Collaboration{},
		&playlists.Activity{},
	)
	return apperrors.Wrapf(err, "postgres.Migrate")
}

// isUniqueConstraintError reports whether err is a uniqueness violation.
// Matched on message text since gorm does not normalise driver errors.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "UNIQUE constraint")
}
