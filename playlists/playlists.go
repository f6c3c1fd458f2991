package playlists

import (
	"time"

	"github.com/google/uuid"
)

// Playlist is an owned, named collection of song references. The owner holds
// delete and collaborator-management rights; collaborators may only view and
// mutate the song set.
type Playlist struct {
	ID        string    `json:"id" gorm:"primaryKey;size:64"`
	Name      string    `json:"name" gorm:"size:200;not null"`
	OwnerID   string    `json:"-" gorm:"size:64;index;not null"`
	CreatedAt time.Time `json:"-"`
}

func NewID() string {
	return "playlist-" + uuid.NewString()
}

// Membership links a song into a playlist. The pair is unique; ordering of a
// playlist's songs follows insertion.
type Membership struct {
	ID         uint      `gorm:"primaryKey"`
	PlaylistID string    `gorm:"size:64;not null;uniqueIndex:idx_membership_pair"`
	SongID     string    `gorm:"size:64;not null;uniqueIndex:idx_membership_pair"`
	CreatedAt  time.Time
}

// Collaboration grants a non-owner user mutation rights on a playlist. The
// pair is unique at the store level, so two concurrent grants for the same
// pair cannot both land; the loser surfaces as an invariant violation.
type Collaboration struct {
	ID         uint      `gorm:"primaryKey"`
	PlaylistID string    `gorm:"size:64;not null;uniqueIndex:idx_collaboration_pair"`
	UserID     string    `gorm:"size:64;not null;uniqueIndex:idx_collaboration_pair"`
	CreatedAt  time.Time
}

// Action is the kind of song event an activity entry records.
type Action string

const (
	ActionAdd    Action = "add"
	ActionDelete Action = "delete"
)

// Activity is one append-only audit entry for a playlist's song set. Entries
// are never mutated or deleted and are listed ascending by time.
type Activity struct {
	ID         uint      `gorm:"primaryKey"`
	PlaylistID string    `gorm:"size:64;index;not null"`
	SongID     string    `gorm:"size:64;not null"`
	UserID     string    `gorm:"size:64;not null"`
	Action     Action    `gorm:"size:16;not null"`
	Time       time.Time `gorm:"index;not null"`
}

// PlaylistWithOwner is the listing view of a playlist: the owner is shown by
// username rather than ID.
type PlaylistWithOwner struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// Repo manages persistence of playlists. Get returns an
// errors.ErrNotFound-kinded error for unknown IDs. Delete removes the
// playlist together with its memberships, collaborations and activities.
type Repo interface {
	Create(playlist *Playlist) error
	Get(id string) (*Playlist, error)
	Delete(id string) error
	// ListForUser returns playlists the user owns or collaborates on.
	ListForUser(userID string) ([]PlaylistWithOwner, error)
}

// MembershipRepo manages playlist-song links. Add returns an
// errors.ErrInvariant-kinded error for a duplicate pair, Remove for an
// absent one.
type MembershipRepo interface {
	Add(playlistID, songID string) error
	Remove(playlistID, songID string) error
	// ListSongIDs returns the playlist's song IDs in insertion order.
	ListSongIDs(playlistID string) ([]string, error)
}

// CollaborationRepo manages collaborator grants. Add returns an
// errors.ErrInvariant-kinded error for a duplicate pair, Remove for an
// absent one.
type CollaborationRepo interface {
	Add(playlistID, userID string) error
	Remove(playlistID, userID string) error
	Exists(playlistID, userID string) (bool, error)
}

// ActivityRepo appends and lists playlist activity entries.
type ActivityRepo interface {
	Record(activity *Activity) error
	// ListForPlaylist returns entries ascending by time.
	ListForPlaylist(playlistID string) ([]Activity, error)
}
