package playlists

import (
	"time"

	apperrors "github.com/soundcrate/go-music-server/internal/errors"
	"github.com/soundcrate/go-music-server/songs"
	"github.com/soundcrate/go-music-server/users"
)

// SongGetter is the slice of the song catalog the playlist service needs.
type SongGetter interface {
	Get(id string) (*songs.Song, error)
}

// UserGetter is the slice of the user directory the playlist service needs.
type UserGetter interface {
	GetByID(id string) (*users.User, error)
}

// Repos holds all repository dependencies for the playlist Service.
type Repos struct {
	Playlists      Repo
	Memberships    MembershipRepo
	Collaborations CollaborationRepo
	Activities     ActivityRepo
}

// Service implements playlist operations. Every mutating operation runs one
// of the Guard predicates first, so authorization cannot drift between
// endpoints.
type Service struct {
	repos   Repos
	songs   SongGetter
	users   UserGetter
	guard   *Guard
	nowFunc func() time.Time
}

type ServiceOption func(*Service)

// WithNowFunc sets the clock used for activity timestamps (for testing).
func WithNowFunc(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.nowFunc = now
	}
}

func NewService(repos Repos, songGetter SongGetter, userGetter UserGetter, options ...ServiceOption) *Service {
	s := &Service{
		repos:   repos,
		songs:   songGetter,
		users:   userGetter,
		guard:   NewGuard(repos.Playlists, repos.Collaborations),
		nowFunc: time.Now,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// Guard exposes the service's authorization predicates.
func (s *Service) Guard() *Guard {
	return s.guard
}

// Create stores a new playlist owned by ownerID and returns its ID.
func (s *Service) Create(name, ownerID string) (string, error) {
	playlist := &Playlist{ID: NewID(), Name: name, OwnerID: ownerID}
	if err := s.repos.Playlists.Create(playlist); err != nil {
		return "", apperrors.Wrapf(err, "playlists.Service.Create")
	}
	return playlist.ID, nil
}

// ListForUser returns the playlists userID owns or collaborates on.
func (s *Service) ListForUser(userID string) ([]PlaylistWithOwner, error) {
	return s.repos.Playlists.ListForUser(userID)
}

// Delete removes a playlist and everything hanging off it. Owner only.
func (s *Service) Delete(playlistID, userID string) error {
	if err := s.guard.VerifyPlaylistOwner(playlistID, userID); err != nil {
		return err
	}
	return s.repos.Playlists.Delete(playlistID)
}

// AddSong links a song into a playlist and records an add activity. Allowed
// for the owner and collaborators; the song must exist in the catalog.
func (s *Service) AddSong(playlistID, songID, userID string) error {
	if err := s.guard.VerifyPlaylistAccess(playlistID, userID); err != nil {
		return err
	}
	if _, err := s.songs.Get(songID); err != nil {
		return err
	}
	if err := s.repos.Memberships.Add(playlistID, songID); err != nil {
		return err
	}
	return s.record(playlistID, songID, userID, ActionAdd)
}

// RemoveSong unlinks a song from a playlist and records a delete activity.
func (s *Service) RemoveSong(playlistID, songID, userID string) error {
	if err := s.guard.VerifyPlaylistAccess(playlistID, userID); err != nil {
		return err
	}
	if err := s.repos.Memberships.Remove(playlistID, songID); err != nil {
		return err
	}
	return s.record(playlistID, songID, userID, ActionDelete)
}

// SongSummary is the per-song shape inside a playlist detail.
type SongSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Performer string `json:"performer"`
}

// Detail is a playlist with its owner's username and its songs in insertion
// order.
type Detail struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Username string        `json:"username"`
	Songs    []SongSummary `json:"songs"`
}

// GetDetail returns a playlist with its songs. Allowed for the owner and
// collaborators.
func (s *Service) GetDetail(playlistID, userID string) (*Detail, error) {
	if err := s.guard.VerifyPlaylistAccess(playlistID, userID); err != nil {
		return nil, err
	}

	playlist, err := s.repos.Playlists.Get(playlistID)
	if err != nil {
		return nil, err
	}
	owner, err := s.users.GetByID(playlist.OwnerID)
	if err != nil {
		return nil, apperrors.Wrapf(err, "playlists.Service.GetDetail owner lookup")
	}

	songIDs, err := s.repos.Memberships.ListSongIDs(playlistID)
	if err != nil {
		return nil, apperrors.Wrapf(err, "playlists.Service.GetDetail ListSongIDs")
	}

	detail := &Detail{
		ID:       playlist.ID,
		Name:     playlist.Name,
		Username: owner.Username,
		Songs:    make([]SongSummary, 0, len(songIDs)),
	}
	for _, songID := range songIDs {
		song, err := s.songs.Get(songID)
		if err != nil {
			// Song removed from the catalog after being linked; skip it.
			if apperrors.Is(err, apperrors.ErrNotFound) {
				continue
			}
			return nil, err
		}
		detail.Songs = append(detail.Songs, SongSummary{ID: song.ID, Title: song.Title, Performer: song.Performer})
	}
	return detail, nil
}

// AddCollaborator grants userID mutation rights on a playlist. Owner only;
// the target user must exist. A duplicate grant surfaces the store's
// uniqueness violation as an invariant error.
func (s *Service) AddCollaborator(playlistID, userID, requesterID string) error {
	if err := s.guard.VerifyPlaylistOwner(playlistID, requesterID); err != nil {
		return err
	}
	if _, err := s.users.GetByID(userID); err != nil {
		return err
	}
	return s.repos.Collaborations.Add(playlistID, userID)
}

// RemoveCollaborator revokes a collaborator grant. Owner only.
func (s *Service) RemoveCollaborator(playlistID, userID, requesterID string) error {
	if err := s.guard.VerifyPlaylistOwner(playlistID, requesterID); err != nil {
		return err
	}
	return s.repos.Collaborations.Remove(playlistID, userID)
}

// ActivityView is one audit entry resolved for display: who did what to
// which song, by name.
type ActivityView struct {
	Username string    `json:"username"`
	Title    string    `json:"title"`
	Action   Action    `json:"action"`
	Time     time.Time `json:"time"`
}

// ListActivities returns the playlist's audit trail ascending by time.
// Allowed for the owner and collaborators.
func (s *Service) ListActivities(playlistID, userID string) ([]ActivityView, error) {
	if err := s.guard.VerifyPlaylistAccess(playlistID, userID); err != nil {
		return nil, err
	}

	entries, err := s.repos.Activities.ListForPlaylist(playlistID)
	if err != nil {
		return nil, apperrors.Wrapf(err, "playlists.Service.ListActivities")
	}

	views := make([]ActivityView, 0, len(entries))
	for _, entry := range entries {
		view := ActivityView{Username: entry.UserID, Title: entry.SongID, Action: entry.Action, Time: entry.Time}
		if user, err := s.users.GetByID(entry.UserID); err == nil {
			view.Username = user.Username
		}
		if song, err := s.songs.Get(entry.SongID); err == nil {
			view.Title = song.Title
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *Service) record(playlistID, songID, userID string, action Action) error {
	err := s.repos.Activities.Record(&Activity{
		PlaylistID: playlistID,
		SongID:     songID,
		UserID:     userID,
		Action:     action,
		Time:       s.nowFunc(),
	})
	return apperrors.Wrapf(err, "playlists.Service.record %s", action)
}
