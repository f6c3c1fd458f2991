package playlists

import (
	apperrors "github.com/soundcrate/go-music-server/internal/errors"
)

// Guard holds the two authorization predicates that gate every mutating
// playlist, song-membership, collaboration and activity endpoint. There is
// no role hierarchy beyond owner, collaborator and stranger.
type Guard struct {
	playlists      Repo
	collaborations CollaborationRepo
}

func NewGuard(playlists Repo, collaborations CollaborationRepo) *Guard {
	return &Guard{playlists: playlists, collaborations: collaborations}
}

// VerifyPlaylistOwner succeeds iff userID owns the playlist. An unknown
// playlist fails with the ErrNotFound kind, any other user with
// ErrAuthorization.
func (g *Guard) VerifyPlaylistOwner(playlistID, userID string) error {
	playlist, err := g.playlists.Get(playlistID)
	if err != nil {
		return err
	}
	if playlist.OwnerID != userID {
		return apperrors.Authorizationf("user %s does not own playlist %s", userID, playlistID)
	}
	return nil
}

// VerifyPlaylistAccess succeeds for the owner or an accepted collaborator.
// The playlist existence check happens once, in the owner predicate; its
// ErrNotFound passes through unchanged.
func (g *Guard) VerifyPlaylistAccess(playlistID, userID string) error {
	err := g.VerifyPlaylistOwner(playlistID, userID)
	if err == nil {
		return nil
	}
	if !apperrors.Is(err, apperrors.ErrAuthorization) {
		// Unknown playlist or store fault; not an ownership verdict.
		return err
	}

	collaborating, err := g.collaborations.Exists(playlistID, userID)
	if err != nil {
		return apperrors.Wrapf(err, "playlists.Guard.VerifyPlaylistAccess Exists")
	}
	if !collaborating {
		return apperrors.Authorizationf("user %s has no access to playlist %s", userID, playlistID)
	}
	return nil
}
