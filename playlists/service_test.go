package playlists_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/soundcrate/go-music-server/internal/errors"
	"github.com/soundcrate/go-music-server/playlists"
	"github.com/soundcrate/go-music-server/playlists/repofakes"
	"github.com/soundcrate/go-music-server/songs"
	songfake "github.com/soundcrate/go-music-server/songs/repofake"
	"github.com/soundcrate/go-music-server/users"
	userfake "github.com/soundcrate/go-music-server/users/repofake"
)

type testFixture struct {
	userRepo *userfake.FakeUserRepo
	songRepo *songfake.FakeSongRepo
	service  *playlists.Service
	now      time.Time
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()

	f := &testFixture{
		userRepo: userfake.NewFakeUserRepo(),
		songRepo: songfake.NewFakeSongRepo(),
		now:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	f.service = playlists.NewService(
		repofakes.NewFakeRepos(f.userRepo),
		songs.NewService(f.songRepo),
		users.NewService(f.userRepo),
		playlists.WithNowFunc(func() time.Time {
			f.now = f.now.Add(time.Second)
			return f.now
		}),
	)
	return f
}

func (f *testFixture) createUser(t *testing.T, username string) string {
	t.Helper()

	user := &users.User{ID: users.NewID(), Username: username, PasswordHash: "x", FullName: username}
	require.NoError(t, f.userRepo.Create(user))
	return user.ID
}

func (f *testFixture) createSong(t *testing.T, title, performer string) string {
	t.Helper()

	song := &songs.Song{ID: songs.NewID(), Title: title, Year: 2020, Genre: "rock", Performer: performer}
	require.NoError(t, f.songRepo.Create(song))
	return song.ID
}

func TestVerifyPlaylistOwner(t *testing.T) {
	f := setupTestFixture(t)
	owner := f.createUser(t, "owner")
	stranger := f.createUser(t, "stranger")

	playlistID, err := f.service.Create("roadtrip", owner)
	require.NoError(t, err)

	require.NoError(t, f.service.Guard().VerifyPlaylistOwner(playlistID, owner))

	err = f.service.Guard().VerifyPlaylistOwner(playlistID, stranger)
	require.ErrorIs(t, err, apperrors.ErrAuthorization)

	err = f.service.Guard().VerifyPlaylistOwner("playlist-missing", owner)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestVerifyPlaylistAccess(t *testing.T) {
	f := setupTestFixture(t)
	owner := f.createUser(t, "owner")
	collaborator := f.createUser(t, "collaborator")
	stranger := f.createUser(t, "stranger")

	playlistID, err := f.service.Create("roadtrip", owner)
	require.NoError(t, err)
	require.NoError(t, f.service.AddCollaborator(playlistID, collaborator, owner))

	require.NoError(t, f.service.Guard().VerifyPlaylistAccess(playlistID, owner))
	require.NoError(t, f.service.Guard().VerifyPlaylistAccess(playlistID, collaborator))

	err = f.service.Guard().VerifyPlaylistAccess(playlistID, stranger)
	require.ErrorIs(t, err, apperrors.ErrAuthorization)

	err = f.service.Guard().VerifyPlaylistAccess("playlist-missing", owner)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

// failingPlaylistRepo simulates a store outage: every operation fails with
// an unclassified error.
type failingPlaylistRepo struct {
	err error
}

func (r *failingPlaylistRepo) Create(*playlists.Playlist) error { return r.err }

func (r *failingPlaylistRepo) Get(string) (*playlists.Playlist, error) { return nil, r.err }

func (r *failingPlaylistRepo) Delete(string) error { return r.err }

func (r *failingPlaylistRepo) ListForUser(string) ([]playlists.PlaylistWithOwner, error) {
	return nil, r.err
}

func TestAccessCheckPropagatesStoreFaults(t *testing.T) {
	storeErr := errors.New("connection refused")
	guard := playlists.NewGuard(&failingPlaylistRepo{err: storeErr}, repofakes.NewFakeCollaborationRepo())

	// A store fault during the ownership lookup is not an authorization
	// verdict; it must reach the caller unclassified.
	err := guard.VerifyPlaylistAccess("playlist-1", "user-1")
	require.Error(t, err)
	require.NotErrorIs(t, err, apperrors.ErrAuthorization)
	require.NotErrorIs(t, err, apperrors.ErrNotFound)
	require.ErrorIs(t, err, storeErr)
}

func TestCollaboratorLifecycle(t *testing.T) {
	f := setupTestFixture(t)
	userA := f.createUser(t, "usera")
	userB := f.createUser(t, "userb")
	songID := f.createSong(t, "Highway Song", "The Drivers")

	playlistID, err := f.service.Create("roadtrip", userA)
	require.NoError(t, err)

	// B has no rights yet.
	err = f.service.AddSong(playlistID, songID, userB)
	require.ErrorIs(t, err, apperrors.ErrAuthorization)

	// A grants B collaboration; B can now mutate the song set.
	require.NoError(t, f.service.AddCollaborator(playlistID, userB, userA))
	require.NoError(t, f.service.AddSong(playlistID, songID, userB))

	// Collaboration does not confer delete rights.
	err = f.service.Delete(playlistID, userB)
	require.ErrorIs(t, err, apperrors.ErrAuthorization)

	// Nor collaborator management rights.
	userC := f.createUser(t, "userc")
	err = f.service.AddCollaborator(playlistID, userC, userB)
	require.ErrorIs(t, err, apperrors.ErrAuthorization)

	// Revoking the grant removes B's access again.
	require.NoError(t, f.service.RemoveCollaborator(playlistID, userB, userA))
	err = f.service.AddSong(playlistID, songID, userB)
	require.ErrorIs(t, err, apperrors.ErrAuthorization)
}

func TestAddCollaboratorChecks(t *testing.T) {
	f := setupTestFixture(t)
	owner := f.createUser(t, "owner")
	collaborator := f.createUser(t, "collaborator")

	playlistID, err := f.service.Create("roadtrip", owner)
	require.NoError(t, err)

	err = f.service.AddCollaborator(playlistID, "user-missing", owner)
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, f.service.AddCollaborator(playlistID, collaborator, owner))
	err = f.service.AddCollaborator(playlistID, collaborator, owner)
	require.ErrorIs(t, err, apperrors.ErrInvariant)

	require.NoError(t, f.service.RemoveCollaborator(playlistID, collaborator, owner))
	err = f.service.RemoveCollaborator(playlistID, collaborator, owner)
	require.ErrorIs(t, err, apperrors.ErrInvariant)
}

func TestSongMembershipAndDetail(t *testing.T) {
	f := setupTestFixture(t)
	owner := f.createUser(t, "owner")
	first := f.createSong(t, "First Track", "Band A")
	second := f.createSong(t, "Second Track", "Band B")

	playlistID, err := f.service.Create("mixtape", owner)
	require.NoError(t, err)

	err = f.service.AddSong(playlistID, "song-missing", owner)
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, f.service.AddSong(playlistID, first, owner))
	require.NoError(t, f.service.AddSong(playlistID, second, owner))

	detail, err := f.service.GetDetail(playlistID, owner)
	require.NoError(t, err)
	require.Equal(t, "mixtape", detail.Name)
	require.Equal(t, "owner", detail.Username)
	require.Len(t, detail.Songs, 2)
	require.Equal(t, "First Track", detail.Songs[0].Title)
	require.Equal(t, "Second Track", detail.Songs[1].Title)

	require.NoError(t, f.service.RemoveSong(playlistID, first, owner))
	err = f.service.RemoveSong(playlistID, first, owner)
	require.ErrorIs(t, err, apperrors.ErrInvariant)
}

func TestActivityLogOrderedAscending(t *testing.T) {
	f := setupTestFixture(t)
	owner := f.createUser(t, "owner")
	songID := f.createSong(t, "Looped Song", "Repeaters")

	playlistID, err := f.service.Create("history", owner)
	require.NoError(t, err)

	require.NoError(t, f.service.AddSong(playlistID, songID, owner))
	require.NoError(t, f.service.RemoveSong(playlistID, songID, owner))
	require.NoError(t, f.service.AddSong(playlistID, songID, owner))

	activities, err := f.service.ListActivities(playlistID, owner)
	require.NoError(t, err)
	require.Len(t, activities, 3)
	require.Equal(t, playlists.ActionAdd, activities[0].Action)
	require.Equal(t, playlists.ActionDelete, activities[1].Action)
	require.Equal(t, playlists.ActionAdd, activities[2].Action)
	require.Equal(t, "owner", activities[0].Username)
	require.Equal(t, "Looped Song", activities[0].Title)
	require.True(t, activities[0].Time.Before(activities[1].Time))
	require.True(t, activities[1].Time.Before(activities[2].Time))

	// Activity is visible to the owner and collaborators only.
	stranger := f.createUser(t, "stranger")
	_, err = f.service.ListActivities(playlistID, stranger)
	require.ErrorIs(t, err, apperrors.ErrAuthorization)
}

func TestListForUserIncludesCollaborations(t *testing.T) {
	f := setupTestFixture(t)
	userA := f.createUser(t, "usera")
	userB := f.createUser(t, "userb")

	ownPlaylist, err := f.service.Create("own", userB)
	require.NoError(t, err)
	sharedPlaylist, err := f.service.Create("shared", userA)
	require.NoError(t, err)
	_, err = f.service.Create("private", userA)
	require.NoError(t, err)

	require.NoError(t, f.service.AddCollaborator(sharedPlaylist, userB, userA))

	listed, err := f.service.ListForUser(userB)
	require.NoError(t, err)
	require.Len(t, listed, 2)

	ids := []string{listed[0].ID, listed[1].ID}
	require.Contains(t, ids, ownPlaylist)
	require.Contains(t, ids, sharedPlaylist)
}

func TestDeleteCascades(t *testing.T) {
	f := setupTestFixture(t)
	owner := f.createUser(t, "owner")
	songID := f.createSong(t, "Gone Song", "Leavers")

	playlistID, err := f.service.Create("doomed", owner)
	require.NoError(t, err)
	require.NoError(t, f.service.AddSong(playlistID, songID, owner))

	require.NoError(t, f.service.Delete(playlistID, owner))

	_, err = f.service.GetDetail(playlistID, owner)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}
