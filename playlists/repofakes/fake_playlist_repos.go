package repofakes

import (
	"sort"
	"sync"

	apperrors "github.com/soundcrate/go-music-server/internal/errors"
	"github.com/soundcrate/go-music-server/playlists"
	"github.com/soundcrate/go-music-server/users"
)

// NewFakeRepos builds a wired set of in-memory playlist repos. The playlist
// fake consults the user repo for owner usernames and the other fakes for
// collaboration listings and delete cascades, mirroring what the Postgres
// implementation does with joins and cascaded deletes.
func NewFakeRepos(userRepo users.Repo) playlists.Repos {
	memberships := NewFakeMembershipRepo()
	collaborations := NewFakeCollaborationRepo()
	activities := NewFakeActivityRepo()
	return playlists.Repos{
		Playlists:      NewFakePlaylistRepo(userRepo, memberships, collaborations, activities),
		Memberships:    memberships,
		Collaborations: collaborations,
		Activities:     activities,
	}
}

var _ playlists.Repo = (*FakePlaylistRepo)(nil)

type FakePlaylistRepo struct {
	byID           map[string]*playlists.Playlist
	order          []string
	users          users.Repo
	memberships    *FakeMembershipRepo
	collaborations *FakeCollaborationRepo
	activities     *FakeActivityRepo
	lock           sync.RWMutex
}

func NewFakePlaylistRepo(
	userRepo users.Repo,
	memberships *FakeMembershipRepo,
	collaborations *FakeCollaborationRepo,
	activities *FakeActivityRepo,
) *FakePlaylistRepo {
	return &FakePlaylistRepo{
		byID:           make(map[string]*playlists.Playlist),
		users:          userRepo,
		memberships:    memberships,
		collaborations: collaborations,
		activities:     activities,
	}
}

func (pr *FakePlaylistRepo) Create(playlist *playlists.Playlist) error {
	pr.lock.Lock()
	defer pr.lock.Unlock()

	copied := *playlist
	pr.byID[playlist.ID] = &copied
	pr.order = append(pr.order, playlist.ID)
	return nil
}

func (pr *FakePlaylistRepo) Get(id string) (*playlists.Playlist, error) {
	pr.lock.RLock()
	defer pr.lock.RUnlock()

	playlist, ok := pr.byID[id]
	if !ok {
		return nil, apperrors.NotFoundf("playlist %q", id)
	}
	copied := *playlist
	return &copied, nil
}

func (pr *FakePlaylistRepo) Delete(id string) error {
	pr.lock.Lock()
	if _, ok := pr.byID[id]; !ok {
		pr.lock.Unlock()
		return apperrors.NotFoundf("playlist %q", id)
	}
	delete(pr.byID, id)
	pr.lock.Unlock()

	pr.memberships.dropPlaylist(id)
	pr.collaborations.dropPlaylist(id)
	pr.activities.dropPlaylist(id)
	return nil
}

func (pr *FakePlaylistRepo) ListForUser(userID string) ([]playlists.PlaylistWithOwner, error) {
	pr.lock.RLock()
	defer pr.lock.RUnlock()

	listed := make([]playlists.PlaylistWithOwner, 0)
	for _, id := range pr.order {
		playlist, ok := pr.byID[id]
		if !ok {
			continue
		}
		collaborating, _ := pr.collaborations.Exists(id, userID)
		if playlist.OwnerID != userID && !collaborating {
			continue
		}
		username := playlist.OwnerID
		if owner, err := pr.users.GetByID(playlist.OwnerID); err == nil {
			username = owner.Username
		}
		listed = append(listed, playlists.PlaylistWithOwner{ID: playlist.ID, Name: playlist.Name, Username: username})
	}
	return listed, nil
}

var _ playlists.MembershipRepo = (*FakeMembershipRepo)(nil)

type FakeMembershipRepo struct {
	songIDs map[string][]string // playlist ID to song IDs, insertion order
	lock    sync.RWMutex
}

func NewFakeMembershipRepo() *FakeMembershipRepo {
	return &FakeMembershipRepo{songIDs: make(map[string][]string)}
}

func (mr *FakeMembershipRepo) Add(playlistID, songID string) error {
	mr.lock.Lock()
	defer mr.lock.Unlock()

	for _, existing := range mr.songIDs[playlistID] {
		if existing == songID {
			return apperrors.Invariantf("song already in playlist")
		}
	}
	mr.songIDs[playlistID] = append(mr.songIDs[playlistID], songID)
	return nil
}

func (mr *FakeMembershipRepo) Remove(playlistID, songID string) error {
	mr.lock.Lock()
	defer mr.lock.Unlock()

	ids := mr.songIDs[playlistID]
	for i, existing := range ids {
		if existing == songID {
			mr.songIDs[playlistID] = append(ids[:i], ids[i+1:]...)
			return nil
		}
	}
	return apperrors.Invariantf("song not in playlist")
}

func (mr *FakeMembershipRepo) ListSongIDs(playlistID string) ([]string, error) {
	mr.lock.RLock()
	defer mr.lock.RUnlock()

	ids := mr.songIDs[playlistID]
	listed := make([]string, len(ids))
	copy(listed, ids)
	return listed, nil
}

func (mr *FakeMembershipRepo) dropPlaylist(playlistID string) {
	mr.lock.Lock()
	defer mr.lock.Unlock()
	delete(mr.songIDs, playlistID)
}

var _ playlists.CollaborationRepo = (*FakeCollaborationRepo)(nil)

type FakeCollaborationRepo struct {
	pairs map[string]map[string]struct{} // playlist ID to collaborator user IDs
	lock  sync.RWMutex
}

func NewFakeCollaborationRepo() *FakeCollaborationRepo {
	return &FakeCollaborationRepo{pairs: make(map[string]map[string]struct{})}
}

func (cr *FakeCollaborationRepo) Add(playlistID, userID string) error {
	cr.lock.Lock()
	defer cr.lock.Unlock()

	if _, ok := cr.pairs[playlistID][userID]; ok {
		return apperrors.Invariantf("user already collaborates on playlist")
	}
	if cr.pairs[playlistID] == nil {
		cr.pairs[playlistID] = make(map[string]struct{})
	}
	cr.pairs[playlistID][userID] = struct{}{}
	return nil
}

func (cr *FakeCollaborationRepo) Remove(playlistID, userID string) error {
	cr.lock.Lock()
	defer cr.lock.Unlock()

	if _, ok := cr.pairs[playlistID][userID]; !ok {
		return apperrors.Invariantf("user does not collaborate on playlist")
	}
	delete(cr.pairs[playlistID], userID)
	return nil
}

func (cr *FakeCollaborationRepo) Exists(playlistID, userID string) (bool, error) {
	cr.lock.RLock()
	defer cr.lock.RUnlock()

	_, ok := cr.pairs[playlistID][userID]
	return ok, nil
}

func (cr *FakeCollaborationRepo) dropPlaylist(playlistID string) {
	cr.lock.Lock()
	defer cr.lock.Unlock()
	delete(cr.pairs, playlistID)
}

var _ playlists.ActivityRepo = (*FakeActivityRepo)(nil)

type FakeActivityRepo struct {
	entries map[string][]playlists.Activity
	nextID  uint
	lock    sync.RWMutex
}

func NewFakeActivityRepo() *FakeActivityRepo {
	return &FakeActivityRepo{entries: make(map[string][]playlists.Activity)}
}

func (ar *FakeActivityRepo) Record(activity *playlists.Activity) error {
	ar.lock.Lock()
	defer ar.lock.Unlock()

	ar.nextID++
	stored := *activity
	stored.ID = ar.nextID
	ar.entries[activity.PlaylistID] = append(ar.entries[activity.PlaylistID], stored)
	return nil
}

func (ar *FakeActivityRepo) ListForPlaylist(playlistID string) ([]playlists.Activity, error) {
	ar.lock.RLock()
	defer ar.lock.RUnlock()

	entries := ar.entries[playlistID]
	listed := make([]playlists.Activity, len(entries))
	copy(listed, entries)
	sort.SliceStable(listed, func(i, j int) bool {
		return listed[i].Time.Before(listed[j].Time)
	})
	return listed, nil
}

func (ar *FakeActivityRepo) dropPlaylist(playlistID string) {
	ar.lock.Lock()
	defer ar.lock.Unlock()
	delete(ar.entries, playlistID)
}
