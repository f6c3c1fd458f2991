package repofake

import (
	"strings"
	"sync"

	apperrors "github.com/soundcrate/go-music-server/internal/errors"
	"github.com/soundcrate/go-music-server/songs"
)

var _ songs.Repo = (*FakeSongRepo)(nil)

type FakeSongRepo struct {
	byID  map[string]*songs.Song
	order []string // insertion order for stable listings
	lock  sync.RWMutex
}

func NewFakeSongRepo() *FakeSongRepo {
	return &FakeSongRepo{byID: make(map[string]*songs.Song)}
}

func (sr *FakeSongRepo) Create(song *songs.Song) error {
	sr.lock.Lock()
	defer sr.lock.Unlock()

	copied := *song
	sr.byID[song.ID] = &copied
	sr.order = append(sr.order, song.ID)
	return nil
}

func (sr *FakeSongRepo) List(filter songs.Filter) ([]songs.Song, error) {
	sr.lock.RLock()
	defer sr.lock.RUnlock()

	listed := make([]songs.Song, 0)
	for _, id := range sr.order {
		song, ok := sr.byID[id]
		if !ok {
			continue
		}
		if filter.Title != "" && !strings.Contains(strings.ToLower(song.Title), strings.ToLower(filter.Title)) {
			continue
		}
		if filter.Performer != "" && !strings.Contains(strings.ToLower(song.Performer), strings.ToLower(filter.Performer)) {
			continue
		}
		listed = append(listed, *song)
	}
	return listed, nil
}

func (sr *FakeSongRepo) ListByAlbum(albumID string) ([]songs.Song, error) {
	sr.lock.RLock()
	defer sr.lock.RUnlock()

	listed := make([]songs.Song, 0)
	for _, id := range sr.order {
		song, ok := sr.byID[id]
		if !ok || song.AlbumID == nil || *song.AlbumID != albumID {
			continue
		}
		listed = append(listed, *song)
	}
	return listed, nil
}

func (sr *FakeSongRepo) Get(id string) (*songs.Song, error) {
	sr.lock.RLock()
	defer sr.lock.RUnlock()

	song, ok := sr.byID[id]
	if !ok {
		return nil, apperrors.NotFoundf("song %q", id)
	}
	copied := *song
	return &copied, nil
}

func (sr *FakeSongRepo) Update(song *songs.Song) error {
	sr.lock.Lock()
	defer sr.lock.Unlock()

	if _, ok := sr.byID[song.ID]; !ok {
		return apperrors.NotFoundf("song %q", song.ID)
	}
	copied := *song
	sr.byID[song.ID] = &copied
	return nil
}

func (sr *FakeSongRepo) Delete(id string) error {
	sr.lock.Lock()
	defer sr.lock.Unlock()

	if _, ok := sr.byID[id]; !ok {
		return apperrors.NotFoundf("song %q", id)
	}
	delete(sr.byID, id)
	return nil
}
