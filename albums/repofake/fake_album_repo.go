package repofake

import (
	"sync"

	"github.com/soundcrate/go-music-server/albums"
	apperrors "github.com/soundcrate/go-music-server/internal/errors"
)

var _ albums.Repo = (*FakeAlbumRepo)(nil)

type FakeAlbumRepo struct {
	byID map[string]*albums.Album
	lock sync.RWMutex
}

func NewFakeAlbumRepo() *FakeAlbumRepo {
	return &FakeAlbumRepo{byID: make(map[string]*albums.Album)}
}

func (ar *FakeAlbumRepo) Create(album *albums.Album) error {
	ar.lock.Lock()
	defer ar.lock.Unlock()

	copied := *album
	ar.byID[album.ID] = &copied
	return nil
}

func (ar *FakeAlbumRepo) Get(id string) (*albums.Album, error) {
	ar.lock.RLock()
	defer ar.lock.RUnlock()

	album, ok := ar.byID[id]
	if !ok {
		return nil, apperrors.NotFoundf("album %q", id)
	}
	copied := *album
	return &copied, nil
}

func (ar *FakeAlbumRepo) Update(album *albums.Album) error {
	ar.lock.Lock()
	defer ar.lock.Unlock()

	if _, ok := ar.byID[album.ID]; !ok {
		return apperrors.NotFoundf("album %q", album.ID)
	}
	copied := *album
	ar.byID[album.ID] = &copied
	return nil
}

func (ar *FakeAlbumRepo) Delete(id string) error {
	ar.lock.Lock()
	defer ar.lock.Unlock()

	if _, ok := ar.byID[id]; !ok {
		return apperrors.NotFoundf("album %q", id)
	}
	delete(ar.byID, id)
	return nil
}
