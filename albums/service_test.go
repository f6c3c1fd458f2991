package albums_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/soundcrate/go-music-server/albums"
	"github.com/soundcrate/go-music-server/albums/repofake"
	apperrors "github.com/soundcrate/go-music-server/internal/errors"
)

func TestAlbumLifecycle(t *testing.T) {
	service := albums.NewService(repofake.NewFakeAlbumRepo())

	albumID, err := service.Create("Viva la Vida", 2008)
	require.NoError(t, err)

	album, err := service.Get(albumID)
	require.NoError(t, err)
	require.Equal(t, "Viva la Vida", album.Name)
	require.Equal(t, 2008, album.Year)

	require.NoError(t, service.Update(albumID, "Parachutes", 2000))
	album, err = service.Get(albumID)
	require.NoError(t, err)
	require.Equal(t, "Parachutes", album.Name)

	require.NoError(t, service.Delete(albumID))
	_, err = service.Get(albumID)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUnknownAlbum(t *testing.T) {
	service := albums.NewService(repofake.NewFakeAlbumRepo())

	_, err := service.Get("album-missing")
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	err = service.Update("album-missing", "X", 2000)
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	err = service.Delete("album-missing")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}
