package server

import (
	"net/http"

	"github.com/soundcrate/go-music-server/albums"
	"github.com/soundcrate/go-music-server/songs"
)

type albumPayload struct {
	Name string `json:"name"`
	Year int    `json:"year"`
}

func (p albumPayload) validate() (string, bool) {
	if p.Name == "" {
		return "name is required", false
	}
	if p.Year <= 0 {
		return "year must be a positive number", false
	}
	return "", true
}

func (s *Server) PostAlbumHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload albumPayload
		if err := decodeBody(r, &payload); err != nil {
			writeFail(w, http.StatusBadRequest, "invalid request payload")
			return
		}
		if message, ok := payload.validate(); !ok {
			writeFail(w, http.StatusBadRequest, message)
			return
		}

		albumID, err := s.services.Albums.Create(payload.Name, payload.Year)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, http.StatusCreated, map[string]string{"albumId": albumID})
	}
}

// GetAlbumHandler returns an album with its songs.
func (s *Server) GetAlbumHandler() http.HandlerFunc {
	type albumDetail struct {
		*albums.Album
		Songs []songs.Song `json:"songs"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		albumID := r.PathValue("id")

		album, err := s.services.Albums.Get(albumID)
		if err != nil {
			writeError(w, err)
			return
		}
		albumSongs, err := s.services.Songs.ListByAlbum(albumID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, http.StatusOK, map[string]interface{}{
			"album": albumDetail{Album: album, Songs: albumSongs},
		})
	}
}

func (s *Server) PutAlbumHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload albumPayload
		if err := decodeBody(r, &payload); err != nil {
			writeFail(w, http.StatusBadRequest, "invalid request payload")
			return
		}
		if message, ok := payload.validate(); !ok {
			writeFail(w, http.StatusBadRequest, message)
			return
		}

		if err := s.services.Albums.Update(r.PathValue("id"), payload.Name, payload.Year); err != nil {
			writeError(w, err)
			return
		}
		writeMessage(w, http.StatusOK, "album updated")
	}
}

func (s *Server) DeleteAlbumHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.services.Albums.Delete(r.PathValue("id")); err != nil {
			writeError(w, err)
			return
		}
		writeMessage(w, http.StatusOK, "album deleted")
	}
}
