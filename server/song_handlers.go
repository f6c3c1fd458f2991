package server

import (
	"net/http"

	"github.com/soundcrate/go-music-server/songs"
)

type songPayload struct {
	Title     string  `json:"title"`
	Year      int     `json:"year"`
	Genre     string  `json:"genre"`
	Performer string  `json:"performer"`
	Duration  int     `json:"duration"`
	AlbumID   *string `json:"albumId"`
}

func (p songPayload) validate() (string, bool) {
	if p.Title == "" || p.Genre == "" || p.Performer == "" {
		return "title, genre and performer are required", false
	}
	if p.Year <= 0 {
		return "year must be a positive number", false
	}
	return "", true
}

func (p songPayload) toService() songs.Payload {
	return songs.Payload{
		Title:     p.Title,
		Year:      p.Year,
		Genre:     p.Genre,
		Performer: p.Performer,
		Duration:  p.Duration,
		AlbumID:   p.AlbumID,
	}
}

func (s *Server) PostSongHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload songPayload
		if err := decodeBody(r, &payload); err != nil {
			writeFail(w, http.StatusBadRequest, "invalid request payload")
			return
		}
		if message, ok := payload.validate(); !ok {
			writeFail(w, http.StatusBadRequest, message)
			return
		}

		songID, err := s.services.Songs.Create(payload.toService())
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, http.StatusCreated, map[string]string{"songId": songID})
	}
}

// GetSongsHandler lists songs, optionally narrowed by title and performer
// query parameters.
func (s *Server) GetSongsHandler() http.HandlerFunc {
	type songSummary struct {
		ID        string `json:"id"`
		Title     string `json:"title"`
		Performer string `json:"performer"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		filter := songs.Filter{
			Title:     r.URL.Query().Get("title"),
			Performer: r.URL.Query().Get("performer"),
		}

		listed, err := s.services.Songs.List(filter)
		if err != nil {
			writeError(w, err)
			return
		}

		summaries := make([]songSummary, 0, len(listed))
		for _, song := range listed {
			summaries = append(summaries, songSummary{ID: song.ID, Title: song.Title, Performer: song.Performer})
		}
		writeData(w, http.StatusOK, map[string]interface{}{"songs": summaries})
	}
}

func (s *Server) GetSongHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		song, err := s.services.Songs.Get(r.PathValue("id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, http.StatusOK, map[string]interface{}{"song": song})
	}
}

func (s *Server) PutSongHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload songPayload
		if err := decodeBody(r, &payload); err != nil {
			writeFail(w, http.StatusBadRequest, "invalid request payload")
			return
		}
		if message, ok := payload.validate(); !ok {
			writeFail(w, http.StatusBadRequest, message)
			return
		}

		if err := s.services.Songs.Update(r.PathValue("id"), payload.toService()); err != nil {
			writeError(w, err)
			return
		}
		writeMessage(w, http.StatusOK, "song updated")
	}
}

func (s *Server) DeleteSongHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.services.Songs.Delete(r.PathValue("id")); err != nil {
			writeError(w, err)
			return
		}
		writeMessage(w, http.StatusOK, "song deleted")
	}
}
