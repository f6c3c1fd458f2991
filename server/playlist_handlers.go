package server

import (
	"net/http"
)

func (s *Server) PostPlaylistHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Name string `json:"name"`
		}
		if err := decodeBody(r, &payload); err != nil || payload.Name == "" {
			writeFail(w, http.StatusBadRequest, "name is required")
			return
		}

		playlistID, err := s.services.Playlists.Create(payload.Name, UserIDFromContext(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, http.StatusCreated, map[string]string{"playlistId": playlistID})
	}
}

// GetPlaylistsHandler lists the playlists the requester owns or collaborates
// on, with the owner shown by username.
func (s *Server) GetPlaylistsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listed, err := s.services.Playlists.ListForUser(UserIDFromContext(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, http.StatusOK, map[string]interface{}{"playlists": listed})
	}
}

func (s *Server) DeletePlaylistHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := s.services.Playlists.Delete(r.PathValue("id"), UserIDFromContext(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}
		writeMessage(w, http.StatusOK, "playlist deleted")
	}
}

func (s *Server) PostPlaylistSongHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			SongID string `json:"songId"`
		}
		if err := decodeBody(r, &payload); err != nil || payload.SongID == "" {
			writeFail(w, http.StatusBadRequest, "songId is required")
			return
		}

		err := s.services.Playlists.AddSong(r.PathValue("id"), payload.SongID, UserIDFromContext(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}
		writeMessage(w, http.StatusCreated, "song added to playlist")
	}
}

// GetPlaylistSongsHandler returns the playlist detail: name, owner username
// and songs in insertion order.
func (s *Server) GetPlaylistSongsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		detail, err := s.services.Playlists.GetDetail(r.PathValue("id"), UserIDFromContext(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, http.StatusOK, map[string]interface{}{"playlist": detail})
	}
}

func (s *Server) DeletePlaylistSongHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			SongID string `json:"songId"`
		}
		if err := decodeBody(r, &payload); err != nil || payload.SongID == "" {
			writeFail(w, http.StatusBadRequest, "songId is required")
			return
		}

		err := s.services.Playlists.RemoveSong(r.PathValue("id"), payload.SongID, UserIDFromContext(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}
		writeMessage(w, http.StatusOK, "song removed from playlist")
	}
}

func (s *Server) GetPlaylistActivitiesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playlistID := r.PathValue("id")

		activities, err := s.services.Playlists.ListActivities(playlistID, UserIDFromContext(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, http.StatusOK, map[string]interface{}{
			"playlistId": playlistID,
			"activities": activities,
		})
	}
}

func (s *Server) PostCollaborationHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			PlaylistID string `json:"playlistId"`
			UserID     string `json:"userId"`
		}
		if err := decodeBody(r, &payload); err != nil || payload.PlaylistID == "" || payload.UserID == "" {
			writeFail(w, http.StatusBadRequest, "playlistId and userId are required")
			return
		}

		err := s.services.Playlists.AddCollaborator(payload.PlaylistID, payload.UserID, UserIDFromContext(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}
		writeMessage(w, http.StatusCreated, "collaborator added")
	}
}

func (s *Server) DeleteCollaborationHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			PlaylistID string `json:"playlistId"`
			UserID     string `json:"userId"`
		}
		if err := decodeBody(r, &payload); err != nil || payload.PlaylistID == "" || payload.UserID == "" {
			writeFail(w, http.StatusBadRequest, "playlistId and userId are required")
			return
		}

		err := s.services.Playlists.RemoveCollaborator(payload.PlaylistID, payload.UserID, UserIDFromContext(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}
		writeMessage(w, http.StatusOK, "collaborator removed")
	}
}
