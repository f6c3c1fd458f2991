package server

import (
	"net/http"
)

// PostUserHandler registers a new user.
func (s *Server) PostUserHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Username string `json:"username"`
			Password string `json:"password"`
			FullName string `json:"fullname"`
		}
		if err := decodeBody(r, &payload); err != nil {
			writeFail(w, http.StatusBadRequest, "invalid request payload")
			return
		}
		if payload.Username == "" || payload.Password == "" || payload.FullName == "" {
			writeFail(w, http.StatusBadRequest, "username, password and fullname are required")
			return
		}

		userID, err := s.services.Auth.Register(payload.Username, payload.Password, payload.FullName)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, http.StatusCreated, map[string]string{"userId": userID})
	}
}

// PostAuthenticationHandler logs a user in and issues a token pair.
func (s *Server) PostAuthenticationHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := decodeBody(r, &payload); err != nil {
			writeFail(w, http.StatusBadRequest, "invalid request payload")
			return
		}
		if payload.Username == "" || payload.Password == "" {
			writeFail(w, http.StatusBadRequest, "username and password are required")
			return
		}

		accessToken, refreshToken, err := s.services.Auth.Login(payload.Username, payload.Password)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, http.StatusCreated, map[string]string{
			"accessToken":  accessToken,
			"refreshToken": refreshToken,
		})
	}
}

// PutAuthenticationHandler exchanges a refresh token for a new access token.
func (s *Server) PutAuthenticationHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			RefreshToken string `json:"refreshToken"`
		}
		if err := decodeBody(r, &payload); err != nil || payload.RefreshToken == "" {
			writeFail(w, http.StatusBadRequest, "refreshToken is required")
			return
		}

		accessToken, err := s.services.Auth.Refresh(payload.RefreshToken)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, http.StatusOK, map[string]string{"accessToken": accessToken})
	}
}

// DeleteAuthenticationHandler revokes a refresh token.
func (s *Server) DeleteAuthenticationHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			RefreshToken string `json:"refreshToken"`
		}
		if err := decodeBody(r, &payload); err != nil || payload.RefreshToken == "" {
			writeFail(w, http.StatusBadRequest, "refreshToken is required")
			return
		}

		if err := s.services.Auth.Logout(payload.RefreshToken); err != nil {
			writeError(w, err)
			return
		}
		writeMessage(w, http.StatusOK, "refresh token deleted")
	}
}
