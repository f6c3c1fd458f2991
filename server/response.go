package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	apperrors "github.com/soundcrate/go-music-server/internal/errors"
)

const contentTypeJSON = "application/json; charset=utf-8"

// envelope is the response shape every endpoint produces: status "success"
// with data/message, "fail" for client faults, "error" for server faults.
type envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, body envelope) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeData(w http.ResponseWriter, statusCode int, data interface{}) {
	writeJSON(w, statusCode, envelope{Status: "success", Data: data})
}

func writeMessage(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, envelope{Status: "success", Message: message})
}

func writeFail(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, envelope{Status: "fail", Message: message})
}

func writeServerError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, envelope{Status: "error", Message: "something went wrong on our end"})
}

// writeError maps an error kind to its transport status. Server faults are
// logged with full detail and answered with an opaque message.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrInvariant):
		writeFail(w, http.StatusBadRequest, kindMessage(err, apperrors.ErrInvariant))
	case apperrors.Is(err, apperrors.ErrAuthentication):
		writeFail(w, http.StatusUnauthorized, kindMessage(err, apperrors.ErrAuthentication))
	case apperrors.Is(err, apperrors.ErrAuthorization):
		writeFail(w, http.StatusForbidden, kindMessage(err, apperrors.ErrAuthorization))
	case apperrors.Is(err, apperrors.ErrNotFound):
		writeFail(w, http.StatusNotFound, kindMessage(err, apperrors.ErrNotFound))
	default:
		log.Error().Err(err).Msg("unclassified error")
		writeServerError(w)
	}
}

// kindMessage extracts the human part of a classified error: the message of
// the error that directly wraps the kind sentinel, with the sentinel text
// stripped. Wrap context added further up the chain stays server-side.
func kindMessage(err error, kind error) string {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if errors.Unwrap(e) == kind {
			return strings.TrimSuffix(e.Error(), ": "+kind.Error())
		}
	}
	return strings.TrimSuffix(err.Error(), ": "+kind.Error())
}

// decodeBody parses a JSON request body into dst.
func decodeBody(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
