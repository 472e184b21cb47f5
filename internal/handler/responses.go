package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/MishkaBot_Go/internal/domain"
	"github.com/osse101/MishkaBot_Go/internal/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing the header so an encode failure can still be a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and writes the status and message it maps to
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, msg := mapServiceError(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceCallFailed, "op", op, "error", err)
	} else {
		log.Info(LogMsgServiceCallFailed, "op", op, "error", err)
	}
	respondError(w, status, msg)
}

// mapServiceError converts domain errors to HTTP status codes and user-facing messages.
// Anything unrecognised is a 500 with a generic message.
func mapServiceError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrRoundAlreadyActive):
		return http.StatusConflict, ErrMsgRoundActive
	case errors.Is(err, domain.ErrNoJokesAvailable):
		return http.StatusNotFound, ErrMsgNoJokes
	case errors.Is(err, domain.ErrGuildDisabled):
		return http.StatusForbidden, ErrMsgGuildDisabled
	case errors.Is(err, domain.ErrNotAdmin), errors.Is(err, domain.ErrNotOwner):
		return http.StatusForbidden, ErrMsgForbidden
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, ErrMsgSessionNotFound
	case errors.Is(err, domain.ErrJokeNotFound):
		return http.StatusNotFound, ErrMsgJokeNotFound
	case errors.Is(err, domain.ErrJokeExists):
		return http.StatusConflict, ErrMsgJokeExists
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestSummary
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
