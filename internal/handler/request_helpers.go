package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/MishkaBot_Go/internal/logger"
)

// URL parameter names
const (
	ParamGuildID    = "guildID"
	ParamJokeNumber = "number"
)

// guildIDRule matches Discord snowflakes
const guildIDRule = "required,numeric,max=20"

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error the response has already been written and the handler should return.
//
//	var req AddJokeRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Add joke"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// guildIDParam reads and validates the {guildID} path segment.
// If ok is false the response has already been written.
func guildIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	guildID := chi.URLParam(r, ParamGuildID)
	if err := GetValidator().ValidateVar(guildID, guildIDRule); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidGuildID)
		return "", false
	}
	return guildID, true
}
