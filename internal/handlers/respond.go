package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"plantstore/internal/apperr"
)

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondServiceError maps the error taxonomy onto HTTP statuses. Transient
// and unexpected failures are logged in full; the client only sees a generic
// message.
func respondServiceError(w http.ResponseWriter, logger zerolog.Logger, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation),
		errors.Is(err, apperr.ErrAlreadyExists),
		errors.Is(err, apperr.ErrInvalidCredentials),
		errors.Is(err, apperr.ErrInvalidID),
		errors.Is(err, apperr.ErrNoOp):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, apperr.ErrTransient):
		logger.Error().Err(err).Msg("Store unavailable")
		respondWithError(w, http.StatusServiceUnavailable, "service temporarily unavailable")
	default:
		logger.Error().Err(err).Msg("Unexpected error")
		respondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}
