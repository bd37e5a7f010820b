package gateway

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcdev12/walkup/go/internal/lineup"
	"github.com/mcdev12/walkup/go/internal/roster"
	"github.com/mcdev12/walkup/go/internal/teams"
	"github.com/rs/zerolog/log"
)

type errorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{OK: false, Error: msg})
}

// writeAppError maps domain errors onto HTTP statuses. Version conflicts
// carry a payload and are handled by the caller before reaching here.
func writeAppError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, teams.ErrTeamNotFound):
		writeError(w, http.StatusNotFound, "Unknown team")
	case errors.Is(err, lineup.ErrLineupNotFound):
		writeError(w, http.StatusNotFound, "Unknown lineup")
	case errors.Is(err, teams.ErrSlugConflict):
		writeError(w, http.StatusConflict, "That slug already exists.")
	case errors.Is(err, teams.ErrProtectedTeam):
		writeError(w, http.StatusBadRequest, "Cannot delete the default team.")
	case errors.Is(err, teams.ErrValidation), errors.Is(err, roster.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		log.Error().Err(err).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "Internal error")
	}
}
