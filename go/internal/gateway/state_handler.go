package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/mcdev12/walkup/go/internal/lineup"
	"github.com/mcdev12/walkup/go/internal/models"
	"github.com/rs/zerolog/log"
)

// TeamResolver resolves the team selector header to an active team
type TeamResolver interface {
	Resolve(ctx context.Context, slug string) (*models.Team, error)
}

// LineupApp defines what the state handler needs from the lineup engine
type LineupApp interface {
	Read(ctx context.Context, teamID string) (*models.LineupState, error)
	Write(ctx context.Context, teamID string, clientVersion int64, order []string, pointer int) (*models.LineupState, error)
}

// teamInfo echoes the resolved team back to the caller
type teamInfo struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// stateResponse is the shared success shape for GET and POST
type stateResponse struct {
	OK           bool     `json:"ok"`
	Team         teamInfo `json:"team"`
	LineupIDs    []string `json:"lineupIds"`
	CurrentIndex int      `json:"currentIndex"`
	UpdatedAt    string   `json:"updatedAt"`
	Version      int64    `json:"version"`
}

// serverState is the authoritative value returned with a version conflict
type serverState struct {
	LineupIDs    []string `json:"lineupIds"`
	CurrentIndex int      `json:"currentIndex"`
	UpdatedAt    string   `json:"updatedAt"`
	Version      int64    `json:"version"`
}

type conflictResponse struct {
	OK      bool        `json:"ok"`
	Message string      `json:"message"`
	Server  serverState `json:"server"`
}

// putStateRequest is the write payload. A malformed body coerces to the
// zero value rather than erroring: an absent order is the empty lineup and
// an absent index is 0.
type putStateRequest struct {
	LineupIDs     []string `json:"lineupIds"`
	CurrentIndex  *int     `json:"currentIndex"`
	ClientVersion int64    `json:"clientVersion"`
}

// StateHandler serves the coach-facing lineup state endpoints
type StateHandler struct {
	teams  TeamResolver
	lineup LineupApp
}

// NewStateHandler creates a new state handler
func NewStateHandler(teams TeamResolver, lineupApp LineupApp) *StateHandler {
	return &StateHandler{
		teams:  teams,
		lineup: lineupApp,
	}
}

// RegisterRoutes registers the coach state endpoint
func (h *StateHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/coach/state", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.HandleGetState(w, r)
		case http.MethodPost:
			h.HandlePutState(w, r)
		default:
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})
}

// HandleGetState handles GET /api/coach/state
func (h *StateHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	team, ok := h.authorize(w, r)
	if !ok {
		return
	}

	state, err := h.lineup.Read(r.Context(), team.ID)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.stateToResponse(team, state))
}

// HandlePutState handles POST /api/coach/state
func (h *StateHandler) HandlePutState(w http.ResponseWriter, r *http.Request) {
	team, ok := h.authorize(w, r)
	if !ok {
		return
	}

	var req putStateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		req = putStateRequest{}
	}
	pointer := 0
	if req.CurrentIndex != nil {
		pointer = *req.CurrentIndex
	}

	state, err := h.lineup.Write(r.Context(), team.ID, req.ClientVersion, req.LineupIDs, pointer)
	if err != nil {
		var conflict *lineup.ConflictError
		if errors.As(err, &conflict) {
			log.Info().
				Str("team_id", team.ID).
				Int64("client_version", req.ClientVersion).
				Int64("server_version", conflict.Server.Version).
				Msg("lineup write rejected by version check")
			writeJSON(w, http.StatusConflict, conflictResponse{
				OK:      false,
				Message: "Conflict: another coach updated the lineup.",
				Server: serverState{
					LineupIDs:    conflict.Server.Order,
					CurrentIndex: conflict.Server.Pointer,
					UpdatedAt:    formatTime(conflict.Server.UpdatedAt),
					Version:      conflict.Server.Version,
				},
			})
			return
		}
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.stateToResponse(team, state))
}

// authorize resolves the team header and checks the coach credential.
// Writes the error response itself when authorization fails.
func (h *StateHandler) authorize(w http.ResponseWriter, r *http.Request) (*models.Team, bool) {
	slug := teamSlugFrom(r)
	if slug == "" {
		writeError(w, http.StatusBadRequest, "Missing team (x-team-slug)")
		return nil, false
	}

	key := coachKeyFrom(r)
	if key == "" {
		writeError(w, http.StatusUnauthorized, "Missing coach key")
		return nil, false
	}

	team, err := h.teams.Resolve(r.Context(), slug)
	if err != nil {
		writeAppError(w, err)
		return nil, false
	}
	if team.CoachKey != key {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}

	return team, true
}

func (h *StateHandler) stateToResponse(team *models.Team, state *models.LineupState) stateResponse {
	return stateResponse{
		OK:           true,
		Team:         teamInfo{Slug: team.Slug, Name: team.Name},
		LineupIDs:    state.Order,
		CurrentIndex: state.Pointer,
		UpdatedAt:    formatTime(state.UpdatedAt),
		Version:      state.Version,
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
