package gateway

import (
	"context"
	"net/http"

	"github.com/mcdev12/walkup/go/internal/models"
)

// RosterApp defines what the gateway needs from the roster store
type RosterApp interface {
	Upsert(ctx context.Context, teamID, id, number, first, last string) (*models.RosterMember, error)
	SoftDelete(ctx context.Context, teamID, id string) error
	ListActive(ctx context.Context, teamID string) ([]models.RosterMember, error)
}

type rosterResponse struct {
	OK     bool                  `json:"ok"`
	Team   teamInfo              `json:"team"`
	Roster []models.RosterMember `json:"roster"`
}

// RosterHandler serves the roster listing used by coaches and admins
type RosterHandler struct {
	teams    TeamResolver
	roster   RosterApp
	adminKey string
}

// NewRosterHandler creates a new roster handler
func NewRosterHandler(teams TeamResolver, rosterApp RosterApp, adminKey string) *RosterHandler {
	return &RosterHandler{
		teams:    teams,
		roster:   rosterApp,
		adminKey: adminKey,
	}
}

// RegisterRoutes registers the roster endpoint
func (h *RosterHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/roster", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h.HandleGetRoster(w, r)
	})
}

// HandleGetRoster handles GET /api/roster. Either the team's coach key or
// the admin key grants access.
func (h *RosterHandler) HandleGetRoster(w http.ResponseWriter, r *http.Request) {
	slug := teamSlugFrom(r)
	if slug == "" {
		writeError(w, http.StatusBadRequest, "Missing team (x-team-slug)")
		return
	}

	team, err := h.teams.Resolve(r.Context(), slug)
	if err != nil {
		writeAppError(w, err)
		return
	}

	isAdmin := h.adminKey != "" && adminKeyFrom(r) == h.adminKey
	isCoach := coachKeyFrom(r) != "" && coachKeyFrom(r) == team.CoachKey
	if !isAdmin && !isCoach {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	members, err := h.roster.ListActive(r.Context(), team.ID)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rosterResponse{
		OK:     true,
		Team:   teamInfo{Slug: team.Slug, Name: team.Name},
		Roster: members,
	})
}
