package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mcdev12/walkup/go/internal/models"
)

// TeamsApp defines what the admin surface needs from the team registry
type TeamsApp interface {
	Resolve(ctx context.Context, slug string) (*models.Team, error)
	CreateTeam(ctx context.Context, name, coachKey, submitterKey string) (*models.Team, error)
	ListTeams(ctx context.Context) ([]models.Team, error)
	UpdateCredentials(ctx context.Context, slug string, coachKey, submitterKey *string) error
	Deactivate(ctx context.Context, slug string) error
}

// AdminHandler serves the admin console endpoints, all gated on the
// installation-wide admin key.
type AdminHandler struct {
	teams    TeamsApp
	roster   RosterApp
	adminKey string
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(teams TeamsApp, rosterApp RosterApp, adminKey string) *AdminHandler {
	return &AdminHandler{
		teams:    teams,
		roster:   rosterApp,
		adminKey: adminKey,
	}
}

// RegisterRoutes registers the admin endpoints
func (h *AdminHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/admin/teams", h.requireAdmin(h.HandleTeams))
	mux.HandleFunc("/api/admin/roster-upsert", h.requireAdmin(post(h.HandleRosterUpsert)))
	mux.HandleFunc("/api/admin/roster-delete", h.requireAdmin(post(h.HandleRosterDelete)))
	mux.HandleFunc("/api/admin/team-keys", h.requireAdmin(post(h.HandleTeamKeys)))
}

func (h *AdminHandler) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.adminKey == "" || adminKeyFrom(r) != h.adminKey {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next(w, r)
	}
}

func post(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		next(w, r)
	}
}

// HandleTeams dispatches GET (list), POST (create) and DELETE (deactivate)
func (h *AdminHandler) HandleTeams(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleListTeams(w, r)
	case http.MethodPost:
		h.handleCreateTeam(w, r)
	case http.MethodDelete:
		h.handleDeactivateTeam(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (h *AdminHandler) handleListTeams(w http.ResponseWriter, r *http.Request) {
	teamList, err := h.teams.ListTeams(r.Context())
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		OK    bool          `json:"ok"`
		Teams []models.Team `json:"teams"`
	}{OK: true, Teams: teamList})
}

func (h *AdminHandler) handleCreateTeam(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         string `json:"name"`
		CoachKey     string `json:"coachKey"`
		SubmitterKey string `json:"submitterKey"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	team, err := h.teams.CreateTeam(r.Context(), req.Name, req.CoachKey, req.SubmitterKey)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		OK   bool         `json:"ok"`
		Team *models.Team `json:"team"`
	}{OK: true, Team: team})
}

func (h *AdminHandler) handleDeactivateTeam(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Slug string `json:"slug"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.Slug == "" {
		writeError(w, http.StatusBadRequest, "Missing slug")
		return
	}

	if err := h.teams.Deactivate(r.Context(), req.Slug); err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		OK bool `json:"ok"`
	}{OK: true})
}

// HandleRosterUpsert handles POST /api/admin/roster-upsert
func (h *AdminHandler) HandleRosterUpsert(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TeamSlug string `json:"teamSlug"`
		ID       string `json:"id"`
		Number   string `json:"number"`
		First    string `json:"first"`
		Last     string `json:"last"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	team, err := h.teams.Resolve(r.Context(), req.TeamSlug)
	if err != nil {
		writeAppError(w, err)
		return
	}

	member, err := h.roster.Upsert(r.Context(), team.ID, req.ID, req.Number, req.First, req.Last)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		OK     bool                 `json:"ok"`
		Player *models.RosterMember `json:"player"`
	}{OK: true, Player: member})
}

// HandleRosterDelete handles POST /api/admin/roster-delete. Deleting an
// absent or already-deleted member is a no-op success.
func (h *AdminHandler) HandleRosterDelete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TeamSlug string `json:"teamSlug"`
		ID       string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	team, err := h.teams.Resolve(r.Context(), req.TeamSlug)
	if err != nil {
		writeAppError(w, err)
		return
	}

	if err := h.roster.SoftDelete(r.Context(), team.ID, req.ID); err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		OK bool `json:"ok"`
	}{OK: true})
}

// HandleTeamKeys handles POST /api/admin/team-keys (credential rotation)
func (h *AdminHandler) HandleTeamKeys(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Slug         string  `json:"slug"`
		CoachKey     *string `json:"coachKey"`
		SubmitterKey *string `json:"submitterKey"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := h.teams.UpdateCredentials(r.Context(), req.Slug, req.CoachKey, req.SubmitterKey); err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		OK bool `json:"ok"`
	}{OK: true})
}
