package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mcdev12/walkup/go/internal/lineup"
	"github.com/mcdev12/walkup/go/internal/models"
	"github.com/mcdev12/walkup/go/internal/teams"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTeams struct {
	team *models.Team
}

func (f *fakeTeams) Resolve(ctx context.Context, slug string) (*models.Team, error) {
	if f.team != nil && slug == f.team.Slug {
		out := *f.team
		return &out, nil
	}
	return nil, teams.ErrTeamNotFound
}

type writeCall struct {
	teamID        string
	clientVersion int64
	order         []string
	pointer       int
}

type fakeLineup struct {
	state     *models.LineupState
	conflict  *models.LineupState
	readErr   error
	lastWrite *writeCall
}

func (f *fakeLineup) Read(ctx context.Context, teamID string) (*models.LineupState, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	out := *f.state
	return &out, nil
}

func (f *fakeLineup) Write(ctx context.Context, teamID string, clientVersion int64, order []string, pointer int) (*models.LineupState, error) {
	f.lastWrite = &writeCall{teamID: teamID, clientVersion: clientVersion, order: order, pointer: pointer}
	if f.conflict != nil {
		return nil, &lineup.ConflictError{Server: f.conflict}
	}
	out := *f.state
	return &out, nil
}

var stateTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testTeam() *models.Team {
	return &models.Team{
		ID:           "team_ducks",
		Slug:         "ducks",
		Name:         "Mighty Ducks",
		CoachKey:     "coach-key",
		SubmitterKey: "submit-key",
		Status:       models.TeamStatusActive,
	}
}

func testState() *models.LineupState {
	return &models.LineupState{
		TeamID:    "team_ducks",
		Order:     []string{"a", "b", "c"},
		Pointer:   1,
		Version:   4,
		UpdatedAt: stateTime,
	}
}

func newStateRequest(t *testing.T, method string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, "/api/coach/state", &buf)
	req.Header.Set("x-team-slug", "ducks")
	req.Header.Set("x-coach-key", "coach-key")
	return req
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestGetStateOK(t *testing.T) {
	h := NewStateHandler(&fakeTeams{team: testTeam()}, &fakeLineup{state: testState()})

	rec := httptest.NewRecorder()
	h.HandleGetState(rec, newStateRequest(t, http.MethodGet, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, []interface{}{"a", "b", "c"}, body["lineupIds"])
	assert.Equal(t, float64(1), body["currentIndex"])
	assert.Equal(t, float64(4), body["version"])
	assert.Equal(t, "2025-06-01T12:00:00Z", body["updatedAt"])

	team, ok := body["team"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "ducks", team["slug"])
	assert.Equal(t, "Mighty Ducks", team["name"])
}

func TestGetStateMissingSlug(t *testing.T) {
	h := NewStateHandler(&fakeTeams{team: testTeam()}, &fakeLineup{state: testState()})

	req := newStateRequest(t, http.MethodGet, nil)
	req.Header.Del("x-team-slug")
	rec := httptest.NewRecorder()
	h.HandleGetState(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, decodeBody(t, rec)["ok"])
}

func TestGetStateMissingKey(t *testing.T) {
	h := NewStateHandler(&fakeTeams{team: testTeam()}, &fakeLineup{state: testState()})

	req := newStateRequest(t, http.MethodGet, nil)
	req.Header.Del("x-coach-key")
	rec := httptest.NewRecorder()
	h.HandleGetState(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetStateWrongKey(t *testing.T) {
	h := NewStateHandler(&fakeTeams{team: testTeam()}, &fakeLineup{state: testState()})

	req := newStateRequest(t, http.MethodGet, nil)
	req.Header.Set("x-coach-key", "wrong-key")
	rec := httptest.NewRecorder()
	h.HandleGetState(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetStateBearerTokenAccepted(t *testing.T) {
	h := NewStateHandler(&fakeTeams{team: testTeam()}, &fakeLineup{state: testState()})

	req := newStateRequest(t, http.MethodGet, nil)
	req.Header.Del("x-coach-key")
	req.Header.Set("Authorization", "Bearer coach-key")
	rec := httptest.NewRecorder()
	h.HandleGetState(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetStateUnknownTeam(t *testing.T) {
	h := NewStateHandler(&fakeTeams{}, &fakeLineup{state: testState()})

	rec := httptest.NewRecorder()
	h.HandleGetState(rec, newStateRequest(t, http.MethodGet, nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPutStateOK(t *testing.T) {
	fl := &fakeLineup{state: testState()}
	h := NewStateHandler(&fakeTeams{team: testTeam()}, fl)

	idx := 2
	req := newStateRequest(t, http.MethodPost, map[string]interface{}{
		"lineupIds":     []string{"c", "a", "b"},
		"currentIndex":  idx,
		"clientVersion": 4,
	})
	rec := httptest.NewRecorder()
	h.HandlePutState(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, fl.lastWrite)
	assert.Equal(t, "team_ducks", fl.lastWrite.teamID)
	assert.Equal(t, int64(4), fl.lastWrite.clientVersion)
	assert.Equal(t, []string{"c", "a", "b"}, fl.lastWrite.order)
	assert.Equal(t, 2, fl.lastWrite.pointer)
}

func TestPutStateMalformedBodyCoercesToZero(t *testing.T) {
	fl := &fakeLineup{state: testState()}
	h := NewStateHandler(&fakeTeams{team: testTeam()}, fl)

	req := httptest.NewRequest(http.MethodPost, "/api/coach/state", bytes.NewBufferString("{not json"))
	req.Header.Set("x-team-slug", "ducks")
	req.Header.Set("x-coach-key", "coach-key")
	rec := httptest.NewRecorder()
	h.HandlePutState(rec, req)

	require.NotNil(t, fl.lastWrite)
	assert.Equal(t, int64(0), fl.lastWrite.clientVersion)
	assert.Nil(t, fl.lastWrite.order)
	assert.Equal(t, 0, fl.lastWrite.pointer)
}

func TestPutStateConflict(t *testing.T) {
	fl := &fakeLineup{
		state: testState(),
		conflict: &models.LineupState{
			TeamID:    "team_ducks",
			Order:     []string{"b", "a"},
			Pointer:   0,
			Version:   5,
			UpdatedAt: stateTime,
		},
	}
	h := NewStateHandler(&fakeTeams{team: testTeam()}, fl)

	req := newStateRequest(t, http.MethodPost, map[string]interface{}{
		"lineupIds":     []string{"a", "b"},
		"clientVersion": 4,
	})
	rec := httptest.NewRecorder()
	h.HandlePutState(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["ok"])
	assert.NotEmpty(t, body["message"])

	server, ok := body["server"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{"b", "a"}, server["lineupIds"])
	assert.Equal(t, float64(0), server["currentIndex"])
	assert.Equal(t, float64(5), server["version"])
}

func TestStateRouteMethodNotAllowed(t *testing.T) {
	h := NewStateHandler(&fakeTeams{team: testTeam()}, &fakeLineup{state: testState()})
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	req := newStateRequest(t, http.MethodDelete, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
