package gateway

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mcdev12/walkup/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRosterRequest() *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/roster", nil)
	req.Header.Set("x-team-slug", "ducks")
	return req
}

func testRoster() *fakeRosterApp {
	return &fakeRosterApp{members: []models.RosterMember{
		{ID: "casey", TeamID: "team_ducks", Number: "3", First: "Casey", Last: "Jones", Status: models.MemberStatusActive},
	}}
}

func TestGetRosterWithCoachKey(t *testing.T) {
	h := NewRosterHandler(&fakeTeams{team: testTeam()}, testRoster(), testAdminKey)

	req := newRosterRequest()
	req.Header.Set("x-coach-key", "coach-key")
	rec := httptest.NewRecorder()
	h.HandleGetRoster(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["ok"])

	roster, ok := body["roster"].([]interface{})
	require.True(t, ok)
	require.Len(t, roster, 1)
	assert.Equal(t, "casey", roster[0].(map[string]interface{})["id"])
}

func TestGetRosterWithAdminKey(t *testing.T) {
	h := NewRosterHandler(&fakeTeams{team: testTeam()}, testRoster(), testAdminKey)

	req := newRosterRequest()
	req.Header.Set("x-admin-key", testAdminKey)
	rec := httptest.NewRecorder()
	h.HandleGetRoster(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetRosterRejectsWrongKey(t *testing.T) {
	h := NewRosterHandler(&fakeTeams{team: testTeam()}, testRoster(), testAdminKey)

	req := newRosterRequest()
	req.Header.Set("x-coach-key", "wrong-key")
	rec := httptest.NewRecorder()
	h.HandleGetRoster(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetRosterMissingSlug(t *testing.T) {
	h := NewRosterHandler(&fakeTeams{team: testTeam()}, testRoster(), testAdminKey)

	req := httptest.NewRequest(http.MethodGet, "/api/roster", nil)
	req.Header.Set("x-coach-key", "coach-key")
	rec := httptest.NewRecorder()
	h.HandleGetRoster(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetRosterUnknownTeam(t *testing.T) {
	h := NewRosterHandler(&fakeTeams{}, testRoster(), testAdminKey)

	req := newRosterRequest()
	req.Header.Set("x-coach-key", "coach-key")
	rec := httptest.NewRecorder()
	h.HandleGetRoster(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
