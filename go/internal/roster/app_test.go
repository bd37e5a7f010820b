package roster

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/walkup/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo is an in-memory RosterRepository keyed by (teamID, id).
type fakeRepo struct {
	members map[string]*models.RosterMember
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{members: make(map[string]*models.RosterMember)}
}

func key(teamID, id string) string { return teamID + "/" + id }

func (f *fakeRepo) UpsertMember(ctx context.Context, req UpsertMemberRequest) (*models.RosterMember, error) {
	k := key(req.TeamID, req.ID)
	existing, ok := f.members[k]
	createdAt := req.Now
	if ok {
		createdAt = existing.CreatedAt
	}
	member := &models.RosterMember{
		ID:        req.ID,
		TeamID:    req.TeamID,
		Number:    req.Number,
		First:     req.First,
		Last:      req.Last,
		Status:    models.MemberStatusActive,
		CreatedAt: createdAt,
		UpdatedAt: req.Now,
	}
	f.members[k] = member
	out := *member
	return &out, nil
}

func (f *fakeRepo) SoftDeleteMember(ctx context.Context, teamID, id string, now time.Time) (int64, error) {
	member, ok := f.members[key(teamID, id)]
	if !ok || member.Status != models.MemberStatusActive {
		return 0, nil
	}
	member.Status = models.MemberStatusDeleted
	member.DeletedAt = &now
	member.UpdatedAt = now
	return 1, nil
}

func (f *fakeRepo) ListActiveMembers(ctx context.Context, teamID string) ([]models.RosterMember, error) {
	var out []models.RosterMember
	for _, m := range f.members {
		if m.TeamID == teamID && m.Status == models.MemberStatusActive {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListActiveMemberIDs(ctx context.Context, teamID string) ([]string, error) {
	members, _ := f.ListActiveMembers(ctx, teamID)
	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = m.ID
	}
	return ids, nil
}

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestApp(repo *fakeRepo) *App {
	return NewApp(repo, clockwork.NewFakeClockAt(testNow))
}

func TestUpsertDerivesID(t *testing.T) {
	app := newTestApp(newFakeRepo())

	member, err := app.Upsert(context.Background(), "team_ducks", "", "10", "Sammy", "O'Neil")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(member.ID, "sammy-o-neil-"), "got id %q", member.ID)
	assert.Len(t, member.ID, len("sammy-o-neil-")+8)
	assert.Equal(t, models.MemberStatusActive, member.Status)
	assert.Equal(t, testNow, member.CreatedAt)
}

func TestUpsertDerivedIDsAreUnique(t *testing.T) {
	app := newTestApp(newFakeRepo())

	a, err := app.Upsert(context.Background(), "team_ducks", "", "1", "Sam", "Hill")
	require.NoError(t, err)
	b, err := app.Upsert(context.Background(), "team_ducks", "", "2", "Sam", "Hill")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestUpsertNormalizesExplicitID(t *testing.T) {
	app := newTestApp(newFakeRepo())

	member, err := app.Upsert(context.Background(), "team_ducks", "Big Mike!", "7", "Mike", "Green")
	require.NoError(t, err)
	assert.Equal(t, "big-mike", member.ID)
}

func TestUpsertValidation(t *testing.T) {
	app := newTestApp(newFakeRepo())

	_, err := app.Upsert(context.Background(), "team_ducks", "", "10", "  ", "Hill")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = app.Upsert(context.Background(), "team_ducks", "", "10", "Sam", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpsertRevivesDeletedMember(t *testing.T) {
	repo := newFakeRepo()
	app := newTestApp(repo)
	ctx := context.Background()

	member, err := app.Upsert(ctx, "team_ducks", "casey", "3", "Casey", "Jones")
	require.NoError(t, err)
	require.NoError(t, app.SoftDelete(ctx, "team_ducks", member.ID))

	revived, err := app.Upsert(ctx, "team_ducks", "casey", "30", "Casey", "Jones")
	require.NoError(t, err)
	assert.Equal(t, "casey", revived.ID)
	assert.Equal(t, models.MemberStatusActive, revived.Status)
	assert.Equal(t, "30", revived.Number)

	ids, err := app.ActiveIDSet(ctx, "team_ducks")
	require.NoError(t, err)
	assert.Contains(t, ids, "casey")
}

func TestSoftDeleteIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	app := newTestApp(repo)
	ctx := context.Background()

	member, err := app.Upsert(ctx, "team_ducks", "", "9", "Pat", "Lee")
	require.NoError(t, err)

	require.NoError(t, app.SoftDelete(ctx, "team_ducks", member.ID))
	require.NoError(t, app.SoftDelete(ctx, "team_ducks", member.ID))
	require.NoError(t, app.SoftDelete(ctx, "team_ducks", "never-existed"))

	ids, err := app.ActiveIDSet(ctx, "team_ducks")
	require.NoError(t, err)
	assert.NotContains(t, ids, member.ID)
}

func TestListActiveOrdering(t *testing.T) {
	repo := newFakeRepo()
	app := newTestApp(repo)
	ctx := context.Background()

	seed := []struct{ id, number, first, last string }{
		{"ten", "10", "Ann", "Young"},
		{"two", "2", "Bo", "Adams"},
		{"dz", "00", "Cal", "Marsh"},
		{"kn", "K9", "Dee", "Nolan"},
		{"blank", "", "Eve", "Cruz"},
	}
	for _, s := range seed {
		_, err := app.Upsert(ctx, "team_ducks", s.id, s.number, s.first, s.last)
		require.NoError(t, err)
	}

	members, err := app.ListActive(ctx, "team_ducks")
	require.NoError(t, err)

	got := make([]string, len(members))
	for i, m := range members {
		got[i] = m.ID
	}
	// Numeric jerseys ascending ("00" counts as 0), then the rest by
	// last name.
	assert.Equal(t, []string{"dz", "two", "ten", "blank", "kn"}, got)
}

func TestListActiveNumericTieBreaksOnName(t *testing.T) {
	repo := newFakeRepo()
	app := newTestApp(repo)
	ctx := context.Background()

	_, err := app.Upsert(ctx, "team_ducks", "z", "5", "Zoe", "Blake")
	require.NoError(t, err)
	_, err = app.Upsert(ctx, "team_ducks", "a", "5", "Ada", "blake")
	require.NoError(t, err)

	members, err := app.ListActive(ctx, "team_ducks")
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "a", members[0].ID, "case-insensitive first-name tiebreak")
	assert.Equal(t, "z", members[1].ID)
}

func TestActiveIDSet(t *testing.T) {
	repo := newFakeRepo()
	app := newTestApp(repo)
	ctx := context.Background()

	_, err := app.Upsert(ctx, "team_ducks", "a", "1", "A", "One")
	require.NoError(t, err)
	_, err = app.Upsert(ctx, "team_ducks", "b", "2", "B", "Two")
	require.NoError(t, err)
	require.NoError(t, app.SoftDelete(ctx, "team_ducks", "b"))
	_, err = app.Upsert(ctx, "team_other", "c", "3", "C", "Three")
	require.NoError(t, err)

	set, err := app.ActiveIDSet(ctx, "team_ducks")
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"a": {}}, set)
}
