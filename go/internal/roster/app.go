package roster

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/walkup/go/internal/models"
	"github.com/mcdev12/walkup/go/internal/slug"
)

// RosterRepository defines what the app layer needs from the repository
type RosterRepository interface {
	UpsertMember(ctx context.Context, req UpsertMemberRequest) (*models.RosterMember, error)
	SoftDeleteMember(ctx context.Context, teamID, id string, now time.Time) (int64, error)
	ListActiveMembers(ctx context.Context, teamID string) ([]models.RosterMember, error)
	ListActiveMemberIDs(ctx context.Context, teamID string) ([]string, error)
}

// App handles roster business logic
type App struct {
	repo  RosterRepository
	clock clockwork.Clock
}

// NewApp creates a new roster App
func NewApp(repo RosterRepository, clock clockwork.Clock) *App {
	return &App{
		repo:  repo,
		clock: clock,
	}
}

// Upsert creates a member, or revives and overwrites one when the id already
// exists for the team in any lifecycle state. An empty id is derived from
// the player's name plus a short random disambiguator.
func (a *App) Upsert(ctx context.Context, teamID, id, number, first, last string) (*models.RosterMember, error) {
	first = strings.TrimSpace(first)
	last = strings.TrimSpace(last)
	if first == "" || last == "" {
		return nil, fmt.Errorf("%w: first and last are required", ErrValidation)
	}

	id = strings.TrimSpace(id)
	if id == "" {
		base := slug.Make(first + "-" + last)
		if base == "" {
			base = "player"
		}
		id = base + "-" + shortID()
	} else if s := slug.Make(id); s != "" {
		id = s
	}

	member, err := a.repo.UpsertMember(ctx, UpsertMemberRequest{
		ID:     id,
		TeamID: teamID,
		Number: strings.TrimSpace(number),
		First:  first,
		Last:   last,
		Now:    a.clock.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Upserted roster member %s for team %s", member.ID, teamID)
	return member, nil
}

// SoftDelete marks a member deleted. Deleting an absent or already-deleted
// member is a no-op success.
func (a *App) SoftDelete(ctx context.Context, teamID, id string) error {
	_, err := a.repo.SoftDeleteMember(ctx, teamID, strings.TrimSpace(id), a.clock.Now().UTC())
	return err
}

// ListActive returns the active roster in display order: purely numeric
// jersey numbers ascending, then everything else, ties broken by last and
// first name case-insensitively.
func (a *App) ListActive(ctx context.Context, teamID string) ([]models.RosterMember, error) {
	members, err := a.repo.ListActiveMembers(ctx, teamID)
	if err != nil {
		return nil, err
	}

	sortMembers(members)
	return members, nil
}

// ActiveIDSet returns the set of active member ids, the membership check
// the lineup engine runs on every touch.
func (a *App) ActiveIDSet(ctx context.Context, teamID string) (map[string]struct{}, error) {
	ids, err := a.repo.ListActiveMemberIDs(ctx, teamID)
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

func sortMembers(members []models.RosterMember) {
	sort.SliceStable(members, func(i, j int) bool {
		ni, iNum := jerseyValue(members[i].Number)
		nj, jNum := jerseyValue(members[j].Number)
		switch {
		case iNum && !jNum:
			return true
		case !iNum && jNum:
			return false
		case iNum && jNum && ni != nj:
			return ni < nj
		}

		li, lj := strings.ToLower(members[i].Last), strings.ToLower(members[j].Last)
		if li != lj {
			return li < lj
		}
		return strings.ToLower(members[i].First) < strings.ToLower(members[j].First)
	})
}

// jerseyValue parses a jersey number for sorting. Only non-empty, purely
// numeric values count as numeric; "00" is 0, "K9" sorts with the text.
func jerseyValue(number string) (int, bool) {
	if number == "" {
		return 0, false
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(number)
	if err != nil {
		return 0, false
	}
	return n, true
}

func shortID() string {
	return uuid.NewString()[:8]
}
