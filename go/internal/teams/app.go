package teams

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/walkup/go/internal/models"
	"github.com/mcdev12/walkup/go/internal/slug"
)

// DefaultTeamSlug is the one team that cannot be deactivated.
const DefaultTeamSlug = "default"

// minKeyLen is the minimum length for coach and submitter keys.
const minKeyLen = 4

// TeamsRepository defines what the app layer needs from the repository
type TeamsRepository interface {
	CreateTeamWithLineup(ctx context.Context, req CreateTeamRequest) (*models.Team, error)
	GetTeamBySlug(ctx context.Context, slug string) (*models.Team, error)
	ListTeams(ctx context.Context) ([]models.Team, error)
	UpdateTeamKeys(ctx context.Context, slug string, coachKey, submitterKey *string) (*models.Team, error)
	SoftDeleteTeam(ctx context.Context, slug string, now time.Time) (int64, error)
}

// App handles team registry business logic
type App struct {
	repo  TeamsRepository
	clock clockwork.Clock
}

// NewApp creates a new teams App
func NewApp(repo TeamsRepository, clock clockwork.Clock) *App {
	return &App{
		repo:  repo,
		clock: clock,
	}
}

// CreateTeam registers a team under a slug derived from its name and seeds
// its empty lineup state.
func (a *App) CreateTeam(ctx context.Context, name, coachKey, submitterKey string) (*models.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if err := validateKey("coach key", coachKey); err != nil {
		return nil, err
	}
	if err := validateKey("submitter key", submitterKey); err != nil {
		return nil, err
	}

	s := slug.Make(name)
	if s == "" {
		return nil, fmt.Errorf("%w: name must contain at least one letter or digit", ErrValidation)
	}

	// Cheap pre-check; the partial unique index on active slugs is the
	// authoritative guard and surfaces as ErrSlugConflict from the repo.
	if _, err := a.repo.GetTeamBySlug(ctx, s); err == nil {
		return nil, ErrSlugConflict
	}

	team, err := a.repo.CreateTeamWithLineup(ctx, CreateTeamRequest{
		ID:           teamIDFromSlug(s),
		Slug:         s,
		Name:         name,
		CoachKey:     coachKey,
		SubmitterKey: submitterKey,
		CreatedAt:    a.clock.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Created team: %s (%s)", team.Name, team.Slug)
	return team, nil
}

// Resolve looks up the active team for a slug
func (a *App) Resolve(ctx context.Context, s string) (*models.Team, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil, ErrTeamNotFound
	}
	return a.repo.GetTeamBySlug(ctx, s)
}

// ListTeams returns every team, deleted ones included, newest first
func (a *App) ListTeams(ctx context.Context) ([]models.Team, error) {
	return a.repo.ListTeams(ctx)
}

// UpdateCredentials rotates whichever keys are provided; nil leaves a key as is
func (a *App) UpdateCredentials(ctx context.Context, s string, coachKey, submitterKey *string) error {
	if coachKey == nil && submitterKey == nil {
		return fmt.Errorf("%w: nothing to update", ErrValidation)
	}
	if coachKey != nil {
		if err := validateKey("coach key", *coachKey); err != nil {
			return err
		}
	}
	if submitterKey != nil {
		if err := validateKey("submitter key", *submitterKey); err != nil {
			return err
		}
	}

	s = strings.ToLower(strings.TrimSpace(s))
	if _, err := a.repo.UpdateTeamKeys(ctx, s, coachKey, submitterKey); err != nil {
		return err
	}

	log.Printf("Updated credentials for team %s", s)
	return nil
}

// Deactivate soft-deletes a team. The default team is protected so the
// installation always keeps at least one team.
func (a *App) Deactivate(ctx context.Context, s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == DefaultTeamSlug {
		return ErrProtectedTeam
	}

	rows, err := a.repo.SoftDeleteTeam(ctx, s, a.clock.Now().UTC())
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrTeamNotFound
	}

	log.Printf("Deactivated team %s", s)
	return nil
}

func validateKey(field, key string) error {
	if len(strings.TrimSpace(key)) < minKeyLen {
		return fmt.Errorf("%w: %s must be at least %d characters", ErrValidation, field, minKeyLen)
	}
	return nil
}

// teamIDFromSlug derives the stable team id recorded at creation time.
// The id never changes, even if the team is later renamed.
func teamIDFromSlug(s string) string {
	return "team_" + s
}
