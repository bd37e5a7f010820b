package teams

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/mcdev12/walkup/go/internal/models"
	"github.com/mcdev12/walkup/go/internal/sqlutil"
	"github.com/mcdev12/walkup/go/internal/teams/db"
)

// CreateTeamRequest carries everything needed to register a team. CreatedAt
// doubles as the seed timestamp for the team's lineup state row.
type CreateTeamRequest struct {
	ID           string
	Slug         string
	Name         string
	CoachKey     string
	SubmitterKey string
	CreatedAt    time.Time
}

// Repository implements team data access operations
type Repository struct {
	queries *db.Queries
	sqlDB   *sql.DB
}

// NewRepository creates a new teams repository
func NewRepository(queries *db.Queries, sqlDB *sql.DB) *Repository {
	return &Repository{
		queries: queries,
		sqlDB:   sqlDB,
	}
}

// CreateTeamWithLineup creates a team and seeds its lineup state in one
// transaction, so no team can exist without a lineup row.
func (r *Repository) CreateTeamWithLineup(ctx context.Context, req CreateTeamRequest) (*models.Team, error) {
	var created db.Team
	err := sqlutil.Run(ctx, r.sqlDB,
		func(tx *sql.Tx) *db.Queries { return db.New(tx) },
		func(q *db.Queries) error {
			team, err := q.CreateTeam(ctx, db.CreateTeamParams{
				ID:           req.ID,
				Slug:         req.Slug,
				Name:         req.Name,
				CoachKey:     req.CoachKey,
				SubmitterKey: req.SubmitterKey,
				CreatedAt:    req.CreatedAt,
			})
			if err != nil {
				return err
			}
			created = team
			return q.SeedLineupState(ctx, db.SeedLineupStateParams{
				TeamID:    team.ID,
				UpdatedAt: req.CreatedAt,
			})
		})
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrSlugConflict
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return r.dbTeamToModel(created), nil
}

// GetTeamBySlug retrieves the active team with the given slug
func (r *Repository) GetTeamBySlug(ctx context.Context, slug string) (*models.Team, error) {
	team, err := r.queries.GetTeamBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team by slug: %w", err)
	}

	return r.dbTeamToModel(team), nil
}

// ListTeams retrieves all teams regardless of status, newest first
func (r *Repository) ListTeams(ctx context.Context) ([]models.Team, error) {
	dbTeams, err := r.queries.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	teams := make([]models.Team, len(dbTeams))
	for i, dbTeam := range dbTeams {
		teams[i] = *r.dbTeamToModel(dbTeam)
	}

	return teams, nil
}

// UpdateTeamKeys partially updates credentials; nil fields are left untouched
func (r *Repository) UpdateTeamKeys(ctx context.Context, slug string, coachKey, submitterKey *string) (*models.Team, error) {
	team, err := r.queries.UpdateTeamKeys(ctx, db.UpdateTeamKeysParams{
		Slug:         slug,
		CoachKey:     sqlutil.ToSqlString(coachKey),
		SubmitterKey: sqlutil.ToSqlString(submitterKey),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to update team keys: %w", err)
	}

	return r.dbTeamToModel(team), nil
}

// SoftDeleteTeam marks an active team deleted; returns the affected row count
func (r *Repository) SoftDeleteTeam(ctx context.Context, slug string, now time.Time) (int64, error) {
	rows, err := r.queries.SoftDeleteTeam(ctx, db.SoftDeleteTeamParams{
		Slug:      slug,
		DeletedAt: sql.NullTime{Time: now, Valid: true},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to soft delete team: %w", err)
	}
	return rows, nil
}

// dbTeamToModel converts a database team to domain model
func (r *Repository) dbTeamToModel(dbTeam db.Team) *models.Team {
	return &models.Team{
		ID:           dbTeam.ID,
		Slug:         dbTeam.Slug,
		Name:         dbTeam.Name,
		CoachKey:     dbTeam.CoachKey,
		SubmitterKey: dbTeam.SubmitterKey,
		Status:       models.TeamStatus(dbTeam.Status),
		CreatedAt:    dbTeam.CreatedAt,
		DeletedAt:    sqlutil.FromSqlTimePtr(dbTeam.DeletedAt),
	}
}
