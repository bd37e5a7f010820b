package roster

import (
	"context"
	"fmt"
	"time"

	"github.com/mcdev12/walkup/go/internal/models"
	"github.com/mcdev12/walkup/go/internal/roster/db"
	"github.com/mcdev12/walkup/go/internal/sqlutil"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	UpsertRosterMember(ctx context.Context, arg db.UpsertRosterMemberParams) (db.RosterMember, error)
	SoftDeleteRosterMember(ctx context.Context, arg db.SoftDeleteRosterMemberParams) (int64, error)
	ListActiveRosterMembers(ctx context.Context, teamID string) ([]db.RosterMember, error)
	ListActiveRosterMemberIDs(ctx context.Context, teamID string) ([]string, error)
}

// UpsertMemberRequest carries a fully resolved member row: the id has
// already been derived or normalized by the app layer.
type UpsertMemberRequest struct {
	ID     string
	TeamID string
	Number string
	First  string
	Last   string
	Now    time.Time
}

// Repository implements roster data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new roster repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// UpsertMember creates a member or revives and overwrites an existing one
func (r *Repository) UpsertMember(ctx context.Context, req UpsertMemberRequest) (*models.RosterMember, error) {
	member, err := r.queries.UpsertRosterMember(ctx, db.UpsertRosterMemberParams{
		ID:        req.ID,
		TeamID:    req.TeamID,
		Number:    req.Number,
		First:     req.First,
		Last:      req.Last,
		CreatedAt: req.Now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert roster member: %w", err)
	}

	return r.dbMemberToModel(member), nil
}

// SoftDeleteMember marks a member deleted; returns the affected row count
func (r *Repository) SoftDeleteMember(ctx context.Context, teamID, id string, now time.Time) (int64, error) {
	rows, err := r.queries.SoftDeleteRosterMember(ctx, db.SoftDeleteRosterMemberParams{
		TeamID:    teamID,
		ID:        id,
		DeletedAt: sqlutil.ToSqlTime(&now),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to soft delete roster member: %w", err)
	}
	return rows, nil
}

// ListActiveMembers retrieves all active members, name-ordered. The
// jersey-number sort happens in the app layer.
func (r *Repository) ListActiveMembers(ctx context.Context, teamID string) ([]models.RosterMember, error) {
	dbMembers, err := r.queries.ListActiveRosterMembers(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active roster members: %w", err)
	}

	members := make([]models.RosterMember, len(dbMembers))
	for i, dbMember := range dbMembers {
		members[i] = *r.dbMemberToModel(dbMember)
	}

	return members, nil
}

// ListActiveMemberIDs retrieves the ids of all active members
func (r *Repository) ListActiveMemberIDs(ctx context.Context, teamID string) ([]string, error) {
	ids, err := r.queries.ListActiveRosterMemberIDs(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active roster member ids: %w", err)
	}
	return ids, nil
}

// dbMemberToModel converts a database member to domain model
func (r *Repository) dbMemberToModel(dbMember db.RosterMember) *models.RosterMember {
	return &models.RosterMember{
		ID:        dbMember.ID,
		TeamID:    dbMember.TeamID,
		Number:    dbMember.Number,
		First:     dbMember.First,
		Last:      dbMember.Last,
		Status:    models.MemberStatus(dbMember.Status),
		CreatedAt: dbMember.CreatedAt,
		UpdatedAt: dbMember.UpdatedAt,
		DeletedAt: sqlutil.FromSqlTimePtr(dbMember.DeletedAt),
	}
}
