package lineup

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mcdev12/walkup/go/internal/lineup/db"
	"github.com/mcdev12/walkup/go/internal/models"
	"github.com/sqlc-dev/pqtype"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	GetLineupState(ctx context.Context, teamID string) (db.LineupState, error)
	UpdateLineupState(ctx context.Context, arg db.UpdateLineupStateParams) (db.LineupState, error)
}

// Repository implements lineup state data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new lineup repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// GetState loads the persisted lineup state for a team
func (r *Repository) GetState(ctx context.Context, teamID string) (*models.LineupState, error) {
	state, err := r.queries.GetLineupState(ctx, teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLineupNotFound
		}
		return nil, fmt.Errorf("failed to get lineup state: %w", err)
	}

	return r.dbStateToModel(state)
}

// CompareAndSwap persists the next value through a single version-guarded
// UPDATE. The version check and the write are one statement against the
// store, so concurrent writers cannot interleave between them. A CAS miss
// (no row matched) comes back as ErrStaleVersion.
func (r *Repository) CompareAndSwap(ctx context.Context, teamID string, expected int64, order []string, pointer int, now time.Time) (*models.LineupState, error) {
	if order == nil {
		order = []string{}
	}
	raw, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("failed to encode lineup order: %w", err)
	}

	state, err := r.queries.UpdateLineupState(ctx, db.UpdateLineupStateParams{
		TeamID:    teamID,
		OrderJson: pqtype.NullRawMessage{RawMessage: raw, Valid: true},
		Pointer:   int32(pointer),
		UpdatedAt: now,
		Version:   expected,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStaleVersion
		}
		return nil, fmt.Errorf("failed to update lineup state: %w", err)
	}

	return r.dbStateToModel(state)
}

// dbStateToModel converts a database row to the domain model. A NULL
// order_json column reads as the empty lineup.
func (r *Repository) dbStateToModel(dbState db.LineupState) (*models.LineupState, error) {
	order := []string{}
	if dbState.OrderJson.Valid && len(dbState.OrderJson.RawMessage) > 0 {
		if err := json.Unmarshal(dbState.OrderJson.RawMessage, &order); err != nil {
			return nil, fmt.Errorf("failed to decode lineup order: %w", err)
		}
	}

	return &models.LineupState{
		TeamID:    dbState.TeamID,
		Order:     order,
		Pointer:   ClampIndex(int(dbState.Pointer), len(order)),
		Version:   dbState.Version,
		UpdatedAt: dbState.UpdatedAt,
	}, nil
}
