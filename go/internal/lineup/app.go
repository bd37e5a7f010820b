package lineup

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/walkup/go/internal/models"
)

// maxPruneRetries bounds the reload-and-retry loop when persisting a prune
// races with concurrent writers.
const maxPruneRetries = 3

// LineupRepository defines what the engine needs from the repository
type LineupRepository interface {
	GetState(ctx context.Context, teamID string) (*models.LineupState, error)
	CompareAndSwap(ctx context.Context, teamID string, expected int64, order []string, pointer int, now time.Time) (*models.LineupState, error)
}

// RosterProvider supplies the active membership set the engine checks the
// order against on every read and write.
type RosterProvider interface {
	ActiveIDSet(ctx context.Context, teamID string) (map[string]struct{}, error)
}

// App is the versioned shared-lineup state engine. All mutation goes
// through the repository's compare-and-swap; the engine never retries a
// caller's conflict on its own.
type App struct {
	repo   LineupRepository
	roster RosterProvider
	clock  clockwork.Clock
}

// NewApp creates a new lineup App
func NewApp(repo LineupRepository, roster RosterProvider, clock clockwork.Clock) *App {
	return &App{
		repo:   repo,
		roster: roster,
		clock:  clock,
	}
}

// Read returns the lineup state for a team, first reconciling it with the
// active roster. A prune is a real mutation: the corrected value is
// persisted as a new version before it is returned, so every observer
// converges on the same state and no retired id can resurface.
func (a *App) Read(ctx context.Context, teamID string) (*models.LineupState, error) {
	for attempt := 0; attempt < maxPruneRetries; attempt++ {
		state, err := a.repo.GetState(ctx, teamID)
		if err != nil {
			return nil, err
		}

		active, err := a.roster.ActiveIDSet(ctx, teamID)
		if err != nil {
			return nil, fmt.Errorf("failed to load active roster: %w", err)
		}

		order, pointer, changed := PruneAgainstRoster(state.Order, state.Pointer, active)
		if !changed {
			return state, nil
		}

		next, err := a.repo.CompareAndSwap(ctx, teamID, state.Version, order, pointer, a.clock.Now().UTC())
		if err == nil {
			log.Printf("Pruned lineup for team %s: %d -> %d entries (version %d)",
				teamID, len(state.Order), len(order), next.Version)
			return next, nil
		}
		if !errors.Is(err, ErrStaleVersion) {
			return nil, err
		}
		// Lost the race to a concurrent writer. That writer's value was
		// itself filtered against the roster, so reload and recheck.
	}

	return nil, fmt.Errorf("pruned lineup could not be persisted: %w", ErrInternal)
}

// Write replaces the lineup under the optimistic-concurrency contract.
// The proposed order is deduplicated (stable, first occurrence wins) and
// filtered to active roster ids; ids that no longer belong are dropped
// silently, the write still succeeds. A version mismatch mutates nothing
// and returns a ConflictError carrying the authoritative state.
func (a *App) Write(ctx context.Context, teamID string, clientVersion int64, order []string, pointer int) (*models.LineupState, error) {
	state, err := a.repo.GetState(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if clientVersion != state.Version {
		return nil, &ConflictError{Server: state}
	}

	active, err := a.roster.ActiveIDSet(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load active roster: %w", err)
	}

	normalized := normalizeOrder(order, active)
	clamped := ClampIndex(pointer, len(normalized))

	next, err := a.repo.CompareAndSwap(ctx, teamID, state.Version, normalized, clamped, a.clock.Now().UTC())
	if err != nil {
		if errors.Is(err, ErrStaleVersion) {
			// Another writer committed between our load and the swap.
			// Surface its state so the caller can reconcile.
			current, loadErr := a.repo.GetState(ctx, teamID)
			if loadErr != nil {
				return nil, loadErr
			}
			return nil, &ConflictError{Server: current}
		}
		return nil, err
	}

	return next, nil
}

// normalizeOrder drops repeated ids (keeping the first occurrence) and ids
// outside the active roster, preserving relative order.
func normalizeOrder(order []string, active map[string]struct{}) []string {
	seen := make(map[string]struct{}, len(order))
	out := make([]string, 0, len(order))
	for _, id := range order {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := active[id]; ok {
			out = append(out, id)
		}
	}
	return out
}
