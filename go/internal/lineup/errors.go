package lineup

import (
	"errors"
	"fmt"

	"github.com/mcdev12/walkup/go/internal/models"
)

var (
	// ErrLineupNotFound is returned when no lineup state row exists for
	// the team; every team gets one at creation, so this means the team
	// id itself is unknown.
	ErrLineupNotFound = errors.New("lineup state not found")

	// ErrStaleVersion is the repository-level CAS miss: the guarded
	// update matched no row. The app layer turns it into a ConflictError
	// carrying the authoritative state.
	ErrStaleVersion = errors.New("lineup version is stale")

	// ErrInternal is returned when the store is unreachable or a pruned
	// value could not be persisted.
	ErrInternal = errors.New("lineup store unavailable")
)

// ConflictError reports a write rejected by the optimistic-concurrency
// check. Server holds the full authoritative state so the caller can
// reconcile and resubmit.
type ConflictError struct {
	Server *models.LineupState
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("lineup version conflict: server at version %d", e.Server.Version)
}
