package models

import (
	"time"
)

// LineupState is the versioned (order, pointer) value held per team.
// Order is the batting order: a duplicate-free sequence of member ids whose
// array position is the semantics. Pointer indexes the current batter and is
// 0 as a sentinel when the order is empty. Version increments by exactly 1
// on every successful change and drives the optimistic-concurrency check.
type LineupState struct {
	TeamID    string    `json:"team_id"`
	Order     []string  `json:"order"`
	Pointer   int       `json:"pointer"`
	Version   int64     `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}
