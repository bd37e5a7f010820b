package models

import (
	"time"
)

// TeamStatus represents the lifecycle state of a team
type TeamStatus string

const (
	TeamStatusActive  TeamStatus = "active"
	TeamStatusDeleted TeamStatus = "deleted"
)

// Team represents a tenant: one roster, one lineup state
type Team struct {
	ID           string     `json:"id"`
	Slug         string     `json:"slug"`
	Name         string     `json:"name"`
	CoachKey     string     `json:"-"`
	SubmitterKey string     `json:"-"`
	Status       TeamStatus `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}
