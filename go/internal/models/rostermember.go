package models

import (
	"time"
)

// MemberStatus represents the lifecycle state of a roster member
type MemberStatus string

const (
	MemberStatusActive  MemberStatus = "active"
	MemberStatusDeleted MemberStatus = "deleted"
)

// RosterMember represents a rosterable player belonging to exactly one team.
// Number is free text: "00" and non-numeric bib codes are legal values.
type RosterMember struct {
	ID        string       `json:"id"`
	TeamID    string       `json:"team_id"`
	Number    string       `json:"number"`
	First     string       `json:"first"`
	Last      string       `json:"last"`
	Status    MemberStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	DeletedAt *time.Time   `json:"deleted_at,omitempty"`
}
