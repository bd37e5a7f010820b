package teams

import "errors"

var (
	// ErrTeamNotFound is returned when no active team matches the slug
	ErrTeamNotFound = errors.New("team not found")

	// ErrSlugConflict is returned when an active team already owns the slug
	ErrSlugConflict = errors.New("slug already in use")

	// ErrProtectedTeam is returned when deactivating the default team
	ErrProtectedTeam = errors.New("team is protected")

	// ErrValidation is returned for malformed create/update input
	ErrValidation = errors.New("invalid team input")
)
