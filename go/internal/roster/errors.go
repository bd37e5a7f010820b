package roster

import "errors"

// ErrValidation is returned for malformed upsert input
var ErrValidation = errors.New("invalid roster input")
