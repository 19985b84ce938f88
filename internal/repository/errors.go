package repository

import "errors"

// Common repository errors
var (
	// ErrCardNotFound is returned when an update targets a missing card
	ErrCardNotFound = errors.New("card not found")

	// ErrMemberNotFound is returned when a membership row does not exist
	ErrMemberNotFound = errors.New("team member not found")
)
