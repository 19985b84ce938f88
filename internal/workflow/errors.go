package workflow

import "errors"

var (
	// ErrUnauthenticated is returned when no actor identity was resolved.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrNotFound is returned when a card, column or board does not exist
	// or is not visible to the actor.
	ErrNotFound = errors.New("not found")
)

// PermissionDeniedError is a role-based refusal; nothing was written.
type PermissionDeniedError struct {
	Reason string
}

func (e *PermissionDeniedError) Error() string {
	return e.Reason
}

// WorkflowRejectedError is a column-entry precondition failure; nothing
// was written.
type WorkflowRejectedError struct {
	Reason string
}

func (e *WorkflowRejectedError) Error() string {
	return e.Reason
}

// WipLimitError is returned when the target column is at capacity.
type WipLimitError struct {
	Reason string
}

func (e *WipLimitError) Error() string {
	return e.Reason
}
