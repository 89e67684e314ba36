package remote

import (
	"errors"
	"fmt"
)

// ErrSessionExpired is returned when a mutation got a 401; the session
// has already been purged when this is seen
var ErrSessionExpired = errors.New("session expired, please log in again")

// ErrMutationPending is returned when a second mutation is attempted
// while one is still in flight on the same collection
var ErrMutationPending = errors.New("a change is already being saved")

// ValidationError reports a required field that was missing client-side
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}
