package database

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an operation references a task id that
// does not exist in the store.
var ErrNotFound = errors.New("task not found")

// ValidationError describes input rejected before it reaches storage.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
