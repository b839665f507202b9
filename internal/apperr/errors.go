// Package apperr defines the failure kinds shared by every domain service.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means a referenced row does not exist.
	ErrNotFound = errors.New("not_found")
	// ErrValidation means the input shape is malformed.
	ErrValidation = errors.New("validation_failed")
	// ErrDataCorruption means a stored serialized blob failed to parse.
	ErrDataCorruption = errors.New("data_corruption")
	// ErrConstraint means a value violates a constructor constraint.
	ErrConstraint = errors.New("constraint_violation")
)

// NotFound reports a missing row with enough context to retry the operation.
func NotFound(entity string, id int64) error {
	return fmt.Errorf("%w: %s %d", ErrNotFound, entity, id)
}

// Validationf wraps ErrValidation with a formatted message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Corruptionf wraps ErrDataCorruption with a formatted message.
func Corruptionf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrDataCorruption, fmt.Sprintf(format, args...))
}

// Constraintf wraps ErrConstraint with a formatted message.
func Constraintf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConstraint, fmt.Sprintf(format, args...))
}
