// Package apperrors defines the request-scoped error taxonomy. Every error a
// handler can surface falls into one of four kinds: bad input, denied caller,
// missing record, or a store constraint breach.
package apperrors

import "errors"

// ErrNotFound marks a lookup for an id that does not exist.
var ErrNotFound = errors.New("record not found")

// ValidationError carries a field or cross-field validation failure message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validation wraps a message into a ValidationError.
func Validation(message string) error {
	return &ValidationError{Message: message}
}

// PermissionDenied marks an authorization predicate failure. Raised before
// any validation or store access.
type PermissionDenied struct {
	Message string
}

func (e *PermissionDenied) Error() string { return e.Message }

func Denied(message string) error {
	return &PermissionDenied{Message: message}
}

// ConstraintViolation marks a uniqueness or foreign-key rule broken at the
// store.
type ConstraintViolation struct {
	Message string
}

func (e *ConstraintViolation) Error() string { return e.Message }

func Constraint(message string) error {
	return &ConstraintViolation{Message: message}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsConstraint reports whether err is (or wraps) a ConstraintViolation.
func IsConstraint(err error) bool {
	var cv *ConstraintViolation
	return errors.As(err, &cv)
}
