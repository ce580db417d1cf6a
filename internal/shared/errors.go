package shared

import "errors"

var (
	// ErrNotFound indicates the referenced record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateKey indicates an insert collided with an existing primary key.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrValidation indicates malformed or out-of-range input.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidTransition indicates a status change the lifecycle rules forbid.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrPartialFailure indicates a cross-table mutation stopped partway.
	// The caller decides whether to retry or roll back.
	ErrPartialFailure = errors.New("partial failure")
)
