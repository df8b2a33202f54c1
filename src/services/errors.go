package services

import "errors"

// Error taxonomy surfaced to the HTTP layer. Controllers match these
// with errors.Is and translate them to status codes.
var (
	// ErrInvalidActor means the caller identity is missing or has the
	// wrong role for the operation.
	ErrInvalidActor = errors.New("invalid actor")

	// ErrInvalidInput means the payload fails a validation the binding
	// layer cannot express.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound means a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState means the entity is not in the state the
	// operation requires.
	ErrInvalidState = errors.New("invalid state")

	// ErrForbidden means the caller lacks ownership of the resource.
	ErrForbidden = errors.New("forbidden")
)
