package closet

import (
	"errors"
	"fmt"
)

// Error taxonomy. Handlers map these to HTTP statuses; everything else is
// an internal failure.
var (
	// ErrValidation marks malformed or missing caller input. Never retried.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized marks a caller that does not own the target record,
	// or an unauthenticated caller.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound marks a missing target record. Deletes treat it as
	// success; reads and updates treat it as a hard error.
	ErrNotFound = errors.New("not found")

	// ErrRemoteService marks a failed AI, background-removal or storage
	// call. Surfaced as a single opaque failure; the caller may retry the
	// whole operation.
	ErrRemoteService = errors.New("remote service failure")
)

func validationErr(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func unauthorizedErr(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrUnauthorized, fmt.Sprintf(format, args...))
}

func notFoundErr(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func remoteErr(msg string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrRemoteService, msg, cause)
}
