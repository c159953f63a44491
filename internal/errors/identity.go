package errors

import (
	stdErrors "errors"
	"fmt"
)

// IdentityNotFoundError represents a failed vanity name resolution.
type IdentityNotFoundError struct {
	Identity string
}

func (e *IdentityNotFoundError) Error() string {
	return fmt.Sprintf("could not find a Steam profile for %q", e.Identity)
}

// NewIdentityNotFoundError creates an IdentityNotFoundError for the given input.
func NewIdentityNotFoundError(identity string) *IdentityNotFoundError {
	return &IdentityNotFoundError{Identity: identity}
}

// IsIdentityNotFoundError reports whether err is an IdentityNotFoundError (even when wrapped).
func IsIdentityNotFoundError(err error) bool {
	var notFoundErr *IdentityNotFoundError
	return stdErrors.As(err, &notFoundErr)
}
