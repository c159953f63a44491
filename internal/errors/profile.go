package errors

import (
	stdErrors "errors"
	"fmt"
	"strings"
)

// PrivateProfileError represents a Steam library access failure (private
// profile, invalid key, etc.). The owned-games endpoint returns HTTP 200
// with an empty response body for private profiles, so StatusCode may be
// 200 even when access was effectively denied.
type PrivateProfileError struct {
	Message    string
	StatusCode int
	APIMessage string // Error message from Steam API if available
}

func (e *PrivateProfileError) Error() string {
	if e.APIMessage != "" {
		return fmt.Sprintf("%s (HTTP %d): %s", e.Message, e.StatusCode, e.APIMessage)
	}
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.StatusCode)
}

// Remediation returns the user-facing hint for fixing the access failure.
func (e *PrivateProfileError) Remediation() string {
	return "Go to Steam privacy settings and make your profile, playtime and inventory public, then try again in a few minutes."
}

// NewPrivateProfileError creates a new library access error
func NewPrivateProfileError(statusCode int, apiMessage string) *PrivateProfileError {
	var message string
	apiLower := strings.ToLower(apiMessage)

	switch statusCode {
	case 403:
		if strings.Contains(apiLower, "private") {
			message = "Steam profile is private or inaccessible"
		} else {
			message = "Access forbidden - check API key and profile settings"
		}
	case 401:
		message = "Invalid Steam API key"
	case 200:
		message = "Could not retrieve game list - the profile is likely private"
	default:
		message = "Steam API access error"
	}

	return &PrivateProfileError{
		Message:    message,
		StatusCode: statusCode,
		APIMessage: apiMessage,
	}
}

// IsPrivateProfileError checks if error is a PrivateProfileError
func IsPrivateProfileError(err error) bool {
	var profileErr *PrivateProfileError
	return stdErrors.As(err, &profileErr)
}
