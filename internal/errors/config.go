package errors

import stdErrors "errors"

// ConfigError represents a fatal configuration problem, such as a missing
// or placeholder Steam API key. It aborts the session before any query runs.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// NewConfigError creates a ConfigError with the given message.
func NewConfigError(message string) *ConfigError {
	return &ConfigError{Message: message}
}

// IsConfigError reports whether err is a ConfigError (even when wrapped).
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return stdErrors.As(err, &configErr)
}
