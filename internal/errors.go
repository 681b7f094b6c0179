package internal

import "fmt"

// ConfigurationError reports that client application construction could not
// produce exactly one valid target origin. It is the only error kind raised
// by this layer; it always surfaces to the caller of New and never leaves a
// partially constructed application behind.
type ConfigurationError struct {
	// Err is the underlying cause, if any (e.g. a query parse failure).
	Err error

	// Reason is the human-readable explanation.
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "clientapp: " + e.Reason
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// newConfigError builds a ConfigurationError with a formatted reason.
func newConfigError(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// IsConfigurationError reports whether err is a ConfigurationError.
func IsConfigurationError(err error) bool {
	return AsConfigurationError(err) != nil
}

// AsConfigurationError extracts the ConfigurationError from an error if
// present. Returns nil otherwise.
func AsConfigurationError(err error) *ConfigurationError {
	if err == nil {
		return nil
	}
	if cfgErr, ok := err.(*ConfigurationError); ok {
		return cfgErr
	}
	return nil
}
