package scheduling

import (
	"errors"
	"fmt"
)

// ErrConfiguration matches every ConfigurationError through errors.Is.
var ErrConfiguration = errors.New("configuration error")

// ConfigurationError reports a scheduling setup that can never produce valid slots.
// It is detected when a provider's hours are loaded, not per call.
type ConfigurationError struct {
	Code    string
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Field, e.Message)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func newConfigurationError(field, format string, args ...any) error {
	return &ConfigurationError{
		Code:    "configurationError",
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}
