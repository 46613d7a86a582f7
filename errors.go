package gopaging

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is matched by every *ConfigurationError via errors.Is.
var ErrInvalidConfiguration = errors.New("invalid paging configuration")

// ConfigurationError reports a paging parameter the caller must fix at the
// call site. It is never produced for out-of-range pages or empty sources.
type ConfigurationError struct {
	// Param is the name of the rejected parameter.
	Param string
	// Value is the rejected value.
	Value int
}

func newConfigurationError(param string, value int) *ConfigurationError {
	return &ConfigurationError{
		Param: param,
		Value: value,
	}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s = %d is out of range", ErrInvalidConfiguration, e.Param, e.Value)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}
