package monitor

import (
	"errors"
	"fmt"
)

// ErrorSource identifies which reader produced an error.
type ErrorSource string

const (
	ErrorSourceIdentity ErrorSource = "identity"
	ErrorSourceBootTime ErrorSource = "boottime"
	ErrorSourceUptime   ErrorSource = "uptime"
	ErrorSourceCPU      ErrorSource = "cpu"
	ErrorSourceMemory   ErrorSource = "memory"
)

// ComponentError wraps an error with source information.
// It preserves the original error for inspection via errors.Is/errors.As.
type ComponentError struct {
	Source     ErrorSource
	IsPlatform bool // true if error came from a platform capability call
	Err        error
}

// Error implements the error interface.
func (e *ComponentError) Error() string {
	if e.IsPlatform {
		return fmt.Sprintf("%s (platform): %v", e.Source, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying error for errors.Is/errors.As support.
func (e *ComponentError) Unwrap() error {
	return e.Err
}

// NewComponentError creates a new ComponentError.
func NewComponentError(source ErrorSource, isPlatform bool, err error) *ComponentError {
	return &ComponentError{
		Source:     source,
		IsPlatform: isPlatform,
		Err:        err,
	}
}

// IsComponentError returns true if err wraps or is a ComponentError with the given source.
func IsComponentError(err error, source ErrorSource) bool {
	var ce *ComponentError
	for errors.As(err, &ce) {
		if ce.Source == source {
			return true
		}
		err = ce.Err
	}
	return false
}
