package procfs

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceUnavailable reports that a /proc source could not be opened or read.
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrMalformedRecord reports a missing record, a short record, or a field
	// that does not parse as the expected type.
	ErrMalformedRecord = errors.New("malformed record")
)

// SourceError wraps an I/O failure on a /proc source.
// It matches ErrSourceUnavailable via errors.Is and preserves the
// underlying error for inspection.
type SourceError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrSourceUnavailable, e.Path, e.Err)
}

// Unwrap returns the underlying I/O error.
func (e *SourceError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrSourceUnavailable.
func (e *SourceError) Is(target error) bool {
	return target == ErrSourceUnavailable
}

// RecordError describes a record that could not be interpreted.
// Field is -1 when the problem concerns the record as a whole.
type RecordError struct {
	Path  string
	Label string
	Field int
	Err   error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	where := e.Path
	if e.Label != "" {
		where = fmt.Sprintf("%s [%s]", where, e.Label)
	}
	if e.Field >= 0 {
		where = fmt.Sprintf("%s field %d", where, e.Field)
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", ErrMalformedRecord, where)
	}
	return fmt.Sprintf("%s: %s: %v", ErrMalformedRecord, where, e.Err)
}

// Unwrap returns the underlying parse error, if any.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrMalformedRecord.
func (e *RecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}

// malformed builds a RecordError with a formatted cause.
func malformed(path, label string, field int, format string, args ...any) *RecordError {
	return &RecordError{
		Path:  path,
		Label: label,
		Field: field,
		Err:   fmt.Errorf(format, args...),
	}
}
