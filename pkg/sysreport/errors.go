package sysreport

import (
	"errors"
	"fmt"

	"github.com/opd-ai/go-sysreport/internal/format"
	"github.com/opd-ai/go-sysreport/internal/procfs"
)

// Error taxonomy. Every report failure matches exactly one of these via
// errors.Is.
var (
	// ErrSourceUnavailable means a /proc source could not be opened or read.
	ErrSourceUnavailable = procfs.ErrSourceUnavailable
	// ErrMalformedRecord means an expected record or field was missing or
	// did not parse.
	ErrMalformedRecord = procfs.ErrMalformedRecord
	// ErrInvalidDuration means a negative duration reached the formatter.
	ErrInvalidDuration = format.ErrInvalidDuration
	// ErrInvalidPattern means Options.TimePattern holds an unknown
	// strftime directive.
	ErrInvalidPattern = format.ErrInvalidPattern
	// ErrPlatform means an OS capability query (uname, sysconf) failed.
	ErrPlatform = errors.New("platform query failed")
)

// SectionError reports the section at which the report stopped.
type SectionError struct {
	Section string
	Err     error
}

// Error implements the error interface.
func (e *SectionError) Error() string {
	return fmt.Sprintf("%s section: %v", e.Section, e.Err)
}

// Unwrap returns the underlying error for errors.Is/errors.As support.
func (e *SectionError) Unwrap() error {
	return e.Err
}

// AsSectionError extracts a SectionError from err.
// Returns nil if err does not wrap one.
func AsSectionError(err error) *SectionError {
	var se *SectionError
	if errors.As(err, &se) {
		return se
	}
	return nil
}

// IsSection reports whether err stopped the report at the named section.
func IsSection(err error, section string) bool {
	se := AsSectionError(err)
	return se != nil && se.Section == section
}
