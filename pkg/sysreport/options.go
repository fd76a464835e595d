package sysreport

import (
	"time"

	"github.com/opd-ai/go-sysreport/internal/format"
	"github.com/opd-ai/go-sysreport/internal/monitor"
	"github.com/opd-ai/go-sysreport/internal/platform"
)

// Options configures a Reporter. The command-line tool always uses
// DefaultOptions; the fields exist so tests can point the report at
// synthetic sources.
type Options struct {
	// ProcRoot is the procfs mount point.
	// Empty string means monitor.DefaultProcRoot ("/proc").
	ProcRoot string

	// Location is the time zone used to render the boot time.
	// If nil, the host's local time zone is used.
	Location *time.Location

	// TimePattern is the strftime layout for the boot time.
	// Empty string means format.CanonicalPattern.
	TimePattern string

	// Platform provides the host identity and clock-tick rate.
	// If nil, platform.NewPlatform() is used.
	Platform platform.Platform

	// Logger sets a custom logger for debug/info messages.
	// If nil, no logging is performed.
	Logger Logger
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		ProcRoot:    monitor.DefaultProcRoot,
		TimePattern: format.CanonicalPattern,
	}
}

// withDefaults fills zero-valued fields.
func (o Options) withDefaults() (Options, error) {
	if o.ProcRoot == "" {
		o.ProcRoot = monitor.DefaultProcRoot
	}
	if o.TimePattern == "" {
		o.TimePattern = format.CanonicalPattern
	}
	if o.Logger == nil {
		o.Logger = NopLogger()
	}
	if o.Platform == nil {
		p, err := platform.NewPlatform()
		if err != nil {
			return o, err
		}
		o.Platform = p
	}
	return o, nil
}
