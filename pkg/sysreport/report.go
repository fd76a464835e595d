package sysreport

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/opd-ai/go-sysreport/internal/monitor"
)

// Reporter renders the host report. It reads every source afresh on each
// Run and holds no state between runs.
type Reporter struct {
	opts    Options
	monitor *monitor.SystemMonitor
}

// New creates a Reporter. A nil opts means DefaultOptions().
func New(opts *Options) (*Reporter, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	o, err := o.withDefaults()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPlatform, err)
	}

	return &Reporter{
		opts:    o,
		monitor: monitor.NewSystemMonitor(monitor.PathsUnder(o.ProcRoot), o.Platform),
	}, nil
}

// Run writes the report to w: identity, boot time, uptime, CPU time and
// memory, separated by blank lines.
//
// Each section is rendered into a buffer and written only once it is
// complete. When a section fails, every earlier section has been written in
// full, nothing of the failing or later sections is written, and the
// returned error is a *SectionError naming the failing section.
func (r *Reporter) Run(w io.Writer) error {
	var buf bytes.Buffer
	for i, s := range r.sections() {
		buf.Reset()
		if i > 0 {
			buf.WriteByte('\n')
		}

		if err := s.render(&buf); err != nil {
			err = classify(err)
			r.opts.Logger.Error("section failed", "section", s.name, "err", err)
			return &SectionError{Section: s.name, Err: err}
		}

		if _, err := w.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("writing %s section: %w", s.name, err)
		}
		r.opts.Logger.Debug("section written", "section", s.name, "bytes", buf.Len())
	}
	return nil
}

// Report renders the whole report into a string. On failure the partial
// output written before the failing section is returned with the error.
func (r *Reporter) Report() (string, error) {
	var buf bytes.Buffer
	err := r.Run(&buf)
	return buf.String(), err
}

// classify marks errors raised by OS capability queries with ErrPlatform.
func classify(err error) error {
	var ce *monitor.ComponentError
	if errors.As(err, &ce) && ce.IsPlatform {
		return fmt.Errorf("%w: %w", ErrPlatform, err)
	}
	return err
}
