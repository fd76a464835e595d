package sysreport

import (
	"fmt"
	"io"
	"strconv"

	"github.com/opd-ai/go-sysreport/internal/format"
	"github.com/opd-ai/go-sysreport/internal/monitor"
)

// Section names, in report order.
const (
	SectionIdentity = "identity"
	SectionBootTime = "boottime"
	SectionUptime   = "uptime"
	SectionCPUTime  = "cputime"
	SectionMemory   = "memory"
)

// labelWidth is the width of the left-aligned label column.
const labelWidth = 16

// section renders one block of the report.
type section struct {
	name   string
	render func(w io.Writer) error
}

// writeLine writes one "label: value" line.
func writeLine(w io.Writer, label, value string) error {
	_, err := fmt.Fprintf(w, "%-*s: %s\n", labelWidth, label, value)
	return err
}

// writeElapsed writes a line whose value is a seconds count rendered as
// days:hh:mm:ss.
func writeElapsed(w io.Writer, label string, seconds int64) error {
	s, err := format.FormatElapsed(seconds)
	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}
	return writeLine(w, label, s)
}

func (r *Reporter) sections() []section {
	return []section{
		{name: SectionIdentity, render: r.renderIdentity},
		{name: SectionBootTime, render: r.renderBootTime},
		{name: SectionUptime, render: r.renderUptime},
		{name: SectionCPUTime, render: r.renderCPUTime},
		{name: SectionMemory, render: r.renderMemory},
	}
}

func (r *Reporter) renderIdentity(w io.Writer) error {
	id, err := r.monitor.Identity()
	if err != nil {
		return err
	}
	lines := []struct{ label, value string }{
		{"System name", id.Sysname},
		{"Node name", id.Nodename},
		{"Release", id.Release},
		{"Version", id.Version},
		{"Machine", id.Machine},
	}
	for _, l := range lines {
		if err := writeLine(w, l.label, l.value); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reporter) renderBootTime(w io.Writer) error {
	bt, err := r.monitor.BootTime()
	if err != nil {
		return err
	}
	boot, err := format.FormatInstant(bt.Epoch, r.opts.TimePattern, r.opts.Location)
	if err != nil {
		return err
	}
	return writeLine(w, "Boot time", boot)
}

func (r *Reporter) renderUptime(w io.Writer) error {
	up, err := r.monitor.Uptime()
	if err != nil {
		return err
	}
	if err := writeElapsed(w, "Uptime", up.Seconds); err != nil {
		return err
	}
	return writeElapsed(w, "Idle time", up.IdleSeconds)
}

func (r *Reporter) renderCPUTime(w io.Writer) error {
	cpu, err := r.monitor.CPUTime()
	if err != nil {
		return err
	}
	if err := writeElapsed(w, "CPU user time", cpu.UserSeconds); err != nil {
		return err
	}
	return writeElapsed(w, "CPU system time", cpu.SystemSeconds)
}

func (r *Reporter) renderMemory(w io.Writer) error {
	mem, err := r.monitor.Memory()
	if err != nil {
		return err
	}
	if err := writeLine(w, "Memory total", memoryValue(mem.TotalKB)); err != nil {
		return err
	}
	return writeLine(w, "Memory available", memoryValue(mem.AvailableKB))
}

// memoryValue renders a /proc/meminfo value with its unit.
func memoryValue(kb uint64) string {
	return strconv.FormatUint(kb, 10) + " " + monitor.MemoryUnit
}
