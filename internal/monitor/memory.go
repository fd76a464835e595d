package monitor

import (
	"fmt"

	"github.com/opd-ai/go-sysreport/internal/procfs"
)

const (
	memTotalLabel     = "MemTotal:"
	memAvailableLabel = "MemAvailable:"
)

// memoryReader reads memory statistics from /proc filesystem.
type memoryReader struct {
	procMemInfoPath string
}

// newMemoryReader creates a new memoryReader reading path.
func newMemoryReader(path string) *memoryReader {
	return &memoryReader{
		procMemInfoPath: path,
	}
}

// ReadStats reads MemTotal and MemAvailable from /proc/meminfo.
// Values are looked up by label, so the order of lines in the source does
// not matter.
func (r *memoryReader) ReadStats() (MemoryStats, error) {
	records, err := procfs.ReadRecords(r.procMemInfoPath, memTotalLabel, memAvailableLabel)
	if err != nil {
		return MemoryStats{}, err
	}

	total, err := r.value(records, memTotalLabel)
	if err != nil {
		return MemoryStats{}, err
	}

	available, err := r.value(records, memAvailableLabel)
	if err != nil {
		return MemoryStats{}, err
	}

	return MemoryStats{
		TotalKB:     total,
		AvailableKB: available,
	}, nil
}

// value returns the numeric field of the record labelled label.
func (r *memoryReader) value(records []procfs.Record, label string) (uint64, error) {
	rec, err := procfs.Find(records, r.procMemInfoPath, label)
	if err != nil {
		return 0, err
	}
	v, err := rec.Uint64(1)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", label, err)
	}
	return v, nil
}
