package monitor

import (
	"errors"
	"fmt"
	"math"

	"github.com/opd-ai/go-sysreport/internal/procfs"
)

// Positions in the /proc/stat "cpu" record:
// cpu user nice system idle iowait irq softirq steal ...
const (
	cpuLabel       = "cpu"
	cpuUserField   = 1
	cpuSystemField = 3
	cpuMinFields   = cpuSystemField + 1
)

// cpuReader reads aggregate CPU times from /proc filesystem.
type cpuReader struct {
	procStatPath string
}

// newCPUReader creates a new cpuReader reading path.
func newCPUReader(path string) *cpuReader {
	return &cpuReader{
		procStatPath: path,
	}
}

// ReadStats reads the aggregate user and system CPU times and converts them
// to seconds at hz ticks per second.
func (r *cpuReader) ReadStats(hz int64) (CPUTimeStats, error) {
	if hz <= 0 {
		return CPUTimeStats{}, fmt.Errorf("invalid clock tick rate %d", hz)
	}

	records, err := procfs.ReadRecords(r.procStatPath, cpuLabel)
	if err != nil {
		return CPUTimeStats{}, err
	}

	rec, err := procfs.Find(records, r.procStatPath, cpuLabel)
	if err != nil {
		return CPUTimeStats{}, err
	}
	if err := rec.Require(cpuMinFields); err != nil {
		return CPUTimeStats{}, err
	}

	user, err := rec.Uint64(cpuUserField)
	if err != nil {
		return CPUTimeStats{}, fmt.Errorf("parsing user time: %w", err)
	}
	system, err := rec.Uint64(cpuSystemField)
	if err != nil {
		return CPUTimeStats{}, fmt.Errorf("parsing system time: %w", err)
	}

	userSeconds, err := ticksToSeconds(rec, cpuUserField, user, hz)
	if err != nil {
		return CPUTimeStats{}, err
	}
	systemSeconds, err := ticksToSeconds(rec, cpuSystemField, system, hz)
	if err != nil {
		return CPUTimeStats{}, err
	}

	return CPUTimeStats{
		UserTicks:      user,
		SystemTicks:    system,
		TicksPerSecond: hz,
		UserSeconds:    userSeconds,
		SystemSeconds:  systemSeconds,
	}, nil
}

// ticksToSeconds converts clock ticks to whole seconds, truncating.
// A count whose seconds do not fit in an int64 is a malformed field.
func ticksToSeconds(rec procfs.Record, field int, ticks uint64, hz int64) (int64, error) {
	secs := ticks / uint64(hz)
	if secs > math.MaxInt64 {
		return 0, &procfs.RecordError{
			Path:  rec.Source,
			Label: rec.Label(),
			Field: field,
			Err:   errors.New("tick count out of range"),
		}
	}
	return int64(secs), nil
}
