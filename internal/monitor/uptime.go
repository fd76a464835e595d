package monitor

import (
	"fmt"

	"github.com/opd-ai/go-sysreport/internal/procfs"
)

// uptimeReader reads uptime statistics from /proc filesystem.
type uptimeReader struct {
	procUptimePath string
}

// newUptimeReader creates a new uptimeReader reading path.
func newUptimeReader(path string) *uptimeReader {
	return &uptimeReader{
		procUptimePath: path,
	}
}

// ReadStats reads current uptime statistics from /proc/uptime.
// Format: uptime_seconds idle_seconds
func (r *uptimeReader) ReadStats() (UptimeStats, error) {
	records, err := procfs.ReadRecords(r.procUptimePath)
	if err != nil {
		return UptimeStats{}, err
	}

	rec, err := procfs.First(records, r.procUptimePath)
	if err != nil {
		return UptimeStats{}, err
	}

	uptime, err := rec.Seconds(0)
	if err != nil {
		return UptimeStats{}, fmt.Errorf("parsing uptime value: %w", err)
	}

	idle, err := rec.Seconds(1)
	if err != nil {
		return UptimeStats{}, fmt.Errorf("parsing idle value: %w", err)
	}

	return UptimeStats{
		Seconds:     uptime,
		IdleSeconds: idle,
	}, nil
}
