package monitor

import (
	"fmt"
	"path/filepath"

	"github.com/opd-ai/go-sysreport/internal/platform"
)

// DefaultProcRoot is the mount point of procfs.
const DefaultProcRoot = "/proc"

// Paths locates the /proc sources read by the monitor.
type Paths struct {
	Stat    string
	Uptime  string
	MemInfo string
}

// PathsUnder returns the standard source paths below procRoot.
func PathsUnder(procRoot string) Paths {
	return Paths{
		Stat:    filepath.Join(procRoot, "stat"),
		Uptime:  filepath.Join(procRoot, "uptime"),
		MemInfo: filepath.Join(procRoot, "meminfo"),
	}
}

// DefaultPaths returns the source paths below DefaultProcRoot.
func DefaultPaths() Paths {
	return PathsUnder(DefaultProcRoot)
}

// SystemMonitor answers one-shot queries for each report section. Every
// call re-reads its source; nothing is cached between calls.
type SystemMonitor struct {
	platform       platform.Platform
	bootTimeReader *bootTimeReader
	uptimeReader   *uptimeReader
	cpuReader      *cpuReader
	memReader      *memoryReader
}

// NewSystemMonitor creates a SystemMonitor reading paths and querying p for
// host identity and the clock-tick rate.
func NewSystemMonitor(paths Paths, p platform.Platform) *SystemMonitor {
	return &SystemMonitor{
		platform:       p,
		bootTimeReader: newBootTimeReader(paths.Stat),
		uptimeReader:   newUptimeReader(paths.Uptime),
		cpuReader:      newCPUReader(paths.Stat),
		memReader:      newMemoryReader(paths.MemInfo),
	}
}

// Identity returns the host identity record.
func (sm *SystemMonitor) Identity() (platform.Identity, error) {
	id, err := sm.platform.Host().Identity()
	if err != nil {
		return platform.Identity{}, NewComponentError(ErrorSourceIdentity, true, err)
	}
	return id, nil
}

// BootTime returns the boot instant.
func (sm *SystemMonitor) BootTime() (BootTime, error) {
	bt, err := sm.bootTimeReader.ReadBootTime()
	if err != nil {
		return BootTime{}, NewComponentError(ErrorSourceBootTime, false, err)
	}
	return bt, nil
}

// Uptime returns uptime and idle time.
func (sm *SystemMonitor) Uptime() (UptimeStats, error) {
	stats, err := sm.uptimeReader.ReadStats()
	if err != nil {
		return UptimeStats{}, NewComponentError(ErrorSourceUptime, false, err)
	}
	return stats, nil
}

// CPUTime returns aggregate user and system CPU time.
func (sm *SystemMonitor) CPUTime() (CPUTimeStats, error) {
	hz, err := sm.platform.Clock().TicksPerSecond()
	if err != nil {
		return CPUTimeStats{}, NewComponentError(ErrorSourceCPU, true, fmt.Errorf("clock tick rate: %w", err))
	}

	stats, err := sm.cpuReader.ReadStats(hz)
	if err != nil {
		return CPUTimeStats{}, NewComponentError(ErrorSourceCPU, false, err)
	}
	return stats, nil
}

// Memory returns total and available memory.
func (sm *SystemMonitor) Memory() (MemoryStats, error) {
	stats, err := sm.memReader.ReadStats()
	if err != nil {
		return MemoryStats{}, NewComponentError(ErrorSourceMemory, false, err)
	}
	return stats, nil
}
