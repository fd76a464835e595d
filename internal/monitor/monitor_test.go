package monitor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/opd-ai/go-sysreport/internal/platform"
	"github.com/opd-ai/go-sysreport/internal/procfs"
)

// failingHost is a HostInfoProvider whose query always fails.
type failingHost struct{}

func (failingHost) Identity() (platform.Identity, error) {
	return platform.Identity{}, errors.New("uname unavailable")
}

func newMockProc(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"stat":    mockStat,
		"uptime":  "90061.50 170000.25\n",
		"meminfo": "MemTotal: 16384000 kB\nMemFree: 1000 kB\nMemAvailable: 8192000 kB\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(root, name), []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write mock %s: %v", name, err)
		}
	}
	return root
}

func TestPathsUnder(t *testing.T) {
	p := PathsUnder("/host/proc")
	if p.Stat != "/host/proc/stat" || p.Uptime != "/host/proc/uptime" || p.MemInfo != "/host/proc/meminfo" {
		t.Errorf("PathsUnder() = %+v", p)
	}
	if DefaultPaths().Stat != "/proc/stat" {
		t.Errorf("DefaultPaths().Stat = %q", DefaultPaths().Stat)
	}
}

func TestSystemMonitorReadsAllSections(t *testing.T) {
	id := platform.Identity{Sysname: "Linux", Nodename: "node", Release: "6.1.0", Version: "#1 SMP", Machine: "x86_64"}
	p := platform.NewStaticPlatform("test", platform.StaticHost(id), platform.DefaultTicksPerSecond)
	sm := NewSystemMonitor(PathsUnder(newMockProc(t)), p)

	gotID, err := sm.Identity()
	if err != nil || gotID != id {
		t.Errorf("Identity() = %+v, %v", gotID, err)
	}

	bt, err := sm.BootTime()
	if err != nil || bt.Epoch != 1700000000 {
		t.Errorf("BootTime() = %+v, %v", bt, err)
	}

	up, err := sm.Uptime()
	if err != nil || up.Seconds != 90061 || up.IdleSeconds != 170000 {
		t.Errorf("Uptime() = %+v, %v", up, err)
	}

	cpu, err := sm.CPUTime()
	if err != nil || cpu.UserSeconds != 1234 || cpu.SystemSeconds != 654 {
		t.Errorf("CPUTime() = %+v, %v", cpu, err)
	}

	mem, err := sm.Memory()
	if err != nil || mem.TotalKB != 16384000 || mem.AvailableKB != 8192000 {
		t.Errorf("Memory() = %+v, %v", mem, err)
	}
}

func TestSystemMonitorErrorSources(t *testing.T) {
	p := platform.NewStaticPlatform("test", failingHost{}, platform.FixedClock(0))
	sm := NewSystemMonitor(PathsUnder("/nonexistent"), p)

	_, err := sm.Identity()
	if !IsComponentError(err, ErrorSourceIdentity) {
		t.Errorf("Identity() error = %v, want identity component error", err)
	}
	var ce *ComponentError
	if !errors.As(err, &ce) || !ce.IsPlatform {
		t.Errorf("Identity() error should be a platform error: %v", err)
	}

	_, err = sm.BootTime()
	if !IsComponentError(err, ErrorSourceBootTime) || !errors.Is(err, procfs.ErrSourceUnavailable) {
		t.Errorf("BootTime() error = %v", err)
	}

	_, err = sm.Uptime()
	if !IsComponentError(err, ErrorSourceUptime) || !errors.Is(err, procfs.ErrSourceUnavailable) {
		t.Errorf("Uptime() error = %v", err)
	}

	// The clock is queried before /proc/stat is opened.
	_, err = sm.CPUTime()
	if !IsComponentError(err, ErrorSourceCPU) || !errors.As(err, &ce) || !ce.IsPlatform {
		t.Errorf("CPUTime() error = %v, want platform cpu error", err)
	}

	_, err = sm.Memory()
	if !IsComponentError(err, ErrorSourceMemory) || !errors.Is(err, procfs.ErrSourceUnavailable) {
		t.Errorf("Memory() error = %v", err)
	}
}

func TestComponentError(t *testing.T) {
	originalErr := errors.New("read failed")
	ce := NewComponentError(ErrorSourceUptime, false, originalErr)

	if ce.Error() != "uptime: read failed" {
		t.Errorf("Error() = %q, want %q", ce.Error(), "uptime: read failed")
	}

	pce := NewComponentError(ErrorSourceCPU, true, originalErr)
	if pce.Error() != "cpu (platform): read failed" {
		t.Errorf("Error() = %q, want %q", pce.Error(), "cpu (platform): read failed")
	}

	wrapped := fmt.Errorf("context: %w", ce)
	if !errors.Is(wrapped, originalErr) {
		t.Error("errors.Is() should find deeply wrapped error")
	}
	if !IsComponentError(wrapped, ErrorSourceUptime) {
		t.Error("IsComponentError() should find wrapped component error")
	}
	if IsComponentError(wrapped, ErrorSourceMemory) {
		t.Error("IsComponentError() matched the wrong source")
	}
	if IsComponentError(originalErr, ErrorSourceUptime) {
		t.Error("IsComponentError() matched a plain error")
	}
}
