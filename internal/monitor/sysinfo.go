package monitor

import (
	"fmt"

	"github.com/opd-ai/go-sysreport/internal/procfs"
)

const bootTimeLabel = "btime"

// bootTimeReader reads the boot instant from /proc/stat.
type bootTimeReader struct {
	procStatPath string
}

// newBootTimeReader creates a new bootTimeReader reading path.
func newBootTimeReader(path string) *bootTimeReader {
	return &bootTimeReader{
		procStatPath: path,
	}
}

// ReadBootTime parses the second field of the btime record as epoch seconds.
func (r *bootTimeReader) ReadBootTime() (BootTime, error) {
	records, err := procfs.ReadRecords(r.procStatPath, bootTimeLabel)
	if err != nil {
		return BootTime{}, err
	}

	rec, err := procfs.Find(records, r.procStatPath, bootTimeLabel)
	if err != nil {
		return BootTime{}, err
	}

	epoch, err := rec.Int64(1)
	if err != nil {
		return BootTime{}, fmt.Errorf("parsing boot time: %w", err)
	}

	return BootTime{Epoch: epoch}, nil
}
