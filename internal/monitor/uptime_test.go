package monitor

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/opd-ai/go-sysreport/internal/procfs"
)

func TestUptimeReaderWithMockFile(t *testing.T) {
	tmpDir := t.TempDir()

	// Create mock /proc/uptime
	// Format: uptime_seconds idle_seconds
	uptimeContent := "12345.67 23456.78\n"
	if err := os.WriteFile(filepath.Join(tmpDir, "uptime"), []byte(uptimeContent), 0o644); err != nil {
		t.Fatalf("failed to write mock uptime: %v", err)
	}

	reader := newUptimeReader(filepath.Join(tmpDir, "uptime"))

	stats, err := reader.ReadStats()
	if err != nil {
		t.Fatalf("ReadStats() error = %v", err)
	}

	if stats.Seconds != 12345 {
		t.Errorf("Seconds = %v, want 12345", stats.Seconds)
	}

	if stats.IdleSeconds != 23456 {
		t.Errorf("IdleSeconds = %v, want 23456", stats.IdleSeconds)
	}
}

func TestUptimeReaderMissingFile(t *testing.T) {
	reader := newUptimeReader("/nonexistent/uptime")

	_, err := reader.ReadStats()
	if !errors.Is(err, procfs.ErrSourceUnavailable) {
		t.Errorf("ReadStats() error = %v, want ErrSourceUnavailable", err)
	}
}

func TestUptimeReaderMalformedFile(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "too few fields",
			content: "12345.67\n",
		},
		{
			name:    "invalid uptime value",
			content: "abc 23456.78\n",
		},
		{
			name:    "invalid idle value",
			content: "12345.67 def\n",
		},
		{
			name:    "empty file",
			content: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uptimePath := filepath.Join(tmpDir, "uptime_"+tt.name)
			if err := os.WriteFile(uptimePath, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("failed to write mock uptime: %v", err)
			}

			reader := newUptimeReader(uptimePath)

			_, err := reader.ReadStats()
			if !errors.Is(err, procfs.ErrMalformedRecord) {
				t.Errorf("ReadStats() error = %v, want ErrMalformedRecord for: %s", err, tt.name)
			}
		})
	}
}

func TestUptimeReaderWithWhitespace(t *testing.T) {
	tmpDir := t.TempDir()

	// Test with extra whitespace
	uptimeContent := "  12345.67   23456.78  \n"
	if err := os.WriteFile(filepath.Join(tmpDir, "uptime"), []byte(uptimeContent), 0o644); err != nil {
		t.Fatalf("failed to write mock uptime: %v", err)
	}

	reader := newUptimeReader(filepath.Join(tmpDir, "uptime"))

	stats, err := reader.ReadStats()
	if err != nil {
		t.Fatalf("ReadStats() error = %v", err)
	}

	if stats.Seconds != 12345 {
		t.Errorf("Seconds = %v, want 12345", stats.Seconds)
	}
}
