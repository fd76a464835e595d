package sysreport

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/opd-ai/go-sysreport/internal/platform"
)

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	adapter := NewSlogAdapter(slog.New(handler))

	buf.Reset()
	adapter.Debug("debug message", "key", "value")
	if !strings.Contains(buf.String(), "debug message") || !strings.Contains(buf.String(), "key=value") {
		t.Errorf("Debug() output = %s", buf.String())
	}

	buf.Reset()
	adapter.Info("info message", "count", 42)
	if !strings.Contains(buf.String(), "info message") || !strings.Contains(buf.String(), "count=42") {
		t.Errorf("Info() output = %s", buf.String())
	}

	buf.Reset()
	adapter.Warn("warn message")
	if !strings.Contains(buf.String(), "warn message") {
		t.Errorf("Warn() output = %s", buf.String())
	}

	buf.Reset()
	adapter.Error("error message", "err", "something failed")
	if !strings.Contains(buf.String(), "error message") {
		t.Errorf("Error() output = %s", buf.String())
	}
}

func TestNewSlogAdapterNil(t *testing.T) {
	adapter := NewSlogAdapter(nil)
	if adapter == nil {
		t.Fatal("NewSlogAdapter(nil) returned nil")
	}
	if adapter.logger == nil {
		t.Error("NewSlogAdapter(nil) should use slog.Default()")
	}
}

func TestTextLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := TextLogger(&buf, slog.LevelInfo)

	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("Debug() should be filtered at Info level, got: %s", buf.String())
	}
	logger.Info("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("Info() output = %s", buf.String())
	}
}

func TestNopLogger(t *testing.T) {
	logger := NopLogger()
	// Should not panic when logging
	logger.Debug("test debug")
	logger.Info("test info")
	logger.Warn("test warn")
	logger.Error("test error")
}

func TestReporterLogsSections(t *testing.T) {
	var buf bytes.Buffer
	root := newMockProc(t)
	r, err := New(&Options{
		ProcRoot: root,
		Location: time.UTC,
		Platform: platform.NewStaticPlatform("test", platform.StaticHost(testIdentity), platform.DefaultTicksPerSecond),
		Logger:   TextLogger(&buf, slog.LevelDebug),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := r.Report(); err != nil {
		t.Fatalf("Report() error = %v", err)
	}
	for _, name := range []string{SectionIdentity, SectionBootTime, SectionUptime, SectionCPUTime, SectionMemory} {
		if !strings.Contains(buf.String(), "section="+name) {
			t.Errorf("log does not mention section %s:\n%s", name, buf.String())
		}
	}

	buf.Reset()
	if err := os.Remove(filepath.Join(root, "meminfo")); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Report(); err == nil {
		t.Fatal("Report() should fail without meminfo")
	}
	if !strings.Contains(buf.String(), "level=ERROR") || !strings.Contains(buf.String(), "section=memory") {
		t.Errorf("failure was not logged at error level:\n%s", buf.String())
	}
}
