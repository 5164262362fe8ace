package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewLoggerDisabledIsNop(t *testing.T) {
	logger, err := NewLogger(false, "")
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	// Must be safe to use without any backing file.
	logger.Info("ignored")
}

func TestNewLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "segclock.log")
	logger, err := NewLogger(true, path)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	logger.Info("hello")
	if err := logger.Sync(); err != nil {
		t.Logf("sync: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file at %s: %v", path, err)
	}
	if len(data) == 0 {
		t.Fatalf("expected log output, file is empty")
	}
}
