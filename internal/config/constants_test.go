package config

import (
	"testing"
	"time"
)

func TestTickInterval(t *testing.T) {
	if TickInterval != time.Second {
		t.Fatalf("TickInterval = %v, want 1s", TickInterval)
	}
}

func TestAppSettings(t *testing.T) {
	if AppName != "segclock" {
		t.Fatalf("AppName = %q", AppName)
	}
	if LogFileName == "" || DefaultColour == "" {
		t.Fatalf("expected non-empty defaults")
	}
}
