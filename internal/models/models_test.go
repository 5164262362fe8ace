package models

import (
	"testing"
	"time"
)

func TestReadingFromTime(t *testing.T) {
	instant := time.Date(2025, 3, 14, 14, 5, 9, 123456789, time.UTC)
	r := ReadingFromTime(instant)
	if r.Hour != 14 || r.Minute != 5 || r.Second != 9 {
		t.Fatalf("ReadingFromTime = %+v", r)
	}
}

func TestReadingFromTimeMidnight(t *testing.T) {
	instant := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	r := ReadingFromTime(instant)
	if r != (TimeReading{}) {
		t.Fatalf("expected zero reading at midnight, got %+v", r)
	}
}

func TestDisplayConfigZeroValues(t *testing.T) {
	var cfg DisplayConfig
	if cfg.Use24Hour || cfg.ShowSeconds {
		t.Fatalf("expected boolean flags to default off")
	}
	if cfg.Colour != "" {
		t.Fatalf("expected empty colour by default, got %q", cfg.Colour)
	}
}
