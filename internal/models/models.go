package models

import "time"

// TimeReading is a wall-clock snapshot taken once per frame. Fields are
// in-range by construction; the display layer never validates them.
type TimeReading struct {
	Hour   int // 0-23
	Minute int // 0-59
	Second int // 0-59
}

// ReadingFromTime truncates an instant to the fields the display uses.
func ReadingFromTime(t time.Time) TimeReading {
	return TimeReading{
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}

// DisplayConfig is built once from the CLI flags and never mutated after
// startup. The rendered layout is constant for a given config.
type DisplayConfig struct {
	Use24Hour   bool
	ShowSeconds bool
	Colour      string
}
