// Package clock abstracts the operating system's time-of-day facility so the
// display loop can be exercised against fixed instants in tests.
package clock

import "time"

//go:generate mockgen -source=clock.go -destination=mock_clock.go -package=clock

// Clock supplies the current wall-clock time.
type Clock interface {
	Now() time.Time
}

// System reads the local system clock.
type System struct{}

// Now returns the current local time.
func (System) Now() time.Time {
	return time.Now()
}
