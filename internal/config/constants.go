package config

import "time"

// Application settings.
const (
	AppName     = "segclock"
	LogFileName = "segclock.log"
)

// Display settings.
const (
	// TickInterval is the repaint cadence; ticks align to whole-second
	// boundaries rather than drifting from the first frame.
	TickInterval  = time.Second
	DefaultColour = "default"
)
