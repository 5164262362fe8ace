package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"segclock/internal/config"
)

// --- Messages ---

// TickMsg marks a whole-second boundary.
type TickMsg time.Time

// tickCmd schedules the next repaint. tea.Every fires on the boundary of the
// interval, so frames stay aligned with the system clock's second rollover.
func tickCmd() tea.Cmd {
	return tea.Every(config.TickInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}
