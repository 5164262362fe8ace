package tui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name   string
	Digits lipgloss.Style
	Help   lipgloss.Style
}

var dimHelp = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

// Themes maps the --colour flag value to the styles used for the glyph line.
var Themes = map[string]Theme{
	"default": {
		Name:   "Default",
		Digits: lipgloss.NewStyle().Bold(true),
		Help:   dimHelp,
	},
	"red": {
		Name:   "Red",
		Digits: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Help:   dimHelp,
	},
	"green": {
		Name:   "Green",
		Digits: lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		Help:   dimHelp,
	},
	"yellow": {
		Name:   "Yellow",
		Digits: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Help:   dimHelp,
	},
	"blue": {
		Name:   "Blue",
		Digits: lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
		Help:   dimHelp,
	},
	"magenta": {
		Name:   "Magenta",
		Digits: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Help:   dimHelp,
	},
	"cyan": {
		Name:   "Cyan",
		Digits: lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Help:   dimHelp,
	},
	"white": {
		Name:   "White",
		Digits: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Help:   dimHelp,
	},
}

// LookupTheme resolves a colour name; the bool reports whether it exists.
func LookupTheme(name string) (Theme, bool) {
	t, ok := Themes[name]
	return t, ok
}

// ThemeNames returns the recognized colour names, sorted for stable help text.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
