package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	"segclock/internal/clock"
	"segclock/internal/config"
	"segclock/internal/models"
	"segclock/internal/segment"
)

// Model is the root bubbletea model: a single running state that repaints on
// every second boundary until a quit key or signal arrives. Terminal setup
// and teardown (alt screen, raw mode, cursor, signals) belong to the
// surrounding tea.Program, which restores the terminal on every exit path.
type Model struct {
	cfg    models.DisplayConfig
	clk    clock.Clock
	theme  Theme
	keys   keyMap
	help   help.Model
	logger *zap.Logger

	reading models.TimeReading
	width   int
	height  int
}

// NewModel builds the display model. The first reading is taken immediately
// so the opening frame is never blank.
func NewModel(cfg models.DisplayConfig, clk clock.Clock, logger *zap.Logger) Model {
	theme, ok := LookupTheme(cfg.Colour)
	if !ok {
		theme = Themes[config.DefaultColour]
	}
	return Model{
		cfg:     cfg,
		clk:     clk,
		theme:   theme,
		keys:    defaultKeyMap(),
		help:    help.New(),
		logger:  logger,
		reading: models.ReadingFromTime(clk.Now()),
	}
}

func (m Model) Init() tea.Cmd {
	m.logger.Info("display loop starting",
		zap.Bool("use_24_hour", m.cfg.Use24Hour),
		zap.Bool("show_seconds", m.cfg.ShowSeconds),
		zap.String("colour", m.cfg.Colour),
	)
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Quit immediately: no repaint, no further tick.
		if key.Matches(msg, m.keys.Quit) {
			m.logger.Info("quit requested", zap.String("key", msg.String()))
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		m.reading = models.ReadingFromTime(m.clk.Now())
		return m, tickCmd()
	}

	return m, nil
}

func (m Model) View() string {
	line := m.theme.Digits.Render(segment.Line(segment.Cells(m.reading, m.cfg)))

	footer := m.theme.Help.Render(m.help.View(m.keys))
	if m.width > 0 && ansi.StringWidth(footer) > m.width {
		footer = ""
	}

	content := lipgloss.JoinVertical(lipgloss.Center, line, "", footer)
	if m.width == 0 {
		// No WindowSizeMsg yet; paint unplaced rather than guessing a size.
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
