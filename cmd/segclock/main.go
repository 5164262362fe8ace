package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"segclock/internal/clock"
	"segclock/internal/config"
	"segclock/internal/models"
	"segclock/internal/tui"
	"segclock/internal/util"
)

// Build metadata, overridable via -ldflags.
var (
	version   = "dev"
	gitCommit = "unknown"
	buildTime = "unknown"
)

func newRootCmd() *cobra.Command {
	var (
		use24   bool
		seconds bool
		colour  string
		debug   bool
	)

	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: "A seven-segment clock for your terminal",
		Long: "segclock paints the current time as large seven-segment glyphs\n" +
			"(Unicode 13.0, Symbols for Legacy Computing) and repaints every\n" +
			"second. Press q, esc or ctrl+c to quit. Your font must supply\n" +
			"the U+1FBF0..U+1FBF9 glyphs; missing-glyph boxes mean it does not.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := tui.LookupTheme(colour); !ok {
				return fmt.Errorf("unknown colour %q (choose one of: %s)",
					colour, strings.Join(tui.ThemeNames(), ", "))
			}
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("stdout is not a terminal")
			}

			logPath := filepath.Join(util.DataDir(config.AppName), config.LogFileName)
			logger, err := util.NewLogger(debug, logPath)
			if err != nil {
				return fmt.Errorf("open debug log: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			cfg := models.DisplayConfig{
				Use24Hour:   use24,
				ShowSeconds: seconds,
				Colour:      colour,
			}
			model := tui.NewModel(cfg, clock.System{}, logger)

			p := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("display loop: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&use24, "24", false, "use 24-hour time instead of 12-hour")
	cmd.Flags().BoolVar(&seconds, "seconds", false, "show a seconds group")
	cmd.Flags().StringVar(&colour, "colour", config.DefaultColour, "display colour")
	cmd.Flags().BoolVar(&debug, "debug", false, "write a debug log to the data directory")
	// Accept the American spelling too.
	cmd.Flags().SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if name == "color" {
			name = "colour"
		}
		return pflag.NormalizedName(name)
	})

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			label := version
			if gitCommit != "unknown" || buildTime != "unknown" {
				label = fmt.Sprintf("%s (%s %s)", version, gitCommit, buildTime)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", config.AppName, label)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		os.Exit(1)
	}
}
