package tui

import (
	"sort"
	"testing"

	"segclock/internal/config"
)

func TestThemesIncludeDefault(t *testing.T) {
	if _, ok := LookupTheme(config.DefaultColour); !ok {
		t.Fatalf("default colour %q is not a theme", config.DefaultColour)
	}
}

func TestThemesHaveNames(t *testing.T) {
	for key, theme := range Themes {
		if theme.Name == "" {
			t.Fatalf("theme %q has no display name", key)
		}
	}
}

func TestLookupThemeUnknown(t *testing.T) {
	if _, ok := LookupTheme("chartreuse"); ok {
		t.Fatalf("expected unknown colour to miss")
	}
}

func TestThemeNamesSortedAndComplete(t *testing.T) {
	names := ThemeNames()
	if len(names) != len(Themes) {
		t.Fatalf("ThemeNames returned %d names, want %d", len(names), len(Themes))
	}
	if !sort.StringsAreSorted(names) {
		t.Fatalf("ThemeNames not sorted: %v", names)
	}
}
