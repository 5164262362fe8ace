// Package segment turns a time reading into the seven-segment glyph line the
// terminal displays. Cell formatting and glyph mapping are kept separate so
// layout can be tested without any Unicode involved.
package segment

import "segclock/internal/models"

// Cell is one renderable unit of the display line: an ASCII digit or the
// group separator.
type Cell = rune

// Separator sits between the hour/minute and minute/second groups.
const Separator Cell = ':'

// glyphBase is the first code point of the seven-segment digit run in the
// Symbols for Legacy Computing block (Unicode 13.0). U+1FBF0 renders "0".
const glyphBase rune = 0x1FBF0

// Cells formats a reading into digit and separator cells. Hour and minute are
// always two zero-padded cells; enabling seconds appends one separator cell
// and two more digit cells. The sequence length depends only on the config,
// never on the reading, so frames overwrite each other without reflow.
func Cells(r models.TimeReading, cfg models.DisplayConfig) []Cell {
	hour := r.Hour
	if !cfg.Use24Hour {
		hour %= 12
		if hour == 0 {
			hour = 12
		}
	}

	cells := make([]Cell, 0, 8)
	cells = appendPair(cells, hour)
	cells = append(cells, Separator)
	cells = appendPair(cells, r.Minute)
	if cfg.ShowSeconds {
		cells = append(cells, Separator)
		cells = appendPair(cells, r.Second)
	}
	return cells
}

func appendPair(cells []Cell, v int) []Cell {
	return append(cells, Cell('0'+v/10), Cell('0'+v%10))
}

// Glyph maps a cell to its display rune. Digits land in the seven-segment
// run; the separator has no segmented form and passes through unchanged.
func Glyph(c Cell) rune {
	if c >= '0' && c <= '9' {
		return glyphBase + (c - '0')
	}
	return c
}

// Line renders a cell sequence as the finished display string.
func Line(cells []Cell) string {
	out := make([]rune, len(cells))
	for i, c := range cells {
		out[i] = Glyph(c)
	}
	return string(out)
}
