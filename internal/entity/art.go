package entity

import (
	"strings"

	"github.com/samdwyer/gridrealm/internal/world"
)

// Art is a rectangular glyph drawn relative to an entity's position. Space
// cells are transparent: they neither draw nor erase what is underneath.
type Art struct {
	lines [][]world.Symbol
}

// NewArt parses a multi-line string into art. A leading or trailing blank
// line from raw-string formatting is stripped; interior rows keep their
// ragged lengths.
func NewArt(raw string) Art {
	lines := strings.Split(raw, "\n")
	if len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	cells := make([][]world.Symbol, len(lines))
	for row, line := range lines {
		runes := []rune(line)
		cells[row] = make([]world.Symbol, len(runes))
		for col, r := range runes {
			cells[row][col] = world.Symbol(r)
		}
	}
	return Art{lines: cells}
}

// ArtFromSymbol creates single-cell art.
func ArtFromSymbol(s world.Symbol) Art {
	return Art{lines: [][]world.Symbol{{s}}}
}

// Lines returns the art rows.
func (a Art) Lines() [][]world.Symbol {
	return a.lines
}

// Size returns the art's bounding width and height.
func (a Art) Size() (width, height int) {
	for _, line := range a.lines {
		if len(line) > width {
			width = len(line)
		}
	}
	return width, len(a.lines)
}
