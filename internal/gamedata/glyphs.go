package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gridrealm/internal/world"
)

// GlyphDef defines a placeable piece of multi-line art loaded from JSON.
type GlyphDef struct {
	ID    string   `json:"id"`    // Unique identifier (e.g., "house")
	Name  string   `json:"name"`  // Display name (e.g., "House")
	Art   []string `json:"art"`   // Art rows, top to bottom
	Color string   `json:"color"` // Hex color code (e.g., "#D2B48C")
}

// ArtString joins the art rows into the newline-separated form the entity
// package parses.
func (g *GlyphDef) ArtString() string {
	out := ""
	for i, line := range g.Art {
		if i > 0 {
			out += "\n"
		}
		out += line
	}
	return out
}

// TCellColor returns the glyph's color, falling back to white.
func (g *GlyphDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(g.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// GlyphsFile represents the structure of glyphs.json.
type GlyphsFile struct {
	Glyphs []GlyphDef `json:"glyphs"`
}

// LoadGlyphs loads glyph definitions from the embedded glyphs.json.
func LoadGlyphs() ([]GlyphDef, error) {
	file, err := Load[GlyphsFile]("glyphs.json")
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(file.Glyphs))
	for _, g := range file.Glyphs {
		if seen[g.ID] {
			return nil, fmt.Errorf("duplicate glyph id %q in glyphs.json", g.ID)
		}
		seen[g.ID] = true
	}
	return file.Glyphs, nil
}

// SymbolColors builds a rendering color table from glyph art: every
// non-space art cell maps to its glyph's color. Later glyphs win when two
// arts share a symbol.
func SymbolColors(glyphs []GlyphDef) map[world.Symbol]tcell.Color {
	colors := make(map[world.Symbol]tcell.Color)
	for i := range glyphs {
		color := glyphs[i].TCellColor()
		for _, line := range glyphs[i].Art {
			for _, r := range line {
				if r == ' ' {
					continue
				}
				colors[world.Symbol(r)] = color
			}
		}
	}
	return colors
}

// GlyphByID returns the glyph with the given id from a loaded slice.
func GlyphByID(glyphs []GlyphDef, id string) (*GlyphDef, bool) {
	for i := range glyphs {
		if glyphs[i].ID == id {
			return &glyphs[i], true
		}
	}
	return nil, false
}
