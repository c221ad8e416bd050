package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gridrealm/internal/world"
)

// Renderer draws a grid's row sequence to the screen. Entities are
// already composited into grid cells by the placer, so the grid is the
// single source of what's on screen.
type Renderer struct {
	screen *Screen
	colors map[world.Symbol]tcell.Color
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// SetSymbolColors installs per-symbol colors for placed glyph cells.
// These take precedence over the built-in symbol styles.
func (r *Renderer) SetSymbolColors(colors map[world.Symbol]tcell.Color) {
	r.colors = colors
}

// Render draws the grid and a status line beneath it.
func (r *Renderer) Render(g *world.Grid, status string) {
	r.screen.Clear()

	rows := g.Rows()
	for y, row := range rows {
		for x, s := range row {
			r.screen.SetContent(x, y, s.Rune(), r.symbolStyle(s))
		}
	}

	r.RenderMessage(status, len(rows)+1)
	r.screen.Show()
}

// symbolStyle returns the style for a cell symbol.
func (r *Renderer) symbolStyle(s world.Symbol) tcell.Style {
	if color, ok := r.colors[s]; ok {
		return tcell.StyleDefault.Foreground(color)
	}
	switch s {
	case world.SymbolWall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.SymbolFloor:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	case '@':
		return tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	case 'D', 'H', 'E', '<', '>':
		return tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	case world.SymbolBorderH, world.SymbolBorderV,
		world.SymbolCornerTL, world.SymbolCornerTR,
		world.SymbolCornerBL, world.SymbolCornerBR:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite)
	default:
		return tcell.StyleDefault
	}
}

// RenderMessage displays a message on the given screen row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range msg {
		r.screen.SetContent(i, y, ch, style)
	}
}
