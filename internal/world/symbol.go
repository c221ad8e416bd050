// Package world provides grid containers and procedural maze generation.
package world

// Symbol represents a single map cell's display character.
type Symbol rune

const (
	// SymbolWall represents an impassable wall cell.
	SymbolWall Symbol = '#'
	// SymbolFloor represents a walkable floor cell.
	SymbolFloor Symbol = '.'
	// SymbolSpace is treated as transparent when placing multi-cell art.
	SymbolSpace Symbol = ' '
)

// Border drawing symbols used for editor-style bordered grids.
const (
	SymbolBorderH  Symbol = '═'
	SymbolBorderV  Symbol = '║'
	SymbolCornerTL Symbol = '╔'
	SymbolCornerTR Symbol = '╗'
	SymbolCornerBL Symbol = '╚'
	SymbolCornerBR Symbol = '╝'
)

// Rune returns the symbol's display character.
func (s Symbol) Rune() rune {
	return rune(s)
}
