package engine

import (
	"github.com/samdwyer/gridrealm/internal/entity"
	"github.com/samdwyer/gridrealm/internal/world"
)

// FootprintCell records one overwritten cell and the symbol it held
// before placement.
type FootprintCell struct {
	Pos  world.Point
	Prev world.Symbol
}

// Footprint is the record Place returns: every cell it wrote plus the
// prior symbols, in write order, so Remove can undo the placement
// exactly.
type Footprint struct {
	cells []FootprintCell
}

// Cells returns the recorded cells in write order.
func (f Footprint) Cells() []FootprintCell {
	return f.cells
}

// Place composites the entity's art onto the grid starting at the
// entity's position. Space cells in the art are transparent and skipped;
// cells falling outside the grid are clipped, not rejected. The returned
// footprint must be passed to Remove before the next Place for the same
// entity: calling Place twice without an intervening Remove records the
// entity's own glyphs as "prior" symbols and corrupts the restore.
func Place(g *world.Grid, e *entity.Entity) Footprint {
	var fp Footprint
	for row, line := range e.Art.Lines() {
		for col, s := range line {
			if s == world.SymbolSpace {
				continue
			}
			p := world.Point{Row: e.Pos.Row + row, Col: e.Pos.Col + col}
			prev, err := g.Get(p)
			if err != nil {
				continue
			}
			if err := g.Set(p, s); err != nil {
				continue
			}
			fp.cells = append(fp.cells, FootprintCell{Pos: p, Prev: prev})
		}
	}
	return fp
}

// Remove writes the recorded prior symbols back, exactly undoing the
// Place that produced the footprint.
func Remove(g *world.Grid, fp Footprint) {
	for _, c := range fp.cells {
		_ = g.Set(c.Pos, c.Prev)
	}
}
