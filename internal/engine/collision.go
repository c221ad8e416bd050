// Package engine implements the per-turn movement rules: collision
// checks, portal transitions, and footprint placement.
package engine

import (
	"github.com/samdwyer/gridrealm/internal/entity"
	"github.com/samdwyer/gridrealm/internal/world"
)

// BlockerSet holds the symbols treated as impassable on a grid. The
// hosting application supplies one per grid.
type BlockerSet map[world.Symbol]struct{}

// NewBlockerSet creates a blocker set from the given symbols.
func NewBlockerSet(symbols ...world.Symbol) BlockerSet {
	set := make(BlockerSet, len(symbols))
	for _, s := range symbols {
		set[s] = struct{}{}
	}
	return set
}

// Has returns true if the symbol is impassable.
func (b BlockerSet) Has(s world.Symbol) bool {
	_, ok := b[s]
	return ok
}

// CanEnter reports whether a cell is passable: it must be in bounds, its
// symbol must not be a blocker, and no solid entity from occupancy may
// already stand there. Callers pass the occupancy excluding the mover
// itself.
func CanEnter(g *world.Grid, p world.Point, blockers BlockerSet, occupancy []*entity.Entity) bool {
	s, err := g.Get(p)
	if err != nil {
		return false
	}
	if blockers.Has(s) {
		return false
	}
	for _, other := range occupancy {
		if other.Grid == g && other.Pos == p && other.Kind.Solid() {
			return false
		}
	}
	return true
}
