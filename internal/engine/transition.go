package engine

import (
	"errors"
	"fmt"

	"github.com/samdwyer/gridrealm/internal/entity"
	"github.com/samdwyer/gridrealm/internal/world"
)

// ErrDanglingTransition is returned when a transition's destination grid
// has been discarded by the host. It signals a lifetime bug outside the
// engine and is never retried.
var ErrDanglingTransition = errors.New("transition destination grid discarded")

// TransitionLink is a directed portal edge: stepping on the portal symbol
// relocates an entity to the spawn point on the destination grid. Links
// are immutable once constructed; a grid may legally link to itself.
type TransitionLink struct {
	portal world.Symbol
	dest   *world.Grid
	spawn  world.Point
}

// NewTransitionLink creates a link triggered by the portal symbol.
func NewTransitionLink(portal world.Symbol, dest *world.Grid, spawn world.Point) *TransitionLink {
	return &TransitionLink{portal: portal, dest: dest, spawn: spawn}
}

// Portal returns the triggering symbol.
func (l *TransitionLink) Portal() world.Symbol {
	return l.portal
}

// Destination returns the destination grid.
func (l *TransitionLink) Destination() *world.Grid {
	return l.dest
}

// Spawn returns the arrival coordinate on the destination grid.
func (l *TransitionLink) Spawn() world.Point {
	return l.spawn
}

// Apply relocates the entity through the link. Grid reference and position
// change together; an observer never sees the old grid paired with the new
// position or vice versa. The worlds set is the host's registry of live
// grids; a destination missing from it fails with ErrDanglingTransition
// and leaves the entity where it was.
func (l *TransitionLink) Apply(e *entity.Entity, worlds *WorldSet) error {
	if worlds == nil || !worlds.Contains(l.dest) {
		return fmt.Errorf("%w: portal %q", ErrDanglingTransition, l.portal)
	}
	e.Grid = l.dest
	e.Pos = l.spawn
	return nil
}

// TransitionTable maps portal symbols to links for one grid.
type TransitionTable struct {
	links map[world.Symbol]*TransitionLink
}

// NewTransitionTable creates an empty table.
func NewTransitionTable() *TransitionTable {
	return &TransitionTable{links: make(map[world.Symbol]*TransitionLink)}
}

// Register adds a link, replacing any previous link for the same symbol.
func (t *TransitionTable) Register(l *TransitionLink) {
	t.links[l.portal] = l
}

// CheckTransition returns the link for the symbol at the given cell, if
// the cell holds a registered portal.
func (t *TransitionTable) CheckTransition(g *world.Grid, p world.Point) (*TransitionLink, bool) {
	s, err := g.Get(p)
	if err != nil {
		return nil, false
	}
	l, ok := t.links[s]
	return l, ok
}

// WorldSet tracks the grids the host currently keeps alive. Transitions
// consult it to detect dangling destinations.
type WorldSet struct {
	grids map[*world.Grid]struct{}
}

// NewWorldSet creates a world set containing the given grids.
func NewWorldSet(grids ...*world.Grid) *WorldSet {
	set := &WorldSet{grids: make(map[*world.Grid]struct{}, len(grids))}
	for _, g := range grids {
		set.Add(g)
	}
	return set
}

// Add marks a grid as live.
func (w *WorldSet) Add(g *world.Grid) {
	w.grids[g] = struct{}{}
}

// Discard releases a grid. Transitions pointing at it fail afterwards.
func (w *WorldSet) Discard(g *world.Grid) {
	delete(w.grids, g)
}

// Contains returns true if the grid is live.
func (w *WorldSet) Contains(g *world.Grid) bool {
	_, ok := w.grids[g]
	return ok
}
