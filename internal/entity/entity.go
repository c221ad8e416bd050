// Package entity provides movable grid occupants: the player and
// draggable editor elements.
package entity

import (
	"github.com/google/uuid"

	"github.com/samdwyer/gridrealm/internal/world"
)

// Kind tags an entity variant. Movement and collision never branch on
// anything beyond the tag; kind-specific behavior lives with the host.
type Kind int

const (
	// KindPlayer is the single player-controlled occupant.
	KindPlayer Kind = iota
	// KindElement is a draggable editor element with multi-cell art.
	KindElement
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindElement:
		return "element"
	default:
		return "unknown"
	}
}

// Solid returns true if the kind refuses to share a cell with another
// solid occupant. Editor elements overlap freely.
func (k Kind) Solid() bool {
	return k == KindPlayer
}

// Entity is a movable occupant of a grid. It references its active grid
// without owning it; the hosting application decides which grid an entity
// is on and swaps the reference on map changes.
type Entity struct {
	ID   string
	Kind Kind
	Grid *world.Grid
	Pos  world.Point
	Art  Art

	// Bounds, when set, restricts where the entity's anchor may move.
	Bounds *world.Rect
}

// NewPlayer creates a player entity on the given grid drawn as a single
// symbol.
func NewPlayer(g *world.Grid, pos world.Point, symbol world.Symbol) *Entity {
	return &Entity{
		ID:   uuid.NewString(),
		Kind: KindPlayer,
		Grid: g,
		Pos:  pos,
		Art:  ArtFromSymbol(symbol),
	}
}

// NewElement creates a draggable element with multi-line art.
func NewElement(g *world.Grid, pos world.Point, art Art) *Entity {
	return &Entity{
		ID:   uuid.NewString(),
		Kind: KindElement,
		Grid: g,
		Pos:  pos,
		Art:  art,
	}
}
