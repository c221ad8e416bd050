package engine

import (
	"github.com/samdwyer/gridrealm/internal/entity"
	"github.com/samdwyer/gridrealm/internal/world"
)

// MoveResult reports the outcome of an attempted move.
type MoveResult int

const (
	// Blocked means the move was refused and the entity did not change.
	Blocked MoveResult = iota
	// Moved means the entity's position was updated.
	Moved
)

// String returns a human-readable result name.
func (r MoveResult) String() string {
	switch r {
	case Blocked:
		return "blocked"
	case Moved:
		return "moved"
	default:
		return "unknown"
	}
}

// AttemptMove computes the entity's destination from the delta and either
// commits it or leaves the entity untouched. A bounds rectangle on the
// entity always wins over grid content. The decision is all-or-nothing:
// nothing mutates on a Blocked result.
func AttemptMove(e *entity.Entity, d world.Delta, blockers BlockerSet, occupancy []*entity.Entity) MoveResult {
	dest := e.Pos.Add(d)

	if e.Bounds != nil && !e.Bounds.Contains(dest) {
		return Blocked
	}
	if !CanEnter(e.Grid, dest, blockers, occupancy) {
		return Blocked
	}

	e.Pos = dest
	return Moved
}
