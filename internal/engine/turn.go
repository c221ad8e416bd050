package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/gridrealm/internal/entity"
	"github.com/samdwyer/gridrealm/internal/world"
)

// TurnDeps carries the per-turn collaborators the host owns. Blockers and
// transitions are keyed by grid because every grid has its own impassable
// symbols and portal table.
type TurnDeps struct {
	Blockers    map[*world.Grid]BlockerSet
	Transitions map[*world.Grid]*TransitionTable
	Occupancy   []*entity.Entity
	Worlds      *WorldSet
	Registry    *Registry
	Log         logrus.FieldLogger
}

// TurnReport is the outcome of one turn for one entity. The host must
// retain Footprint and pass it back as prev on the entity's next turn.
type TurnReport struct {
	Result       MoveResult
	Link         *TransitionLink
	Transitioned bool
	Footprint    Footprint
	Err          error
}

// Turn runs one entity's turn in the fixed order collision check →
// position update → transition check → footprint erase and redraw. The
// sequence is one critical section: the engine is single threaded and no
// other mutation of the same grid or entity may interleave.
func Turn(e *entity.Entity, d world.Delta, prev Footprint, deps TurnDeps) TurnReport {
	defer func() {
		if deps.Registry != nil {
			deps.Registry.Update()
		}
	}()

	oldGrid := e.Grid
	from := e.Pos

	rep := TurnReport{Footprint: prev}
	rep.Result = AttemptMove(e, d, deps.Blockers[e.Grid], deps.Occupancy)
	if rep.Result == Blocked {
		if deps.Log != nil {
			deps.Log.WithFields(logrus.Fields{
				"entity": e.ID,
				"kind":   e.Kind.String(),
				"from":   from,
				"delta":  d,
			}).Debug("move blocked")
		}
		return rep
	}

	if tbl := deps.Transitions[e.Grid]; tbl != nil {
		if link, ok := tbl.CheckTransition(e.Grid, e.Pos); ok {
			rep.Link = link
			if err := link.Apply(e, deps.Worlds); err != nil {
				rep.Err = err
				if deps.Log != nil {
					deps.Log.WithFields(logrus.Fields{
						"entity": e.ID,
						"portal": string(link.Portal()),
					}).Error("transition failed")
				}
			} else {
				rep.Transitioned = true
			}
		}
	}

	Remove(oldGrid, prev)
	rep.Footprint = Place(e.Grid, e)

	if deps.Log != nil {
		deps.Log.WithFields(logrus.Fields{
			"entity":       e.ID,
			"kind":         e.Kind.String(),
			"from":         from,
			"to":           e.Pos,
			"transitioned": rep.Transitioned,
		}).Debug("move committed")
	}
	return rep
}
