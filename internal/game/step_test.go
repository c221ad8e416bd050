package game

import (
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/gridrealm/internal/engine"
	"github.com/samdwyer/gridrealm/internal/entity"
	"github.com/samdwyer/gridrealm/internal/world"
)

// selectElementAt cycles the level's element set until the element
// anchored at p is selected.
func selectElementAt(t *testing.T, set *entity.ElementSet, p world.Point) *entity.Entity {
	t.Helper()
	for i := 0; i < set.Len(); i++ {
		sel, ok := set.Selected()
		if !ok {
			break
		}
		if sel.Pos == p {
			return sel
		}
		set.Next()
	}
	t.Fatalf("no element anchored at %v", p)
	return nil
}

// A player standing on an element's art must survive that element being
// dragged out from under it, and the vacated cells must restore to what
// the element was covering.
func TestStepDragUnderPlayerKeepsFootprintsConsistent(t *testing.T) {
	w := buildTestWorld(t, 1)
	house := w.Grids["house"]
	if house == nil {
		t.Fatal("expected house level")
	}
	set := w.Elements["house"]
	if set == nil {
		t.Fatal("expected house element set")
	}
	bedPos := world.Point{Row: 1, Col: 2}
	selectElementAt(t, set, bedPos)

	player := entity.NewPlayer(house, bedPos, '@')
	fp := engine.Place(house, player)

	g := &Game{
		log:      logrus.New(),
		world:    w,
		player:   player,
		playerFP: fp,
		state:    StateEditor,
	}

	g.step(world.DeltaRight)

	got, err := house.Get(bedPos)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != '@' {
		t.Fatalf("player cell after drag = %q, want '@'", got)
	}

	g.state = StateExplore
	g.step(world.DeltaDown)

	if g.player.Pos != (world.Point{Row: 2, Col: 2}) {
		t.Fatalf("player at %v, want (2,2)", g.player.Pos)
	}
	got, err = house.Get(bedPos)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != world.SymbolFloor {
		t.Fatalf("vacated cell = %q, want floor", got)
	}
}
