package game

import (
	"context"
	"testing"

	"github.com/samdwyer/gridrealm/internal/world"
)

func buildTestWorld(t *testing.T, seed int64) *World {
	t.Helper()
	w, err := BuildWorld(context.Background(), Config{Seed: seed})
	if err != nil {
		t.Fatalf("BuildWorld: %v", err)
	}
	return w
}

func TestBuildWorldDeterministic(t *testing.T) {
	w1 := buildTestWorld(t, 77)
	w2 := buildTestWorld(t, 77)

	for id, g1 := range w1.Grids {
		g2, ok := w2.Grids[id]
		if !ok {
			t.Fatalf("level %q missing from second build", id)
		}
		if g1.String() != g2.String() {
			t.Errorf("level %q differs between same-seed builds", id)
		}
	}
}

func TestBuildWorldPortalsWired(t *testing.T) {
	w := buildTestWorld(t, 1)

	over := w.Grids["overworld"]
	dungeon := w.Grids["dungeon"]
	if over == nil || dungeon == nil {
		t.Fatal("expected overworld and dungeon levels")
	}

	def := w.Defs["overworld"]
	var portalCell world.Point
	found := false
	for _, p := range def.Portals {
		if p.Destination == "dungeon" {
			portalCell = world.Point{Row: p.Row, Col: p.Col}
			found = true
		}
	}
	if !found {
		t.Fatal("overworld has no dungeon portal defined")
	}

	s, err := over.Get(portalCell)
	if err != nil {
		t.Fatalf("Get portal cell: %v", err)
	}
	if s != 'D' {
		t.Errorf("portal cell = %q, want 'D'", s)
	}

	link, ok := w.Transitions[over].CheckTransition(over, portalCell)
	if !ok {
		t.Fatal("portal cell not registered in transition table")
	}
	if link.Destination() != dungeon {
		t.Error("portal should link to the dungeon grid")
	}
	if !w.Set.Contains(dungeon) {
		t.Error("dungeon grid should be in the live world set")
	}
}

func TestBuildWorldElementsPlaced(t *testing.T) {
	w := buildTestWorld(t, 1)

	set, ok := w.Elements["house"]
	if !ok || set.Len() == 0 {
		t.Fatal("house level should have editor elements")
	}

	if len(w.Glyphs) == 0 {
		t.Error("loaded glyph definitions should be carried for rendering")
	}

	for _, e := range set.Elements() {
		fp, ok := w.Footprints[e.ID]
		if !ok {
			t.Errorf("element %s has no recorded footprint", e.ID)
			continue
		}
		if len(fp.Cells()) == 0 {
			t.Errorf("element %s footprint is empty", e.ID)
		}
		if e.Bounds == nil {
			t.Errorf("element %s has no movement bounds", e.ID)
		}
	}
}

func TestBuildWorldStart(t *testing.T) {
	w := buildTestWorld(t, 1)

	g, pos := w.StartGrid()
	if g == nil {
		t.Fatal("no start grid")
	}
	if !g.Contains(pos) {
		t.Errorf("start position %v outside start grid", pos)
	}

	level, ok := w.LevelOf(g)
	if !ok || level != w.StartLevel {
		t.Errorf("LevelOf(start) = %q, want %q", level, w.StartLevel)
	}
}

func TestBuildWorldMazeLevelsKeepBorders(t *testing.T) {
	w := buildTestWorld(t, 9)

	for id, def := range w.Defs {
		if def.Generator != "maze" && def.Generator != "" {
			continue
		}
		g := w.Grids[id]
		width, height := g.Dimensions()
		for col := 0; col < width; col++ {
			if s, _ := g.Get(world.Point{Row: 0, Col: col}); s != def.WallSymbol() {
				t.Errorf("level %q top border broken at col %d", id, col)
			}
			if s, _ := g.Get(world.Point{Row: height - 1, Col: col}); s != def.WallSymbol() {
				t.Errorf("level %q bottom border broken at col %d", id, col)
			}
		}
	}
}
