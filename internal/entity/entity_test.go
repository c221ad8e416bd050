package entity

import (
	"testing"

	"github.com/samdwyer/gridrealm/internal/world"
)

func TestNewArtStripsBlankEdges(t *testing.T) {
	art := NewArt(`
/\
||
`)

	width, height := art.Size()
	if width != 2 || height != 2 {
		t.Fatalf("Size = %dx%d, want 2x2", width, height)
	}
	if art.Lines()[0][0] != '/' || art.Lines()[1][1] != '|' {
		t.Error("art cells do not match source string")
	}
}

func TestArtFromSymbol(t *testing.T) {
	art := ArtFromSymbol('@')

	width, height := art.Size()
	if width != 1 || height != 1 {
		t.Fatalf("Size = %dx%d, want 1x1", width, height)
	}
	if art.Lines()[0][0] != '@' {
		t.Errorf("cell = %q, want '@'", art.Lines()[0][0])
	}
}

func TestArtRaggedRows(t *testing.T) {
	art := NewArt("ab\nabcd\na")

	width, height := art.Size()
	if width != 4 || height != 3 {
		t.Fatalf("Size = %dx%d, want 4x3", width, height)
	}
}

func TestEntityIDsUnique(t *testing.T) {
	g := world.NewGrid(5, 5, world.SymbolFloor)

	a := NewPlayer(g, world.Point{Row: 1, Col: 1}, '@')
	b := NewElement(g, world.Point{Row: 2, Col: 2}, ArtFromSymbol('T'))

	if a.ID == "" || b.ID == "" || a.ID == b.ID {
		t.Errorf("entity ids should be unique and non-empty, got %q and %q", a.ID, b.ID)
	}
	if !a.Kind.Solid() {
		t.Error("player kind should be solid")
	}
	if b.Kind.Solid() {
		t.Error("element kind should not be solid")
	}
}

func TestElementSetClampsBounds(t *testing.T) {
	g := world.NewBorderedGrid(10, 6, world.SymbolFloor)
	set := NewElementSet(g)

	e := NewElement(g, world.Point{Row: 2, Col: 2}, ArtFromSymbol('T'))
	set.Add(e)

	if e.Bounds == nil {
		t.Fatal("Add should assign movement bounds")
	}
	want := world.Rect{MinRow: 1, MinCol: 1, MaxRow: 4, MaxCol: 8}
	if *e.Bounds != want {
		t.Errorf("Bounds = %+v, want %+v", *e.Bounds, want)
	}
}

func TestElementSetSelection(t *testing.T) {
	g := world.NewGrid(10, 10, world.SymbolFloor)
	set := NewElementSet(g)

	if _, ok := set.Selected(); ok {
		t.Error("empty set should have no selection")
	}

	a := NewElement(g, world.Point{Row: 1, Col: 1}, ArtFromSymbol('a'))
	b := NewElement(g, world.Point{Row: 2, Col: 2}, ArtFromSymbol('b'))
	c := NewElement(g, world.Point{Row: 3, Col: 3}, ArtFromSymbol('c'))
	set.Add(a)
	set.Add(b)
	set.Add(c)

	sel, ok := set.Selected()
	if !ok || sel.ID != a.ID {
		t.Fatal("first added element should start selected")
	}

	set.Next()
	if sel, _ = set.Selected(); sel.ID != b.ID {
		t.Error("Next should advance selection")
	}

	set.Prev()
	set.Prev()
	if sel, _ = set.Selected(); sel.ID != c.ID {
		t.Error("Prev should wrap around to the last element")
	}
}

func TestElementSetRemove(t *testing.T) {
	g := world.NewGrid(10, 10, world.SymbolFloor)
	set := NewElementSet(g)

	a := NewElement(g, world.Point{Row: 1, Col: 1}, ArtFromSymbol('a'))
	b := NewElement(g, world.Point{Row: 2, Col: 2}, ArtFromSymbol('b'))
	set.Add(a)
	set.Add(b)
	set.Next() // select b

	set.Remove(b.ID)

	if set.Len() != 1 {
		t.Fatalf("Len = %d, want 1", set.Len())
	}
	sel, ok := set.Selected()
	if !ok || sel.ID != a.ID {
		t.Error("selection should snap back to a remaining element")
	}

	set.Remove(a.ID)
	if _, ok := set.Selected(); ok {
		t.Error("emptied set should have no selection")
	}
}
