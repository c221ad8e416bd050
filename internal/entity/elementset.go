package entity

import "github.com/samdwyer/gridrealm/internal/world"

// ElementSet is the editor's registry of draggable elements with a single
// cyclic selection, mirroring the house-editor workflow: add furniture,
// tab between pieces, drag the selected one.
type ElementSet struct {
	grid     *world.Grid
	elements []*Entity
	selected int
}

// NewElementSet creates an element set for the given grid.
func NewElementSet(g *world.Grid) *ElementSet {
	return &ElementSet{grid: g}
}

// Add registers an element, clamping its movement bounds to the grid
// interior so dragging never pushes it onto the border.
func (s *ElementSet) Add(e *Entity) {
	width, height := s.grid.Dimensions()
	e.Grid = s.grid
	e.Bounds = &world.Rect{
		MinRow: 1,
		MinCol: 1,
		MaxRow: height - 2,
		MaxCol: width - 2,
	}
	s.elements = append(s.elements, e)
}

// Remove deletes the element with the given id. Selection snaps back to
// the last element when it would fall off the end.
func (s *ElementSet) Remove(id string) {
	kept := s.elements[:0]
	for _, e := range s.elements {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.elements = kept
	if s.selected >= len(s.elements) {
		s.selected = len(s.elements) - 1
		if s.selected < 0 {
			s.selected = 0
		}
	}
}

// Selected returns the currently selected element, if any.
func (s *ElementSet) Selected() (*Entity, bool) {
	if s.selected < 0 || s.selected >= len(s.elements) {
		return nil, false
	}
	return s.elements[s.selected], true
}

// Next advances the selection cyclically.
func (s *ElementSet) Next() {
	if len(s.elements) > 0 {
		s.selected = (s.selected + 1) % len(s.elements)
	}
}

// Prev moves the selection back cyclically.
func (s *ElementSet) Prev() {
	if len(s.elements) > 0 {
		s.selected = (s.selected - 1 + len(s.elements)) % len(s.elements)
	}
}

// Len returns the number of elements.
func (s *ElementSet) Len() int {
	return len(s.elements)
}

// Elements returns the registered elements in insertion order.
func (s *ElementSet) Elements() []*Entity {
	return s.elements
}
