package world

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when a coordinate falls outside a grid.
	ErrOutOfBounds = errors.New("coordinate out of grid bounds")
	// ErrInvalidGridShape is returned when a grid is constructed from rows
	// of unequal length.
	ErrInvalidGridShape = errors.New("invalid grid shape")
)

// Grid is a rectangular map of display symbols. It owns its dimensions and
// never resizes after construction; swapping maps means building a new Grid.
// All reads and writes are bounds checked.
type Grid struct {
	width  int
	height int
	cells  [][]Symbol
}

// NewGrid creates a grid of the given dimensions with every cell set to fill.
func NewGrid(width, height int, fill Symbol) *Grid {
	cells := make([][]Symbol, height)
	for row := range cells {
		cells[row] = make([]Symbol, width)
		for col := range cells[row] {
			cells[row][col] = fill
		}
	}
	return &Grid{width: width, height: height, cells: cells}
}

// NewGridFromLines creates a grid from pre-drawn rows of symbols. Every line
// must have the same length or ErrInvalidGridShape is returned.
func NewGridFromLines(lines []string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidGridShape)
	}

	cells := make([][]Symbol, len(lines))
	width := -1
	for row, line := range lines {
		runes := []rune(line)
		if width == -1 {
			width = len(runes)
		} else if len(runes) != width {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d",
				ErrInvalidGridShape, row, len(runes), width)
		}
		cells[row] = make([]Symbol, width)
		for col, r := range runes {
			cells[row][col] = Symbol(r)
		}
	}
	if width == 0 {
		return nil, fmt.Errorf("%w: zero-width rows", ErrInvalidGridShape)
	}

	return &Grid{width: width, height: len(lines), cells: cells}, nil
}

// NewBorderedGrid creates a grid filled with floor and enclosed by a
// box-drawing border, the layout the house editor starts from.
func NewBorderedGrid(width, height int, floor Symbol) *Grid {
	g := NewGrid(width, height, floor)
	for col := 0; col < width; col++ {
		g.cells[0][col] = SymbolBorderH
		g.cells[height-1][col] = SymbolBorderH
	}
	for row := 0; row < height; row++ {
		g.cells[row][0] = SymbolBorderV
		g.cells[row][width-1] = SymbolBorderV
	}
	g.cells[0][0] = SymbolCornerTL
	g.cells[0][width-1] = SymbolCornerTR
	g.cells[height-1][0] = SymbolCornerBL
	g.cells[height-1][width-1] = SymbolCornerBR
	return g
}

// Dimensions returns the grid's width and height.
func (g *Grid) Dimensions() (width, height int) {
	return g.width, g.height
}

// Contains returns true if the point is a valid cell coordinate.
func (g *Grid) Contains(p Point) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// Get returns the symbol at the given cell.
func (g *Grid) Get(p Point) (Symbol, error) {
	if !g.Contains(p) {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d grid",
			ErrOutOfBounds, p.Row, p.Col, g.width, g.height)
	}
	return g.cells[p.Row][p.Col], nil
}

// Set writes the symbol at the given cell.
func (g *Grid) Set(p Point, s Symbol) error {
	if !g.Contains(p) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d grid",
			ErrOutOfBounds, p.Row, p.Col, g.width, g.height)
	}
	g.cells[p.Row][p.Col] = s
	return nil
}

// Fill sets every cell to the given symbol.
func (g *Grid) Fill(s Symbol) {
	for row := range g.cells {
		for col := range g.cells[row] {
			g.cells[row][col] = s
		}
	}
}

// Rows returns a copy of the grid contents as a row sequence for rendering.
// Mutating the returned slices does not affect the grid; writes go through
// Set only.
func (g *Grid) Rows() [][]Symbol {
	rows := make([][]Symbol, g.height)
	for row := range g.cells {
		rows[row] = make([]Symbol, g.width)
		copy(rows[row], g.cells[row])
	}
	return rows
}

// String renders the grid as newline-separated rows, mainly for tests and
// debug logging.
func (g *Grid) String() string {
	buf := make([]rune, 0, (g.width+1)*g.height)
	for row := range g.cells {
		for _, s := range g.cells[row] {
			buf = append(buf, rune(s))
		}
		if row < g.height-1 {
			buf = append(buf, '\n')
		}
	}
	return string(buf)
}
