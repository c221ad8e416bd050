package world

import (
	"context"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gridrealm/internal/telemetry"
)

// MazeGenerator carves maze layouts into a grid using randomized
// depth-first backtracking.
//
// Cells at odd (row, col) coordinates are carveable nodes; even rows and
// columns form the wall lattice between them, so the outer border always
// survives. Frontier neighbors two cells away are enumerated in fixed
// north, south, west, east order and the generator draws exactly one
// rng.Intn per expansion, which makes output byte-identical for a fixed
// random source.
type MazeGenerator struct {
	rng *rand.Rand
}

// NewMazeGenerator creates a generator using the injected random source.
func NewMazeGenerator(rng *rand.Rand) *MazeGenerator {
	return &MazeGenerator{rng: rng}
}

// Carve generates a perfect maze over the grid, converting wall cells to
// floor. The grid is expected to be pre-filled with the wall symbol. The
// start cell is clamped to the nearest odd interior coordinate; grids
// smaller than 3x3 have no interior and are returned untouched.
func (m *MazeGenerator) Carve(ctx context.Context, g *Grid, start Point, wall, floor Symbol) error {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "maze.carve")
	defer span.End()

	width, height := g.Dimensions()
	if width < 3 || height < 3 {
		span.SetAttributes(attribute.Bool("maze.skipped", true))
		return nil
	}

	start = Point{
		Row: clampOdd(start.Row, height),
		Col: clampOdd(start.Col, width),
	}

	visited := make([][]bool, height)
	for row := range visited {
		visited[row] = make([]bool, width)
	}

	carved := 0
	carve := func(p Point) error {
		if err := g.Set(p, floor); err != nil {
			return err
		}
		carved++
		return nil
	}

	visited[start.Row][start.Col] = true
	if err := carve(start); err != nil {
		return err
	}

	stack := []Point{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		candidates := m.frontier(cur, width, height, visited)
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[m.rng.Intn(len(candidates))]
		between := Point{
			Row: (cur.Row + next.Row) / 2,
			Col: (cur.Col + next.Col) / 2,
		}

		if err := carve(between); err != nil {
			return err
		}
		visited[next.Row][next.Col] = true
		if err := carve(next); err != nil {
			return err
		}
		stack = append(stack, next)
	}

	span.SetAttributes(
		attribute.Int("maze.width", width),
		attribute.Int("maze.height", height),
		attribute.Int("maze.cells_carved", carved),
	)
	return nil
}

// frontier returns the unvisited node cells two steps from cur, keeping a
// wall ring around the grid edge. Order is fixed so the rng stream is the
// only source of variation.
func (m *MazeGenerator) frontier(cur Point, width, height int, visited [][]bool) []Point {
	steps := []Delta{
		{DRow: -2}, // north
		{DRow: 2},  // south
		{DCol: -2}, // west
		{DCol: 2},  // east
	}

	candidates := make([]Point, 0, 4)
	for _, d := range steps {
		n := cur.Add(d)
		if n.Row < 1 || n.Row > height-2 || n.Col < 1 || n.Col > width-2 {
			continue
		}
		if visited[n.Row][n.Col] {
			continue
		}
		candidates = append(candidates, n)
	}
	return candidates
}

// clampOdd pulls a coordinate into the odd-aligned interior 1..size-2.
func clampOdd(v, size int) int {
	if v < 1 {
		v = 1
	}
	if v > size-2 {
		v = size - 2
	}
	if v%2 == 0 {
		v--
	}
	if v < 1 {
		v = 1
	}
	return v
}
