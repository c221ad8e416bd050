package world

// Point identifies a single grid cell. Coordinates are row-major with the
// origin at the top-left corner.
type Point struct {
	Row, Col int
}

// Delta is a relative movement offset applied to a Point.
type Delta struct {
	DRow, DCol int
}

// Cardinal movement deltas.
var (
	DeltaUp    = Delta{DRow: -1}
	DeltaDown  = Delta{DRow: 1}
	DeltaLeft  = Delta{DCol: -1}
	DeltaRight = Delta{DCol: 1}
)

// Add returns the point offset by the given delta.
func (p Point) Add(d Delta) Point {
	return Point{Row: p.Row + d.DRow, Col: p.Col + d.DCol}
}

// Rect is an inclusive rectangular region of cells, used as a movement
// envelope restricting where an entity's anchor may go.
type Rect struct {
	MinRow, MinCol int
	MaxRow, MaxCol int
}

// Contains returns true if the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.Row >= r.MinRow && p.Row <= r.MaxRow &&
		p.Col >= r.MinCol && p.Col <= r.MaxCol
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	return r.MinRow <= other.MaxRow && r.MaxRow >= other.MinRow &&
		r.MinCol <= other.MaxCol && r.MaxCol >= other.MinCol
}
