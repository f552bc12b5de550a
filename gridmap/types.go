package gridmap

// Direction is one of the four orthogonal moves on the grid.
type Direction uint8

const (
	// Up decreases the row.
	Up Direction = iota
	// Down increases the row.
	Down
	// Left decreases the column.
	Left
	// Right increases the column.
	Right
)

// Directions lists every Direction in declaration order.
var Directions = [4]Direction{Up, Down, Left, Right}

// Opposite returns the direction that undoes d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Delta returns the row and column offsets of a single step in d.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 1
	}
}

// String renders d as an arrow glyph: ^ v < >.
func (d Direction) String() string {
	switch d {
	case Up:
		return "^"
	case Down:
		return "v"
	case Left:
		return "<"
	case Right:
		return ">"
	}
	return "?"
}

// Neighbor is a legal single-step move from some node.
type Neighbor struct {
	Dir  Direction // direction of the step
	Node int       // row-major index of the cell entered
}

// Map is an immutable W×H grid of non-negative cell costs.
// Cells are stored row-major; minCost caches the cheapest cell for Heuristic.
type Map struct {
	Width, Height int
	cells         []int64
	minCost       int64
}
