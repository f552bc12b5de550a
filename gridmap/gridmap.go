package gridmap

// New constructs a Map from a non-empty, rectangular 2D slice of costs.
// It deep-copies the input so later mutation of values has no effect.
// Returns a *MalformedGridError wrapping ErrEmptyGrid, ErrNonRectangular
// or ErrNegativeCost.
// Complexity: O(W×H) time and memory.
func New(values [][]int64) (*Map, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, malformed(0, -1, ErrEmptyGrid)
	}
	h, w := len(values), len(values[0])
	cells := make([]int64, 0, w*h)
	minCost := values[0][0]
	for y, row := range values {
		if len(row) != w {
			return nil, malformed(y, -1, ErrNonRectangular)
		}
		for x, c := range row {
			if c < 0 {
				return nil, malformed(y, x, ErrNegativeCost)
			}
			if c < minCost {
				minCost = c
			}
		}
		cells = append(cells, row...)
	}

	return &Map{Width: w, Height: h, cells: cells, minCost: minCost}, nil
}

// Len returns the number of cells.
func (m *Map) Len() int { return len(m.cells) }

// Start is the top-left node.
func (m *Map) Start() int { return 0 }

// Target is the bottom-right node.
func (m *Map) Target() int { return len(m.cells) - 1 }

// MinCost returns the cheapest cell cost in the grid.
func (m *Map) MinCost() int64 { return m.minCost }

// Cost returns the price of entering node. node must be in range.
func (m *Map) Cost(node int) int64 { return m.cells[node] }

// InBounds reports whether (row, col) lies within the grid.
func (m *Map) InBounds(row, col int) bool {
	return row >= 0 && row < m.Height && col >= 0 && col < m.Width
}

// Index maps (row, col) to a row-major node index.
func (m *Map) Index(row, col int) int {
	return row*m.Width + col
}

// Coordinate converts a row-major node index back to (row, col).
func (m *Map) Coordinate(node int) (row, col int) {
	return node / m.Width, node % m.Width
}

// AppendNeighbors appends to dst every in-bounds single step from node,
// in Directions order, and returns the extended slice.
func (m *Map) AppendNeighbors(dst []Neighbor, node int) []Neighbor {
	row, col := m.Coordinate(node)
	for _, d := range Directions {
		dr, dc := d.Delta()
		if !m.InBounds(row+dr, col+dc) {
			continue
		}
		dst = append(dst, Neighbor{Dir: d, Node: m.Index(row+dr, col+dc)})
	}
	return dst
}

// Manhattan returns the grid distance in steps between two nodes.
func (m *Map) Manhattan(a, b int) int64 {
	ar, ac := m.Coordinate(a)
	br, bc := m.Coordinate(b)
	return int64(abs(ar-br) + abs(ac-bc))
}

// Heuristic returns a lower bound on the cost of reaching target from node:
// every one of the Manhattan(node, target) cells still to be entered costs
// at least MinCost. The bound is consistent, so A* may stop at the first
// goal pop.
func (m *Map) Heuristic(node, target int) int64 {
	return m.Manhattan(node, target) * m.minCost
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
