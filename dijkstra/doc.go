// Package dijkstra computes unconstrained single-source shortest paths on a
// gridmap.Map, where moving into a cell costs that cell's value.
//
// Overview:
//
//   - Every orthogonal step is allowed; there is no memory of previous moves.
//   - It relies on a min-heap (priority queue) to always expand the next-closest cell.
//   - Supports distance caps and "impassable" cell thresholds.
//
// When to use:
//
//   - As the reference answer for route searches that add movement rules on
//     top of a grid: any such rule can only raise the cost.
//   - For plain least-cost navigation over terrain or heat maps.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - Source: start node (row-major index); defaults to the top-left cell.
//   - MaxDistance: aborts exploration beyond a specified distance, saving work in large grids.
//   - InfCellThreshold: treats any cell with cost ≥ threshold as a wall.
//
// Performance and complexity:
//
//   - Time:  O(V log V) with V = W×H; each cell has at most four edges.
//   - Space: O(V) for the distance slice and the heap.
//
// Error handling (sentinel errors):
//
//   - ErrNilMap:           the grid is nil.
//   - ErrSourceOutOfRange: Source is not a node of the grid.
//   - ErrBadMaxDistance:   never returned; its text is the panic value when
//     WithMaxDistance with a negative value is applied.
//   - ErrBadInfThreshold:  never returned; its text is the panic value when
//     WithInfCellThreshold with a non-positive value is applied.
//
// API reference:
//
//	func Dijkstra(m *gridmap.Map, opts ...Option) (dist []int64, err error)
//
//	  - dist[v] = minimal cost from Source to v, or math.MaxInt64 if unreachable
//	    or beyond MaxDistance. dist[Source] = 0.
//
// Thread safety:
//
//   - gridmap.Map is immutable, so concurrent calls are safe.
package dijkstra
