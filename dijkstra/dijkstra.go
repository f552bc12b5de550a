package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/crucible/gridmap"
)

// Dijkstra computes the cheapest cost from Options.Source to every node of m.
// Entering a cell costs m.Cost(cell); the source itself is free.
//
// Returns:
//
//   - dist: dist[v] is the minimum cost to reach v (math.MaxInt64 if unreachable).
//   - err:  ErrNilMap or ErrSourceOutOfRange on invalid input.
//
// Complexity:
//
//   - Time:  O(V log V)
//   - Space: O(V)
func Dijkstra(m *gridmap.Map, opts ...Option) ([]int64, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate grid is non-nil
	if m == nil {
		return nil, ErrNilMap
	}

	// 3) Validate Source lies in the grid
	if cfg.Source < 0 || cfg.Source >= m.Len() {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, cfg.Source, m.Len())
	}

	// 4) Prepare data structures: one distance and one visited flag per cell.
	V := m.Len()
	r := &runner{
		m:       m,
		options: cfg,
		dist:    make([]int64, V),
		visited: make([]bool, V),
		pq:      make(nodePQ, 0, V),
		nbuf:    make([]gridmap.Neighbor, 0, 4),
	}

	// 5) Initialize algorithm state and run main loop.
	r.init()
	r.process()

	return r.dist, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	m       *gridmap.Map       // The input grid; read-only within Dijkstra.
	options Options            // Configuration options (Source, thresholds).
	dist    []int64            // Maps node → current best distance from Source.
	visited []bool             // Tracks if a node's distance is finalized.
	pq      nodePQ             // Min-heap of nodeItem for lazy priority queue.
	nbuf    []gridmap.Neighbor // Scratch buffer for neighbor queries.
}

// init sets every distance to +∞ except the source, and pushes the source.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = math.MaxInt64
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unfinalized node and relaxes its moves.
// It stops when the heap is empty or the closest distance exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(nodeItem)

		// 2) Skip stale heap entries.
		if r.visited[item.id] {
			continue
		}

		// 3) Nothing closer remains; stop.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 4) Finalize and relax.
		r.visited[item.id] = true
		r.relax(item.id)
	}
}

// relax tries to improve every in-bounds neighbor of u.
// Assumes r.dist[u] is finalized before calling relax(u).
func (r *runner) relax(u int) {
	r.nbuf = r.m.AppendNeighbors(r.nbuf[:0], u)
	for _, nb := range r.nbuf {
		v := nb.Node
		w := r.m.Cost(v)

		// Walls are never entered.
		if w >= r.options.InfCellThreshold {
			continue
		}

		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}
		// Note: we use “<” rather than “≤” to avoid pushing duplicates when distances are equal.
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		heap.Push(&r.pq, nodeItem{id: v, dist: newDist})
	}
}

// nodeItem represents a node and its current distance from the source.
type nodeItem struct {
	id   int   // row-major node index
	dist int64 // distance from source
}

// nodePQ is a min-heap of nodeItem ordered by dist ascending, using the
// “lazy-decrease-key” approach: outdated entries stay and are ignored when popped.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
