package crucible

import (
	"container/heap"

	"github.com/katalvlaran/crucible/gridmap"
)

// MinimumCost returns the cheapest route cost from m.Start() to m.Target()
// under the configured rule. See Search for details and errors.
func MinimumCost(m *gridmap.Map, opts ...Option) (int64, error) {
	res, err := Search(m, opts...)
	if err != nil {
		return 0, err
	}
	return res.Cost, nil
}

// Search runs the constrained best-first search and returns the optimal cost
// together with work counters.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrNilMap).
//  2. The rule must be valid (ErrBadMinRun, ErrBadMaxRun).
//
// The search then either finds the target with a stoppable history or
// returns ErrUnreachableGoal.
func Search(m *gridmap.Map, opts ...Option) (Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if m == nil {
		return Result{}, ErrNilMap
	}
	if err := cfg.Rule.Validate(); err != nil {
		return Result{}, err
	}

	// 3) One frontier per cell, all empty.
	frontiers := make([]Frontier, m.Len())
	for i := range frontiers {
		frontiers[i] = newFrontier(cfg.Rule, cfg.Compression)
	}

	r := &runner{
		m:         m,
		options:   cfg,
		target:    m.Target(),
		frontiers: frontiers,
		pq:        make(statePQ, 0, m.Len()),
		nbuf:      make([]gridmap.Neighbor, 0, 4),
	}

	// 4) Seed and run.
	r.init()
	cost, err := r.process()
	if err != nil {
		return Result{Stats: r.stats}, err
	}

	return Result{Cost: cost, Stats: r.stats}, nil
}

// runner holds the mutable state of a single search.
type runner struct {
	m         *gridmap.Map
	options   Options
	target    int
	frontiers []Frontier
	pq        statePQ
	nbuf      []gridmap.Neighbor
	stats     Stats
	furthest  int
}

// init seeds the start cell with the initial history at cost 0.
func (r *runner) init() {
	start := r.m.Start()
	r.options.Logger.Info("searching grid",
		"nodes", r.m.Len(),
		"width", r.m.Width,
		"height", r.m.Height,
		"rule", r.options.Rule.String(),
		"heuristic", r.options.Heuristic.String(),
	)

	heap.Init(&r.pq)
	r.frontiers[start].Merge(Initial(), 0)
	r.push(start, Initial(), 0)
}

// process pops states in priority order until a stoppable target state
// comes out, which is then optimal.
func (r *runner) process() (int64, error) {
	log := r.options.Logger
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(stateItem)
		r.stats.Popped++

		// A cheaper or more permissive entry replaced this one after it was queued.
		if !r.frontiers[item.node].Holds(item.hist, item.cost) {
			r.stats.Stale++
			continue
		}

		if item.node > r.furthest {
			r.furthest = item.node
			log.Debug("reached node", "node", item.node, "cost", item.cost)
		}

		if item.node == r.target && r.options.Rule.CanStop(item.hist) {
			log.Info("found target",
				"cost", item.cost,
				"history", item.hist.String(),
				"popped", r.stats.Popped,
				"pushed", r.stats.Pushed,
			)
			return item.cost, nil
		}

		r.expand(item)
	}

	log.Warn("queue exhausted before reaching target",
		"rule", r.options.Rule.String(),
		"popped", r.stats.Popped,
	)
	return 0, ErrUnreachableGoal
}

// expand relaxes every legal move out of item.
func (r *runner) expand(item stateItem) {
	r.stats.Expanded++
	r.nbuf = r.m.AppendNeighbors(r.nbuf[:0], item.node)
	for _, nb := range r.nbuf {
		next, ok := r.options.Rule.Advance(item.hist, nb.Dir)
		if !ok {
			continue
		}
		cost := item.cost + r.m.Cost(nb.Node)
		if !r.frontiers[nb.Node].Merge(next, cost) {
			continue
		}
		r.push(nb.Node, next, cost)
	}
}

func (r *runner) push(node int, h History, cost int64) {
	priority := cost
	if r.options.Heuristic == HeuristicManhattan {
		priority += r.m.Heuristic(node, r.target)
	}
	heap.Push(&r.pq, stateItem{node: node, hist: h, cost: cost, priority: priority})
	r.stats.Pushed++
	if n := r.pq.Len(); n > r.stats.MaxQueue {
		r.stats.MaxQueue = n
	}
}

// stateItem is a queued (cell, history) state.
type stateItem struct {
	node     int
	hist     History
	cost     int64
	priority int64 // cost plus heuristic
}

// statePQ is a min-heap of stateItem ordered by priority. Superseded items
// stay in the heap and are skipped when popped.
type statePQ []stateItem

func (pq statePQ) Len() int { return len(pq) }

func (pq statePQ) Less(i, j int) bool { return pq[i].priority < pq[j].priority }

func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *statePQ) Push(x any) { *pq = append(*pq, x.(stateItem)) }

func (pq *statePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
