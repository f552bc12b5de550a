// Package crucible computes minimum-cost routes across a cost grid when
// legal moves depend on recent movement history: a route may not reverse,
// may not run more than MaxRun consecutive steps in one direction, and may
// not turn (or stop) before completing MinRun steps in its current direction.
//
// Overview:
//
//   - The search runs over augmented states (cell, History), where History is
//     the last direction taken and how many consecutive steps it has lasted.
//   - Each cell keeps a Frontier of (History → cheapest cost) entries. An entry
//     is dropped as soon as another entry at the same cell permits every
//     continuation it permits at no greater cost (see Rule.Dominates), which
//     bounds the per-cell state count without losing the optimum.
//   - States are expanded best-first from a min-heap. With HeuristicManhattan
//     the priority is cost + a consistent lower bound on the remaining cost (A*);
//     with HeuristicNone it is plain Dijkstra.
//   - The first popped target state that satisfies Rule.CanStop is optimal.
//
// Rules:
//
//   - BasicRule():  MinRun=1, MaxRun=3  — at most three steps before a turn.
//   - UltraRule():  MinRun=4, MaxRun=10 — between four and ten steps per leg,
//     and the target only counts once the last leg reached four.
//   - Rule{MinRun: 1, MaxRun: Unbounded} reproduces ordinary shortest paths.
//
// Cost model:
//
//   - Entering a cell costs gridmap.Map.Cost(cell); the start cell is free.
//   - A 1×1 grid therefore costs 0 under every rule.
//
// Complexity:
//
//   - States: at most V × (4·MaxRun + 1); dominance keeps far fewer in practice.
//   - Time:   O(S log S) for S pushed states; Space: O(S).
//
// Error handling (sentinel errors):
//
//   - ErrNilMap:          the grid is nil.
//   - ErrBadMinRun:       MinRun < 1.
//   - ErrBadMaxRun:       MaxRun < MinRun.
//   - ErrUnreachableGoal: the queue drained before a stoppable target state
//     was popped (for example a single row wider than MaxRun+1).
//
// Thread safety:
//
//   - Each call owns its frontiers and queue; concurrent calls sharing one
//     *gridmap.Map are safe because the map is immutable.
//
// Example:
//
//	m, _ := gridmap.ParseLines(lines)
//	cost, err := crucible.MinimumCost(m, crucible.WithRule(crucible.UltraRule()))
package crucible
