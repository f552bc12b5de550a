// Package crucible is the module root for routing across cost grids under
// run-length rules.
//
// Under the hood, everything is organized under these subpackages:
//
//	gridmap/      — immutable cost grid, digit parsing, neighbors, A* bound
//	crucible/     — run rules, per-cell dominance frontiers, constrained search
//	dijkstra/     — unconstrained grid shortest paths (reference answers)
//	config/       — YAML variants and search settings
//	cmd/crucible/ — command line: solve one rule or all variants
//
// Quick example:
//
//	m, _ := gridmap.ParseLines([]string{"2413", "3215", "3255"})
//	cost, _ := crucible.MinimumCost(m, crucible.WithRule(crucible.UltraRule()))
package crucible
