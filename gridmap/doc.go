// Package gridmap holds an immutable rectangular grid of per-cell
// traversal costs and answers the geometric questions a grid router asks.
//
// What:
//
//   - Map wraps a W×H cost matrix addressed by row-major node index
//     (node = row*Width + col).
//   - Cost(node) is the price of entering a cell; the start cell is never charged.
//   - AppendNeighbors lists the up-to-four orthogonal moves that stay in bounds.
//   - Heuristic is a lower bound on the remaining cost to a target, suitable for A*.
//
// Why:
//
//   - Routing engines need cheap O(1) bounds and adjacency queries without
//     materializing an explicit edge list.
//   - Text puzzles and heat maps arrive as rows of digits; Parse/ParseLines
//     turn them into a Map and report exactly where the input is malformed.
//
// Complexity:
//
//   - New, ParseLines, Parse: O(W×H) time and memory.
//   - Cost, InBounds, Index, Coordinate, Heuristic: O(1).
//   - AppendNeighbors: O(1), no allocation when dst has capacity 4.
//
// Errors:
//
//   - ErrMalformedGrid: umbrella sentinel; every construction error matches it.
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrNonDigit: a text row contains a byte outside '0'..'9'.
//   - ErrNegativeCost: a cell cost below zero.
//
// All construction errors are delivered as *MalformedGridError, which
// records the offending row and column.
package gridmap
