package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilMap indicates that a nil *gridmap.Map was passed to Dijkstra.
	ErrNilMap = errors.New("dijkstra: grid map is nil")

	// ErrSourceOutOfRange indicates that Source is not a node of the grid.
	ErrSourceOutOfRange = errors.New("dijkstra: source node out of range")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfCellThreshold was set to zero or negative,
	// which would turn every cell (including zero-cost cells) into a wall.
	ErrBadInfThreshold = errors.New("dijkstra: InfCellThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting node (row-major index). Default 0.
// MaxDistance      – optional cap on distances to explore (cells beyond are skipped).
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfCellThreshold – treat cells with cost ≥ this threshold as impassable.
//
//	Must be > 0. Default is math.MaxInt64 (no walls).
type Options struct {
	Source           int   // Start node
	MaxDistance      int64 // Maximum distance to explore
	InfCellThreshold int64 // Cost threshold at or above which cells are walls
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the start node.
func Source(node int) Option {
	return func(o *Options) {
		o.Source = node
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Cells whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			// In Go, panic in Option constructors is acceptable for invalid arguments.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfCellThreshold defines a cost at or above which a cell cannot be entered.
// Must pass a positive value; zero or negative panic with ErrBadInfThreshold.
func WithInfCellThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfCellThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - Source:           0 (top-left cell).
//   - MaxDistance:      math.MaxInt64 (no distance limit; explore all reachable).
//   - InfCellThreshold: math.MaxInt64 (no cells treated as walls).
func DefaultOptions() Options {
	return Options{
		Source:           0,
		MaxDistance:      math.MaxInt64,
		InfCellThreshold: math.MaxInt64,
	}
}
