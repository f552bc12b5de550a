package crucible

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
)

// Sentinel errors returned by Search and MinimumCost.
var (
	// ErrNilMap indicates a nil *gridmap.Map was passed in.
	ErrNilMap = errors.New("crucible: grid map is nil")

	// ErrBadMinRun indicates MinRun was below one.
	ErrBadMinRun = errors.New("crucible: MinRun must be at least 1")

	// ErrBadMaxRun indicates MaxRun was below MinRun.
	ErrBadMaxRun = errors.New("crucible: MaxRun must be at least MinRun")

	// ErrUnreachableGoal indicates the search exhausted every state without
	// reaching the target with a history that may stop there.
	ErrUnreachableGoal = errors.New("crucible: target unreachable under the run rule")

	// ErrUnknownHeuristic indicates a heuristic name that ParseHeuristic does not know.
	ErrUnknownHeuristic = errors.New("crucible: unknown heuristic")
)

// Unbounded is the MaxRun that places no cap on straight runs.
const Unbounded = math.MaxInt

// Heuristic selects the lower bound used to order the search queue.
type Heuristic int

const (
	// HeuristicNone orders states by cost alone (Dijkstra).
	HeuristicNone Heuristic = iota

	// HeuristicManhattan adds Manhattan distance × cheapest cell cost (A*).
	HeuristicManhattan
)

// String returns the configuration name of h.
func (h Heuristic) String() string {
	switch h {
	case HeuristicNone:
		return "none"
	case HeuristicManhattan:
		return "manhattan"
	}
	return fmt.Sprintf("Heuristic(%d)", int(h))
}

// ParseHeuristic maps a configuration name back to a Heuristic.
func ParseHeuristic(name string) (Heuristic, error) {
	switch name {
	case "none", "dijkstra":
		return HeuristicNone, nil
	case "manhattan", "astar":
		return HeuristicManhattan, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
}

// Options configures a search.
//
// Rule        – run-length limits; must satisfy Rule.Validate.
// Heuristic   – queue ordering; HeuristicManhattan by default.
// Compression – prune dominated frontier entries; true by default. Turning it
//
//	off keeps one entry per distinct History and is only useful as a reference.
//
// Logger      – receives progress records; discarded by default.
type Options struct {
	Rule        Rule
	Heuristic   Heuristic
	Compression bool
	Logger      *slog.Logger
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithRule replaces both run limits.
func WithRule(r Rule) Option {
	return func(o *Options) {
		o.Rule = r
	}
}

// WithMinRun sets the number of straight steps required before turning or stopping.
func WithMinRun(n int) Option {
	return func(o *Options) {
		o.Rule.MinRun = n
	}
}

// WithMaxRun sets the largest number of consecutive steps in one direction.
func WithMaxRun(n int) Option {
	return func(o *Options) {
		o.Rule.MaxRun = n
	}
}

// WithHeuristic selects the queue ordering.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithCompression toggles dominance pruning of frontier entries.
func WithCompression(enabled bool) Option {
	return func(o *Options) {
		o.Compression = enabled
	}
}

// WithLogger routes progress records to l. A nil l keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns the basic rule with A* ordering and compression on.
//
// Defaults:
//   - Rule:        BasicRule() (MinRun=1, MaxRun=3).
//   - Heuristic:   HeuristicManhattan.
//   - Compression: true.
//   - Logger:      discards everything.
func DefaultOptions() Options {
	return Options{
		Rule:        BasicRule(),
		Heuristic:   HeuristicManhattan,
		Compression: true,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Stats counts the work done by one search.
type Stats struct {
	Popped   int // states removed from the queue
	Stale    int // popped states already superseded in their frontier
	Expanded int // popped states whose moves were generated
	Pushed   int // states added to the queue, including the start
	MaxQueue int // largest queue length observed
}

// Result is the outcome of a successful search.
type Result struct {
	Cost  int64
	Stats Stats
}
