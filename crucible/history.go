package crucible

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/crucible/gridmap"
)

// Rule bounds the length of straight runs.
// MinRun is the number of steps a run must reach before the route may turn
// or stop; MaxRun is the longest run allowed. MinRun=1 means no minimum.
type Rule struct {
	MinRun int
	MaxRun int
}

// BasicRule allows at most three consecutive steps in one direction.
func BasicRule() Rule { return Rule{MinRun: 1, MaxRun: 3} }

// UltraRule requires four to ten consecutive steps per direction.
func UltraRule() Rule { return Rule{MinRun: 4, MaxRun: 10} }

// Validate reports ErrBadMinRun or ErrBadMaxRun for unusable limits.
func (r Rule) Validate() error {
	if r.MinRun < 1 {
		return fmt.Errorf("%w: got %d", ErrBadMinRun, r.MinRun)
	}
	if r.MaxRun < r.MinRun {
		return fmt.Errorf("%w: MinRun=%d MaxRun=%d", ErrBadMaxRun, r.MinRun, r.MaxRun)
	}
	return nil
}

func (r Rule) String() string {
	maxRun := "inf"
	if r.MaxRun != Unbounded {
		maxRun = strconv.Itoa(r.MaxRun)
	}
	return fmt.Sprintf("run[%d..%s]", r.MinRun, maxRun)
}

// History is the part of a route's past that decides its legal futures:
// the direction of the last step and how many consecutive steps went that
// way. Run == 0 marks the start, before any step; Dir is then meaningless.
type History struct {
	Dir gridmap.Direction
	Run int
}

// Initial is the history of a route that has not moved yet.
func Initial() History { return History{} }

// IsInitial reports whether h precedes any step.
func (h History) IsInitial() bool { return h.Run == 0 }

func (h History) String() string {
	if h.IsInitial() {
		return "start"
	}
	return fmt.Sprintf("%v×%d", h.Dir, h.Run)
}

// Advance applies one step in direction d to h. It reports false when the
// step is illegal, checking in order: reversal, turning before MinRun,
// exceeding MaxRun.
func (r Rule) Advance(h History, d gridmap.Direction) (History, bool) {
	if h.IsInitial() {
		return History{Dir: d, Run: 1}, true
	}
	if d == h.Dir.Opposite() {
		return History{}, false
	}
	if d != h.Dir {
		if h.Run < r.MinRun {
			return History{}, false
		}
		return History{Dir: d, Run: 1}, true
	}
	if h.Run >= r.MaxRun {
		return History{}, false
	}
	return History{Dir: d, Run: h.Run + 1}, true
}

// CanStop reports whether a route ending in h may finish.
// The initial history may always stop: an empty route breaks no rule.
func (r Rule) CanStop(h History) bool {
	return h.IsInitial() || h.Run >= r.MinRun
}

// Dominates reports whether every continuation legal after b, including
// stopping, is also legal after a, recursively for the histories they lead to.
//
// Both must point the same way with a.Run <= b.Run: a shorter run leaves more
// room before MaxRun. Below MinRun that is not enough, because b may turn
// sooner than a, so a must then equal b. With MinRun=1 the condition reduces
// to "a is a suffix of b".
func (r Rule) Dominates(a, b History) bool {
	if a == b {
		return true
	}
	if a.IsInitial() || b.IsInitial() || a.Dir != b.Dir {
		return false
	}
	return a.Run <= b.Run && a.Run >= r.MinRun
}
