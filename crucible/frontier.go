package crucible

// Entry is the cheapest known cost of reaching a cell with a given History.
type Entry struct {
	History History
	Cost    int64
}

// Frontier is the per-cell set of entries a search still needs.
//
// With compression on, no retained entry is covered by another: for any two
// entries a and b, it is never the case that Rule.Dominates(a, b) and
// a.Cost <= b.Cost. With compression off, entries are keyed by exact History.
//
// The zero Frontier is not usable; build one with NewFrontier.
type Frontier struct {
	rule     Rule
	compress bool
	entries  []Entry
}

// NewFrontier returns an empty frontier judging dominance under rule.
func NewFrontier(rule Rule, compress bool) *Frontier {
	f := newFrontier(rule, compress)
	return &f
}

func newFrontier(rule Rule, compress bool) Frontier {
	return Frontier{rule: rule, compress: compress}
}

// covers reports whether a makes b redundant.
func (f *Frontier) covers(a, b Entry) bool {
	if a.Cost > b.Cost {
		return false
	}
	if !f.compress {
		return a.History == b.History
	}
	return f.rule.Dominates(a.History, b.History)
}

// Merge records that the cell is reachable with history h at cost.
// It is a no-op, returning false, when a retained entry already covers the
// candidate. Otherwise the candidate is inserted (replacing a costlier entry
// with the same history), every entry it covers is removed, and Merge
// returns true.
//
// Only the candidate can newly cover anything, so the sweep restores the
// full Compress invariant without an all-pairs pass.
func (f *Frontier) Merge(h History, cost int64) bool {
	cand := Entry{History: h, Cost: cost}
	for _, e := range f.entries {
		if f.covers(e, cand) {
			return false
		}
	}

	kept := f.entries[:0]
	for _, e := range f.entries {
		if f.covers(cand, e) {
			continue
		}
		kept = append(kept, e)
	}
	f.entries = append(kept, cand)

	return true
}

// Compress removes every entry covered by another entry. Of two identical
// entries the earlier survives. Merge keeps the frontier compressed already;
// Compress exists for frontiers assembled by Add.
func (f *Frontier) Compress() {
	kept := make([]Entry, 0, len(f.entries))
	for i, e := range f.entries {
		redundant := false
		for j, o := range f.entries {
			if i == j || !f.covers(o, e) {
				continue
			}
			if o == e && j > i {
				continue
			}
			redundant = true
			break
		}
		if !redundant {
			kept = append(kept, e)
		}
	}
	f.entries = kept
}

// Add appends an entry without any dominance check.
func (f *Frontier) Add(h History, cost int64) {
	f.entries = append(f.entries, Entry{History: h, Cost: cost})
}

// Holds reports whether the exact entry (h, cost) is still retained.
// A queued state that fails this test has been superseded since it was pushed.
func (f *Frontier) Holds(h History, cost int64) bool {
	for _, e := range f.entries {
		if e.History == h && e.Cost == cost {
			return true
		}
	}
	return false
}

// Beats reports whether f gains nothing from other: every entry of other is
// covered by some entry of f.
func (f *Frontier) Beats(other *Frontier) bool {
	for _, o := range other.entries {
		covered := false
		for _, e := range f.entries {
			if f.covers(e, o) {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
	}
	return true
}

// BestCost returns the cheapest retained cost, or false when f is empty.
func (f *Frontier) BestCost() (int64, bool) {
	return f.best(func(History) bool { return true })
}

// BestStopCost returns the cheapest cost among entries whose history may
// stop under the frontier's rule.
func (f *Frontier) BestStopCost() (int64, bool) {
	return f.best(f.rule.CanStop)
}

func (f *Frontier) best(keep func(History) bool) (int64, bool) {
	var best int64
	found := false
	for _, e := range f.entries {
		if !keep(e.History) {
			continue
		}
		if !found || e.Cost < best {
			best, found = e.Cost, true
		}
	}
	return best, found
}

// Len returns the number of retained entries.
func (f *Frontier) Len() int { return len(f.entries) }

// Entries returns a copy of the retained entries in insertion order.
func (f *Frontier) Entries() []Entry {
	out := make([]Entry, len(f.entries))
	copy(out, f.entries)
	return out
}
