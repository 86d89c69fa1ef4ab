package bench

import (
	"sort"
	"time"
)

// Entry is one method's outcome in a comparison.
type Entry struct {
	Method      string
	Permutation []int
	Makespan    float64
	Duration    time.Duration
}

// Comparison accumulates results per method across heuristics and
// improvement stages. It is the single best-so-far tracker of a run: the
// driver owns one Comparison and threads it through, no component mutates a
// shared global.
type Comparison struct {
	entries []Entry
}

func (c *Comparison) Add(method string, perm []int, makespan float64, dur time.Duration) {
	permCopy := make([]int, len(perm))
	copy(permCopy, perm)
	c.entries = append(c.entries, Entry{
		Method:      method,
		Permutation: permCopy,
		Makespan:    makespan,
		Duration:    dur,
	})
}

// Records returns all entries sorted ascending by makespan. The sort is
// stable, so equal makespans keep method insertion order.
func (c *Comparison) Records() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Makespan < out[j].Makespan })
	return out
}

// Best returns the lowest-makespan entry, or false when empty.
func (c *Comparison) Best() (Entry, bool) {
	if len(c.entries) == 0 {
		return Entry{}, false
	}
	best := c.entries[0]
	for _, e := range c.entries[1:] {
		if e.Makespan < best.Makespan {
			best = e
		}
	}
	return best, true
}

// Len reports the number of accumulated entries.
func (c *Comparison) Len() int { return len(c.entries) }
