// Package heuristic implements the constructive heuristics that build an
// initial job sequence for a flow-shop instance: NEH, SPT, LPT, Palmer, CDS
// (via Johnson's rule) and the pendulum rule. Each heuristic is a pure
// function from an instance to a permutation of its job indices.
package heuristic

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"flowsolve/internal/flowshop"
)

// Build constructs an initial sequence for an instance.
type Build func(inst *flowshop.Instance) ([]int, error)

// names fixes registry order; the comparison table tie-breaks by it.
var names = []string{"NEH", "SPT", "LPT", "Palmer", "CDS", "Pendulum"}

var builders = map[string]Build{
	"NEH":      NEH,
	"SPT":      SPT,
	"LPT":      LPT,
	"Palmer":   Palmer,
	"CDS":      CDS,
	"Pendulum": Pendulum,
}

// Names returns the registered heuristic names in registration order.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Get looks up a heuristic by name.
func Get(name string) (Build, error) {
	b, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown heuristic %q (available: %v)", name, names)
	}
	return b, nil
}

// totals returns the per-job processing time summed over all machines.
func totals(inst *flowshop.Instance) []float64 {
	return lo.Times(inst.Jobs, inst.TotalTime)
}

// byKeyAsc returns job indices sorted ascending by key. The sort is stable,
// so ties keep original index order.
func byKeyAsc(keys []float64) []int {
	idx := lo.Range(len(keys))
	sort.SliceStable(idx, func(a, b int) bool { return keys[idx[a]] < keys[idx[b]] })
	return idx
}

// byKeyDesc returns job indices sorted descending by key, ties by original
// index order.
func byKeyDesc(keys []float64) []int {
	idx := lo.Range(len(keys))
	sort.SliceStable(idx, func(a, b int) bool { return keys[idx[a]] > keys[idx[b]] })
	return idx
}
