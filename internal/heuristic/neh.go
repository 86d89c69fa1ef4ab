package heuristic

import (
	"math"

	"flowsolve/internal/flowshop"
)

// NEH implements the Nawaz-Enscore-Ham heuristic. Jobs are taken in
// descending order of total processing time; each is inserted at the position
// of the growing partial sequence that yields the lowest partial makespan,
// the earliest position winning ties.
func NEH(inst *flowshop.Instance) ([]int, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	eval, err := flowshop.NewEvaluator(inst)
	if err != nil {
		return nil, err
	}

	order := byKeyDesc(totals(inst))
	seq := make([]int, 0, inst.Jobs)
	seq = append(seq, order[0])

	cand := make([]int, 0, inst.Jobs)
	for _, job := range order[1:] {
		bestPos := 0
		bestMs := math.Inf(1)
		for pos := 0; pos <= len(seq); pos++ {
			cand = cand[:0]
			cand = append(cand, seq[:pos]...)
			cand = append(cand, job)
			cand = append(cand, seq[pos:]...)
			ms, err := eval.PartialMakespan(cand)
			if err != nil {
				return nil, err
			}
			if ms < bestMs {
				bestMs = ms
				bestPos = pos
			}
		}
		seq = append(seq, 0)
		copy(seq[bestPos+1:], seq[bestPos:])
		seq[bestPos] = job
	}
	return seq, nil
}
