package heuristic

import (
	"math/rand"

	"flowsolve/internal/flowshop"
)

// SPT orders jobs by ascending total processing time.
func SPT(inst *flowshop.Instance) ([]int, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return byKeyAsc(totals(inst)), nil
}

// LPT orders jobs by descending total processing time.
func LPT(inst *flowshop.Instance) ([]int, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return byKeyDesc(totals(inst)), nil
}

// Palmer orders jobs by descending slope index. Machines late in the route
// get positive weight, early machines negative, so jobs whose work is
// back-loaded are scheduled first.
func Palmer(inst *flowshop.Instance) ([]int, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	m := inst.Machines
	slopes := make([]float64, inst.Jobs)
	for j := 0; j < inst.Jobs; j++ {
		s := 0.0
		for k := 0; k < m; k++ {
			// weight for 1-based machine position k+1: -(m - (2(k+1) - 1))
			w := float64(2*(k+1) - 1 - m)
			s += w * inst.Time(j, k)
		}
		slopes[j] = s
	}
	return byKeyDesc(slopes), nil
}

// Pendulum sorts jobs ascending by total time and deals them alternately to
// the front and back of the output, walking both cursors inward. Light jobs
// end up at the extremes, the heaviest jobs in the center.
func Pendulum(inst *flowshop.Instance) ([]int, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	asc := byKeyAsc(totals(inst))
	seq := make([]int, inst.Jobs)
	front, back := 0, inst.Jobs-1
	for i, job := range asc {
		if i%2 == 0 {
			seq[front] = job
			front++
		} else {
			seq[back] = job
			back--
		}
	}
	return seq, nil
}

// Random returns a uniformly random permutation of the job indices.
func Random(inst *flowshop.Instance, rng *rand.Rand) ([]int, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	seq := make([]int, inst.Jobs)
	for i := range seq {
		seq[i] = i
	}
	rng.Shuffle(len(seq), func(i, j int) { seq[i], seq[j] = seq[j], seq[i] })
	return seq, nil
}
