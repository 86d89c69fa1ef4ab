package heuristic

import (
	"fmt"

	"flowsolve/internal/flowshop"
)

// JohnsonPair applies Johnson's rule to raw two-machine times: jobs with
// m1 <= m2 go first sorted ascending by m1, the rest follow sorted descending
// by m2. Optimal for the two-machine flow shop. Both slices must have equal
// length; ties keep original index order.
func JohnsonPair(m1, m2 []float64) ([]int, error) {
	if len(m1) != len(m2) {
		return nil, fmt.Errorf("%w: machine time vectors differ in length (%d vs %d)", flowshop.ErrDimension, len(m1), len(m2))
	}
	if len(m1) == 0 {
		return nil, fmt.Errorf("%w: at least one job required", flowshop.ErrDimension)
	}
	var groupA, groupB []int
	for j := range m1 {
		if m1[j] <= m2[j] {
			groupA = append(groupA, j)
		} else {
			groupB = append(groupB, j)
		}
	}
	keysA := make([]float64, len(groupA))
	for i, j := range groupA {
		keysA[i] = m1[j]
	}
	keysB := make([]float64, len(groupB))
	for i, j := range groupB {
		keysB[i] = m2[j]
	}
	seq := make([]int, 0, len(m1))
	for _, i := range byKeyAsc(keysA) {
		seq = append(seq, groupA[i])
	}
	for _, i := range byKeyDesc(keysB) {
		seq = append(seq, groupB[i])
	}
	return seq, nil
}

// Johnson applies Johnson's rule to a two-machine instance.
func Johnson(inst *flowshop.Instance) ([]int, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	if inst.Machines != 2 {
		return nil, fmt.Errorf("%w: Johnson's rule requires exactly 2 machines (got %d)", flowshop.ErrDimension, inst.Machines)
	}
	m1 := make([]float64, inst.Jobs)
	m2 := make([]float64, inst.Jobs)
	for j := 0; j < inst.Jobs; j++ {
		m1[j] = inst.Time(j, 0)
		m2[j] = inst.Time(j, 1)
	}
	return JohnsonPair(m1, m2)
}

// CDS reduces the m-machine problem to m-1 two-machine problems. For split k,
// virtual machine 1 is the prefix sum over machines [0,k) and virtual machine
// 2 the suffix sum over [k,m); Johnson's rule sequences each reduction and
// the split whose sequence scores the lowest true makespan wins. Ties keep
// the earliest split.
func CDS(inst *flowshop.Instance) ([]int, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	if inst.Machines < 2 {
		seq := make([]int, inst.Jobs)
		for i := range seq {
			seq[i] = i
		}
		return seq, nil
	}
	eval, err := flowshop.NewEvaluator(inst)
	if err != nil {
		return nil, err
	}
	var best []int
	bestMs := 0.0
	v1 := make([]float64, inst.Jobs)
	v2 := make([]float64, inst.Jobs)
	for k := 1; k < inst.Machines; k++ {
		for j := 0; j < inst.Jobs; j++ {
			v1[j], v2[j] = 0, 0
			for m := 0; m < k; m++ {
				v1[j] += inst.Time(j, m)
			}
			for m := k; m < inst.Machines; m++ {
				v2[j] += inst.Time(j, m)
			}
		}
		seq, err := JohnsonPair(v1, v2)
		if err != nil {
			return nil, err
		}
		ms, err := eval.Makespan(seq)
		if err != nil {
			return nil, err
		}
		if best == nil || ms < bestMs {
			best, bestMs = seq, ms
		}
	}
	return best, nil
}
