package flowshop

import "fmt"

// Evaluator computes completion-time based objectives for one instance.
// Makespan reuses a single O(machines) completion buffer, so a single
// Evaluator must not be shared between goroutines. Every component in this
// repository scores sequences through an Evaluator; nobody re-implements the
// completion recurrence.
type Evaluator struct {
	inst              *Instance
	machineCompletion []float64
}

func NewEvaluator(inst *Instance) (*Evaluator, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return &Evaluator{inst: inst, machineCompletion: make([]float64, inst.Machines)}, nil
}

// Makespan is the completion time of the last job of perm on the last
// machine. perm must be a permutation of all job indices.
func (e *Evaluator) Makespan(perm []int) (float64, error) {
	if e == nil || e.inst == nil {
		return 0, fmt.Errorf("nil evaluator")
	}
	if err := ValidatePermutation(perm, e.inst.Jobs); err != nil {
		return 0, err
	}
	return e.makespan(perm), nil
}

// PartialMakespan scores a prefix sequence of distinct job indices. NEH grows
// its sequence one job at a time and needs makespans of incomplete schedules;
// the recurrence is identical, only the permutation check is relaxed.
func (e *Evaluator) PartialMakespan(seq []int) (float64, error) {
	if e == nil || e.inst == nil {
		return 0, fmt.Errorf("nil evaluator")
	}
	if err := validateDistinct(seq, e.inst.Jobs); err != nil {
		return 0, err
	}
	return e.makespan(seq), nil
}

func (e *Evaluator) makespan(seq []int) float64 {
	for m := range e.machineCompletion {
		e.machineCompletion[m] = 0
	}
	for _, job := range seq {
		e.machineCompletion[0] += e.inst.Time(job, 0)
		for m := 1; m < e.inst.Machines; m++ {
			left := e.machineCompletion[m-1]
			up := e.machineCompletion[m]
			if left > up {
				e.machineCompletion[m] = left + e.inst.Time(job, m)
			} else {
				e.machineCompletion[m] = up + e.inst.Time(job, m)
			}
		}
	}
	return e.machineCompletion[e.inst.Machines-1]
}

func (e *Evaluator) MustMakespan(perm []int) float64 {
	ms, err := e.Makespan(perm)
	if err != nil {
		panic(err)
	}
	return ms
}

// CompletionMatrix returns the full n×m table: entry (i, j) is the completion
// time of the i-th scheduled job on machine j.
//
//	C[0][0] = p[seq[0]][0]
//	C[i][0] = C[i-1][0] + p[seq[i]][0]
//	C[0][j] = C[0][j-1] + p[seq[0]][j]
//	C[i][j] = max(C[i-1][j], C[i][j-1]) + p[seq[i]][j]
func (e *Evaluator) CompletionMatrix(perm []int) ([][]float64, error) {
	if err := ValidatePermutation(perm, e.inst.Jobs); err != nil {
		return nil, err
	}
	n, m := e.inst.Jobs, e.inst.Machines
	c := make([][]float64, n)
	backing := make([]float64, n*m)
	for i := range c {
		c[i] = backing[i*m : (i+1)*m]
	}
	for i, job := range perm {
		for j := 0; j < m; j++ {
			p := e.inst.Time(job, j)
			switch {
			case i == 0 && j == 0:
				c[i][j] = p
			case i == 0:
				c[i][j] = c[i][j-1] + p
			case j == 0:
				c[i][j] = c[i-1][j] + p
			default:
				up, left := c[i-1][j], c[i][j-1]
				if left > up {
					c[i][j] = left + p
				} else {
					c[i][j] = up + p
				}
			}
		}
	}
	return c, nil
}

// IdleTimes reports per-machine idle time (makespan minus machine load) and
// the total over all machines. Reporting only, never used by search.
func (e *Evaluator) IdleTimes(perm []int) ([]float64, float64, error) {
	ms, err := e.Makespan(perm)
	if err != nil {
		return nil, 0, err
	}
	idle := make([]float64, e.inst.Machines)
	total := 0.0
	for m := 0; m < e.inst.Machines; m++ {
		idle[m] = ms - e.inst.MachineLoad(m)
		total += idle[m]
	}
	return idle, total, nil
}

// Quality bundles the reporting metrics for one schedule.
type Quality struct {
	Makespan    float64
	MachineIdle []float64
	TotalIdle   float64
	Utilization float64
	Efficiency  float64
}

func (e *Evaluator) Quality(perm []int) (Quality, error) {
	idle, totalIdle, err := e.IdleTimes(perm)
	if err != nil {
		return Quality{}, err
	}
	ms, err := e.Makespan(perm)
	if err != nil {
		return Quality{}, err
	}
	work := 0.0
	for j := 0; j < e.inst.Jobs; j++ {
		work += e.inst.TotalTime(j)
	}
	q := Quality{Makespan: ms, MachineIdle: idle, TotalIdle: totalIdle}
	if ms > 0 {
		q.Utilization = work / (ms * float64(e.inst.Machines))
		q.Efficiency = 1 - totalIdle/(ms*float64(e.inst.Machines))
	}
	return q, nil
}
