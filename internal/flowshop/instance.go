package flowshop

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrDimension marks shape violations: empty dimensions, ragged input rows,
// or a sequence that is not a permutation of the expected job indices.
var ErrDimension = errors.New("dimension error")

// ErrDomain marks a processing time outside the allowed domain (negative).
var ErrDomain = errors.New("domain error")

type Instance struct {
	Jobs     int
	Machines int
	// ProcTimes length must be Jobs*Machines, row-major by job.
	ProcTimes []float64
}

func NewInstance(jobs, machines int, procTimes []float64) (*Instance, error) {
	inst := &Instance{Jobs: jobs, Machines: machines, ProcTimes: procTimes}
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst, nil
}

// FromRows builds an instance from a rectangular jobs×machines table.
// Every row must have the same number of columns.
func FromRows(rows [][]float64) (*Instance, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: at least one job required", ErrDimension)
	}
	machines := len(rows[0])
	pt := make([]float64, 0, len(rows)*machines)
	for i, row := range rows {
		if len(row) != machines {
			return nil, fmt.Errorf("%w: row %d has %d columns (want %d)", ErrDimension, i, len(row), machines)
		}
		pt = append(pt, row...)
	}
	return NewInstance(len(rows), machines, pt)
}

func (inst *Instance) Validate() error {
	if inst == nil {
		return fmt.Errorf("%w: instance is nil", ErrDimension)
	}
	if inst.Jobs <= 0 {
		return fmt.Errorf("%w: jobs must be > 0 (got %d)", ErrDimension, inst.Jobs)
	}
	if inst.Machines <= 0 {
		return fmt.Errorf("%w: machines must be > 0 (got %d)", ErrDimension, inst.Machines)
	}
	if len(inst.ProcTimes) != inst.Jobs*inst.Machines {
		return fmt.Errorf("%w: procTimes length must be jobs*machines=%d (got %d)", ErrDimension, inst.Jobs*inst.Machines, len(inst.ProcTimes))
	}
	for i, v := range inst.ProcTimes {
		if v < 0 {
			return fmt.Errorf("%w: procTimes[%d] must be >= 0 (got %g)", ErrDomain, i, v)
		}
	}
	return nil
}

func (inst *Instance) Time(job, machine int) float64 {
	return inst.ProcTimes[job*inst.Machines+machine]
}

// TotalTime is the processing time of a job summed over all machines.
func (inst *Instance) TotalTime(job int) float64 {
	total := 0.0
	for m := 0; m < inst.Machines; m++ {
		total += inst.Time(job, m)
	}
	return total
}

// MachineLoad is the processing time on one machine summed over all jobs.
func (inst *Instance) MachineLoad(machine int) float64 {
	total := 0.0
	for j := 0; j < inst.Jobs; j++ {
		total += inst.Time(j, machine)
	}
	return total
}

func RandomInstance(jobs, machines int, minTime, maxTime float64, rng *rand.Rand) *Instance {
	if rng == nil {
		panic("генератор случайных чисел не инициализирован (nil)")
	}
	if minTime < 0 || maxTime < minTime {
		panic("invalid time bounds")
	}
	pt := make([]float64, jobs*machines)
	for i := range pt {
		pt[i] = minTime + (maxTime-minTime)*rng.Float64()
	}
	inst, err := NewInstance(jobs, machines, pt)
	if err != nil {
		panic(err)
	}
	return inst
}
