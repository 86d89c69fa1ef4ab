package opt

import (
	"context"
	"errors"
	"time"

	"flowsolve/internal/flowshop"
)

// ErrConfiguration marks an out-of-range solver parameter. Every Config
// Validate in the solver packages wraps it.
var ErrConfiguration = errors.New("configuration error")

// Improver refines a starting sequence. seed may be nil for solvers able to
// start from a random population (genetic algorithm in standalone mode);
// seeded solvers must never return a result worse than the seed.
type Improver interface {
	Improve(ctx context.Context, inst *flowshop.Instance, seed []int) (Result, error)
}

type Result struct {
	Permutation []int
	Makespan    float64
	Evaluations int
	Iterations  int
	Duration    time.Duration
	Meta        map[string]any
}
