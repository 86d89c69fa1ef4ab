package bench

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowsolve/internal/flowshop"
	"flowsolve/internal/ls"
	"flowsolve/internal/opt"
)

func TestRunCase(t *testing.T) {
	algo := Algorithm{
		Name: "2opt",
		Factory: func(seed int64) opt.Improver {
			solver, err := ls.New(ls.DefaultConfig(ls.NeighborhoodSwap))
			require.NoError(t, err)
			return solver
		},
	}

	runner := Runner{Runs: 3, BaseSeed: 10}
	rec, err := runner.RunCase(context.Background(), Case{Jobs: 6, Machines: 3, InstanceSeed: 5}, algo)
	require.NoError(t, err)

	assert.Equal(t, "2opt", rec.Algo)
	assert.Equal(t, 6, rec.Jobs)
	assert.Equal(t, 3, rec.Machines)
	assert.Equal(t, 3, rec.Runs)
	assert.Greater(t, rec.MakespanBest, 0.0)
	// deterministic solver: every run scores identically
	assert.InDelta(t, rec.MakespanBest, rec.MakespanMean, 1e-9)
	assert.InDelta(t, 0.0, rec.MakespanStd, 1e-9)
}

// identitySolver ignores the seed and returns the identity schedule.
type identitySolver struct{}

func (identitySolver) Improve(ctx context.Context, inst *flowshop.Instance, seed []int) (opt.Result, error) {
	perm := make([]int, inst.Jobs)
	for i := range perm {
		perm[i] = i
	}
	eval, err := flowshop.NewEvaluator(inst)
	if err != nil {
		return opt.Result{}, err
	}
	ms, err := eval.Makespan(perm)
	if err != nil {
		return opt.Result{}, err
	}
	return opt.Result{Permutation: perm, Makespan: ms, Evaluations: 1}, nil
}

func TestRunCaseStandalone(t *testing.T) {
	var gotSeeds []int64
	algo := Algorithm{
		Name:       "identity",
		Standalone: true,
		Factory: func(seed int64) opt.Improver {
			gotSeeds = append(gotSeeds, seed)
			return identitySolver{}
		},
	}

	runner := Runner{Runs: 2, BaseSeed: 100}
	rec, err := runner.RunCase(context.Background(), Case{Jobs: 4, Machines: 2, InstanceSeed: 1}, algo)
	require.NoError(t, err)
	assert.Equal(t, []int64{100, 101}, gotSeeds)
	assert.Greater(t, rec.MakespanBest, 0.0)
}
