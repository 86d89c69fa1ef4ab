package heuristic

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowsolve/internal/flowshop"
)

// bruteForceBest scans every permutation of the instance's jobs and returns
// the minimum makespan. Only usable for small job counts.
func bruteForceBest(t *testing.T, inst *flowshop.Instance) float64 {
	t.Helper()
	eval, err := flowshop.NewEvaluator(inst)
	require.NoError(t, err)

	perm := make([]int, inst.Jobs)
	for i := range perm {
		perm[i] = i
	}

	best := math.Inf(1)
	var walk func(k int)
	walk = func(k int) {
		if k == len(perm) {
			ms, err := eval.Makespan(perm)
			require.NoError(t, err)
			if ms < best {
				best = ms
			}
			return
		}
		for i := k; i < len(perm); i++ {
			perm[k], perm[i] = perm[i], perm[k]
			walk(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	walk(0)
	return best
}

func TestJohnsonRequiresTwoMachines(t *testing.T) {
	inst := flowshop.RandomInstance(4, 3, 1, 9, rand.New(rand.NewSource(1)))
	_, err := Johnson(inst)
	assert.ErrorIs(t, err, flowshop.ErrDimension)
}

func TestJohnsonKnownInstance(t *testing.T) {
	inst, err := flowshop.FromRows([][]float64{
		{3, 6},
		{5, 2},
		{1, 2},
		{6, 6},
		{7, 5},
	})
	require.NoError(t, err)

	seq, err := Johnson(inst)
	require.NoError(t, err)
	// group A (m1 <= m2) ascending by m1: 2, 0, 3; group B descending by m2: 4, 1
	assert.Equal(t, []int{2, 0, 3, 4, 1}, seq)
}

func TestJohnsonOptimalOnTwoMachines(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		rng := rand.New(rand.NewSource(seed))
		inst := flowshop.RandomInstance(6, 2, 1, 99, rng)
		eval, err := flowshop.NewEvaluator(inst)
		require.NoError(t, err)

		seq, err := Johnson(inst)
		require.NoError(t, err)
		ms, err := eval.Makespan(seq)
		require.NoError(t, err)

		assert.InDelta(t, bruteForceBest(t, inst), ms, 1e-9, "seed %d", seed)
	}
}

func TestJohnsonPairRejectsMismatch(t *testing.T) {
	_, err := JohnsonPair([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, flowshop.ErrDimension)
	_, err = JohnsonPair(nil, nil)
	assert.ErrorIs(t, err, flowshop.ErrDimension)
}

func TestCDSReducesToJohnson(t *testing.T) {
	inst, err := flowshop.FromRows([][]float64{
		{5, 3, 8},
		{7, 2, 6},
		{4, 9, 3},
	})
	require.NoError(t, err)

	// split k=1: virtual machine 1 = first column, virtual machine 2 =
	// suffix sums -> (5,11), (7,8), (4,12)
	viaJohnson, err := JohnsonPair([]float64{5, 7, 4}, []float64{11, 8, 12})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1}, viaJohnson)

	// split k=2 yields (8,8), (9,6), (13,3) -> [0, 1, 2] with makespan 28,
	// beating the k=1 sequence's 30; CDS must keep the better split.
	seq, err := CDS(inst)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, seq)
}

func TestCDSSingleMachine(t *testing.T) {
	inst, err := flowshop.FromRows([][]float64{{3}, {1}, {2}})
	require.NoError(t, err)

	seq, err := CDS(inst)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, seq)
}
