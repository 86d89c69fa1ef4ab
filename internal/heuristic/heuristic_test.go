package heuristic

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowsolve/internal/flowshop"
)

func TestNamesOrder(t *testing.T) {
	assert.Equal(t, []string{"NEH", "SPT", "LPT", "Palmer", "CDS", "Pendulum"}, Names())
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("annealing")
	assert.Error(t, err)
}

func TestAllHeuristicsReturnPermutations(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, shape := range []struct{ jobs, machines int }{
		{1, 1}, {2, 5}, {8, 4}, {15, 3},
	} {
		inst := flowshop.RandomInstance(shape.jobs, shape.machines, 1, 50, rng)
		for _, name := range Names() {
			build, err := Get(name)
			require.NoError(t, err)
			seq, err := build(inst)
			require.NoError(t, err, "%s on %dx%d", name, shape.jobs, shape.machines)
			assert.NoError(t, flowshop.ValidatePermutation(seq, inst.Jobs), "%s on %dx%d", name, shape.jobs, shape.machines)
		}
	}
}

func TestSPTAndLPT(t *testing.T) {
	// totals: 10, 4, 7
	inst, err := flowshop.FromRows([][]float64{
		{6, 4},
		{1, 3},
		{5, 2},
	})
	require.NoError(t, err)

	spt, err := SPT(inst)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0}, spt)

	lpt, err := LPT(inst)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1}, lpt)
}

func TestSortTiesKeepIndexOrder(t *testing.T) {
	// all totals equal: both orders must be the identity
	inst, err := flowshop.FromRows([][]float64{
		{2, 3},
		{3, 2},
		{1, 4},
	})
	require.NoError(t, err)

	spt, err := SPT(inst)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, spt)

	lpt, err := LPT(inst)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, lpt)
}

func TestPalmer(t *testing.T) {
	// job 1 is back-loaded and must be scheduled first
	inst, err := flowshop.FromRows([][]float64{
		{9, 1},
		{1, 9},
	})
	require.NoError(t, err)

	seq, err := Palmer(inst)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, seq)
}

func TestPendulumPlacement(t *testing.T) {
	// single machine, totals 10..50: light jobs at the ends, the heaviest
	// dead center
	inst, err := flowshop.FromRows([][]float64{
		{10}, {20}, {30}, {40}, {50},
	})
	require.NoError(t, err)

	seq, err := Pendulum(inst)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 4, 3, 1}, seq)
}

func TestPendulumShuffledTotals(t *testing.T) {
	// totals 50, 10, 30, 20, 40 -> ascending job order 1, 3, 2, 4, 0
	inst, err := flowshop.FromRows([][]float64{
		{50}, {10}, {30}, {20}, {40},
	})
	require.NoError(t, err)

	seq, err := Pendulum(inst)
	require.NoError(t, err)
	// front: 1, 2, 0; back: 3, 4
	assert.Equal(t, []int{1, 2, 0, 4, 3}, seq)
	assert.Equal(t, 0, seq[2], "heaviest job must sit in the center")
}

func TestRandomIsSeededPermutation(t *testing.T) {
	inst := flowshop.RandomInstance(10, 3, 1, 9, rand.New(rand.NewSource(5)))

	a, err := Random(inst, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := Random(inst, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	assert.NoError(t, flowshop.ValidatePermutation(a, inst.Jobs))
	assert.Equal(t, a, b)
}
