package ga

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowsolve/internal/flowshop"
)

func TestFillChild(t *testing.T) {
	donor := []int{2, 0, 1, 3}
	filler := []int{3, 1, 0, 2}
	child := []int{-1, -1, -1, -1}
	mark := make([]int, 4)
	stamp := 1

	// segment [1, 3) comes from the donor, gaps fill left to right with
	// the filler's remaining genes in filler order
	fillChild(donor, filler, child, 1, 3, mark, &stamp)
	assert.Equal(t, []int{3, 0, 1, 2}, child)
}

func TestOrderCrossoverProducesPermutations(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	const n = 12
	p1 := rng.Perm(n)
	p2 := rng.Perm(n)
	c1 := make([]int, n)
	c2 := make([]int, n)
	mark := make([]int, n)
	stamp := 1

	for trial := 0; trial < 200; trial++ {
		orderCrossoverOX(p1, p2, c1, c2, rng, mark, &stamp)
		require.NoError(t, flowshop.ValidatePermutation(c1, n), "trial %d", trial)
		require.NoError(t, flowshop.ValidatePermutation(c2, n), "trial %d", trial)
	}
}

func TestMutateSwapPreservesPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(14))
	p := rng.Perm(9)
	for trial := 0; trial < 100; trial++ {
		mutateSwap(p, rng)
		require.NoError(t, flowshop.ValidatePermutation(p, 9))
	}

	single := []int{0}
	mutateSwap(single, rng)
	assert.Equal(t, []int{0}, single)
}

func TestTournamentSelectPicksBestOfFullTournament(t *testing.T) {
	scores := []float64{5, 3, 9, 1}
	rng := rand.New(rand.NewSource(1))

	// a huge tournament all but surely samples index 3
	for trial := 0; trial < 50; trial++ {
		got := tournamentSelect(scores, 256, rng)
		assert.Equal(t, 3, got)
	}
}
