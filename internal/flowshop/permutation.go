package flowshop

import "fmt"

func ValidatePermutation(perm []int, n int) error {
	if len(perm) != n {
		return fmt.Errorf("%w: permutation length must be %d (got %d)", ErrDimension, n, len(perm))
	}
	seen := make([]bool, n)
	for i, v := range perm {
		if v < 0 || v >= n {
			return fmt.Errorf("%w: perm[%d]=%d out of range [0,%d)", ErrDimension, i, v, n)
		}
		if seen[v] {
			return fmt.Errorf("%w: duplicate job id %d in permutation", ErrDimension, v)
		}
		seen[v] = true
	}
	return nil
}

// validateDistinct checks a partial sequence: every index in [0,n), no
// duplicates, any length in [1,n]. Used by insertion-building heuristics.
func validateDistinct(seq []int, n int) error {
	if len(seq) == 0 || len(seq) > n {
		return fmt.Errorf("%w: sequence length must be in [1,%d] (got %d)", ErrDimension, n, len(seq))
	}
	seen := make([]bool, n)
	for i, v := range seq {
		if v < 0 || v >= n {
			return fmt.Errorf("%w: seq[%d]=%d out of range [0,%d)", ErrDimension, i, v, n)
		}
		if seen[v] {
			return fmt.Errorf("%w: duplicate job id %d in sequence", ErrDimension, v)
		}
		seen[v] = true
	}
	return nil
}
