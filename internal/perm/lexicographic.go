package perm

import (
	"cmp"
	"slices"
)

// Lexicographic emits permutations of elems in lexicographic order, starting
// from the sorted arrangement (Knuth's Algorithm L).
//
// Equal elements are told apart by their position after sorting, so an input
// with repeats still yields len(elems)! permutations, and repeated sequences
// are emitted next to each other.
func Lexicographic[E cmp.Ordered](elems []E, emit Emit[E]) error {
	return LexicographicFunc(elems, cmp.Compare[E], emit)
}

// LexicographicFunc is Lexicographic with a caller-supplied comparison in the
// manner of slices.SortFunc.
func LexicographicFunc[E any](elems []E, compare func(a, b E) int, emit Emit[E]) error {
	a := clone(elems)
	slices.SortStableFunc(a, compare)

	rank := make([]int, len(a))
	for i := range rank {
		rank[i] = i
	}
	swap := func(i, j int) {
		a[i], a[j] = a[j], a[i]
		rank[i], rank[j] = rank[j], rank[i]
	}

	for {
		if err := emit(a); err != nil {
			return err
		}
		if !nextPermutation(rank, swap) {
			return nil
		}
	}
}

// nextPermutation advances rank to the next greater arrangement, applying every
// interchange through swap, and reports whether one existed.
func nextPermutation(rank []int, swap func(i, j int)) bool {
	k := len(rank) - 2
	for k >= 0 && rank[k] > rank[k+1] {
		k--
	}
	if k < 0 {
		return false
	}
	l := len(rank) - 1
	for rank[k] > rank[l] {
		l--
	}
	swap(k, l)
	for i, j := k+1, len(rank)-1; i < j; i, j = i+1, j-1 {
		swap(i, j)
	}
	return true
}
