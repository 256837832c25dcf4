// Package perm generates every permutation of a slice and hands each one to a
// callback. Several interchangeable algorithms are provided; all of them share
// the Func signature and emit exactly n! permutations for n elements.
package perm

import (
	"errors"
	"math/big"
)

// ErrTooManyElements is returned when an input is longer than an algorithm's
// internal counters can address.
var ErrTooManyElements = errors.New("too many elements")

// Emit receives one permutation. The slice is a view of the working copy and
// is only valid until Emit returns; copy it to keep it.
// A non-nil error stops generation and is returned to the caller as is.
type Emit[E any] func(p []E) error

// Func generates all permutations of elems, calling emit once for each.
// Implementations never modify elems.
type Func[E any] func(elems []E, emit Emit[E]) error

func clone[E any](x []E) []E {
	out := make([]E, len(x))
	copy(out, x)
	return out
}

// Count returns n!, the number of permutations of n elements.
func Count(n int) *big.Int {
	if n < 0 {
		return new(big.Int)
	}
	z := new(big.Int)
	return z.MulRange(1, int64(n))
}

// Collect runs f over elems and returns an independent copy of every
// permutation in emission order. Only sensible for small inputs.
func Collect[E any](f Func[E], elems []E) ([][]E, error) {
	var out [][]E
	err := f(elems, func(p []E) error {
		out = append(out, clone(p))
		return nil
	})
	return out, err
}
