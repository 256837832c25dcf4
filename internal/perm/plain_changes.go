package perm

import (
	"fmt"
	"math"
)

// maxPlainChanges bounds the input length so that the int32 counters of
// PlainChanges cannot overflow.
var maxPlainChanges = math.MaxInt32

// PlainChanges generates permutations by adjacent interchanges (Knuth, TAOCP
// 4A 7.2.1.2, Algorithm P). Each permutation after the first differs from its
// predecessor by swapping two neighbouring elements.
//
// Inputs longer than math.MaxInt32 elements fail with ErrTooManyElements
// before anything is emitted.
func PlainChanges[E any](elems []E, emit Emit[E]) error {
	n := len(elems)
	if n > maxPlainChanges {
		return fmt.Errorf("plain changes: %d elements: %w", n, ErrTooManyElements)
	}

	a := clone(elems)
	if n == 0 {
		return emit(a)
	}

	c := make([]int32, n)
	o := make([]int8, n)
	for i := range o {
		o[i] = 1
	}

	for {
		if err := emit(a); err != nil {
			return err
		}

		// s counts the elements at the right that have reached their end
		// position and must be skipped over.
		s := int32(0)
		for j := int32(n - 1); ; j-- {
			q := c[j] + int32(o[j])
			if q >= 0 {
				if q != j+1 {
					x, y := j-c[j]+s, j-q+s
					a[x], a[y] = a[y], a[x]
					c[j] = q
					break
				}
				if j == 0 {
					return nil
				}
				s++
			}
			o[j] = -o[j]
		}
	}
}
