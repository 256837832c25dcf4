package perm

// Insertion builds the permutations of n elements by inserting the last element
// into every position of each permutation of the first n-1 (Knuth, TAOCP 1.2.5,
// Method 1). The n insertions of one shorter permutation are emitted together,
// from position 0 to position n-1. Every emission is a freshly spliced slice.
func Insertion[E any](elems []E, emit Emit[E]) error {
	a := clone(elems)
	if len(a) == 0 {
		return emit(a)
	}
	return insert(a, emit)
}

func insert[E any](a []E, emit Emit[E]) error {
	n := len(a)
	if n == 1 {
		return emit(a)
	}

	last := a[n-1]
	buf := make([]E, n)
	return insert(a[:n-1], func(sub []E) error {
		for i := 0; i < n; i++ {
			copy(buf, sub[:i])
			buf[i] = last
			copy(buf[i+1:], sub[i:])
			if err := emit(buf); err != nil {
				return err
			}
		}
		return nil
	})
}
