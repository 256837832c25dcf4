package perm

// HeapRecursive generates permutations with Heap's algorithm (Heap, 1963,
// "Permutations by Interchanges"), recursing once per element.
// Consecutive permutations differ by a single swap.
func HeapRecursive[E any](elems []E, emit Emit[E]) error {
	a := clone(elems)
	if len(a) == 0 {
		return emit(a)
	}
	return heap(len(a), a, emit)
}

func heap[E any](k int, a []E, emit Emit[E]) error {
	if k == 1 {
		return emit(a)
	}

	if err := heap(k-1, a, emit); err != nil {
		return err
	}
	for i := 0; i < k-1; i++ {
		if k%2 == 0 {
			a[i], a[k-1] = a[k-1], a[i]
		} else {
			a[0], a[k-1] = a[k-1], a[0]
		}
		if err := heap(k-1, a, emit); err != nil {
			return err
		}
	}
	return nil
}

// HeapIterative is the non-recursive form of Heap's algorithm. It emits the
// same permutations in the same order as HeapRecursive without using stack
// proportional to len(elems).
// See https://en.wikipedia.org/wiki/Heap%27s_algorithm
func HeapIterative[E any](elems []E, emit Emit[E]) error {
	out := clone(elems)
	count := make([]int, len(out))

	// First permutation: self
	if err := emit(out); err != nil {
		return err
	}

	i := 1
	for i < len(out) {
		if count[i] < i {
			if i%2 == 0 {
				out[0], out[i] = out[i], out[0]
			} else {
				out[count[i]], out[i] = out[i], out[count[i]]
			}
			if err := emit(out); err != nil {
				return err
			}
			count[i]++
			i = 1
		} else {
			count[i] = 0
			i++
		}
	}
	return nil
}
