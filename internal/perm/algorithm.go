package perm

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm is returned for an algorithm name or value that does not
// name one of the algorithms in this package.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Algorithm identifies one of the permutation generators.
type Algorithm int

const (
	AlgLexicographic Algorithm = iota
	AlgInsertion
	AlgPlainChanges
	AlgHeapRecursive
	AlgHeapIterative
)

var algorithmNames = [...]string{
	AlgLexicographic: "lexicographic",
	AlgInsertion:     "insertion",
	AlgPlainChanges:  "plain-changes",
	AlgHeapRecursive: "heap-recursive",
	AlgHeapIterative: "heap-iterative",
}

// short names accepted by -a
var algorithmAliases = map[string]Algorithm{
	"std": AlgLexicographic,
	"1":   AlgInsertion,
	"2":   AlgPlainChanges,
	"3":   AlgHeapRecursive,
	"4":   AlgHeapIterative,
}

// Algorithms returns every algorithm, in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgLexicographic, AlgInsertion, AlgPlainChanges, AlgHeapRecursive, AlgHeapIterative}
}

func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// MinimalChange reports whether consecutive permutations from a differ by
// exactly one interchange.
func (a Algorithm) MinimalChange() bool {
	switch a {
	case AlgPlainChanges, AlgHeapRecursive, AlgHeapIterative:
		return true
	}
	return false
}

// ParseAlgorithm looks up an algorithm by its name or short alias, ignoring case.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if a, ok := algorithmAliases[key]; ok {
		return a, nil
	}
	for i, n := range algorithmNames {
		if n == key {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownAlgorithm, name)
}

// For returns the generator for a.
func For[E cmp.Ordered](a Algorithm) (Func[E], error) {
	switch a {
	case AlgLexicographic:
		return Lexicographic[E], nil
	case AlgInsertion:
		return Insertion[E], nil
	case AlgPlainChanges:
		return PlainChanges[E], nil
	case AlgHeapRecursive:
		return HeapRecursive[E], nil
	case AlgHeapIterative:
		return HeapIterative[E], nil
	}
	return nil, fmt.Errorf("%w %v", ErrUnknownAlgorithm, a)
}
