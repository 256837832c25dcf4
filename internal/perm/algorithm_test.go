package perm

import (
	"errors"
	"testing"
)

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		name    string
		want    Algorithm
		wantErr bool
	}{
		{"std", AlgLexicographic, false},
		{"1", AlgInsertion, false},
		{"2", AlgPlainChanges, false},
		{"3", AlgHeapRecursive, false},
		{"4", AlgHeapIterative, false},
		{"lexicographic", AlgLexicographic, false},
		{"Plain-Changes", AlgPlainChanges, false},
		{" heap-iterative ", AlgHeapIterative, false},
		{"5", 0, true},
		{"", 0, true},
		{"quick", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseAlgorithm(tt.name)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownAlgorithm) {
				t.Errorf("ParseAlgorithm(%q): expected ErrUnknownAlgorithm, got %v", tt.name, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAlgorithm(%q): %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAlgorithm(%q): expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestAlgorithmString(t *testing.T) {
	for _, a := range Algorithms() {
		got, err := ParseAlgorithm(a.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != a {
			t.Errorf("expected %v, got %v", a, got)
		}
	}
	if s := Algorithm(42).String(); s != "Algorithm(42)" {
		t.Errorf("expected Algorithm(42), got %s", s)
	}
}

func TestFor(t *testing.T) {
	for _, a := range Algorithms() {
		f, err := For[string](a)
		if err != nil {
			t.Errorf("%v: %v", a, err)
			continue
		}
		got, err := Collect(f, []string{"x", "y"})
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 2 {
			t.Errorf("%v: expected 2 permutations, got %d", a, len(got))
		}
	}
	if _, err := For[string](Algorithm(-1)); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("expected ErrUnknownAlgorithm, got %v", err)
	}
}
