package main

import (
	"slices"

	"github.com/segmentio/fasthash/jody"
)

// distinctCounter counts how many different permutations it has been shown.
// Permutations are bucketed by hash and compared exactly within a bucket, so
// collisions cannot make it undercount.
type distinctCounter struct {
	buckets map[uint64][][]string
	n       int
}

func newDistinctCounter() *distinctCounter {
	return &distinctCounter{buckets: make(map[uint64][][]string)}
}

func hash(p []string) uint64 {
	h := jody.HashUint64(uint64(len(p)))
	for _, s := range p {
		h = jody.AddString64(h, s)
	}
	return h
}

// Add records p, copying it if it has not been seen before.
func (d *distinctCounter) Add(p []string) {
	h := hash(p)
	for _, q := range d.buckets[h] {
		if slices.Equal(p, q) {
			return
		}
	}
	d.buckets[h] = append(d.buckets[h], slices.Clone(p))
	d.n++
}

// Len returns the number of distinct permutations seen.
func (d *distinctCounter) Len() int {
	return d.n
}
