package trie

import (
	"iter"
	"slices"
)

// Bucket is a read-only view of the values stored at a path of a trie, in order of
// insertion.
type Bucket[V any] struct {
	values values[V]
}

// Len returns the number of values in the bucket.
func (b Bucket[V]) Len() int {
	return len(b.values)
}

// At returns the i-th value of the bucket.
func (b Bucket[V]) At(i int) V {
	assertThat(i >= 0 && i < len(b.values), "bucket index out of bounds: %d with length %d", i, len(b.values))
	return b.values[i]
}

// Find returns the first value for which match is true.
func (b Bucket[V]) Find(match func(V) bool) (V, bool) {
	for _, v := range b.values {
		if match(v) {
			return v, true
		}
	}
	var none V
	return none, false
}

// All returns an iterator over the values of the bucket.
func (b Bucket[V]) All() iter.Seq[V] {
	return slices.Values(b.values)
}

// Slice returns a copy of the values of the bucket.
func (b Bucket[V]) Slice() []V {
	return slices.Clone([]V(b.values))
}
