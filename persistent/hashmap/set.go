package hashmap

import "iter"

// HashSet is an immutable persistent set of keys, i.e. a hash map without values.
// An empty instance is usable as an empty set.
type HashSet[K comparable] struct {
	m HashMap[K, struct{}]
}

// NewHashSet creates an empty set. It accepts the same options as Immutable.
func NewHashSet[K comparable](opts ...Option[K]) HashSet[K] {
	return HashSet[K]{m: Immutable[K, struct{}](opts...)}
}

// Insert returns a copy of s containing key.
func (s HashSet[K]) Insert(key K) HashSet[K] {
	return HashSet[K]{m: s.m.Insert(key, struct{}{})}
}

// Contains is true if key is a member of s.
func (s HashSet[K]) Contains(key K) bool {
	return s.m.Contains(key)
}

// Remove returns a copy of s without key. If key is not a member of s, Remove returns s
// unchanged and false.
func (s HashSet[K]) Remove(key K) (HashSet[K], bool) {
	m, ok := s.m.Remove(key)
	return HashSet[K]{m: m}, ok
}

// All returns an iterator over the members of s, in no particular order.
func (s HashSet[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.m.All() {
			if !yield(k) {
				return
			}
		}
	}
}
