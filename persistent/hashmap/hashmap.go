package hashmap

import (
	"fmt"
	"hash/maphash"
	"iter"
	"strings"

	"github.com/npillmayer/fpcoll/maybe"
	"github.com/npillmayer/fpcoll/persistent/trie"
)

// HashMap is an immutable persistent hash map. An empty instance is usable as an empty
// map, hashing keys with a process-wide seed:
//
//     m := hashmap.HashMap[string, int]{}.Insert("answer", 42)
//
type HashMap[K comparable, V any] struct {
	props[K]
	trie trie.Trie[bool, entry[K, V]]
}

// entry is a key/value pair stored in a trie bucket.
type entry[K comparable, V any] struct {
	key   K
	value V
}

// sameKey is the equality of entries: it compares keys only. This lets Remove find
// entries without knowing their values.
func sameKey[K comparable, V any](a, b entry[K, V]) bool {
	return a.key == b.key
}

// Immutable creates an empty map with options, if you need any.
// Use it like this:
//
//     m := hashmap.Immutable[string, uint16]()
//     m = m.Insert("SCREEN", 16384)
//     addr, found := m.Get("SCREEN")   // returns 16384, true
//
func Immutable[K comparable, V any](opts ...Option[K]) HashMap[K, V] {
	p := props[K]{seed: maphash.MakeSeed()}
	for _, option := range opts {
		p = option(p)
	}
	return HashMap[K, V]{
		props: p.init(),
		trie:  trie.ImmutableWith[bool](sameKey[K, V]),
	}
}

// --- API -------------------------------------------------------------------

// Insert returns a copy of m with an entry for key associated with value.
//
// If m already contains an entry for key, this entry is not replaced. Both entries are
// kept and Get continues to report the older one, until Remove purges them all.
func (m HashMap[K, V]) Insert(key K, value V) HashMap[K, V] {
	m = m.init()
	m.trie = m.trie.InsertStore(m.path(key), entry[K, V]{key: key, value: value})
	return m
}

// Get returns the value of the oldest entry for key. If m holds no entry for key,
// the zero value of V is returned, together with found=false.
func (m HashMap[K, V]) Get(key K) (V, bool) {
	m = m.init()
	var none V
	bucket, ok := m.trie.GetStore(m.path(key))
	if !ok {
		return none, false
	}
	e, found := bucket.Find(func(e entry[K, V]) bool { return e.key == key })
	if !found {
		tracer().Debugf("hash collision for key %v without entry", key)
		return none, false
	}
	return e.value, true
}

// Lookup is like Get, but returns the value as a Maybe.
func (m HashMap[K, V]) Lookup(key K) maybe.Maybe[V] {
	v, found := m.Get(key)
	return maybe.Of(v, found)
}

// Contains is true if m holds an entry for key.
func (m HashMap[K, V]) Contains(key K) bool {
	_, found := m.Get(key)
	return found
}

// Remove returns a copy of m without any entry for key. If m holds no entry for key,
// Remove returns m unchanged and false.
func (m HashMap[K, V]) Remove(key K) (HashMap[K, V], bool) {
	m = m.init()
	t, ok := m.trie.RemoveStore(m.path(key), entry[K, V]{key: key})
	if !ok {
		return m, false
	}
	tracer().Debugf("removed key %v", key)
	m.trie = t
	return m, true
}

// All returns an iterator over the key/value pairs of m, in no particular order.
// For keys inserted more than once, only the entry visible to Get is produced.
func (m HashMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, bucket := range m.trie.Buckets() {
			for i := range bucket.Len() {
				e := bucket.At(i)
				if shadowed(bucket, i) {
					continue
				}
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

// Len returns the number of distinct keys of m. It is O(n).
func (m HashMap[K, V]) Len() int {
	n := 0
	for range m.All() {
		n++
	}
	return n
}

func (m HashMap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	var sep string
	for k, v := range m.All() {
		fmt.Fprintf(&sb, "%s%v: %v", sep, k, v)
		sep = ", "
	}
	sb.WriteByte('}')
	return sb.String()
}

// --- Internals -------------------------------------------------------------

// init makes the zero value usable.
func (m HashMap[K, V]) init() HashMap[K, V] {
	if m.hash == nil {
		m.props = props[K]{seed: processSeed}.init()
		m.trie = trie.ImmutableWith[bool](sameKey[K, V])
	}
	return m
}

func (m HashMap[K, V]) path(key K) []bool {
	return bitPath(m.hash(key))
}

// shadowed is true if entry i of bucket has a predecessor with the same key.
func shadowed[K comparable, V any](bucket trie.Bucket[entry[K, V]], i int) bool {
	key := bucket.At(i).key
	for j := 0; j < i; j++ {
		if bucket.At(j).key == key {
			return true
		}
	}
	return false
}
