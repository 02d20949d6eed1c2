package hashmap

import (
	"hash/maphash"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// pathLength is the number of labels of a trie path for a key: one label per hash bit.
const pathLength = 64

// processSeed seeds the default hasher of maps which have not been created by Immutable.
var processSeed = maphash.MakeSeed()

type props[K comparable] struct {
	hash func(K) uint64
	seed maphash.Seed
}

// Option is a type to help initializing maps and sets at creation time.
type Option[K comparable] func(props[K]) props[K]

// Hasher is an option to set the hash function for keys. The function has to return
// equal hashes for equal keys; it does not have to be collision-free.
//
// Use it like this:
//
//     m := hashmap.Immutable[Point, string](hashmap.Hasher(func(p Point) uint64 {
//         return uint64(p.X)<<32 | uint64(p.Y)
//     }))
//
func Hasher[K comparable](hash func(K) uint64) Option[K] {
	return func(p props[K]) props[K] {
		p.hash = hash
		return p
	}
}

// Seed is an option to set the seed for the default hash function, e.g. to have two
// maps hash keys identically. Seed has no effect on keys of a string kind, including
// named string types (which are hashed by xxHash), or if option Hasher is present.
func Seed[K comparable](seed maphash.Seed) Option[K] {
	return func(p props[K]) props[K] {
		p.seed = seed
		return p
	}
}

func (p props[K]) init() props[K] {
	if p.hash == nil {
		p.hash = defaultHasher[K](p.seed)
	}
	return p
}

// defaultHasher hashes keys of kind string with xxHash and every other comparable key
// with maphash.
func defaultHasher[K comparable](seed maphash.Seed) func(K) uint64 {
	var k K
	if _, ok := any(k).(string); ok {
		return func(key K) uint64 {
			return xxhash.Sum64String(any(key).(string))
		}
	}
	if reflect.TypeFor[K]().Kind() == reflect.String { // e.g., type Symbol string
		return func(key K) uint64 {
			return xxhash.Sum64String(reflect.ValueOf(key).String())
		}
	}
	return func(key K) uint64 {
		return maphash.Comparable(seed, key)
	}
}

// bitPath converts a hash into a trie path, least significant bit first.
func bitPath(h uint64) []bool {
	path := make([]bool, pathLength)
	for i := range path {
		path[i] = h&(1<<uint(i)) != 0
	}
	return path
}
