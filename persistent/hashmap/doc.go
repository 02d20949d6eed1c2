/*
Package hashmap implements an immutable persistent hash map and a hash set, built on
top of a persistent trie (see package trie).

A key is hashed to 64 bits, and each bit, starting with the least significant one,
becomes a boolean label of a path of length 64. The trie stores an entry (key plus
value) in the bucket at the end of this path. Buckets are searched by key equality,
therefore hash collisions of distinct keys are resolved correctly, even for a hash
function which is constant.

Inserting a key twice does not replace the first entry. Both entries live in the same
bucket, and Get reports the value of the oldest entry still present. Remove purges
every entry for a key.

    m := hashmap.Immutable[string, int]()
    m = m.Insert("LOOP", 4)
    addr, ok := m.Get("LOOP")       // 4, true

Every map created by Immutable draws its own hash seed; all versions derived from a map
use the hash function of their ancestor.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package hashmap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.hashmap'.
func tracer() tracing.Trace {
	return tracing.Select("fp.hashmap")
}
