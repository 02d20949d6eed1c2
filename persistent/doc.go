/*
Package persistent is the home of a family of immutable persistent collections:
a singly-linked list, a labelled trie with multi-valued leaves, a hash map built on
top of the trie, and a double-ended queue built on top of two lists.

Immutable persistent data structures can be copied and "modified" efficiently, leaving
the original unchanged. Every operation which looks like a modification returns a new
version of the collection, re-using all the unmodified parts of the old version
(structural sharing). No version is ever invalidated or changed.

Nodes are never mutated after construction and are shared among versions by plain
garbage-collected pointers. Consequently every version of every collection may be read
from any number of goroutines concurrently. There is no single-threaded flavor and no
per-instance switch for it.

Absence (popping from an empty sequence, looking up a missing key, removing something
not present) is never reported by a panic, but by comma-ok results or by
maybe.Nothing. In these cases callers continue to use the version they already hold.

Sub-packages:

   list      List[T]      persistent singly-linked list
   trie      Trie[L,V]    persistent path-indexed multi-map, Set[L] membership trie
   hashmap   HashMap[K,V] hash-keyed map on a trie of hash bits, HashSet[K]
   deque     Deque[T]     double-ended queue of two lists (banker's-queue style)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
