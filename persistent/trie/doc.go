/*
Package trie implements an immutable persistent trie, keyed by sequences of labels.

Every node of a trie represents a path of labels from the root. A node holds a bucket of
values terminating at this path, and a short unordered list of labelled edges to child
nodes, searched linearly. A bucket may hold more than one value, which allows duplicate
values and lets clients use buckets for collision resolution (see package hashmap).

A new incarnation of a trie copies the nodes along the modified path only. All sibling
sub-tries are shared between the old and the new version.

    t := trie.Immutable[byte, int]()
    t = t.InsertStore([]byte("aab"), 123)
    b, ok := t.GetStore([]byte("aab"))    // b.At(0) == 123

Removing values never prunes nodes: once a path has been created, its nodes stay part of
every later version, even if they hold no values and have no children.

Set is a specialization holding no payload other than membership.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package trie

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.trie'.
func tracer() tracing.Trace {
	return tracing.Select("fp.trie")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("persistent.trie: "+msg, msgargs...)
		panic(msg)
	}
}
