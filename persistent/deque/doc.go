/*
Package deque implements an immutable persistent double-ended queue.

A deque is made of two persistent lists: head holds the front part of the queue in order,
tail holds the back part in reverse order. Pushing and popping at either end operates on
the front of one of the lists. Whenever one side runs empty while the other holds more
than one element, the other side is split in halves and one half is reversed to refill
the empty side.

Rebalancing is eager, i.e. it costs O(n) at once. Pushes and pops are O(1) amortized, as
long as versions are extended along a single history. Repeatedly operating on the same
old version may trigger the same rebalancing over and over.

    d := deque.New[int]().PushFront(1).PushBack(2).PushFront(0)   // [0 1 2]
    x, d, ok := d.PopBack()                                        // 2, [0 1], true

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package deque

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.deque'.
func tracer() tracing.Trace {
	return tracing.Select("fp.deque")
}
