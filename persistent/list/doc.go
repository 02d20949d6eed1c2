/*
Package list implements an immutable persistent singly-linked list.

Pushing to the front of a list allocates a single node which links to the existing
chain; popping the front hands out the existing next node. Both are O(1) and never
copy the remainder of the list, so all versions of a list share their common suffix.
Reverse and Split rebuild every node, as the direction of a chain is structural.

The zero value of List is an empty list, ready to use:

    l := list.List[int]{}.PushFront(3).PushFront(2).PushFront(1)   // (1 2 3)
    x, rest, ok := l.PopFront()                                      // 1, (2 3), true

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.list'.
func tracer() tracing.Trace {
	return tracing.Select("fp.list")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("persistent.list: "+msg, msgargs...)
		panic(msg)
	}
}
