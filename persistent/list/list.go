package list

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/fpcoll/maybe"
)

// List is an immutable persistent singly-linked list. An empty instance is usable
// as an empty list.
//
// A list value is a handle to a version of the list: a reference to its first node
// together with the cached length of the chain. Handles are small and are meant to
// be passed by value.
type List[T any] struct {
	head   *node[T] // nil is the empty list
	length int      // number of nodes reachable from head
}

// node is a cell of a list chain. Nodes are never modified after construction.
type node[T any] struct {
	value T
	next  *node[T]
}

// New creates an empty list. This is equivalent to using the zero value.
func New[T any]() List[T] {
	return List[T]{}
}

// From creates a list holding xs, in the order given.
func From[T any](xs ...T) List[T] {
	l := List[T]{}
	for i := len(xs) - 1; i >= 0; i-- {
		l = l.PushFront(xs[i])
	}
	return l
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements of l.
func (l List[T]) Len() int {
	return l.length
}

// IsEmpty is true for a list of length 0.
func (l List[T]) IsEmpty() bool {
	return l.length == 0
}

// PushFront returns a new version of l with value prepended. The new version shares
// all nodes of l.
func (l List[T]) PushFront(value T) List[T] {
	return List[T]{
		head:   &node[T]{value: value, next: l.head},
		length: l.length + 1,
	}
}

// PopFront returns the first element of l together with the remainder of the list.
// If l is empty, ok is false and rest is l itself.
func (l List[T]) PopFront() (value T, rest List[T], ok bool) {
	if l.head == nil {
		return value, l, false
	}
	assertThat(l.length > 0, "inconsistency: non-empty chain with length %d", l.length)
	return l.head.value, List[T]{head: l.head.next, length: l.length - 1}, true
}

// Front returns the first element of l, if any.
func (l List[T]) Front() maybe.Maybe[T] {
	if l.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.head.value)
}

// Reverse returns a list with the elements of l in opposite order.
// Every node is rebuilt, i.e. the result does not share structure with l.
func (l List[T]) Reverse() List[T] {
	var r *node[T]
	for n := l.head; n != nil; n = n.next {
		r = &node[T]{value: n.value, next: r}
	}
	return List[T]{head: r, length: l.length}
}

// Split divides l into two lists: first holds the first ⌊n/2⌋ elements of l, second holds
// the remaining ⌈n/2⌉ elements, both in original order. Split costs O(n) and the
// resulting lists do not share nodes with l.
func (l List[T]) Split() (first, second List[T]) {
	half := l.length / 2
	current := l
	current, first = current.popInto(half, first)
	current, second = current.popInto(l.length-half, second)
	assertThat(current.IsEmpty(), "split left %d elements behind", current.length)
	tracer().Debugf("split list of length %d into %d + %d", l.length, first.length, second.length)
	return first.Reverse(), second.Reverse()
}

// popInto moves n elements from the front of l to the front of acc, which
// therefore collects them in reverse order.
func (l List[T]) popInto(n int, acc List[T]) (List[T], List[T]) {
	for i := 0; i < n; i++ {
		value, rest, ok := l.PopFront()
		assertThat(ok, "attempt to pop from exhausted list")
		acc = acc.PushFront(value)
		l = rest
	}
	return l, acc
}

// All returns an iterator over the elements of l, front to back.
// The iterator may be used any number of times; iterators do not interfere with each other.
func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

func (l List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			sb.WriteByte(' ')
		}
		sb.WriteString(fmt.Sprintf("%v", n.value))
	}
	sb.WriteByte(')')
	return sb.String()
}
