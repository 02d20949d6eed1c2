package deque

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/fpcoll/maybe"
	"github.com/npillmayer/fpcoll/persistent/list"
)

// Deque is an immutable persistent double-ended queue. An empty instance is usable as
// an empty deque.
//
// After every operation at most one of head and tail is empty, and only if the deque
// holds at most one element.
type Deque[T any] struct {
	head list.List[T] // front part, in order
	tail list.List[T] // back part, in reverse order
}

// New creates an empty deque. This is equivalent to using the zero value.
func New[T any]() Deque[T] {
	return Deque[T]{}
}

// From creates a deque holding xs, xs[0] at the front.
func From[T any](xs ...T) Deque[T] {
	d := Deque[T]{}
	for _, x := range xs {
		d = d.PushBack(x)
	}
	return d
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements of d.
func (d Deque[T]) Len() int {
	return d.head.Len() + d.tail.Len()
}

// IsEmpty is true for a deque without elements.
func (d Deque[T]) IsEmpty() bool {
	return d.Len() == 0
}

// PushFront returns a copy of d with value prepended.
func (d Deque[T]) PushFront(value T) Deque[T] {
	return Deque[T]{head: d.head.PushFront(value), tail: d.tail}.balance()
}

// PushBack returns a copy of d with value appended.
func (d Deque[T]) PushBack(value T) Deque[T] {
	return Deque[T]{head: d.head, tail: d.tail.PushFront(value)}.balance()
}

// PopFront returns the first element of d together with the remaining deque.
// If d is empty, ok is false and rest is d itself.
func (d Deque[T]) PopFront() (value T, rest Deque[T], ok bool) {
	if d.IsEmpty() {
		return value, d, false
	}
	if d.head.IsEmpty() { // single element lives in tail
		x, t, _ := d.tail.PopFront()
		return x, Deque[T]{head: d.head, tail: t}.balance(), true
	}
	x, h, _ := d.head.PopFront()
	return x, Deque[T]{head: h, tail: d.tail}.balance(), true
}

// PopBack returns the last element of d together with the remaining deque.
// If d is empty, ok is false and rest is d itself.
func (d Deque[T]) PopBack() (value T, rest Deque[T], ok bool) {
	if d.IsEmpty() {
		return value, d, false
	}
	if d.tail.IsEmpty() { // single element lives in head
		x, h, _ := d.head.PopFront()
		return x, Deque[T]{head: h, tail: d.tail}.balance(), true
	}
	x, t, _ := d.tail.PopFront()
	return x, Deque[T]{head: d.head, tail: t}.balance(), true
}

// Front returns the first element of d, if any.
func (d Deque[T]) Front() maybe.Maybe[T] {
	if d.head.IsEmpty() {
		return d.tail.Front()
	}
	return d.head.Front()
}

// Back returns the last element of d, if any.
func (d Deque[T]) Back() maybe.Maybe[T] {
	if d.tail.IsEmpty() {
		return d.head.Front()
	}
	return d.tail.Front()
}

// All returns an iterator over the elements of d, front to back.
// The iterator may be used any number of times; iterators do not interfere with each other.
func (d Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for x := range d.head.All() {
			if !yield(x) {
				return
			}
		}
		if d.tail.IsEmpty() {
			return
		}
		for x := range d.tail.Reverse().All() {
			if !yield(x) {
				return
			}
		}
	}
}

func (d Deque[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	var sep string
	for x := range d.All() {
		fmt.Fprintf(&sb, "%s%v", sep, x)
		sep = " "
	}
	sb.WriteByte(']')
	return sb.String()
}

// --- Internals -------------------------------------------------------------

// balance refills an empty side from the other side: the other side is split in halves,
// and the half adjacent to the empty side is reversed to become its new content.
// If both sides are non-empty, d is returned as is.
func (d Deque[T]) balance() Deque[T] {
	switch {
	case d.head.IsEmpty() && !d.tail.IsEmpty():
		tail, revHead := d.tail.Split()
		tracer().Debugf("balance: refill head with %d of %d elements", revHead.Len(), d.Len())
		return Deque[T]{head: revHead.Reverse(), tail: tail}
	case d.tail.IsEmpty() && !d.head.IsEmpty():
		head, revTail := d.head.Split()
		tracer().Debugf("balance: refill tail with %d of %d elements", revTail.Len(), d.Len())
		return Deque[T]{head: head, tail: revTail.Reverse()}
	}
	return d
}
