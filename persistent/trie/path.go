package trie

import (
	"fmt"
	"strconv"
	"strings"
)

// --- Slot ------------------------------------------------------------------

// slot holds a step of a path: a node together with the index of the edge taken.
type slot[L comparable, V any] struct {
	node  *tnode[L, V]
	index int
}

// child is the node the edge of the slot leads to.
func (s slot[L, V]) child() *tnode[L, V] {
	return s.node.edges[s.index].child
}

func (s slot[L, V]) String() string {
	return strconv.Itoa(s.index) + "@" + s.node.String()
}

// cloneSeam copies parent, re-linking the copy to child along the edge of the slot.
func cloneSeam[L comparable, V any](parent, child slot[L, V]) slot[L, V] {
	assertThat(parent.index < len(parent.node.edges), "internal inconsistency: edge index overflow")
	cow := parent.node.clone(0, false)
	cow.edges[parent.index].child = child.node
	return slot[L, V]{node: &cow, index: parent.index}
}

// --- Path ------------------------------------------------------------------

type slotPath[L comparable, V any] []slot[L, V]

func (path slotPath[L, V]) String() string {
	var sb = strings.Builder{}
	sb.WriteRune('[')
	for _, s := range path {
		sb.WriteString(fmt.Sprintf("⟨%s⟩", s))
	}
	sb.WriteRune(']')
	return sb.String()
}

func (path slotPath[L, V]) last() slot[L, V] {
	if len(path) == 0 {
		return slot[L, V]{}
	}
	return path[len(path)-1]
}

// foldR applies function f on pairs (parent,child) of slots of path.
// Application starts from the right, which corresponds to the bottom-most step of the path.
// zero is applied as `child` in the rightmost call of f(parent,child). If path is empty,
// zero will be returned, otherwise the value returned from the final call to f.
func (path slotPath[L, V]) foldR(f func(slot[L, V], slot[L, V]) slot[L, V], zero slot[L, V]) slot[L, V] {
	r := zero
	for i := len(path) - 1; i >= 0; i-- {
		r = f(path[i], r)
	}
	return r
}
