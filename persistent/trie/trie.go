package trie

import (
	"iter"
	"reflect"
)

/*
Remarks:
--------

- 'cow' stands for copy-on-write and is used for variables holding clones of nodes.

- A modification walks the path of labels, remembering every step in a slot path.
  The node at the end of the walk is copied and modified, then the copies are chained
  upwards to a new root by folding the slot path from the right.

- A new incarnation of a trie always is reflected by a new trie.root.
*/

// Trie is an immutable persistent trie, mapping paths of labels of type L to buckets of
// values of type V. An empty instance is usable as an empty trie, i.e. this is legal:
//
//     t := trie.Trie[rune, string]{}.InsertStore([]rune("key"), "value")
//
// The zero value compares values by Go's equality operator. RemoveStore on a zero value
// trie panics for value types which are not comparable. Use ImmutableWith for those.
type Trie[L comparable, V any] struct {
	root  *tnode[L, V]
	equal func(a, b V) bool
}

// Immutable creates an empty trie for comparable values.
func Immutable[L, V comparable]() Trie[L, V] {
	return Trie[L, V]{
		equal: func(a, b V) bool { return a == b },
	}
}

// ImmutableWith creates an empty trie which uses equal to compare values.
// Equality is used for removing values only: RemoveStore drops every value which is
// equal to a given probe.
func ImmutableWith[L comparable, V any](equal func(a, b V) bool) Trie[L, V] {
	assertThat(equal != nil, "equality predicate may not be nil")
	return Trie[L, V]{equal: equal}
}

// --- API -------------------------------------------------------------------

// InsertStore returns a copy of t with value appended to the bucket at path.
// Values already present at path, even equal ones, remain in the bucket.
// Only the nodes on path are copied.
func (t Trie[L, V]) InsertStore(path []L, value V) Trie[L, V] {
	var buf slotPath[L, V] = make([]slot[L, V], 0, len(path))
	steps, end, depth := t.locate(path, buf)
	var cow tnode[L, V]
	if depth == len(path) { // path exists ⇒ append value to bucket
		cow = end.withValue(value)
	} else { // path exists up to depth ⇒ grow a new branch
		branch := newBranch(path[depth+1:], value)
		cow = end.withEdge(path[depth], branch)
		tracer().Debugf("insert: new branch at depth %d, %d nodes", depth, len(path)-depth)
	}
	newRoot := steps.foldR(cloneSeam[L, V], slot[L, V]{node: &cow})
	return t.withRoot(newRoot.node)
}

// GetStore returns the bucket of values stored at path, in order of insertion.
// If there is no node for path or if the bucket is empty, GetStore returns false.
func (t Trie[L, V]) GetStore(path []L) (Bucket[V], bool) {
	node := t.find(path)
	if node == nil || len(node.bucket) == 0 {
		return Bucket[V]{}, false
	}
	return Bucket[V]{values: node.bucket}, true
}

// RemoveStore returns a copy of t where every value equal to probe has been removed
// from the bucket at path. If path does not exist or no value in its bucket is equal
// to probe, RemoveStore returns t unchanged and false.
//
// Nodes emptied by a removal are kept, i.e. the size of a trie never shrinks.
func (t Trie[L, V]) RemoveStore(path []L, probe V) (Trie[L, V], bool) {
	var buf slotPath[L, V] = make([]slot[L, V], 0, len(path))
	steps, end, depth := t.locate(path, buf)
	if depth < len(path) {
		return t, false
	}
	eq := t.equality()
	remaining := end.bucket.without(func(v V) bool { return eq(v, probe) })
	if len(remaining) == len(end.bucket) {
		return t, false
	}
	tracer().Debugf("remove: dropped %d values at depth %d", len(end.bucket)-len(remaining), depth)
	cow := end.withBucket(remaining)
	newRoot := steps.foldR(cloneSeam[L, V], slot[L, V]{node: &cow})
	return t.withRoot(newRoot.node), true
}

// HasPrefix is true if t holds at least one value at path or at a path extending it.
func (t Trie[L, V]) HasPrefix(path []L) bool {
	node := t.find(path)
	if node == nil {
		return false
	}
	for range node.all(nil) {
		return true
	}
	return false
}

// All returns an iterator over every path/value pair of t. Paths are visited depth-first,
// children in order of creation; values of a bucket in order of insertion.
// The path slice handed to the iteration is re-used by subsequent steps.
func (t Trie[L, V]) All() iter.Seq2[[]L, V] {
	return func(yield func([]L, V) bool) {
		if t.root == nil {
			return
		}
		for path, bucket := range t.root.all(nil) {
			for _, v := range bucket {
				if !yield(path, v) {
					return
				}
			}
		}
	}
}

// Buckets returns an iterator over all non-empty buckets of t, in the same order as All.
func (t Trie[L, V]) Buckets() iter.Seq2[[]L, Bucket[V]] {
	return func(yield func([]L, Bucket[V]) bool) {
		if t.root == nil {
			return
		}
		for path, bucket := range t.root.all(nil) {
			if !yield(path, Bucket[V]{values: bucket}) {
				return
			}
		}
	}
}

// Size returns the number of nodes of t, including the root.
// As nodes are never pruned, Size does not track the number of values stored.
func (t Trie[L, V]) Size() int {
	if t.root == nil {
		return 0
	}
	return t.root.count()
}

// --- Internals -------------------------------------------------------------

// locate walks path as far as possible. It returns the slots of all steps taken, the node
// where the walk ended and the number of labels consumed.
func (t Trie[L, V]) locate(path []L, pathBuf slotPath[L, V]) (slotPath[L, V], *tnode[L, V], int) {
	steps := pathBuf[:0]
	node := t.root
	if node == nil {
		node = &tnode[L, V]{}
	}
	for depth, label := range path {
		index := node.findEdge(label)
		if index < 0 {
			return steps, node, depth
		}
		steps = append(steps, slot[L, V]{node: node, index: index})
		node = steps.last().child()
	}
	return steps, node, len(path)
}

// find returns the node at path, or nil.
func (t Trie[L, V]) find(path []L) *tnode[L, V] {
	node := t.root
	for _, label := range path {
		if node == nil {
			return nil
		}
		index := node.findEdge(label)
		if index < 0 {
			return nil
		}
		node = node.edges[index].child
	}
	return node
}

func (t Trie[L, V]) withRoot(root *tnode[L, V]) Trie[L, V] {
	return Trie[L, V]{root: root, equal: t.equal}
}

func (t Trie[L, V]) equality() func(a, b V) bool {
	if t.equal != nil {
		return t.equal
	}
	assertThat(reflect.TypeFor[V]().Comparable(),
		"values of type %v are not comparable, create the trie with ImmutableWith", reflect.TypeFor[V]())
	return func(a, b V) bool { return any(a) == any(b) }
}
