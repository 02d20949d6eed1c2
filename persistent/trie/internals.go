package trie

import (
	"fmt"
	"iter"
	"strings"
)

// tnode is a node of a trie. Nodes are never modified after they have become part of a
// trie; modifications always operate on copies.
type tnode[L comparable, V any] struct {
	bucket values[V]    // values terminating at this node
	edges  []edge[L, V] // at most one edge per label, unordered
}

type edge[L comparable, V any] struct {
	label L
	child *tnode[L, V]
}

// values is the bucket of a node.
type values[V any] []V

// without returns the values for which drop is false. If no value is dropped, vs itself
// is returned.
func (vs values[V]) without(drop func(V) bool) values[V] {
	var r values[V]
	var dropped bool
	for _, v := range vs {
		if drop(v) {
			dropped = true
			continue
		}
		r = append(r, v)
	}
	if !dropped {
		return vs
	}
	return r
}

func (node *tnode[L, V]) findEdge(label L) int {
	for i, e := range node.edges {
		if e.label == label {
			return i
		}
	}
	return -1
}

// clone creates a shallow copy of node: bucket and edges are fresh slices, children are shared.
// Extra capacity ext is reserved for the bucket (when bucket is true) or for the edges.
func (node *tnode[L, V]) clone(ext int, bucket bool) tnode[L, V] {
	var n tnode[L, V]
	bext, eext := 0, ext
	if bucket {
		bext, eext = ext, 0
	}
	if len(node.bucket)+bext > 0 {
		n.bucket = make(values[V], len(node.bucket), len(node.bucket)+bext)
		copy(n.bucket, node.bucket)
	}
	if len(node.edges)+eext > 0 {
		n.edges = make([]edge[L, V], len(node.edges), len(node.edges)+eext)
		copy(n.edges, node.edges)
	}
	return n
}

func (node *tnode[L, V]) withValue(value V) tnode[L, V] {
	cow := node.clone(1, true)
	cow.bucket = append(cow.bucket, value)
	return cow
}

func (node *tnode[L, V]) withEdge(label L, child *tnode[L, V]) tnode[L, V] {
	assertThat(node.findEdge(label) < 0, "duplicate edge for label %v", label)
	cow := node.clone(1, false)
	cow.edges = append(cow.edges, edge[L, V]{label: label, child: child})
	return cow
}

func (node *tnode[L, V]) withBucket(bucket values[V]) tnode[L, V] {
	return tnode[L, V]{bucket: bucket, edges: node.edges}
}

// newBranch creates a chain of fresh nodes for path, holding value at its end.
func newBranch[L comparable, V any](path []L, value V) *tnode[L, V] {
	node := &tnode[L, V]{bucket: values[V]{value}}
	for i := len(path) - 1; i >= 0; i-- {
		node = &tnode[L, V]{edges: []edge[L, V]{{label: path[i], child: node}}}
	}
	return node
}

func (node *tnode[L, V]) count() int {
	n := 1
	for _, e := range node.edges {
		n += e.child.count()
	}
	return n
}

// all iterates over the non-empty buckets of the sub-trie rooted at node, depth-first.
// prefix is the path leading to node; its backing array is re-used.
func (node *tnode[L, V]) all(prefix []L) iter.Seq2[[]L, values[V]] {
	return func(yield func([]L, values[V]) bool) {
		node.walk(prefix, yield)
	}
}

func (node *tnode[L, V]) walk(path []L, yield func([]L, values[V]) bool) bool {
	if len(node.bucket) > 0 && !yield(path, node.bucket) {
		return false
	}
	for _, e := range node.edges {
		if !e.child.walk(append(path, e.label), yield) {
			return false
		}
	}
	return true
}

func (node *tnode[L, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range node.bucket {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(fmt.Sprintf("%v", v))
	}
	sb.WriteByte(']')
	if len(node.edges) > 0 {
		sb.WriteString(fmt.Sprintf("→%d", len(node.edges)))
	}
	return sb.String()
}
