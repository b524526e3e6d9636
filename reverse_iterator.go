// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ordered

// ReverseIterator is used to iterate over the values of a tree in
// descending order. It mirrors Iterator: the stack holds the right spine
// and the left subtree of a node is expanded after the node is emitted.
type ReverseIterator[T any] struct {
	t     *tree[T]
	stack []ref

	pos     ref
	pending int
}

func newReverseIterator[T any](t *tree[T]) *ReverseIterator[T] {
	ri := &ReverseIterator[T]{t: t}
	ri.pushRight(t.root)
	return ri
}

func (ri *ReverseIterator[T]) pushRight(r ref) {
	for r != nilRef {
		ri.stack = append(ri.stack, r)
		r = ri.t.nodes[r].right
	}
}

// Previous returns the previous value in ascending order, which is the
// next one in reverse.
func (ri *ReverseIterator[T]) Previous() (T, bool) {
	if ri.pending > 0 {
		ri.pending--
		return ri.t.nodes[ri.pos].value, true
	}
	if len(ri.stack) == 0 {
		var zero T
		return zero, false
	}
	r := ri.stack[len(ri.stack)-1]
	ri.stack = ri.stack[:len(ri.stack)-1]
	n := &ri.t.nodes[r]
	ri.pushRight(n.left)
	ri.pos = r
	ri.pending = n.count - 1
	return n.value, true
}
