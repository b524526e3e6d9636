// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ordered

// Iterator is used to iterate over the values of a tree in ascending order,
// yielding a value once per stored repeat. It keeps its own stack of the
// nodes still to visit, so each call to Next does a bounded amount of work
// and no recursion is involved.
//
// An iterator is invalidated by any mutation of its tree.
type Iterator[T any] struct {
	t     *tree[T]
	stack []ref

	// pos is the node being emitted and pending its remaining repeats.
	pos     ref
	pending int
}

func newIterator[T any](t *tree[T]) *Iterator[T] {
	i := &Iterator[T]{t: t}
	i.pushLeft(t.root)
	return i
}

func (i *Iterator[T]) pushLeft(r ref) {
	for r != nilRef {
		i.stack = append(i.stack, r)
		r = i.t.nodes[r].left
	}
}

// Next returns the next value and true, or false once the iterator is
// exhausted.
func (i *Iterator[T]) Next() (T, bool) {
	if i.pending > 0 {
		i.pending--
		return i.t.nodes[i.pos].value, true
	}
	if len(i.stack) == 0 {
		var zero T
		return zero, false
	}
	r := i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]
	n := &i.t.nodes[r]
	i.pushLeft(n.right)
	i.pos = r
	i.pending = n.count - 1
	return n.value, true
}

// Collect drains the iterator into a slice.
func (i *Iterator[T]) Collect() []T {
	var out []T
	for {
		v, ok := i.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
