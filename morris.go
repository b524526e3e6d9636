// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ordered

// Values returns every stored value in ascending order, each repeated by
// its multiplicity. It only reads the tree and may run alongside other
// reads.
func (t *tree[T]) Values() []T {
	values := make([]T, 0, t.size)
	t.Walk(func(v T, count int) bool {
		values = appendRepeated(values, v, count)
		return false
	})
	return values
}

// ThreadedValues returns the same sequence as Values without an auxiliary
// stack, using Morris traversal: the right link of a node's in-order
// predecessor is threaded back to the node while its left subtree is
// visited and cut again afterwards. The tree is back in its prior shape
// when ThreadedValues returns, but links are written on the way, so the
// call needs the same exclusive access as Insert or Delete.
func (t *tree[T]) ThreadedValues() []T {
	values := make([]T, 0, t.size)
	n := t.nodes
	cur := t.root
	for cur != nilRef {
		if n[cur].left == nilRef {
			values = appendRepeated(values, n[cur].value, n[cur].count)
			cur = n[cur].right
			continue
		}
		pre := n[cur].left
		for n[pre].right != nilRef && n[pre].right != cur {
			pre = n[pre].right
		}
		if n[pre].right == cur {
			n[pre].right = nilRef
			values = appendRepeated(values, n[cur].value, n[cur].count)
			cur = n[cur].right
		} else {
			n[pre].right = cur
			cur = n[cur].left
		}
	}
	return values
}

func appendRepeated[T any](values []T, v T, count int) []T {
	for i := 0; i < count; i++ {
		values = append(values, v)
	}
	return values
}
