// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ordered

import "github.com/cockroachdb/errors"

// rotateLeft lifts the right child of pivot into pivot's place.
//
//	  p              c
//	 / \            / \
//	a   c   ==>    p   e
//	   / \        / \
//	  d   e      a   d
func (t *tree[T]) rotateLeft(pivot ref) {
	n := t.nodes
	child := n[pivot].right
	if child == nilRef {
		panic(errors.AssertionFailedf("ordered: rotate left without a right child"))
	}
	n[pivot].right = n[child].left
	if n[child].left != nilRef {
		n[n[child].left].parent = pivot
	}
	n[child].parent = n[pivot].parent
	t.replaceChild(n[pivot].parent, pivot, child)
	n[child].left = pivot
	n[pivot].parent = child
}

// rotateRight is the mirror of rotateLeft.
func (t *tree[T]) rotateRight(pivot ref) {
	n := t.nodes
	child := n[pivot].left
	if child == nilRef {
		panic(errors.AssertionFailedf("ordered: rotate right without a left child"))
	}
	n[pivot].left = n[child].right
	if n[child].right != nilRef {
		n[n[child].right].parent = pivot
	}
	n[child].parent = n[pivot].parent
	t.replaceChild(n[pivot].parent, pivot, child)
	n[child].right = pivot
	n[pivot].parent = child
}

func (t *tree[T]) replaceChild(parent, old, child ref) {
	switch {
	case parent == nilRef:
		t.root = child
	case t.nodes[parent].left == old:
		t.nodes[parent].left = child
	case t.nodes[parent].right == old:
		t.nodes[parent].right = child
	default:
		panic(errors.AssertionFailedf("ordered: node %d is not a child of %d", old, parent))
	}
}
