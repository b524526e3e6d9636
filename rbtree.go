// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ordered

import (
	"io"

	"golang.org/x/exp/constraints"
)

// RBTree is a self-balancing binary search tree. Every path from the root
// to an absent child carries the same number of black nodes and no red
// node has a red child, which keeps the height within 2*log2(n+1).
//
// An RBTree is not safe for concurrent mutation. Reads may run in parallel
// with each other but never with Insert, Delete, DeleteAll, Clear or
// ThreadedValues.
type RBTree[T any] struct {
	tree[T]
}

// NewRBTree returns an empty tree ordered by the built-in order of T. When
// repeats is true equal values are counted on one node instead of rejected.
func NewRBTree[T constraints.Ordered](repeats bool) *RBTree[T] {
	return NewRBTreeWith(Natural[T](), repeats)
}

// NewRBTreeWith returns an empty tree ordered by cmp.
func NewRBTreeWith[T any](cmp Comparator[T], repeats bool) *RBTree[T] {
	return &RBTree[T]{tree: newTree(cmp, repeats)}
}

// Insert stores v. It returns false, leaving the tree untouched, only when
// repeats are disallowed and an equal value is already present.
func (t *RBTree[T]) Insert(v T) bool {
	match, parent, right := t.descend(v)
	if match != nilRef {
		if !t.repeats {
			return false
		}
		t.nodes[match].count++
		t.size++
		return true
	}
	t.insertFixup(t.attach(v, parent, right))
	return true
}

// insertFixup restores the red-black properties after z was attached red.
func (t *RBTree[T]) insertFixup(z ref) {
	n := t.nodes
	for {
		p := n[z].parent
		if p == nilRef || n[p].color == Black {
			break
		}
		// p is red so it is not the root and g exists.
		g := n[p].parent
		if p == n[g].left {
			u := n[g].right
			if n[u].color == Red {
				n[p].color = Black
				n[u].color = Black
				n[g].color = Red
				z = g
				continue
			}
			if z == n[p].right {
				z = p
				t.rotateLeft(z)
				p = n[z].parent
			}
			n[p].color = Black
			n[g].color = Red
			t.rotateRight(g)
		} else {
			u := n[g].left
			if n[u].color == Red {
				n[p].color = Black
				n[u].color = Black
				n[g].color = Red
				z = g
				continue
			}
			if z == n[p].left {
				z = p
				t.rotateRight(z)
				p = n[z].parent
			}
			n[p].color = Black
			n[g].color = Red
			t.rotateLeft(g)
		}
	}
	if t.root != nilRef {
		n[t.root].color = Black
	}
}

// Delete removes one occurrence of v. A value stored more than once only
// loses one from its multiplicity. It returns false if v is absent.
func (t *RBTree[T]) Delete(v T) bool {
	z := t.lookup(v)
	if z == nilRef {
		return false
	}
	t.size--
	if t.nodes[z].count > 1 {
		t.nodes[z].count--
		return true
	}
	t.deleteNode(z)
	return true
}

// DeleteAll removes v whatever its multiplicity and returns how many
// elements went away.
func (t *RBTree[T]) DeleteAll(v T) int {
	z := t.lookup(v)
	if z == nilRef {
		return 0
	}
	c := t.nodes[z].count
	t.size -= c
	t.deleteNode(z)
	return c
}

// deleteNode unlinks z, keeping the links of every other node intact. When
// z has two children its in-order successor is moved into z's position.
func (t *RBTree[T]) deleteNode(z ref) {
	n := t.nodes
	y := z
	removed := n[y].color
	var x ref
	switch {
	case n[z].left == nilRef:
		x = n[z].right
		t.transplant(z, x)
	case n[z].right == nilRef:
		x = n[z].left
		t.transplant(z, x)
	default:
		y = t.minimum(n[z].right)
		removed = n[y].color
		x = n[y].right
		if n[y].parent == z {
			n[x].parent = y
		} else {
			t.transplant(y, x)
			n[y].right = n[z].right
			n[n[y].right].parent = y
		}
		t.transplant(z, y)
		n[y].left = n[z].left
		n[n[y].left].parent = y
		n[y].color = n[z].color
	}
	if removed == Black {
		t.deleteFixup(x)
	}
	t.resetSentinel()
	t.release(z)
}

// deleteFixup resolves the extra black carried by x after a black node
// was removed from its path.
func (t *RBTree[T]) deleteFixup(x ref) {
	n := t.nodes
	for x != t.root && n[x].color == Black {
		p := n[x].parent
		if x == n[p].left {
			w := n[p].right
			if n[w].color == Red {
				n[w].color = Black
				n[p].color = Red
				t.rotateLeft(p)
				w = n[p].right
			}
			if n[n[w].left].color == Black && n[n[w].right].color == Black {
				n[w].color = Red
				x = p
				continue
			}
			if n[n[w].right].color == Black {
				n[n[w].left].color = Black
				n[w].color = Red
				t.rotateRight(w)
				w = n[p].right
			}
			n[w].color = n[p].color
			n[p].color = Black
			n[n[w].right].color = Black
			t.rotateLeft(p)
			x = t.root
		} else {
			w := n[p].left
			if n[w].color == Red {
				n[w].color = Black
				n[p].color = Red
				t.rotateRight(p)
				w = n[p].left
			}
			if n[n[w].left].color == Black && n[n[w].right].color == Black {
				n[w].color = Red
				x = p
				continue
			}
			if n[n[w].left].color == Black {
				n[n[w].right].color = Black
				n[w].color = Red
				t.rotateLeft(w)
				w = n[p].left
			}
			n[w].color = n[p].color
			n[p].color = Black
			n[n[w].left].color = Black
			t.rotateRight(p)
			x = t.root
		}
	}
	n[x].color = Black
}

// Clone returns an independent copy of the tree.
func (t *RBTree[T]) Clone() *RBTree[T] {
	return &RBTree[T]{tree: t.clone()}
}

// Iterator returns an iterator over the values in ascending order.
func (t *RBTree[T]) Iterator() *Iterator[T] {
	return newIterator(&t.tree)
}

// ReverseIterator returns an iterator over the values in descending order.
func (t *RBTree[T]) ReverseIterator() *ReverseIterator[T] {
	return newReverseIterator(&t.tree)
}

// Verify checks the ordering, multiplicity, size and red-black properties
// and reports the first violation found.
func (t *RBTree[T]) Verify() error {
	return t.verify(true)
}

// DFSPrintTree writes an indented pre-order dump of the tree to w.
func (t *RBTree[T]) DFSPrintTree(w io.Writer) {
	t.dfsPrint(w, true)
}

func (t *RBTree[T]) String() string {
	return t.dump(true)
}
