// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ordered

import (
	"io"

	"golang.org/x/exp/constraints"
)

// BST is an unbalanced binary search tree sharing the comparison and
// multiplicity model of RBTree. Its shape depends on insertion order, so
// sorted input degrades it to a list; prefer RBTree unless that order is
// known to be random.
type BST[T any] struct {
	tree[T]
}

// NewBST returns an empty BST ordered by the built-in order of T.
func NewBST[T constraints.Ordered](repeats bool) *BST[T] {
	return NewBSTWith(Natural[T](), repeats)
}

// NewBSTWith returns an empty BST ordered by cmp.
func NewBSTWith[T any](cmp Comparator[T], repeats bool) *BST[T] {
	return &BST[T]{tree: newTree(cmp, repeats)}
}

// Insert stores v, returning false if repeats are disallowed and an equal
// value is already present.
func (b *BST[T]) Insert(v T) bool {
	match, parent, right := b.descend(v)
	if match != nilRef {
		if !b.repeats {
			return false
		}
		b.nodes[match].count++
		b.size++
		return true
	}
	b.attach(v, parent, right)
	return true
}

// Delete removes one occurrence of v and reports whether it was present.
// A node with two children is replaced by the rightmost node of its left
// subtree.
func (b *BST[T]) Delete(v T) bool {
	z := b.lookup(v)
	if z == nilRef {
		return false
	}
	b.size--
	if b.nodes[z].count > 1 {
		b.nodes[z].count--
		return true
	}
	b.unlink(z)
	return true
}

func (b *BST[T]) unlink(z ref) {
	n := b.nodes
	switch {
	case n[z].left == nilRef:
		b.transplant(z, n[z].right)
	case n[z].right == nilRef:
		b.transplant(z, n[z].left)
	default:
		y := b.maximum(n[z].left)
		if n[y].parent != z {
			b.transplant(y, n[y].left)
			n[y].left = n[z].left
			n[n[y].left].parent = y
		}
		b.transplant(z, y)
		n[y].right = n[z].right
		n[n[y].right].parent = y
	}
	b.resetSentinel()
	b.release(z)
}

// Clone returns an independent copy of the tree.
func (b *BST[T]) Clone() *BST[T] {
	return &BST[T]{tree: b.clone()}
}

// Iterator returns an iterator over the values in ascending order.
func (b *BST[T]) Iterator() *Iterator[T] {
	return newIterator(&b.tree)
}

// ReverseIterator returns an iterator over the values in descending order.
func (b *BST[T]) ReverseIterator() *ReverseIterator[T] {
	return newReverseIterator(&b.tree)
}

// Verify checks links, ordering, multiplicities and the size counter.
func (b *BST[T]) Verify() error {
	return b.verify(false)
}

// DFSPrintTree writes an indented pre-order dump of the tree to w.
func (b *BST[T]) DFSPrintTree(w io.Writer) {
	b.dfsPrint(w, false)
}

func (b *BST[T]) String() string {
	return b.dump(false)
}
