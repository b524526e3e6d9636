// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ordered

import "golang.org/x/exp/constraints"

type ntreeNode[T any] struct {
	value    T
	children *BST[*ntreeNode[T]]
}

// NTree is a rooted tree where every node has any number of children.
// Siblings never repeat a value and are kept ordered in a BST, so the
// children of a node are always listed in ascending order.
//
// Nodes are addressed by paths: the values from the root down to the
// node, root value first.
type NTree[T any] struct {
	cmp  Comparator[T]
	kids Comparator[*ntreeNode[T]]
	root *ntreeNode[T]
	size int
}

func NewNTree[T constraints.Ordered]() *NTree[T] {
	return NewNTreeWith(Natural[T]())
}

func NewNTreeWith[T any](cmp Comparator[T]) *NTree[T] {
	cmp.mustValidate()
	return &NTree[T]{
		cmp: cmp,
		kids: Func(
			func(a, b *ntreeNode[T]) bool { return cmp.Equal(a.value, b.value) },
			func(a, b *ntreeNode[T]) bool { return cmp.Greater(a.value, b.value) },
		),
	}
}

// Len returns the number of nodes in the tree.
func (t *NTree[T]) Len() int {
	return t.size
}

// Root returns the value of the root node.
func (t *NTree[T]) Root() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	return t.root.value, true
}

func (t *NTree[T]) child(n *ntreeNode[T], v T) *ntreeNode[T] {
	if n.children == nil {
		return nil
	}
	c, _ := n.children.Get(&ntreeNode[T]{value: v})
	return c
}

// resolve returns the node addressed by path, or nil.
func (t *NTree[T]) resolve(path []T) *ntreeNode[T] {
	if t.root == nil || len(path) == 0 || !t.cmp.Equal(path[0], t.root.value) {
		return nil
	}
	cur := t.root
	for _, v := range path[1:] {
		if cur = t.child(cur, v); cur == nil {
			return nil
		}
	}
	return cur
}

// Insert adds v as a child of the node at parent. With an empty tree and
// an empty parent path v becomes the root. It returns false if the parent
// does not exist or already has a child equal to v.
func (t *NTree[T]) Insert(parent []T, v T) bool {
	if t.root == nil {
		if len(parent) != 0 {
			return false
		}
		t.root = &ntreeNode[T]{value: v}
		t.size = 1
		return true
	}
	p := t.resolve(parent)
	if p == nil {
		return false
	}
	if p.children == nil {
		p.children = NewBSTWith(t.kids, false)
	}
	if !p.children.Insert(&ntreeNode[T]{value: v}) {
		return false
	}
	t.size++
	return true
}

// Find reports whether a node exists at path.
func (t *NTree[T]) Find(path []T) bool {
	return t.resolve(path) != nil
}

// Children returns the values of the children of the node at path in
// ascending order, and false if there is no such node.
func (t *NTree[T]) Children(path []T) ([]T, bool) {
	n := t.resolve(path)
	if n == nil {
		return nil, false
	}
	if n.children == nil {
		return nil, true
	}
	kids := n.children.Values()
	out := make([]T, len(kids))
	for i, k := range kids {
		out[i] = k.value
	}
	return out, true
}

// Remove deletes the node at path together with its subtree and returns
// how many nodes went away.
func (t *NTree[T]) Remove(path []T) int {
	n := t.resolve(path)
	if n == nil {
		return 0
	}
	removed := 0
	t.walkFrom(n, 0, func(T, int) bool {
		removed++
		return false
	})
	if len(path) == 1 {
		t.root = nil
	} else {
		parent := t.resolve(path[:len(path)-1])
		parent.children.Delete(n)
		if parent.children.Len() == 0 {
			parent.children = nil
		}
	}
	t.size -= removed
	return removed
}

// Clear removes every node.
func (t *NTree[T]) Clear() {
	t.root = nil
	t.size = 0
}

// Walk visits every node in pre-order, children in ascending order, with
// its depth below the root. Returning true from fn stops the walk.
func (t *NTree[T]) Walk(fn func(v T, depth int) bool) {
	if t.root != nil {
		t.walkFrom(t.root, 0, fn)
	}
}

func (t *NTree[T]) walkFrom(n *ntreeNode[T], depth int, fn func(T, int) bool) {
	type frame struct {
		n *ntreeNode[T]
		d int
	}
	stack := []frame{{n, depth}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if fn(f.n.value, f.d) {
			return
		}
		if f.n.children == nil {
			continue
		}
		it := f.n.children.ReverseIterator()
		for {
			c, ok := it.Previous()
			if !ok {
				break
			}
			stack = append(stack, frame{c, f.d + 1})
		}
	}
}
