// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ordered

import "github.com/cockroachdb/errors"

// WalkFn is used when walking a tree. It receives each distinct value with
// its multiplicity, in ascending order, and returns true to stop the walk.
type WalkFn[T any] func(v T, count int) bool

// tree is the arena-backed binary search tree shared by RBTree and BST.
// Slot 0 of nodes is the black sentinel; released slots are kept on free
// and handed out again by alloc.
type tree[T any] struct {
	cmp     Comparator[T]
	nodes   []node[T]
	free    []ref
	root    ref
	size    int
	repeats bool
}

func newTree[T any](cmp Comparator[T], repeats bool) tree[T] {
	cmp.mustValidate()
	return tree[T]{
		cmp:     cmp,
		nodes:   []node[T]{{color: Black}},
		repeats: repeats,
	}
}

// alloc returns a red node holding v with a multiplicity of one.
func (t *tree[T]) alloc(v T, parent ref) ref {
	n := node[T]{value: v, count: 1, color: Red, parent: parent}
	if l := len(t.free); l > 0 {
		r := t.free[l-1]
		t.free = t.free[:l-1]
		t.nodes[r] = n
		return r
	}
	if uint64(len(t.nodes)) > uint64(^ref(0)) {
		panic(errors.AssertionFailedf("ordered: node arena exhausted at %d nodes", len(t.nodes)))
	}
	t.nodes = append(t.nodes, n)
	return ref(len(t.nodes) - 1)
}

// release returns the slot to the free list, dropping its value.
func (t *tree[T]) release(r ref) {
	t.nodes[r] = node[T]{}
	t.free = append(t.free, r)
}

// Len is used to return the number of elements in the tree, counting
// every repeat of a value.
func (t *tree[T]) Len() int {
	return t.size
}

// Repeats reports whether the tree collapses equal values into one node
// with a multiplicity instead of rejecting them.
func (t *tree[T]) Repeats() bool {
	return t.repeats
}

// Clear drops every node and resets the tree to empty.
func (t *tree[T]) Clear() {
	t.nodes = []node[T]{{color: Black}}
	t.free = nil
	t.root = nilRef
	t.size = 0
}

// lookup descends from the root and returns the node equal to v, or nilRef.
func (t *tree[T]) lookup(v T) ref {
	cur := t.root
	for cur != nilRef {
		n := &t.nodes[cur]
		switch t.cmp.compare(v, n.value) {
		case 0:
			return cur
		case 1:
			cur = n.right
		default:
			cur = n.left
		}
	}
	return nilRef
}

// descend finds where v belongs. It returns the matching node when one
// exists, otherwise the parent an insertion should attach to and whether
// the new node goes to its right.
func (t *tree[T]) descend(v T) (match, parent ref, right bool) {
	cur := t.root
	for cur != nilRef {
		n := &t.nodes[cur]
		switch t.cmp.compare(v, n.value) {
		case 1:
			parent, right, cur = cur, true, n.right
		case 0:
			return cur, parent, right
		default:
			parent, right, cur = cur, false, n.left
		}
	}
	return nilRef, parent, right
}

// attach links a new red node below parent and accounts for it in size.
func (t *tree[T]) attach(v T, parent ref, right bool) ref {
	r := t.alloc(v, parent)
	switch {
	case parent == nilRef:
		t.root = r
	case right:
		t.nodes[parent].right = r
	default:
		t.nodes[parent].left = r
	}
	t.size++
	return r
}

// Find reports whether a value equal to v is stored.
func (t *tree[T]) Find(v T) bool {
	return t.lookup(v) != nilRef
}

// Get returns the stored value equal to v. With user defined comparators
// the stored value may carry more than the probe.
func (t *tree[T]) Get(v T) (T, bool) {
	if r := t.lookup(v); r != nilRef {
		return t.nodes[r].value, true
	}
	var zero T
	return zero, false
}

// Count returns how many times v is stored, or 0 if absent.
func (t *tree[T]) Count(v T) int {
	if r := t.lookup(v); r != nilRef {
		return t.nodes[r].count
	}
	return 0
}

func (t *tree[T]) minimum(r ref) ref {
	for t.nodes[r].left != nilRef {
		r = t.nodes[r].left
	}
	return r
}

func (t *tree[T]) maximum(r ref) ref {
	for t.nodes[r].right != nilRef {
		r = t.nodes[r].right
	}
	return r
}

// Minimum returns the smallest stored value.
func (t *tree[T]) Minimum() (T, bool) {
	if t.root == nilRef {
		var zero T
		return zero, false
	}
	return t.nodes[t.minimum(t.root)].value, true
}

// Maximum returns the largest stored value.
func (t *tree[T]) Maximum() (T, bool) {
	if t.root == nilRef {
		var zero T
		return zero, false
	}
	return t.nodes[t.maximum(t.root)].value, true
}

// Root returns the root node which can be used for richer query operations.
func (t *tree[T]) Root() NodeView[T] {
	return NodeView[T]{t: t, r: t.root}
}

// transplant puts v in u's place under u's parent. The parent link of v is
// written even when v is the sentinel; deletion relies on that and resets
// the sentinel afterwards.
func (t *tree[T]) transplant(u, v ref) {
	p := t.nodes[u].parent
	switch {
	case p == nilRef:
		t.root = v
	case t.nodes[p].left == u:
		t.nodes[p].left = v
	default:
		t.nodes[p].right = v
	}
	t.nodes[v].parent = p
}

func (t *tree[T]) resetSentinel() {
	t.nodes[nilRef] = node[T]{color: Black}
}

func (t *tree[T]) clone() tree[T] {
	nt := *t
	nt.nodes = make([]node[T], len(t.nodes))
	copy(nt.nodes, t.nodes)
	if t.free != nil {
		nt.free = make([]ref, len(t.free))
		copy(nt.free, t.free)
	}
	return nt
}

// Walk is used to walk the tree in ascending order.
func (t *tree[T]) Walk(fn WalkFn[T]) {
	var stack []ref
	cur := t.root
	for cur != nilRef || len(stack) > 0 {
		for cur != nilRef {
			stack = append(stack, cur)
			cur = t.nodes[cur].left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &t.nodes[cur]
		if fn(n.value, n.count) {
			return
		}
		cur = n.right
	}
}

// Height returns the number of nodes on the longest root to leaf path.
func (t *tree[T]) Height() int {
	type frame struct {
		r ref
		d int
	}
	best := 0
	stack := []frame{{t.root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.r == nilRef {
			continue
		}
		if f.d > best {
			best = f.d
		}
		stack = append(stack, frame{t.nodes[f.r].left, f.d + 1}, frame{t.nodes[f.r].right, f.d + 1})
	}
	return best
}
