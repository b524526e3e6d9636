// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ordered

// Color is the color tag of a red-black node.
type Color bool

const (
	// Red marks a node that does not count toward black height. New
	// nodes are allocated red.
	Red Color = false
	// Black marks a node counted by black height. The root, the sentinel
	// and absent children are black.
	Black Color = true
)

func (c Color) String() string {
	if c == Black {
		return "Black"
	}
	return "Red"
}

// ref is a handle into a tree's node arena. nilRef addresses the shared
// black sentinel in slot 0 and stands for every absent child.
type ref uint32

const nilRef ref = 0

type node[T any] struct {
	value T
	count int
	color Color

	left   ref
	right  ref
	parent ref // back-reference only, ownership is the arena
}

// NodeView is a read-only handle on a node, used for custom inspection of
// a tree's shape. A view is invalidated by any mutation of its tree.
type NodeView[T any] struct {
	t *tree[T]
	r ref
}

// Valid reports whether the view addresses a node. Views returned for
// absent children are not valid.
func (v NodeView[T]) Valid() bool {
	return v.t != nil && v.r != nilRef
}

// Value returns the stored value, or the zero value for an invalid view.
func (v NodeView[T]) Value() T {
	if !v.Valid() {
		var zero T
		return zero
	}
	return v.t.nodes[v.r].value
}

// Count returns the multiplicity of the node.
func (v NodeView[T]) Count() int {
	if !v.Valid() {
		return 0
	}
	return v.t.nodes[v.r].count
}

// Color returns the node color. Absent children report Black.
func (v NodeView[T]) Color() Color {
	if !v.Valid() {
		return Black
	}
	return v.t.nodes[v.r].color
}

// Left returns the left child view.
func (v NodeView[T]) Left() NodeView[T] {
	if !v.Valid() {
		return NodeView[T]{}
	}
	return NodeView[T]{t: v.t, r: v.t.nodes[v.r].left}
}

// Right returns the right child view.
func (v NodeView[T]) Right() NodeView[T] {
	if !v.Valid() {
		return NodeView[T]{}
	}
	return NodeView[T]{t: v.t, r: v.t.nodes[v.r].right}
}

// Parent returns the parent view, invalid for the root.
func (v NodeView[T]) Parent() NodeView[T] {
	if !v.Valid() {
		return NodeView[T]{}
	}
	return NodeView[T]{t: v.t, r: v.t.nodes[v.r].parent}
}
