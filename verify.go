// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ordered

import "github.com/cockroachdb/errors"

// verify walks the whole tree checking links, order, multiplicities and
// the size counter, plus the red-black properties when colored is set.
// Violations are reported as assertion failures.
func (t *tree[T]) verify(colored bool) error {
	n := t.nodes
	if n[nilRef].color != Black || n[nilRef].left != nilRef || n[nilRef].right != nilRef {
		return errors.AssertionFailedf("sentinel was modified")
	}
	if t.root == nilRef {
		if t.size != 0 {
			return errors.AssertionFailedf("empty tree reports size %d", t.size)
		}
		return nil
	}
	if n[t.root].parent != nilRef {
		return errors.AssertionFailedf("root %d has parent %d", t.root, n[t.root].parent)
	}
	if colored && n[t.root].color != Black {
		return errors.AssertionFailedf("root %d is red", t.root)
	}

	type frame struct {
		r ref
		// lo and hi bound the subtree; zero means unbounded.
		lo, hi ref
	}
	var (
		total  int
		nodes  int
		height = -1
	)
	blacks := map[ref]int{t.root: 0}
	stack := []frame{{r: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cur := &n[f.r]
		nodes++
		if cur.count < 1 {
			return errors.AssertionFailedf("node %d has multiplicity %d", f.r, cur.count)
		}
		if !t.repeats && cur.count != 1 {
			return errors.AssertionFailedf("node %d has multiplicity %d without repeats", f.r, cur.count)
		}
		total += cur.count
		if f.lo != nilRef && !t.cmp.Greater(cur.value, n[f.lo].value) {
			return errors.AssertionFailedf("node %d is not greater than ancestor %d", f.r, f.lo)
		}
		if f.hi != nilRef && (t.cmp.Greater(cur.value, n[f.hi].value) || t.cmp.Equal(cur.value, n[f.hi].value)) {
			return errors.AssertionFailedf("node %d is not less than ancestor %d", f.r, f.hi)
		}
		depth := blacks[f.r]
		if cur.color == Black {
			depth++
		}
		delete(blacks, f.r)
		for _, c := range [2]ref{cur.left, cur.right} {
			if c == nilRef {
				if height == -1 {
					height = depth
				} else if colored && height != depth {
					return errors.AssertionFailedf("black height %d below node %d, expected %d", depth, f.r, height)
				}
				continue
			}
			if n[c].parent != f.r {
				return errors.AssertionFailedf("node %d has parent %d, expected %d", c, n[c].parent, f.r)
			}
			if colored && cur.color == Red && n[c].color == Red {
				return errors.AssertionFailedf("red node %d has red child %d", f.r, c)
			}
			blacks[c] = depth
		}
		if cur.left != nilRef {
			stack = append(stack, frame{r: cur.left, lo: f.lo, hi: f.r})
		}
		if cur.right != nilRef {
			stack = append(stack, frame{r: cur.right, lo: f.r, hi: f.hi})
		}
	}
	if total != t.size {
		return errors.AssertionFailedf("size is %d but multiplicities sum to %d", t.size, total)
	}
	if live := len(n) - 1 - len(t.free); live != nodes {
		return errors.AssertionFailedf("%d nodes reachable but %d slots in use", nodes, live)
	}
	return nil
}
