// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ordered

// PathIterator is used to iterate over the words stored along a path from
// the root of a Trie, that is every stored word which is a prefix of the
// path, shortest first.
type PathIterator[S comparable, R any] struct {
	t     *Trie[S, R]
	path  []S
	depth int
	node  *trieNode[S, R]
}

// PathIterator returns an iterator over the stored prefixes of path.
func (t *Trie[S, R]) PathIterator(path []S) *PathIterator[S, R] {
	return &PathIterator[S, R]{t: t, path: path, node: t.root}
}

// Next returns the next stored prefix with its value. The returned slice
// aliases the path given to PathIterator.
func (i *PathIterator[S, R]) Next() ([]S, R, bool) {
	var zero R
	for i.node != nil {
		n, depth := i.node, i.depth
		i.advance()
		if n.terminal {
			return i.path[:depth], n.ret, true
		}
	}
	return nil, zero, false
}

func (i *PathIterator[S, R]) advance() {
	if i.depth >= len(i.path) {
		i.node = nil
		return
	}
	idx, ok := i.t.indexOf(i.path[i.depth])
	if !ok {
		i.node = nil
		return
	}
	i.node = i.node.children[idx]
	i.depth++
}

// LongestPrefix returns the longest stored word that is a prefix of path.
func (t *Trie[S, R]) LongestPrefix(path []S) ([]S, R, bool) {
	var (
		best  []S
		ret   R
		found bool
	)
	it := t.PathIterator(path)
	for {
		p, r, ok := it.Next()
		if !ok {
			return best, ret, found
		}
		best, ret, found = p, r, true
	}
}
