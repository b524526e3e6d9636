// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ordered

import (
	"github.com/cockroachdb/errors"
	lru "github.com/hashicorp/golang-lru/v2"
)

// IndexFn maps a symbol to the child slot it occupies in a Trie node. It
// should be cheap; for a lowercase alphabet it is typically r - 'a'.
type IndexFn[S any] func(S) int

type trieConfig struct {
	cacheSize int
}

// TrieOption configures a Trie at construction.
type TrieOption func(*trieConfig)

// WithIndexCache memoizes the index function in an LRU cache holding up to
// size symbols. It pays off when the index function is costly, for example
// a lookup in a large symbol table. A size of zero or less disables it.
func WithIndexCache(size int) TrieOption {
	return func(c *trieConfig) {
		c.cacheSize = size
	}
}

type trieNode[S any, R any] struct {
	sym         S
	children    []*trieNode[S, R]
	numChildren int
	terminal    bool
	ret         R
}

func newTrieNode[S any, R any](options int, sym S) *trieNode[S, R] {
	return &trieNode[S, R]{sym: sym, children: make([]*trieNode[S, R], options)}
}

// Trie is a prefix tree with a fixed fanout. Words are sequences of
// symbols; each stored word carries a return value handed back by Find.
type Trie[S comparable, R any] struct {
	options int
	index   IndexFn[S]
	cache   *lru.Cache[S, int]
	root    *trieNode[S, R]
	size    int
}

// NewTrie returns an empty trie whose nodes have options children, with
// index mapping every symbol into [0, options).
func NewTrie[S comparable, R any](options int, index IndexFn[S], opts ...TrieOption) *Trie[S, R] {
	if options <= 0 {
		panic(errors.AssertionFailedf("ordered: trie fanout must be positive, got %d", options))
	}
	if index == nil {
		panic(errors.AssertionFailedf("ordered: trie needs an index function"))
	}
	var cfg trieConfig
	for _, o := range opts {
		o(&cfg)
	}
	t := &Trie[S, R]{options: options, index: index}
	if cfg.cacheSize > 0 {
		cache, err := lru.New[S, int](cfg.cacheSize)
		if err != nil {
			panic(errors.NewAssertionErrorWithWrappedErrf(err, "ordered: building index cache"))
		}
		t.cache = cache
	}
	var zero S
	t.root = newTrieNode[S, R](options, zero)
	return t
}

// indexOf resolves the child slot of s, reporting whether it is in range.
func (t *Trie[S, R]) indexOf(s S) (int, bool) {
	if t.cache != nil {
		if idx, ok := t.cache.Get(s); ok {
			return idx, true
		}
	}
	idx := t.index(s)
	if idx < 0 || idx >= t.options {
		return idx, false
	}
	if t.cache != nil {
		t.cache.Add(s, idx)
	}
	return idx, true
}

// Len returns the number of words stored.
func (t *Trie[S, R]) Len() int {
	return t.size
}

// Insert stores word with its return value. Inserting a word that is
// already present replaces its return value. If any symbol of word maps
// outside the fanout nothing is stored and the error wraps
// ErrIndexOutOfRange.
func (t *Trie[S, R]) Insert(word []S, ret R) error {
	indexes := make([]int, len(word))
	for pos, s := range word {
		idx, ok := t.indexOf(s)
		if !ok {
			return errors.Wrapf(ErrIndexOutOfRange, "symbol %v at position %d maps to %d, fanout is %d", s, pos, idx, t.options)
		}
		indexes[pos] = idx
	}

	cur := t.root
	for pos, idx := range indexes {
		child := cur.children[idx]
		if child == nil {
			child = newTrieNode[S, R](t.options, word[pos])
			cur.children[idx] = child
			cur.numChildren++
		}
		cur = child
	}
	if !cur.terminal {
		cur.terminal = true
		t.size++
	}
	cur.ret = ret
	return nil
}

// walkTo follows word from the root and returns the node it ends at, or
// nil if the path does not exist.
func (t *Trie[S, R]) walkTo(word []S) *trieNode[S, R] {
	cur := t.root
	for _, s := range word {
		idx, ok := t.indexOf(s)
		if !ok {
			return nil
		}
		cur = cur.children[idx]
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Find returns the value stored with word.
func (t *Trie[S, R]) Find(word []S) (R, bool) {
	n := t.walkTo(word)
	if n == nil || !n.terminal {
		var zero R
		return zero, false
	}
	return n.ret, true
}

// HasPrefix reports whether some stored word starts with prefix.
func (t *Trie[S, R]) HasPrefix(prefix []S) bool {
	n := t.walkTo(prefix)
	return n != nil && (n.terminal || n.numChildren > 0)
}

// Remove deletes word and prunes the branches left without words. It
// returns false if word was not stored.
func (t *Trie[S, R]) Remove(word []S) bool {
	type step struct {
		parent *trieNode[S, R]
		idx    int
	}
	steps := make([]step, 0, len(word))
	cur := t.root
	for _, s := range word {
		idx, ok := t.indexOf(s)
		if !ok || cur.children[idx] == nil {
			return false
		}
		steps = append(steps, step{cur, idx})
		cur = cur.children[idx]
	}
	if !cur.terminal {
		return false
	}
	var zero R
	cur.terminal = false
	cur.ret = zero
	t.size--

	for i := len(steps) - 1; i >= 0; i-- {
		child := steps[i].parent.children[steps[i].idx]
		if child.terminal || child.numChildren > 0 {
			break
		}
		steps[i].parent.children[steps[i].idx] = nil
		steps[i].parent.numChildren--
	}
	return true
}

// Clear removes every word.
func (t *Trie[S, R]) Clear() {
	var zero S
	t.root = newTrieNode[S, R](t.options, zero)
	t.size = 0
}

// Walk visits every stored word in slot order, shorter words before their
// extensions. Returning true from fn stops the walk. The word slice is
// reused between calls and must be copied to be retained.
func (t *Trie[S, R]) Walk(fn func(word []S, ret R) bool) {
	var word []S
	t.recursiveWalk(t.root, word, fn)
}

func (t *Trie[S, R]) recursiveWalk(n *trieNode[S, R], word []S, fn func([]S, R) bool) bool {
	if n.terminal && fn(word, n.ret) {
		return true
	}
	if n.numChildren == 0 {
		return false
	}
	for _, ch := range n.children {
		if ch != nil {
			if t.recursiveWalk(ch, append(word, ch.sym), fn) {
				return true
			}
		}
	}
	return false
}
