// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ordered

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildNTree(t *testing.T) *NTree[string] {
	tree := NewNTree[string]()
	require.Equal(t, 0, tree.Len())
	require.True(t, tree.Insert(nil, "root"))
	require.True(t, tree.Insert([]string{"root"}, "usr"))
	require.True(t, tree.Insert([]string{"root"}, "etc"))
	require.True(t, tree.Insert([]string{"root"}, "bin"))
	require.True(t, tree.Insert([]string{"root", "usr"}, "local"))
	require.True(t, tree.Insert([]string{"root", "usr"}, "lib"))
	require.True(t, tree.Insert([]string{"root", "usr", "local"}, "share"))
	return tree
}

func TestNTree_Insert(t *testing.T) {
	t.Parallel()

	tree := buildNTree(t)
	require.Equal(t, 7, tree.Len())

	// The root exists already, siblings are unique and parents must exist.
	require.False(t, tree.Insert(nil, "other"))
	require.False(t, tree.Insert([]string{"root"}, "usr"))
	require.False(t, tree.Insert([]string{"root", "opt"}, "x"))
	require.False(t, tree.Insert([]string{"nope"}, "x"))
	require.Equal(t, 7, tree.Len())

	// The same value may appear under different parents.
	require.True(t, tree.Insert([]string{"root", "etc"}, "lib"))

	root, ok := tree.Root()
	require.True(t, ok)
	require.Equal(t, "root", root)
}

func TestNTree_FindAndChildren(t *testing.T) {
	t.Parallel()

	tree := buildNTree(t)
	require.True(t, tree.Find([]string{"root", "usr", "local", "share"}))
	require.False(t, tree.Find([]string{"root", "usr", "share"}))
	require.False(t, tree.Find(nil))

	kids, ok := tree.Children([]string{"root"})
	require.True(t, ok)
	require.Equal(t, []string{"bin", "etc", "usr"}, kids)

	kids, ok = tree.Children([]string{"root", "bin"})
	require.True(t, ok)
	require.Empty(t, kids)

	_, ok = tree.Children([]string{"root", "var"})
	require.False(t, ok)
}

func TestNTree_ConcurrentChildren(t *testing.T) {
	t.Parallel()

	tree := buildNTree(t)
	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				kids, ok := tree.Children([]string{"root"})
				if !ok || len(kids) != 3 || kids[0] != "bin" || kids[2] != "usr" {
					t.Errorf("unexpected children %v", kids)
					return
				}
				if !tree.Find([]string{"root", "usr", "lib"}) {
					t.Errorf("lost root/usr/lib")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestNTree_Walk(t *testing.T) {
	t.Parallel()

	tree := buildNTree(t)
	var sb strings.Builder
	tree.Walk(func(v string, depth int) bool {
		sb.WriteString(strings.Repeat("  ", depth) + v + "\n")
		return false
	})
	require.Equal(t, "root\n  bin\n  etc\n  usr\n    lib\n    local\n      share\n", sb.String())

	var seen []string
	tree.Walk(func(v string, _ int) bool {
		seen = append(seen, v)
		return v == "etc"
	})
	require.Equal(t, []string{"root", "bin", "etc"}, seen)
}

func TestNTree_Remove(t *testing.T) {
	t.Parallel()

	tree := buildNTree(t)
	require.Equal(t, 2, tree.Remove([]string{"root", "usr", "local"}))
	require.Equal(t, 5, tree.Len())
	require.False(t, tree.Find([]string{"root", "usr", "local", "share"}))

	kids, _ := tree.Children([]string{"root", "usr"})
	require.Equal(t, []string{"lib"}, kids)

	require.Equal(t, 0, tree.Remove([]string{"root", "usr", "local"}))
	require.Equal(t, 2, tree.Remove([]string{"root", "usr"}))
	require.Equal(t, 3, tree.Remove([]string{"root"}))
	require.Equal(t, 0, tree.Len())
	_, ok := tree.Root()
	require.False(t, ok)

	require.True(t, tree.Insert(nil, "fresh"))
	tree.Clear()
	require.Equal(t, 0, tree.Len())
}

type caseless string

func TestNTree_CustomComparator(t *testing.T) {
	t.Parallel()

	tree := NewNTreeWith(Func(
		func(a, b caseless) bool { return strings.EqualFold(string(a), string(b)) },
		func(a, b caseless) bool { return strings.ToLower(string(a)) > strings.ToLower(string(b)) },
	))
	require.True(t, tree.Insert(nil, "Root"))
	require.True(t, tree.Insert([]caseless{"ROOT"}, "Docs"))
	require.False(t, tree.Insert([]caseless{"root"}, "docs"))
	require.True(t, tree.Find([]caseless{"root", "DOCS"}))
}
