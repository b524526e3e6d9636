// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ordered

import (
	"fmt"
	"io"
	"strings"
)

func (t *tree[T]) dfsPrintUtil(w io.Writer, r ref, depth int, side string, colored bool) {
	n := &t.nodes[r]
	stPadding := strings.Repeat(" ", depth*4)
	fmt.Fprintf(w, "%s%s%v", stPadding, side, n.value)
	if n.count > 1 {
		fmt.Fprintf(w, " x%d", n.count)
	}
	if colored {
		fmt.Fprintf(w, " (%s)", n.color)
	}
	fmt.Fprintln(w)
	if n.left != nilRef {
		t.dfsPrintUtil(w, n.left, depth+1, "L: ", colored)
	}
	if n.right != nilRef {
		t.dfsPrintUtil(w, n.right, depth+1, "R: ", colored)
	}
}

func (t *tree[T]) dfsPrint(w io.Writer, colored bool) {
	if t.root == nilRef {
		fmt.Fprintln(w, "<empty>")
		return
	}
	t.dfsPrintUtil(w, t.root, 0, "", colored)
}

func (t *tree[T]) dump(colored bool) string {
	var sb strings.Builder
	t.dfsPrint(&sb, colored)
	return sb.String()
}
