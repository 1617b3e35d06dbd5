// file:radix/pkg/x_tree/dump.go
package x_tree

import (
	"fmt"
	"io"
	"strings"
)

//---------------------
// Tree Dump (Debug)
//---------------------

// Dump writes a visual tree representation to writer.
func (t *Tree[T]) Dump(w io.Writer) {
	t.dump(w, t.root, 0)
	fmt.Fprintln(w)
}

// dump writes a single node (recursive).
func (t *Tree[T]) dump(w io.Writer, n *node[T], depth int) {
	if n == nil {
		fmt.Fprintln(w, "EMPTY")
		return
	}
	if n.leaf {
		fmt.Fprintf(w, "%s LEAF: Key: %q Value: %+v\n", dumpPre(depth), n.entry.Key, n.entry.Value)
		return
	}

	kind := "NODE"
	if n.parent == nil {
		kind = "ROOT"
	}
	fmt.Fprintf(w, "%s %s: Label: %q Depth: %d\n", dumpPre(depth), kind, n.label, n.depth)
	depth++
	for _, c := range n.children {
		t.dump(w, c, depth)
	}
}

//---------------------
// Indentation Helper
//---------------------

func dumpPre(depth int) string {
	if depth == 0 {
		return "-- "
	}
	var b strings.Builder
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
	b.WriteString("|__ ")
	return b.String()
}
