// file:radix/pkg/x_tree/match.go
package x_tree

//---------------------
// Match Primitives
//---------------------

// PrefixMatch returns iterators at every entry whose key has the given
// prefix, in label order. The empty prefix matches every entry.
func (t *Tree[T]) PrefixMatch(key string) []Iterator[T] {
	if t.root == nil {
		return nil
	}

	n := t.findNode(key, t.root, 0)
	if n.leaf {
		n = n.parent
	}

	rest := len(key) - n.depth
	if substr(key, n.depth, rest) != substr(n.label, 0, rest) {
		// the search fell off the edge, nothing shares this prefix
		return nil
	}

	var out []Iterator[T]
	t.subtreeMatch(n, &out)
	return out
}

// GreedyMatch returns iterators at every entry in the subtree reached
// by following key as far as the tree allows. Unlike PrefixMatch it
// does not verify that key agrees with the edge it landed on.
func (t *Tree[T]) GreedyMatch(key string) []Iterator[T] {
	if t.root == nil {
		return nil
	}

	n := t.findNode(key, t.root, 0)
	if n.leaf {
		n = n.parent
	}

	var out []Iterator[T]
	t.subtreeMatch(n, &out)
	return out
}

// subtreeMatch collects every leaf below n in child order.
func (t *Tree[T]) subtreeMatch(n *node[T], out *[]Iterator[T]) {
	if n.leaf {
		*out = append(*out, Iterator[T]{n})
		return
	}
	for _, c := range n.children {
		t.subtreeMatch(c, out)
	}
}

// LongestMatch returns an iterator at the stored key that is the
// longest prefix of key, or End when no stored key is a prefix of it.
// The empty query never matches, not even a stored empty key; the
// empty key is still reported as the fallback for diverging queries.
func (t *Tree[T]) LongestMatch(key string) Iterator[T] {
	if t.root == nil || len(key) == 0 {
		return Iterator[T]{}
	}

	n := t.findNode(key, t.root, 0)
	if n.leaf {
		return Iterator[T]{n}
	}

	if substr(key, n.depth, len(n.label)) != n.label {
		// landed on a branching point whose edge diverges from key
		n = n.parent
	}

	for n != nil {
		if c := n.findChild(""); c != nil && c.leaf {
			return Iterator[T]{c}
		}
		n = n.parent
	}
	return Iterator[T]{}
}
