// file:radix/pkg/x_tree/tree.go
package x_tree

import "strings"

//---------------------
// Tree
//---------------------

// Tree is an in-memory radix (compressed trie) map from string keys to
// values of type T. Keys are stored uncompressed at leaf nodes; internal
// edges carry whole key fragments. A Tree is single-owner: it is not
// safe for concurrent use, callers add their own locking.
type Tree[T any] struct {
	root *node[T]
	size int
	less func(a, b string) bool
}

// New creates a tree ordered lexicographically by edge label.
func New[T any]() *Tree[T] {
	return NewWithLess[T](func(a, b string) bool { return a < b })
}

// NewWithLess creates a tree with a custom label ordering predicate.
// The predicate only has to be consistent; it fixes iteration order.
func NewWithLess[T any](less func(a, b string) bool) *Tree[T] {
	return &Tree[T]{less: less}
}

// Size returns the number of stored entries.
func (t *Tree[T]) Size() int { return t.size }

// Empty reports whether the tree holds no entries.
func (t *Tree[T]) Empty() bool { return t.size == 0 }

// Clear drops every entry and releases the whole tree.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.size = 0
}

//---------------------
// Lookup
//---------------------

// Find returns an iterator at the entry for key, or End when absent.
func (t *Tree[T]) Find(key string) Iterator[T] {
	if t.root == nil {
		return Iterator[T]{}
	}
	n := t.findNode(key, t.root, 0)
	if !n.leaf {
		return Iterator[T]{}
	}
	return Iterator[T]{n}
}

// findNode descends from n, known to match key[:depth], to the deepest
// node whose edge chain is a prefix of key, or to the branching point
// where the descent stops.
func (t *Tree[T]) findNode(key string, n *node[T], depth int) *node[T] {
	if len(n.children) == 0 {
		return n
	}
	remaining := len(key) - depth
	for _, c := range n.children {
		if remaining == 0 {
			if c.leaf {
				return c
			}
			continue
		}
		if !c.leaf && key[depth] == c.label[0] {
			ln := len(c.label)
			if substr(key, depth, ln) == c.label {
				return t.findNode(key, c, depth+ln)
			}
			return c
		}
	}
	return n
}

//---------------------
// Insert
//---------------------

// Insert stores value under key. When the key is already present the
// existing entry is kept untouched and the second result is false.
func (t *Tree[T]) Insert(key string, value T) (Iterator[T], bool) {
	if t.root == nil {
		t.root = newInternal[T]("", 0, nil)
	}

	n := t.findNode(key, t.root, 0)

	if n.leaf {
		return Iterator[T]{n}, false
	}
	t.size++
	if n == t.root {
		return Iterator[T]{t.append(t.root, key, value)}, true
	}
	if substr(key, n.depth, len(n.label)) == n.label {
		return Iterator[T]{t.append(n, key, value)}, true
	}
	return Iterator[T]{t.prepend(n, key, value)}, true
}

// append hangs a new entry below parent, whose edge chain is already a
// full prefix of key.
func (t *Tree[T]) append(parent *node[T], key string, value T) *node[T] {
	depth := parent.depth + len(parent.label)
	rest := len(key) - depth

	if rest == 0 {
		// key ends exactly here, the leaf goes straight under parent
		lf := newLeaf(key, value, depth, parent)
		parent.addChild(t.less, lf)
		return lf
	}

	c := newInternal(substr(key, depth, rest), depth, parent)
	lf := newLeaf(key, value, depth+rest, c)
	c.addChild(t.less, lf)
	parent.addChild(t.less, c)
	return lf
}

// prepend splits n's edge at the end of the common prefix with key and
// hangs the new entry off the split point. The caller guarantees a
// strict, non-empty shared prefix.
func (t *Tree[T]) prepend(n *node[T], key string, value T) *node[T] {
	len1 := len(n.label)
	len2 := len(key) - n.depth
	cp := commonPrefixLen(n.label, key, n.depth)

	parent := n.parent
	parent.removeChild(n.label)

	a := newInternal(substr(n.label, 0, cp), n.depth, parent)
	parent.addChild(t.less, a)

	n.depth += cp
	n.parent = a
	n.label = substr(n.label, cp, len1-cp)
	a.addChild(t.less, n)

	if cp == len2 {
		// new key ends exactly at the split node
		lf := newLeaf(key, value, a.depth+cp, a)
		a.addChild(t.less, lf)
		return lf
	}

	b := newInternal(substr(key, a.depth+cp, len2-cp), a.depth+cp, a)
	lf := newLeaf(key, value, len(key), b)
	b.addChild(t.less, lf)
	a.addChild(t.less, b)
	return lf
}

//---------------------
// Erase
//---------------------

// Erase removes the entry for key, reporting whether one was removed.
// Chains of single-child internal nodes left behind are merged, except
// that a node whose sole surviving child is a leaf keeps its shape.
func (t *Tree[T]) Erase(key string) bool {
	if t.root == nil {
		return false
	}

	child := t.findNode(key, t.root, 0)
	if !child.leaf {
		return false
	}

	parent := child.parent
	parent.removeChild("")
	t.size--

	if parent == t.root {
		return true
	}
	if len(parent.children) > 1 {
		return true
	}

	var g *node[T]
	if len(parent.children) == 0 {
		g = parent.parent
		g.removeChild(parent.label)
	} else {
		g = parent
	}

	if g == t.root {
		return true
	}

	if len(g.children) == 1 {
		u := g.children[0]
		if u.leaf {
			return true
		}
		// fold g into its single internal child
		g.removeChild(u.label)
		u.depth = g.depth
		u.label = g.label + u.label
		u.parent = g.parent
		g.parent.removeChild(g.label)
		g.parent.addChild(t.less, u)
	}

	return true
}

// EraseIt removes the entry the iterator points at. Calling it with the
// End iterator is undefined.
func (t *Tree[T]) EraseIt(it Iterator[T]) {
	t.Erase(it.n.entry.Key)
}

// RemoveIf erases every entry whose key satisfies pred. The next
// iterator is taken before each erase so the sweep survives mutation.
func (t *Tree[T]) RemoveIf(pred func(key string) bool) {
	for it := t.Begin(); it != t.End(); {
		next := it.Next()
		if key := it.n.entry.Key; pred(key) {
			t.Erase(key)
		}
		it = next
	}
}

//---------------------
// Subscript
//---------------------

// Subscript returns a pointer to the value stored under key, inserting
// the zero value first when the key is absent.
func (t *Tree[T]) Subscript(key string) *T {
	it := t.Find(key)
	if it == t.End() {
		var zero T
		it, _ = t.Insert(key, zero)
	}
	return &it.n.entry.Value
}

//---------------------
// Iteration entry points
//---------------------

// Begin returns an iterator at the first entry in label order.
func (t *Tree[T]) Begin() Iterator[T] {
	if t.root == nil || t.size == 0 {
		return Iterator[T]{}
	}
	return Iterator[T]{descend(t.root)}
}

// End returns the past-the-end iterator.
func (t *Tree[T]) End() Iterator[T] { return Iterator[T]{} }

// Each calls cb for every entry in label order until cb returns false.
func (t *Tree[T]) Each(cb func(key string, value *T) bool) {
	for it := t.Begin(); it != t.End(); it = it.Next() {
		e := it.n.entry
		if !cb(e.Key, &e.Value) {
			return
		}
	}
}

//---------------------
// Dump (Debug)
//---------------------

// String renders the tree shape for debugging.
func (t *Tree[T]) String() string {
	var b strings.Builder
	t.dump(&b, t.root, 0)
	return b.String()
}
