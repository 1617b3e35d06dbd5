package x_tree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uniqueKeys is the standard fixture set used across the suite.
func uniqueKeys() []string {
	return []string{
		"a", "b", "ab", "ba", "aa", "bb", "aaa",
		"aab", "aba", "baa", "bba", "bab", "abb", "bbb",
	}
}

func shuffled(keys []string) []string {
	out := append([]string(nil), keys...)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// checkInvariants walks the node graph and verifies the structural
// contract: leaves carry empty labels and reconstructable keys,
// internal edges are non-empty and first-symbol unique, single-child
// chains are merged, depths are consistent and size counts leaves.
func checkInvariants(t *testing.T, tr *Tree[int]) {
	t.Helper()
	if tr.root == nil {
		assert.Equal(t, 0, tr.size)
		return
	}
	leaves := 0
	var walk func(n *node[int], path string)
	walk = func(n *node[int], path string) {
		if n.leaf {
			leaves++
			assert.Empty(t, n.label, "leaf label must be empty")
			require.NotNil(t, n.entry)
			assert.Equal(t, path, n.entry.Key, "path must reconstruct the key")
		} else if n.parent != nil {
			assert.NotEmpty(t, n.label, "internal edge label must not be empty")
		}
		if n.parent != nil {
			assert.Equal(t, n.parent.depth+len(n.parent.label), n.depth)
		}
		if n.parent != nil && !n.leaf && len(n.children) == 1 {
			assert.True(t, n.children[0].leaf,
				"single-child internal node %q must have been merged", n.label)
		}
		seen := map[byte]int{}
		leafChildren := 0
		for _, c := range n.children {
			assert.Same(t, n, c.parent)
			if c.leaf {
				leafChildren++
			} else {
				seen[c.label[0]]++
			}
			walk(c, path+c.label)
		}
		assert.LessOrEqual(t, leafChildren, 1, "at most one empty-label child")
		for sym, cnt := range seen {
			assert.Equal(t, 1, cnt, "first symbol %q not unique", sym)
		}
	}
	walk(tr.root, "")
	assert.Equal(t, leaves, tr.size, "size must equal leaf count")
}

func TestInsertAndFind(t *testing.T) {
	tr := New[int]()

	for i, key := range shuffled(uniqueKeys()) {
		it, ok := tr.Insert(key, i)
		assert.True(t, ok, "insert %q", key)
		assert.Equal(t, key, it.Key())
	}
	assert.Equal(t, 14, tr.Size())
	checkInvariants(t, tr)

	for _, key := range uniqueKeys() {
		it := tr.Find(key)
		require.NotEqual(t, tr.End(), it, "find %q", key)
		assert.Equal(t, key, it.Key())
	}
	assert.Equal(t, tr.End(), tr.Find("abcd"))
	assert.Equal(t, tr.End(), tr.Find(""))
}

func TestInsertDuplicateKeepsValue(t *testing.T) {
	tr := New[int]()

	it, ok := tr.Insert("bro", 1)
	assert.True(t, ok)
	assert.Equal(t, 1, *it.Value())

	it2, ok := tr.Insert("bro", 99)
	assert.False(t, ok)
	assert.Equal(t, it, it2)
	assert.Equal(t, 1, *it2.Value(), "duplicate insert must not replace")
	assert.Equal(t, 1, tr.Size())
	checkInvariants(t, tr)
}

func TestInsertSplitsEdges(t *testing.T) {
	tr := New[int]()

	tr.Insert("abcdef", 1)
	tr.Insert("abcdege", 2)
	tr.Insert("bcdef", 3)
	tr.Insert("cd", 4)
	tr.Insert("ce", 5)
	tr.Insert("c", 6)

	assert.Equal(t, 6, tr.Size())
	checkInvariants(t, tr)

	for key, want := range map[string]int{
		"abcdef": 1, "abcdege": 2, "bcdef": 3, "cd": 4, "ce": 5, "c": 6,
	} {
		it := tr.Find(key)
		require.NotEqual(t, tr.End(), it, "find %q", key)
		assert.Equal(t, want, *it.Value())
	}
}

func TestInsertEmptyKey(t *testing.T) {
	tr := New[int]()

	it, ok := tr.Insert("", 7)
	assert.True(t, ok)
	assert.Equal(t, "", it.Key())
	assert.Equal(t, 1, tr.Size())

	for i, key := range shuffled(uniqueKeys()) {
		tr.Insert(key, i)
	}
	assert.Equal(t, 15, tr.Size())
	checkInvariants(t, tr)

	assert.NotEqual(t, tr.End(), tr.Find(""))
	assert.True(t, tr.Erase(""))
	assert.Equal(t, tr.End(), tr.Find(""))
	for _, key := range uniqueKeys() {
		assert.NotEqual(t, tr.End(), tr.Find(key), "find %q after erasing empty key", key)
	}
	checkInvariants(t, tr)
}

func TestSubscript(t *testing.T) {
	tr := New[int]()
	tr.Insert("bro", 1)
	tr.Insert("brother", 2)

	v := tr.Subscript("bros")
	assert.Equal(t, 0, *v, "absent key defaults to zero value")
	assert.Equal(t, 3, tr.Size())
	assert.NotEqual(t, tr.End(), tr.Find("bros"))

	*v = 42
	assert.Equal(t, 42, *tr.Subscript("bros"))
	assert.Equal(t, 3, tr.Size())

	assert.Equal(t, 1, *tr.Subscript("bro"), "existing value untouched")
	checkInvariants(t, tr)
}

func TestClear(t *testing.T) {
	tr := New[int]()
	for i, key := range uniqueKeys() {
		tr.Insert(key, i)
	}
	assert.False(t, tr.Empty())

	tr.Clear()
	assert.True(t, tr.Empty())
	assert.Equal(t, 0, tr.Size())
	assert.Equal(t, tr.End(), tr.Begin())
	assert.Equal(t, tr.End(), tr.Find("a"))

	// tree is usable again after clear
	_, ok := tr.Insert("a", 1)
	assert.True(t, ok)
	assert.Equal(t, 1, tr.Size())
	checkInvariants(t, tr)
}

func TestCustomOrdering(t *testing.T) {
	// reverse lexicographic ordering flips iteration order
	tr := NewWithLess[int](func(a, b string) bool { return a > b })
	for i, key := range []string{"a", "b", "c"} {
		tr.Insert(key, i)
	}

	var got []string
	tr.Each(func(key string, _ *int) bool {
		got = append(got, key)
		return true
	})
	assert.Equal(t, []string{"c", "b", "a"}, got)
}
