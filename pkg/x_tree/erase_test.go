package x_tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEraseMissing(t *testing.T) {
	tr := New[int]()
	assert.False(t, tr.Erase("a"), "erase on empty tree")

	tr.Insert("bro", 1)
	assert.False(t, tr.Erase("brother"))
	assert.False(t, tr.Erase("br"))
	assert.False(t, tr.Erase(""))
	assert.Equal(t, 1, tr.Size())
	checkInvariants(t, tr)
}

func TestErasePrefixPair(t *testing.T) {
	tr := New[int]()
	tr.Insert("bro", 1)
	tr.Insert("brother", 2)

	keys := func() map[string]int {
		out := map[string]int{}
		for _, it := range tr.PrefixMatch("bro") {
			out[it.Key()] = *it.Value()
		}
		return out
	}
	assert.Equal(t, map[string]int{"bro": 1, "brother": 2}, keys())

	assert.True(t, tr.Erase("bro"))
	assert.Equal(t, map[string]int{"brother": 2}, keys())
	assert.Equal(t, 1, tr.Size())
	checkInvariants(t, tr)
}

func TestEraseAll(t *testing.T) {
	tr := New[int]()
	for i, key := range shuffled(uniqueKeys()) {
		tr.Insert(key, i)
	}
	require.Equal(t, 14, tr.Size())

	for i, key := range shuffled(uniqueKeys()) {
		assert.True(t, tr.Erase(key), "erase %q", key)
		assert.Equal(t, 13-i, tr.Size())
		assert.Equal(t, tr.End(), tr.Find(key))
		checkInvariants(t, tr)
	}
	assert.True(t, tr.Empty())
	assert.Equal(t, tr.End(), tr.Begin())
}

func TestEraseMergesChains(t *testing.T) {
	tr := New[int]()
	tr.Insert("abcdef", 1)
	tr.Insert("abcdege", 2)

	// dropping one branch folds the split back into a single edge
	assert.True(t, tr.Erase("abcdege"))
	checkInvariants(t, tr)

	it := tr.Find("abcdef")
	require.NotEqual(t, tr.End(), it)
	assert.Equal(t, 1, *it.Value())
	assert.Equal(t, 1, tr.Size())
}

func TestEraseThenReinsert(t *testing.T) {
	tr := New[int]()
	tr.Insert("key", 1)

	assert.True(t, tr.Erase("key"))
	it, ok := tr.Insert("key", 2)
	assert.True(t, ok, "re-insert after erase must succeed")
	assert.Equal(t, 2, *it.Value())
	assert.Equal(t, 1, tr.Size())
	checkInvariants(t, tr)
}

func TestEraseIt(t *testing.T) {
	tr := New[int]()
	tr.Insert("alpha", 1)
	tr.Insert("beta", 2)

	it := tr.Find("alpha")
	require.NotEqual(t, tr.End(), it)
	tr.EraseIt(it)

	assert.Equal(t, tr.End(), tr.Find("alpha"))
	assert.Equal(t, 1, tr.Size())
	checkInvariants(t, tr)
}

func TestRemoveIf(t *testing.T) {
	tr := New[int]()
	for i, key := range shuffled(uniqueKeys()) {
		tr.Insert(key, i)
	}

	tr.RemoveIf(func(key string) bool { return len(key) == 2 })

	var got []string
	tr.Each(func(key string, _ *int) bool {
		got = append(got, key)
		return true
	})
	assert.Equal(t, []string{"a", "aaa", "aab", "aba", "abb", "b", "baa", "bab", "bba", "bbb"}, got)
	assert.Equal(t, 10, tr.Size())
	checkInvariants(t, tr)

	tr.RemoveIf(func(string) bool { return true })
	assert.True(t, tr.Empty())
}
