// file:radix/pkg/x_store/store.go
package x_store

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/rskv-p/radix/pkg/x_log"
	"github.com/rskv-p/radix/pkg/x_tree"
)

// StoreError represents a custom error type for the store.
type StoreError struct {
	Code    int
	Message string
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("Store Error %d: %s", e.Code, e.Message)
}

// Store is a goroutine-safe key/value store indexed by a radix tree.
// It guards a single-owner tree with a lock and fans mutation events
// out to watchers.
type Store[T any] struct {
	mu       sync.RWMutex
	tree     *x_tree.Tree[T]
	watchers map[string]*Watcher[T]
	log      zerolog.Logger
}

// New creates an empty store.
func New[T any]() *Store[T] {
	return &Store[T]{
		tree:     x_tree.New[T](),
		watchers: make(map[string]*Watcher[T]),
		log:      x_log.New("store"),
	}
}

//---------------------
// Mutations
//---------------------

// Put stores value under key. A duplicate key leaves the stored value
// untouched and returns false.
func (s *Store[T]) Put(key string, value T) bool {
	s.mu.Lock()
	_, inserted := s.tree.Insert(key, value)
	s.mu.Unlock()

	if inserted {
		s.log.Debug().Str("key", key).Msg("store put")
		s.notify(OpPut, key, &value)
	}
	return inserted
}

// Delete removes the entry for key, reporting whether one existed.
func (s *Store[T]) Delete(key string) bool {
	s.mu.Lock()
	deleted := s.tree.Erase(key)
	s.mu.Unlock()

	if deleted {
		s.log.Debug().Str("key", key).Msg("store delete")
		s.notify(OpDelete, key, nil)
	}
	return deleted
}

// Fetch returns the value under key, inserting the zero value first
// when the key is absent.
func (s *Store[T]) Fetch(key string) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.tree.Subscript(key)
}

// DeleteWhere removes every entry whose key satisfies pred and returns
// the number of removed entries.
func (s *Store[T]) DeleteWhere(pred func(key string) bool) int {
	s.mu.Lock()
	before := s.tree.Size()
	s.tree.RemoveIf(pred)
	removed := before - s.tree.Size()
	s.mu.Unlock()

	if removed > 0 {
		s.log.Debug().Int("size", removed).Msg("store delete sweep")
	}
	return removed
}

// Reset drops every entry.
func (s *Store[T]) Reset() {
	s.mu.Lock()
	s.tree.Clear()
	s.mu.Unlock()
	s.log.Debug().Msg("store reset")
}

//---------------------
// Lookups
//---------------------

// Get returns the value stored under key.
func (s *Store[T]) Get(key string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it := s.tree.Find(key)
	if !it.Valid() {
		var zero T
		return zero, false
	}
	return *it.Value(), true
}

// Prefix returns every entry whose key has the given prefix.
func (s *Store[T]) Prefix(key string) []x_tree.Pair[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return collect(s.tree.PrefixMatch(key))
}

// Greedy returns every entry in the subtree reached by following key
// as far as the tree allows.
func (s *Store[T]) Greedy(key string) []x_tree.Pair[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return collect(s.tree.GreedyMatch(key))
}

// Longest returns the entry whose key is the longest stored prefix of
// the query.
func (s *Store[T]) Longest(key string) (x_tree.Pair[T], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it := s.tree.LongestMatch(key)
	if !it.Valid() {
		return x_tree.Pair[T]{}, false
	}
	return *it.Item(), true
}

// Each calls cb for every entry in key order until cb returns false.
func (s *Store[T]) Each(cb func(key string, value T) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	s.tree.Each(func(key string, value *T) bool {
		return cb(key, *value)
	})
}

// Len returns the number of stored entries.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Size()
}

// Dump renders the underlying tree shape for diagnostics.
func (s *Store[T]) Dump() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var b strings.Builder
	s.tree.Dump(&b)
	return b.String()
}

func collect[T any](its []x_tree.Iterator[T]) []x_tree.Pair[T] {
	if len(its) == 0 {
		return nil
	}
	out := make([]x_tree.Pair[T], 0, len(its))
	for _, it := range its {
		out = append(out, *it.Item())
	}
	return out
}
