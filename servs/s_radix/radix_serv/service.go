package radix_serv

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/rskv-p/radix/pkg/x_log"
	"github.com/rskv-p/radix/pkg/x_store"
	"github.com/rskv-p/radix/pkg/x_tree"
)

// Service owns the radix-indexed store and exposes it to the API layer.
// Values are kept as raw JSON so clients decide their own schemas.
type Service struct {
	name  string
	store *x_store.Store[json.RawMessage]
	log   zerolog.Logger
}

// New creates a service around an empty store.
func New(name string) *Service {
	return &Service{
		name:  name,
		store: x_store.New[json.RawMessage](),
		log:   x_log.New("serv"),
	}
}

// Name returns the configured service name.
func (s *Service) Name() string { return s.name }

//---------------------
// Store Operations
//---------------------

// Put stores value under key. Returns false when the key already
// exists; the stored value is never replaced.
func (s *Service) Put(key string, value json.RawMessage) bool {
	return s.store.Put(key, value)
}

// Get returns the value stored under key.
func (s *Service) Get(key string) (json.RawMessage, bool) {
	return s.store.Get(key)
}

// Delete removes the entry for key.
func (s *Service) Delete(key string) bool {
	return s.store.Delete(key)
}

// Prefix returns every entry whose key has the given prefix.
func (s *Service) Prefix(key string) []x_tree.Pair[json.RawMessage] {
	return s.store.Prefix(key)
}

// Greedy returns the subtree reached by following key as far as the
// index allows.
func (s *Service) Greedy(key string) []x_tree.Pair[json.RawMessage] {
	return s.store.Greedy(key)
}

// Longest returns the entry whose key is the longest stored prefix of
// the query.
func (s *Service) Longest(key string) (x_tree.Pair[json.RawMessage], bool) {
	return s.store.Longest(key)
}

// List returns every stored entry in key order.
func (s *Service) List() []x_tree.Pair[json.RawMessage] {
	var out []x_tree.Pair[json.RawMessage]
	s.store.Each(func(key string, value json.RawMessage) bool {
		out = append(out, x_tree.Pair[json.RawMessage]{Key: key, Value: value})
		return true
	})
	return out
}

// Len returns the number of stored entries.
func (s *Service) Len() int { return s.store.Len() }

// Dump renders the index shape for diagnostics.
func (s *Service) Dump() string { return s.store.Dump() }

//---------------------
// Watch
//---------------------

// Watch registers a watcher for keys with the given prefix.
func (s *Service) Watch(prefix string, buffer int) *x_store.Watcher[json.RawMessage] {
	return s.store.Watch(prefix, buffer)
}

// Unwatch removes a watcher.
func (s *Service) Unwatch(id string) {
	s.store.Unwatch(id)
}
