// file:radix/pkg/x_store/watch.go
package x_store

import (
	"strings"

	"github.com/nats-io/nuid"
)

//---------------------
// Watch Events
//---------------------

type Op string

const (
	OpPut    Op = "put"
	OpDelete Op = "delete"
)

// Event describes a single store mutation.
type Event[T any] struct {
	Op    Op     `json:"op"`
	Key   string `json:"key"`
	Value *T     `json:"value,omitempty"`
}

// Watcher receives events for every Put and Delete whose key has the
// watcher's prefix; Fetch, DeleteWhere and Reset emit no events.
// Events are dropped when the channel is full.
type Watcher[T any] struct {
	ID     string
	Prefix string
	C      chan Event[T]
}

//---------------------
// Subscription
//---------------------

// Watch registers a watcher for keys with the given prefix. The empty
// prefix watches every key.
func (s *Store[T]) Watch(prefix string, buffer int) *Watcher[T] {
	if buffer <= 0 {
		buffer = 16
	}
	w := &Watcher[T]{
		ID:     nuid.Next(),
		Prefix: prefix,
		C:      make(chan Event[T], buffer),
	}

	s.mu.Lock()
	s.watchers[w.ID] = w
	s.mu.Unlock()

	s.log.Debug().Str("prefix", prefix).Str("user", w.ID).Msg("watch added")
	return w
}

// Unwatch removes a watcher and closes its channel.
func (s *Store[T]) Unwatch(id string) {
	s.mu.Lock()
	w, ok := s.watchers[id]
	if ok {
		delete(s.watchers, id)
	}
	s.mu.Unlock()

	if ok {
		close(w.C)
		s.log.Debug().Str("user", id).Msg("watch removed")
	}
}

// notify fans an event out to every watcher whose prefix matches.
func (s *Store[T]) notify(op Op, key string, value *T) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, w := range s.watchers {
		if !strings.HasPrefix(key, w.Prefix) {
			continue
		}
		select {
		case w.C <- Event[T]{Op: op, Key: key, Value: value}:
		default:
			s.log.Warn().Str("user", w.ID).Str("key", key).Msg("watch queue full, event dropped")
		}
	}
}
