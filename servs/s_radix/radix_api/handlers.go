package radix_api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rskv-p/radix/codec"
	"github.com/rskv-p/radix/pkg/x_tree"
	"github.com/rskv-p/radix/servs/s_radix/radix_serv"
)

// keyParam extracts the key from the catch-all route segment, so keys
// may contain any byte except the path separator rules of the client.
func keyParam(r *http.Request) string {
	return chi.URLParam(r, "*")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func toEntries(pairs []x_tree.Pair[json.RawMessage]) []codec.Entry {
	out := make([]codec.Entry, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, codec.Entry{Key: p.Key, Value: p.Value})
	}
	return out
}

// handleList returns every stored entry.
func handleList(s *radix_serv.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, codec.NewMatchResponse(toEntries(s.List())))
	}
}

// handleGet reads a single entry.
func handleGet(s *radix_serv.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := keyParam(r)
		value, ok := s.Get(key)
		if !ok {
			writeJSON(w, 404, codec.NewErrorResponse(404, radix_serv.ErrKeyNotFound))
			return
		}
		writeJSON(w, 200, codec.NewEntryResponse(key, value))
	}
}

// handlePut inserts a new entry. An existing key is not replaced and
// answers 409.
func handlePut(s *radix_serv.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := keyParam(r)
		body, err := io.ReadAll(r.Body)
		if err != nil || !json.Valid(body) {
			writeJSON(w, 400, codec.NewErrorResponse(400, radix_serv.ErrInvalidValue))
			return
		}
		if !s.Put(key, body) {
			writeJSON(w, 409, codec.NewErrorResponse(409, radix_serv.ErrKeyExists))
			return
		}
		writeJSON(w, 201, codec.NewEntryResponse(key, body))
	}
}

// handleDelete removes an entry.
func handleDelete(s *radix_serv.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := keyParam(r)
		if !s.Delete(key) {
			writeJSON(w, 404, codec.NewErrorResponse(404, radix_serv.ErrKeyNotFound))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// handlePrefix returns every entry whose key has the given prefix.
func handlePrefix(s *radix_serv.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, codec.NewMatchResponse(toEntries(s.Prefix(keyParam(r)))))
	}
}

// handleGreedy returns the subtree reached by following the key.
func handleGreedy(s *radix_serv.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, codec.NewMatchResponse(toEntries(s.Greedy(keyParam(r)))))
	}
}

// handleLongest returns the entry with the longest stored prefix of
// the query.
func handleLongest(s *radix_serv.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pair, ok := s.Longest(keyParam(r))
		if !ok {
			writeJSON(w, 404, codec.NewErrorResponse(404, radix_serv.ErrKeyNotFound))
			return
		}
		writeJSON(w, 200, codec.NewEntryResponse(pair.Key, pair.Value))
	}
}

// handleStats reports size and the index shape.
func handleStats(s *radix_serv.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, map[string]any{
			"service": s.Name(),
			"size":    s.Len(),
			"tree":    s.Dump(),
		})
	}
}
