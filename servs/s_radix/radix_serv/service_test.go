package radix_serv

import (
	"encoding/json"
	"testing"

	"github.com/rskv-p/radix/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceStoreOps(t *testing.T) {
	s := New("test")

	assert.True(t, s.Put("user.alice", json.RawMessage(`{"role":"admin"}`)))
	assert.False(t, s.Put("user.alice", json.RawMessage(`{}`)), "no replacement")
	assert.True(t, s.Put("user.bob", json.RawMessage(`{}`)))

	v, ok := s.Get("user.alice")
	require.True(t, ok)
	assert.JSONEq(t, `{"role":"admin"}`, string(v))

	assert.Len(t, s.Prefix("user."), 2)
	assert.Equal(t, 2, s.Len())

	pair, ok := s.Longest("user.alice.settings")
	require.True(t, ok)
	assert.Equal(t, "user.alice", pair.Key)

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "user.alice", list[0].Key, "list is key ordered")

	assert.True(t, s.Delete("user.alice"))
	assert.Equal(t, 1, s.Len())
}

func TestUserLookup(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)

	cfg := &config.Config{Users: []config.User{
		{Username: "admin", PasswordHash: hash, Role: "admin"},
	}}

	u, err := FindUser(cfg, "admin")
	require.NoError(t, err)
	assert.True(t, CheckPassword(u, "hunter2"))
	assert.False(t, CheckPassword(u, "wrong"))

	_, err = FindUser(cfg, "nobody")
	assert.ErrorIs(t, err, ErrUnknownUser)
}

func TestServiceWatch(t *testing.T) {
	s := New("test")

	w := s.Watch("user.", 4)
	defer s.Unwatch(w.ID)

	s.Put("user.alice", json.RawMessage(`1`))
	s.Put("other", json.RawMessage(`2`))

	ev := <-w.C
	assert.Equal(t, "user.alice", ev.Key)

	select {
	case ev := <-w.C:
		t.Fatalf("unexpected event for %q", ev.Key)
	default:
	}
}
