package sessionstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/larriantoniy/ig_user_client/internal/ports"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisStore(rdb, "ig:session:", ttl), mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store, mr := newTestRedisStore(t, time.Hour)
	ctx := context.Background()

	_, err := store.Load(ctx, "alice")
	require.ErrorIs(t, err, ports.ErrSessionNotFound)

	cookies := []string{"sessionid=abc", "csrftoken=xyz"}
	require.NoError(t, store.Save(ctx, "alice", cookies))

	raw, err := mr.Get("ig:session:alice")
	require.NoError(t, err)
	assert.JSONEq(t, `["sessionid=abc","csrftoken=xyz"]`, raw)
	assert.Equal(t, time.Hour, mr.TTL("ig:session:alice"))

	got, err := store.Load(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, cookies, got)

	require.NoError(t, store.Delete(ctx, "alice"))
	assert.False(t, mr.Exists("ig:session:alice"))
	_, err = store.Load(ctx, "alice")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestRedisStoreExpiry(t *testing.T) {
	store, mr := newTestRedisStore(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "alice", []string{"sessionid=abc"}))
	mr.FastForward(2 * time.Minute)

	_, err := store.Load(ctx, "alice")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestRedisStoreNoTTL(t *testing.T) {
	store, mr := newTestRedisStore(t, 0)
	require.NoError(t, store.Save(context.Background(), "alice", []string{"sessionid=abc"}))
	assert.Zero(t, mr.TTL("ig:session:alice"))
}

func TestRedisStoreEmptySaveDeletes(t *testing.T) {
	store, mr := newTestRedisStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "alice", []string{"sessionid=abc"}))
	require.NoError(t, store.Save(ctx, "alice", nil))
	assert.False(t, mr.Exists("ig:session:alice"))

	require.NoError(t, mr.Set("ig:session:bob", "[]"))
	_, err := store.Load(ctx, "bob")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestRedisStoreErrors(t *testing.T) {
	store, mr := newTestRedisStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, mr.Set("ig:session:alice", "not json"))
	_, err := store.Load(ctx, "alice")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ports.ErrSessionNotFound)

	mr.SetError("ERR test failure")
	err = store.Save(ctx, "alice", []string{"a=b"})
	assert.ErrorContains(t, err, "redis set alice")
	_, err = store.Load(ctx, "alice")
	assert.ErrorContains(t, err, "redis get alice")
}
