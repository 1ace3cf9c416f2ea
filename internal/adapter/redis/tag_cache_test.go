package redis

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dreamtraffic/internal/core/port"
)

type fakeStore struct {
	mu   sync.Mutex
	data map[string]string
	ttls map[string]time.Duration
	err  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (s *fakeStore) Get(_ context.Context, key string) *redis.StringCmd {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return redis.NewStringResult("", s.err)
	}
	v, ok := s.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (s *fakeStore) Set(_ context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return redis.NewStatusResult("", s.err)
	}
	s.data[key] = value.(string)
	s.ttls[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

func TestTagCache_RoundTrip(t *testing.T) {
	store := newFakeStore()
	cache := NewTagCache(store, time.Hour)
	ctx := context.Background()

	require.NoError(t, cache.PutInline(ctx, 42, "<VAST/>"))
	assert.Equal(t, "<VAST/>", store.data["vast:inline:42"])
	assert.Equal(t, time.Hour, store.ttls["vast:inline:42"])

	got, err := cache.GetInline(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "<VAST/>", got)
}

func TestTagCache_Miss(t *testing.T) {
	cache := NewTagCache(newFakeStore(), 0)

	_, err := cache.GetInline(context.Background(), 1)
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestTagCache_StoreError(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("connection refused")
	cache := NewTagCache(store, 0)

	assert.Error(t, cache.PutInline(context.Background(), 1, "x"))
	_, err := cache.GetInline(context.Background(), 1)
	require.Error(t, err)
	assert.False(t, errors.Is(err, port.ErrNotFound))
}
