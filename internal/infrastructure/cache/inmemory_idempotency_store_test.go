package cache

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newStoreWithClock(t *testing.T) (*InMemoryIdempotencyStore, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)}
	store := NewInMemoryIdempotencyStore()
	store.now = clock.Now
	t.Cleanup(func() { _ = store.Close() })
	return store, clock
}

func TestInMemoryIdempotencyStore_ClaimAndExpire(t *testing.T) {
	store, clock := newStoreWithClock(t)
	ctx := context.Background()

	ok, err := store.MarkProcessed(ctx, "POST:/api/v1/deposits:k1", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.MarkProcessed(ctx, "POST:/api/v1/deposits:k1", time.Hour)
	require.NoError(t, err)
	assert.False(t, ok, "replayed key must be rejected")

	seen, err := store.IsProcessed(ctx, "POST:/api/v1/deposits:k1")
	require.NoError(t, err)
	assert.True(t, seen)

	clock.Advance(time.Hour)

	seen, err = store.IsProcessed(ctx, "POST:/api/v1/deposits:k1")
	require.NoError(t, err)
	assert.False(t, seen)

	ok, err = store.MarkProcessed(ctx, "POST:/api/v1/deposits:k1", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok, "expired key can be claimed again")
}

func TestInMemoryIdempotencyStore_Release(t *testing.T) {
	store, _ := newStoreWithClock(t)
	ctx := context.Background()

	ok, _ := store.MarkProcessed(ctx, "k", time.Hour)
	require.True(t, ok)
	require.NoError(t, store.Release(ctx, "k"))
	require.NoError(t, store.Release(ctx, "never-claimed"))

	ok, err := store.MarkProcessed(ctx, "k", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestInMemoryIdempotencyStore_Cleanup(t *testing.T) {
	store, clock := newStoreWithClock(t)
	ctx := context.Background()

	_, _ = store.MarkProcessed(ctx, "short", time.Minute)
	_, _ = store.MarkProcessed(ctx, "long", time.Hour)
	require.Equal(t, 2, store.Size())

	clock.Advance(2 * time.Minute)
	store.cleanup()
	assert.Equal(t, 1, store.Size())
}

func TestInMemoryIdempotencyStore_ConcurrentClaims(t *testing.T) {
	store, _ := newStoreWithClock(t)
	ctx := context.Background()

	var winners atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := store.MarkProcessed(ctx, "same", time.Hour); ok {
				winners.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), winners.Load())

	for i := 0; i < 10; i++ {
		ok, _ := store.MarkProcessed(ctx, fmt.Sprintf("k-%d", i), time.Hour)
		assert.True(t, ok)
	}
}

func TestInMemoryIdempotencyStore_CloseTwice(t *testing.T) {
	store := NewInMemoryIdempotencyStore()
	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close())
}
