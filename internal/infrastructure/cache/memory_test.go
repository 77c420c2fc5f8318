package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_GetSet(t *testing.T) {
	t.Run("returns what was stored", func(t *testing.T) {
		c := NewMemoryCache()
		defer c.Close()
		ctx := context.Background()

		c.Set(ctx, "scenario:abc", []byte(`{"totalIncome":"50000"}`), time.Minute)

		value, ok := c.Get(ctx, "scenario:abc")
		require.True(t, ok)
		assert.Equal(t, []byte(`{"totalIncome":"50000"}`), value)
	})

	t.Run("misses unknown keys", func(t *testing.T) {
		c := NewMemoryCache()
		defer c.Close()

		value, ok := c.Get(context.Background(), "scenario:missing")
		assert.False(t, ok)
		assert.Nil(t, value)
	})

	t.Run("expired entries miss", func(t *testing.T) {
		c := NewMemoryCache()
		defer c.Close()
		ctx := context.Background()

		c.Set(ctx, "scenario:abc", []byte("x"), time.Nanosecond)
		time.Sleep(5 * time.Millisecond)

		_, ok := c.Get(ctx, "scenario:abc")
		assert.False(t, ok)
	})

	t.Run("non-positive TTL stores nothing", func(t *testing.T) {
		c := NewMemoryCache()
		defer c.Close()
		ctx := context.Background()

		c.Set(ctx, "scenario:abc", []byte("x"), 0)

		_, ok := c.Get(ctx, "scenario:abc")
		assert.False(t, ok)
	})
}

func TestMemoryCache_DeleteByPrefix(t *testing.T) {
	t.Run("removes only matching keys", func(t *testing.T) {
		c := NewMemoryCache()
		defer c.Close()
		ctx := context.Background()

		c.Set(ctx, "scenario:client-1", []byte("a"), time.Minute)
		c.Set(ctx, "scenario:client-1:2024", []byte("b"), time.Minute)
		c.Set(ctx, "scenario:client-2", []byte("c"), time.Minute)

		c.DeleteByPrefix(ctx, "scenario:client-1")

		_, ok := c.Get(ctx, "scenario:client-1")
		assert.False(t, ok)
		_, ok = c.Get(ctx, "scenario:client-1:2024")
		assert.False(t, ok)
		_, ok = c.Get(ctx, "scenario:client-2")
		assert.True(t, ok)
	})
}
