//go:build unit

package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"lessonhub/internal/infra/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheGetOrCompute(t *testing.T) {
	ctx := context.Background()

	t.Run("computes once and serves the stored value", func(t *testing.T) {
		c := cache.NewMemoryCache()
		calls := 0
		compute := func(context.Context) ([]byte, error) {
			calls++
			return []byte("value"), nil
		}

		for range 3 {
			value, err := c.GetOrCompute(ctx, "key", []string{"tag"}, time.Minute, compute)
			require.NoError(t, err)
			assert.Equal(t, []byte("value"), value)
		}

		assert.Equal(t, 1, calls)
	})

	t.Run("compute failure is returned and nothing is stored", func(t *testing.T) {
		c := cache.NewMemoryCache()
		boom := errors.New("boom")

		_, err := c.GetOrCompute(ctx, "key", nil, time.Minute, func(context.Context) ([]byte, error) {
			return nil, boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Zero(t, c.Len())
	})

	t.Run("expired entries are recomputed", func(t *testing.T) {
		c := cache.NewMemoryCache()
		calls := 0
		compute := func(context.Context) ([]byte, error) {
			calls++
			return []byte("v"), nil
		}

		_, err := c.GetOrCompute(ctx, "key", nil, time.Nanosecond, compute)
		require.NoError(t, err)

		time.Sleep(time.Millisecond)

		_, err = c.GetOrCompute(ctx, "key", nil, time.Minute, compute)
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})
}

func TestMemoryCacheInvalidate(t *testing.T) {
	ctx := context.Background()

	store := func(c *cache.MemoryCache, key string, tags ...string) {
		_, err := c.GetOrCompute(ctx, key, tags, time.Minute, func(context.Context) ([]byte, error) {
			return []byte(key), nil
		})
		require.NoError(t, err)
	}

	t.Run("removes every entry with a matching tag", func(t *testing.T) {
		c := cache.NewMemoryCache()
		store(c, "a", "lessons:instructor:1")
		store(c, "b", "lessons:instructor:1", "lessons:student:2")
		store(c, "c", "instructors")

		require.NoError(t, c.Invalidate(ctx, "lessons:instructor:1"))

		assert.Equal(t, 1, c.Len(), "only the untagged-by-lessons entry survives")
	})

	t.Run("unknown tags are a no-op", func(t *testing.T) {
		c := cache.NewMemoryCache()
		store(c, "a", "instructors")

		require.NoError(t, c.Invalidate(ctx, "lessons:instructor:9"))
		assert.Equal(t, 1, c.Len())
	})
}
