package cache

import (
	"context"
	"encoding/json"
	"time"
)

// TaggedCache is a read-through cache whose entries carry invalidation tags.
// Entries are derived projections, never a source of truth: any cache-side
// failure falls back to the compute function.
type TaggedCache interface {
	// GetOrCompute returns the cached value for key if present and
	// unexpired, otherwise runs compute, stores the result under key with
	// the given tags and ttl, and returns it.
	GetOrCompute(ctx context.Context, key string, tags []string, ttl time.Duration, compute func(context.Context) ([]byte, error)) ([]byte, error)

	// Invalidate removes every entry carrying any of the given tags,
	// regardless of key.
	Invalidate(ctx context.Context, tags ...string) error
}

// GetOrComputeJSON adapts GetOrCompute to a typed compute function using
// JSON as the cache wire format.
func GetOrComputeJSON[T any](ctx context.Context, c TaggedCache, key string, tags []string, ttl time.Duration, compute func(context.Context) (T, error)) (T, error) {
	var zero T

	raw, err := c.GetOrCompute(ctx, key, tags, ttl, func(ctx context.Context) ([]byte, error) {
		value, err := compute(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(value)
	})
	if err != nil {
		return zero, err
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return zero, err
	}
	return value, nil
}
