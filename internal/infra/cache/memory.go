package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value  []byte
	expiry time.Time
	tags   []string
}

// MemoryCache is a process-local TaggedCache with the same semantics as the
// redis implementation. Used in tests.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]memoryEntry)}
}

func (c *MemoryCache) GetOrCompute(ctx context.Context, key string, tags []string, ttl time.Duration, compute func(context.Context) ([]byte, error)) ([]byte, error) {
	c.mu.Lock()
	entry, ok := c.entries[key]
	c.mu.Unlock()

	if ok && entry.expiry.After(time.Now()) {
		return entry.value, nil
	}

	value, err := compute(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = memoryEntry{
		value:  value,
		expiry: time.Now().Add(ttl),
		tags:   tags,
	}
	c.mu.Unlock()

	return value, nil
}

func (c *MemoryCache) Invalidate(_ context.Context, tags ...string) error {
	tagSet := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tagSet[tag] = struct{}{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for key, entry := range c.entries {
		for _, tag := range entry.tags {
			if _, hit := tagSet[tag]; hit {
				delete(c.entries, key)
				break
			}
		}
	}
	return nil
}

// Len reports the number of live entries; test helper.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
