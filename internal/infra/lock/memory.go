package lock

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryLocker is a process-local Locker with the same acquire/expire
// semantics as the redis implementation. Used in tests and single-node runs.
type MemoryLocker struct {
	mu    sync.Mutex
	holds map[string]memoryHold
}

type memoryHold struct {
	token  string
	expiry time.Time
}

func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{holds: make(map[string]memoryHold)}
}

func (l *MemoryLocker) Acquire(ctx context.Context, key string, ttl, wait time.Duration) (func(context.Context), error) {
	token := uuid.NewString()
	deadline := time.Now().Add(wait)

	for {
		if l.tryAcquire(key, token, ttl) {
			return func(context.Context) { l.release(key, token) }, nil
		}

		if time.Now().After(deadline) {
			return nil, ErrNotAcquired
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(pollInterval):
		}
	}
}

func (l *MemoryLocker) tryAcquire(key, token string, ttl time.Duration) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if hold, held := l.holds[key]; held && hold.expiry.After(now) {
		return false
	}
	l.holds[key] = memoryHold{token: token, expiry: now.Add(ttl)}
	return true
}

// release only frees the key while this holder's token is still current,
// matching the redis compare-token release.
func (l *MemoryLocker) release(key, token string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if hold, held := l.holds[key]; held && hold.token == token {
		delete(l.holds, key)
	}
}
