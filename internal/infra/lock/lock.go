package lock

import (
	"context"
	"errors"
	"time"
)

// ErrNotAcquired means another holder kept the lock for the whole wait
// window. Callers surface this as a retryable contention error, never as a
// silent queue.
var ErrNotAcquired = errors.New("lock not acquired within wait window")

// Locker serializes conflicting writers on a shared key. Acquire blocks up
// to wait, the lock auto-expires after ttl if the holder dies, and the
// returned release function is safe to call on every path.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl, wait time.Duration) (func(context.Context), error)
}
