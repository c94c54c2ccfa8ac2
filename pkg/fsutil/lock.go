package fsutil

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/flock"
)

// LockSuffix is appended to a list's path to name its lock file.
const LockSuffix = ".lock"

const lockRetryDelay = 50 * time.Millisecond

// WithLock runs fn while holding an exclusive advisory lock on path+".lock".
// It waits for the lock until ctx is done.
func WithLock(ctx context.Context, path string, fn func() error) error {
	lock := flock.New(path + LockSuffix)

	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("lock %s: %w", path, err)
	}
	if !locked {
		return fmt.Errorf("lock %s: not acquired", path)
	}
	defer func() { _ = lock.Unlock() }()

	return fn()
}
