package fsutil_test

import (
	"context"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdcurate/pkg/fsutil"
)

func TestWithLock_RunsFunction(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "README.md")

	ran := false
	err := fsutil.WithLock(context.Background(), path, func() error {
		ran = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, ran)
}

func TestWithLock_Serializes(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "README.md")

	var active, maxActive atomic.Int32
	var wg sync.WaitGroup

	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := fsutil.WithLock(context.Background(), path, func() error {
				n := active.Add(1)
				for {
					prev := maxActive.Load()
					if n <= prev || maxActive.CompareAndSwap(prev, n) {
						break
					}
				}
				time.Sleep(10 * time.Millisecond)
				active.Add(-1)
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxActive.Load())
}

func TestWithLock_ContextDone(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "README.md")

	holder := flock.New(path + fsutil.LockSuffix)
	require.NoError(t, holder.Lock())
	defer func() { _ = holder.Unlock() }()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := fsutil.WithLock(ctx, path, func() error {
		t.Fatal("function must not run without the lock")
		return nil
	})
	require.Error(t, err)
}
