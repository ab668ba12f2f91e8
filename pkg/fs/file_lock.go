package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const (
	fileLockTimeout    = 5 * time.Second
	fileLockRetryDelay = 50 * time.Millisecond
)

// FileLock acquires a file lock and returns an unlock function.
// The lock file is created next to filename with a .lock suffix and kept after unlock:
// removing it would let a waiter and a newcomer lock two different files.
func (f *realFS) FileLock(filename string) (func(), error) {
	lockPath := filename + ".lock"

	// Ensure parent directory exists before creating lock file
	if err := os.MkdirAll(filepath.Dir(lockPath), 0755); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileLock, err)
	}

	lock := flock.New(lockPath)
	ctx, cancel := context.WithTimeout(context.Background(), fileLockTimeout)
	defer cancel()

	locked, err := lock.TryLockContext(ctx, fileLockRetryDelay)
	if errors.Is(err, context.DeadlineExceeded) || (err == nil && !locked) {
		return nil, fmt.Errorf("%w: %s", ErrFileLockTimeout, lockPath)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileLock, err)
	}

	unlock := func() {
		_ = lock.Unlock()
	}

	return unlock, nil
}
