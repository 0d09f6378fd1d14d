package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// lockFileName is created inside the index directory while Create runs.
const lockFileName = ".indexwiz.lock"

// creationLock is a cross-process lock on an index directory, so two
// runs of `indexwiz new` on the same path cannot interleave.
type creationLock struct {
	flock  *flock.Flock
	locked bool
}

func newCreationLock(dir string) *creationLock {
	return &creationLock{flock: flock.New(filepath.Join(dir, lockFileName))}
}

// TryLock creates dir if needed and takes the lock without blocking.
// It reports false when another process holds it.
func (l *creationLock) TryLock() (bool, error) {
	if err := os.MkdirAll(filepath.Dir(l.flock.Path()), 0o755); err != nil {
		return false, fmt.Errorf("failed to create index directory: %w", err)
	}

	acquired, err := l.flock.TryLock()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lock: %w", err)
	}
	l.locked = acquired
	return acquired, nil
}

// Unlock releases the lock and removes the lock file, so a finished index
// directory holds only bleve's files. Safe to call when not locked.
func (l *creationLock) Unlock() error {
	if !l.locked {
		return nil
	}
	l.locked = false
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if err := os.Remove(l.flock.Path()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove lock file: %w", err)
	}
	return nil
}
