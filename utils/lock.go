package utils

import (
	"log/slog"
	"os"
	"time"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
)

const (
	LOCK_FORCE_RETRIES = 30
	LOCK_MAX_RETRIES   = 50
	LOCK_RETRY_DELAY   = 1 * time.Millisecond
)

// LockFile takes an exclusive lock on lockPath, retrying briefly. A lock
// that stays held past LOCK_FORCE_RETRIES is assumed stale and removed.
// The returned func releases the lock and deletes the lock file.
func LockFile(lockPath string) (unlock func(), err error) {
	fileLock := flock.New(lockPath)

	retries := 0
	for {
		locked, err := fileLock.TryLock()
		if err != nil {
			return nil, errors.Wrap(err, "could not try locking")
		}
		if locked {
			break
		}
		retries += 1
		if retries > LOCK_FORCE_RETRIES {
			// try to force the lock to be removed
			if err := os.Remove(lockPath); err != nil {
				slog.Debug("failed to force delete lock", "error", err, "path", lockPath)
			}
		}
		if retries > LOCK_MAX_RETRIES {
			return nil, errors.New("could not obtain lock")
		}
		// if we didn't obtain the lock let's try again after a short delay
		time.Sleep(LOCK_RETRY_DELAY)
	}

	return func() {
		if err := fileLock.Unlock(); err != nil {
			slog.Error("could not unlock", "error", err, "path", lockPath)
		}
		if err := os.Remove(lockPath); err != nil && !os.IsNotExist(err) {
			slog.Error("could not remove lock file", "error", err, "path", lockPath)
		}
	}, nil
}
