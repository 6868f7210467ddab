package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockFile(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), ".lock")

	unlock, err := LockFile(lockPath)
	require.NoError(t, err)

	other := flock.New(lockPath)
	defer other.Close()
	locked, err := other.TryLock()
	require.NoError(t, err)
	assert.False(t, locked, "lock must be exclusive while held")

	unlock()
	_, err = os.Stat(lockPath)
	assert.True(t, os.IsNotExist(err))
}

func TestLockFileMissingDirectory(t *testing.T) {
	_, err := LockFile(filepath.Join(t.TempDir(), "missing", ".lock"))
	assert.Error(t, err)
}
