package params

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempParams(t *testing.T) {
	t.Helper()
	old := ParamsPath
	ParamsPath = t.TempDir()
	t.Cleanup(func() { ParamsPath = old })
}

func TestPutGetParam(t *testing.T) {
	useTempParams(t)

	path := ParamPath("Example")
	require.NoError(t, PutParam(path, []byte("one")))
	require.NoError(t, PutParam(path, []byte("two")))

	data, err := GetParam(path)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))

	entries, err := os.ReadDir(ParamsPath)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
	assert.Equal(t, "Example", entries[0].Name())

	_, err = os.Stat(filepath.Join(ParamsPath, ".lock"))
	assert.True(t, os.IsNotExist(err))
}

func TestRemoveParam(t *testing.T) {
	useTempParams(t)

	path := ParamPath("Example")
	require.NoError(t, PutParam(path, []byte("one")))
	require.NoError(t, RemoveParam(path))
	require.NoError(t, RemoveParam(path))

	exists, err := Exists(path)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGetParamMissing(t *testing.T) {
	useTempParams(t)
	_, err := GetParam(ACC_SETTINGS())
	assert.Error(t, err)
}

func TestEnsureParamDirectories(t *testing.T) {
	useTempParams(t)
	ParamsPath = filepath.Join(ParamsPath, "nested", "params")
	EnsureParamDirectories()

	exists, err := Exists(ParamsPath)
	require.NoError(t, err)
	assert.True(t, exists)
}
