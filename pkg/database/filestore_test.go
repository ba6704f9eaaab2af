package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airline-reservation/pkg/utils"
)

func newTestStore(t *testing.T) Store {
	t.Helper()
	store, err := InitStore(utils.StoreConfig{DataDir: t.TempDir()})
	require.NoError(t, err)
	return store
}

func TestInitStoreCreatesSubdirectories(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	store, err := InitStore(utils.StoreConfig{DataDir: dir})
	require.NoError(t, err)

	require.NoError(t, store.Append(filepath.Join("seatmaps", "FL10001.txt"), "1,0,"))
	require.NoError(t, store.Append(filepath.Join("waitinglists", "FL10001.txt"), "juan,Juan Dela Cruz"))
	assert.True(t, store.Exists(filepath.Join("seatmaps", "FL10001.txt")))
}

func TestLoadMissingFileReadsEmpty(t *testing.T) {
	store := newTestStore(t)

	data, err := store.Load("flights.txt")
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestAppendAndLoad(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Append("flights.txt", "line one"))
	require.NoError(t, store.Append("flights.txt", "line two"))

	data, err := store.Load("flights.txt")
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two\n", data)
}

func TestOverwriteReplacesContent(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Append("users.txt", "old"))
	require.NoError(t, store.Overwrite("users.txt", "new\n"))

	data, err := store.Load("users.txt")
	require.NoError(t, err)
	assert.Equal(t, "new\n", data)
}

func TestOverwriteEmptyDeletesFile(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Append("users.txt", "record"))
	require.NoError(t, store.Overwrite("users.txt", ""))
	assert.False(t, store.Exists("users.txt"))
}

func TestDeleteMissingFileSucceeds(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Delete("nope.txt"))
}
