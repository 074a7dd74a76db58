package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/easyws/internal/adapters/fs"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	t.Run("creates parents and writes content", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "a", "b", "file.json")

		require.NoError(t, fs.WriteFileAtomic(path, []byte("hello"), 0o600))

		data, err := os.ReadFile(path) //nolint:gosec // test path
		require.NoError(t, err)
		assert.Equal(t, "hello", string(data))
	})

	t.Run("replaces content and leaves no temp files", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := filepath.Join(dir, "file.json")

		require.NoError(t, fs.WriteFileAtomic(path, []byte("first"), 0o600))
		require.NoError(t, fs.WriteFileAtomic(path, []byte("second"), 0o600))

		data, err := os.ReadFile(path) //nolint:gosec // test path
		require.NoError(t, err)
		assert.Equal(t, "second", string(data))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "file.json", entries[0].Name())
	})

	t.Run("fails when parent is a file", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		blocker := filepath.Join(dir, "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

		err := fs.WriteFileAtomic(filepath.Join(blocker, "file.json"), []byte("x"), 0o600)
		require.Error(t, err)
	})
}

func TestRemoveEmptyParents(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	deep := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(deep, 0o750))
	keep := filepath.Join(root, "a", "keep.txt")
	require.NoError(t, os.WriteFile(keep, []byte("x"), 0o600))

	require.NoError(t, fs.RemoveEmptyParents(root, filepath.Join(deep, "gone.ws")))

	_, err := os.Stat(filepath.Join(root, "a", "b"))
	assert.True(t, os.IsNotExist(err), "empty directories should be pruned")

	_, err = os.Stat(keep)
	require.NoError(t, err, "non-empty directories must stay")

	_, err = os.Stat(root)
	require.NoError(t, err, "root must never be removed")
}
