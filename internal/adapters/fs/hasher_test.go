package fs_test

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/i18nhtml/internal/adapters/fs"
)

func TestHasher_ComputeFileHash(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "index.tmpl")
	require.NoError(t, os.WriteFile(path, []byte("Hello"), 0o600))

	h := fs.NewHasher()
	got, err := h.ComputeFileHash(path)
	require.NoError(t, err)
	assert.Equal(t, xxhash.Sum64String("Hello"), got)
}

func TestHasher_Fingerprint(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "index.en.html")
	require.NoError(t, os.WriteFile(path, []byte("Hello"), 0o600))

	h := fs.NewHasher()
	fp, err := h.Fingerprint(path)
	require.NoError(t, err)
	assert.Equal(t, path, fp.Path)
	assert.Equal(t, int64(5), fp.Size)
	assert.Len(t, fp.Hash, 16)

	t.Run("stable for unchanged file", func(t *testing.T) {
		again, err := h.Fingerprint(path)
		require.NoError(t, err)
		assert.True(t, fp.Matches(again))
	})

	t.Run("content change with same size and mtime", func(t *testing.T) {
		info, err := os.Stat(path)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, []byte("Hallo"), 0o600))
		require.NoError(t, os.Chtimes(path, info.ModTime(), info.ModTime()))

		changed, err := h.Fingerprint(path)
		require.NoError(t, err)
		assert.Equal(t, fp.Size, changed.Size)
		assert.Equal(t, fp.ModTime, changed.ModTime)
		assert.False(t, fp.Matches(changed))
	})

	t.Run("touch without content change", func(t *testing.T) {
		before, err := h.Fingerprint(path)
		require.NoError(t, err)
		later := time.Unix(0, before.ModTime).Add(time.Hour)
		require.NoError(t, os.Chtimes(path, later, later))

		after, err := h.Fingerprint(path)
		require.NoError(t, err)
		assert.Equal(t, before.Hash, after.Hash)
		assert.False(t, before.Matches(after))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := h.Fingerprint(filepath.Join(tmpDir, "missing.html"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, iofs.ErrNotExist))
	})

	t.Run("directory", func(t *testing.T) {
		_, err := h.Fingerprint(tmpDir)
		require.Error(t, err)
	})
}
