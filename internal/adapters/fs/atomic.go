// Package fs provides filesystem helpers shared by the adapters.
package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/easyws/internal/core/domain"
	"go.trai.ch/zerr"
)

// WriteFileAtomic writes data to path through a temporary file in the same directory,
// so readers see either the previous content or the new content, never a partial write.
// Missing parent directories are created.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create parent directory"), "dir", dir)
	}

	tmp, err := os.CreateTemp(dir, domain.TempFilePattern)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create temp file"), "dir", dir)
	}
	tmpPath := tmp.Name()

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return zerr.Wrap(err, "failed to write temp file")
	}
	if err = tmp.Sync(); err != nil {
		return zerr.Wrap(err, "failed to sync temp file")
	}
	if err = tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to close temp file")
	}
	if err = os.Chmod(tmpPath, perm); err != nil {
		return zerr.Wrap(err, "failed to set permissions")
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to replace file"), "path", path)
	}
	return nil
}

// RemoveEmptyParents removes the directories between path and root (exclusive) that became
// empty, walking upwards and stopping at the first directory that still has entries.
func RemoveEmptyParents(root, path string) error {
	root = filepath.Clean(root)
	for dir := filepath.Dir(path); dir != root && isBelow(root, dir); dir = filepath.Dir(dir) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return zerr.With(zerr.Wrap(err, "failed to read directory"), "dir", dir)
		}
		if len(entries) > 0 {
			return nil
		}
		if err := os.Remove(dir); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return zerr.With(zerr.Wrap(err, "failed to remove directory"), "dir", dir)
		}
	}
	return nil
}

func isBelow(root, dir string) bool {
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
