package store

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/easyws/internal/adapters/fs"
	"go.trai.ch/easyws/internal/core/domain"
	"go.trai.ch/zerr"
)

// Current returns the identity recorded by SetCurrent, or "" if none is recorded.
func (s *Store) Current() (string, error) {
	//nolint:gosec // Fixed file name below the store root
	data, err := os.ReadFile(s.currentPath())
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return "", nil
		}
		return "", errors.Join(domain.ErrStoreIOFailure, zerr.Wrap(err, "failed to read current workspace"))
	}
	return strings.TrimSpace(string(data)), nil
}

// SetCurrent records identity as the workspace the session is associated with.
func (s *Store) SetCurrent(identity string) error {
	if err := domain.ValidateIdentity(identity); err != nil {
		return err
	}
	if err := fs.WriteFileAtomic(s.currentPath(), []byte(identity+"\n"), domain.PrivateFilePerm); err != nil {
		return errors.Join(domain.ErrStoreIOFailure, zerr.Wrap(err, "failed to record current workspace"))
	}
	return nil
}

// ClearCurrent forgets the current workspace.
func (s *Store) ClearCurrent() error {
	if err := os.Remove(s.currentPath()); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return errors.Join(domain.ErrStoreIOFailure, zerr.Wrap(err, "failed to clear current workspace"))
	}
	return nil
}

func (s *Store) currentPath() string {
	return filepath.Join(s.root, domain.CurrentFileName)
}
