// Package store implements the workspace store on top of the local filesystem.
package store

import (
	"encoding/json"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/easyws/internal/adapters/fs"
	"go.trai.ch/easyws/internal/core/domain"
	"go.trai.ch/easyws/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.WorkspaceStore = (*Store)(nil)
	_ ports.SessionState   = (*Store)(nil)
)

// Store implements ports.WorkspaceStore using one JSON document per workspace.
type Store struct {
	root string
	ext  string
}

// NewStore creates a store rooted at root whose records use the file extension ext.
func NewStore(root, ext string) *Store {
	if ext == "" {
		ext = domain.DefaultExtension
	}
	return &Store{
		root: filepath.Clean(root),
		ext:  ext,
	}
}

// Path returns the file a record for identity is stored in.
func (s *Store) Path(identity string) (string, error) {
	rel, err := EncodePath(identity, s.ext)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.root, filepath.FromSlash(rel)), nil
}

// Save writes ws under identity, replacing any previous record.
func (s *Store) Save(identity string, ws *domain.Workspace) error {
	filename, err := s.Path(identity)
	if err != nil {
		return err
	}

	record := domain.NewEmptyWorkspace(identity)
	if ws != nil {
		record = ws.Clone()
		record.Identity = identity
	}

	data, err := domain.EncodeDocument(record)
	if err != nil {
		return errors.Join(domain.ErrStoreIOFailure,
			zerr.With(zerr.Wrap(err, "failed to encode workspace record"), "identity", identity))
	}

	if err := fs.WriteFileAtomic(filename, data, domain.FilePerm); err != nil {
		return errors.Join(domain.ErrStoreIOFailure,
			zerr.With(zerr.Wrap(err, "failed to write workspace record"), "identity", identity))
	}
	return nil
}

// Load reads the record stored under identity.
func (s *Store) Load(identity string) (*domain.Workspace, error) {
	filename, err := s.Path(identity)
	if err != nil {
		return nil, err
	}

	//nolint:gosec // Path is derived from the encoded identity below the store root
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, notFound(identity)
		}
		return nil, errors.Join(domain.ErrStoreIOFailure,
			zerr.With(zerr.Wrap(err, "failed to read workspace record"), "path", filename))
	}

	var ws domain.Workspace
	if err := json.Unmarshal(data, &ws); err != nil {
		return nil, errors.Join(domain.ErrStoreIOFailure,
			zerr.With(zerr.Wrap(err, "failed to decode workspace record"), "path", filename))
	}
	ws.Identity = identity

	return &ws, nil
}

// Exists reports whether a record is stored under identity.
func (s *Store) Exists(identity string) (bool, error) {
	filename, err := s.Path(identity)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(filename)
	switch {
	case err == nil:
		return info.Mode().IsRegular(), nil
	case errors.Is(err, iofs.ErrNotExist):
		return false, nil
	default:
		return false, errors.Join(domain.ErrStoreIOFailure,
			zerr.With(zerr.Wrap(err, "failed to stat workspace record"), "path", filename))
	}
}

// Delete removes the record stored under identity and prunes directories it leaves empty.
func (s *Store) Delete(identity string) error {
	filename, err := s.Path(identity)
	if err != nil {
		return err
	}

	if err := os.Remove(filename); err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return notFound(identity)
		}
		return errors.Join(domain.ErrStoreIOFailure,
			zerr.With(zerr.Wrap(err, "failed to remove workspace record"), "path", filename))
	}

	// The record is gone at this point; leftover empty directories are harmless.
	_ = fs.RemoveEmptyParents(s.root, filename)
	return nil
}

// List returns the identities of all stored records in lexical order.
// Hidden entries and files that are not canonical record names are skipped.
func (s *Store) List() ([]string, error) {
	var identities []string

	err := filepath.WalkDir(s.root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			if path == s.root && errors.Is(err, iofs.ErrNotExist) {
				return iofs.SkipAll
			}
			return err
		}
		if path == s.root {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return iofs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		identity, err := DecodePath(filepath.ToSlash(rel), s.ext)
		if err != nil {
			return nil //nolint:nilerr // foreign files are not workspaces
		}
		identities = append(identities, identity)
		return nil
	})
	if err != nil {
		return nil, errors.Join(domain.ErrStoreIOFailure,
			zerr.With(zerr.Wrap(err, "failed to list workspace records"), "root", s.root))
	}

	slices.Sort(identities)
	return identities, nil
}

func notFound(identity string) error {
	return zerr.With(zerr.Wrap(domain.ErrWorkspaceNotFound, "no workspace saved under this identity"), "identity", identity)
}
