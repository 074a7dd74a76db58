// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/easyws/internal/core/domain"

// WorkspaceStore persists workspace records keyed by identity.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type WorkspaceStore interface {
	// Save writes ws under identity, replacing any existing record as a whole.
	// Either the full record is persisted or the previous state is left untouched.
	Save(identity string, ws *domain.Workspace) error

	// Load reads the record stored under identity.
	// Returns domain.ErrWorkspaceNotFound if there is none.
	Load(identity string) (*domain.Workspace, error)

	// Exists reports whether a record is stored under identity.
	Exists(identity string) (bool, error)

	// Delete removes the record stored under identity.
	// Returns domain.ErrWorkspaceNotFound if there is none.
	Delete(identity string) error

	// List returns the identities of all stored records in lexical order.
	List() ([]string, error)
}

// SessionState remembers which workspace the session is associated with.
type SessionState interface {
	// Current returns the identity last opened or saved, or "" if there is none.
	Current() (string, error)

	// SetCurrent records identity as the current workspace.
	SetCurrent(identity string) error

	// ClearCurrent forgets the current workspace.
	ClearCurrent() error
}
