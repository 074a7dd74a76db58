package ports

import (
	"context"

	"go.trai.ch/easyws/internal/core/domain"
)

// SessionAdapter is the boundary to the host editor's live session.
//
// Implementations belong to the editor integration. The core only captures the session
// into a record and applies a record back onto it.
//
//go:generate go run go.uber.org/mock/mockgen -source=session.go -destination=mocks/mock_session.go -package=mocks
type SessionAdapter interface {
	// Capture returns the open folders, files and layout of the active session.
	// Returns domain.ErrNoActiveSession if there is no active session.
	Capture(ctx context.Context) (*domain.Workspace, error)

	// Apply replaces the open folders, files and layout of the active session with those of ws.
	// A nil or empty ws presents an empty session.
	Apply(ctx context.Context, ws *domain.Workspace) error
}
