package ports

import (
	"context"

	"go.trai.ch/easyws/internal/core/domain"
)

// RepoInspector answers which repository and branch a directory belongs to.
//
//go:generate go run go.uber.org/mock/mockgen -source=repo.go -destination=mocks/mock_repo.go -package=mocks
type RepoInspector interface {
	// Inspect returns the repository context of dir.
	//
	// It fails with domain.ErrNotARepository when dir is outside any repository and with
	// domain.ErrNoBranch when no branch is checked out. Both also match domain.ErrNoRepoContext.
	Inspect(ctx context.Context, dir string) (domain.RepoContext, error)
}
