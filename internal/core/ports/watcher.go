package ports

import (
	"context"
	"iter"
)

// Watcher reports changes to a single file.
//
//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Watch starts watching path until ctx is done.
	Watch(ctx context.Context, path string) error

	// Changes yields the path once a burst of writes to the watched file settles.
	// The sequence ends when the watcher stops.
	Changes() iter.Seq[string]

	// Close stops the watcher and releases its resources.
	Close() error
}
