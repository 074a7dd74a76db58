// Package watcher reports changes to the session document so workspaces can be autosaved.
package watcher

import (
	"context"
	"iter"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/easyws/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const changeBuffer = 16

// Watcher implements ports.Watcher using fsnotify.
//
// It watches the directory of the target file so that editors replacing the file
// by rename are noticed, and debounces bursts of events into one change.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	errorf    func(error)

	mu      sync.Mutex
	target  string
	closed  bool
	changes chan string
}

// NewWatcher creates a watcher that reports a change once events stop for window.
// Errors reported by the filesystem are passed to onError when it is not nil.
func NewWatcher(window time.Duration, onError func(error)) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create file watcher")
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		errorf:    onError,
		changes:   make(chan string, changeBuffer),
	}
	w.debouncer = NewDebouncer(window, w.emit)
	return w, nil
}

// Watch starts watching path. Events are processed until ctx is done or Close is called.
func (w *Watcher) Watch(ctx context.Context, path string) error {
	target, err := filepath.Abs(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve watched path"), "path", path)
	}

	w.mu.Lock()
	w.target = target
	w.mu.Unlock()

	if err := w.fsWatcher.Add(filepath.Dir(target)); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to watch directory"), "path", filepath.Dir(target))
	}

	go w.processEvents(ctx)
	return nil
}

// Changes yields the watched path after each burst of changes.
func (w *Watcher) Changes() iter.Seq[string] {
	return func(yield func(string) bool) {
		for path := range w.changes {
			if !yield(path) {
				return
			}
		}
	}
}

// Close stops the watcher and ends the Changes sequence.
func (w *Watcher) Close() error {
	w.debouncer.Stop()
	w.finish()
	return w.fsWatcher.Close()
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer w.finish()

	for {
		select {
		case <-ctx.Done():
			w.debouncer.Stop()
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if w.relevant(event) {
				w.debouncer.Add(event.Name)
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			if w.errorf != nil {
				w.errorf(zerr.Wrap(err, "file watcher error"))
			}
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	return filepath.Clean(event.Name) == w.target
}

// emit forwards debounced paths. A full buffer already holds a pending change,
// so extra notifications are dropped.
func (w *Watcher) emit(paths []string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	for _, p := range paths {
		select {
		case w.changes <- p:
		default:
		}
	}
}

func (w *Watcher) finish() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.closed {
		w.closed = true
		close(w.changes)
	}
}
