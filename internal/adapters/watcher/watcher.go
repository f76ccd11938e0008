package watcher

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/zerr"
	"go.verdant.dev/verdant/internal/core/ports"
)

var _ ports.Watcher = (*Watcher)(nil)

// DefaultWindow is the debounce window for coalescing change bursts. A
// dataset sync typically rewrites many files at once.
const DefaultWindow = 500 * time.Millisecond

const batchChannelBuffer = 16

// Watcher implements dataset directory watching using fsnotify.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	window    time.Duration
	log       ports.Logger
}

// NewWatcher creates a watcher with the default debounce window.
func NewWatcher(log ports.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create file system watcher")
	}
	return &Watcher{fsWatcher: fsWatcher, window: DefaultWindow, log: log}, nil
}

// Watch emits debounced batches of changed paths under the given
// directories until ctx is cancelled. Nonexistent directories are
// skipped; subdirectories created later are picked up automatically.
func (w *Watcher) Watch(ctx context.Context, dirs []string) (<-chan []string, error) {
	watched := 0
	for _, dir := range dirs {
		for sub := range subdirectories(dir) {
			if err := w.fsWatcher.Add(sub); err != nil {
				return nil, zerr.With(zerr.Wrap(err, "failed to watch directory"), "dir", sub)
			}
			watched++
		}
	}
	if watched == 0 {
		return nil, zerr.New("no existing directories to watch")
	}

	batches := make(chan []string, batchChannelBuffer)
	done := make(chan struct{})

	// A debounce timer can outlive event processing, so the send must be
	// guarded against the channel closing underneath it.
	var mu sync.Mutex
	closed := false
	debouncer := NewDebouncer(w.window, func(paths []string) {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		select {
		case batches <- paths:
		case <-done:
		}
	})

	go func() {
		w.processEvents(ctx, debouncer)
		close(done)
		debouncer.Flush()
		mu.Lock()
		closed = true
		mu.Unlock()
		close(batches)
	}()

	return batches, nil
}

// Close releases the underlying file system watches.
func (w *Watcher) Close() error {
	return w.fsWatcher.Close()
}

func (w *Watcher) processEvents(ctx context.Context, debouncer *Debouncer) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op == fsnotify.Chmod {
				continue
			}

			debouncer.Add(event.Name)

			// New directories need their own watches.
			if event.Op&fsnotify.Create == fsnotify.Create {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					for sub := range subdirectories(event.Name) {
						_ = w.fsWatcher.Add(sub)
					}
				}
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			if w.log != nil {
				w.log.Error(zerr.Wrap(err, "file system watcher error"))
			}
		}
	}
}

// subdirectories yields root and every directory below it. Unreadable
// entries are skipped.
func subdirectories(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // Skip unreadable directories and keep walking
			}
			if d.IsDir() {
				if !yield(path) {
					return filepath.SkipAll
				}
			}
			return nil
		})
	}
}
