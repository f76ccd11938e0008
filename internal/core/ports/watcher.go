package ports

import "context"

// Watcher defines the interface for observing dataset directories so the
// caches can be refreshed when files change. The dataset layer never
// watches by itself; a watcher is wired in explicitly where wanted.
type Watcher interface {
	// Watch emits debounced batches of changed paths under the given
	// directories until ctx is cancelled.
	Watch(ctx context.Context, dirs []string) (<-chan []string, error)

	// Close releases the underlying file system watches.
	Close() error
}
