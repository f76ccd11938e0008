package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// newTestWatcher shortens the debounce window so the fsnotify round trip
// stays fast under real time.
func newTestWatcher(t *testing.T) *Watcher {
	t.Helper()
	w, err := NewWatcher(nil)
	require.NoError(t, err)
	w.window = 50 * time.Millisecond
	return w
}

func TestWatch_EmitsBatchForChangedFile(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t)
	t.Cleanup(func() { _ = w.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	batches, err := w.Watch(ctx, []string{dir})
	require.NoError(t, err)

	path := filepath.Join(dir, "ec_guidelines.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	select {
	case paths := <-batches:
		require.Contains(t, paths, path)
	case <-time.After(5 * time.Second):
		t.Fatal("no batch received")
	}
}

func TestWatch_NoExistingDirectories(t *testing.T) {
	w := newTestWatcher(t)
	t.Cleanup(func() { _ = w.Close() })

	_, err := w.Watch(context.Background(), []string{filepath.Join(t.TempDir(), "missing")})
	require.Error(t, err)
}

// Cancelling inside the debounce window leaves a pending timer behind.
// The late fire must find the batch channel guarded, not closed under it.
func TestWatch_ShutdownDuringDebounce(t *testing.T) {
	for range 20 {
		dir := t.TempDir()
		w := newTestWatcher(t)

		ctx, cancel := context.WithCancel(context.Background())
		batches, err := w.Watch(ctx, []string{dir})
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte("{}"), 0o644))
		time.Sleep(10 * time.Millisecond)
		cancel()

		for range batches {
		}
		require.NoError(t, w.Close())

		// A timer that slipped past shutdown fires within the window and
		// would panic the whole test process on a closed channel.
		time.Sleep(80 * time.Millisecond)
	}
}
