package watcher_test

import (
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.verdant.dev/verdant/internal/adapters/watcher"
)

func TestDebouncer_SinglePath(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var receivedPaths []string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			callCount++
			receivedPaths = paths
		})

		d.Add("/data/ec_guidelines.json")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 1, callCount)
		assert.Equal(t, []string{"/data/ec_guidelines.json"}, receivedPaths)
	})
}

func TestDebouncer_CoalescesBurst(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var receivedPaths []string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			callCount++
			receivedPaths = paths
		})

		d.Add("/data/a.json")
		d.Add("/data/b.json")
		// Duplicate events for one path collapse to a single entry.
		d.Add("/data/a.json")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 1, callCount)
		assert.ElementsMatch(t, []string{"/data/a.json", "/data/b.json"}, receivedPaths)
	})
}

func TestDebouncer_WindowRestartsOnAdd(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int

		d := watcher.NewDebouncer(100*time.Millisecond, func([]string) {
			callCount++
		})

		d.Add("/data/a.json")
		time.Sleep(60 * time.Millisecond)
		d.Add("/data/b.json")
		time.Sleep(60 * time.Millisecond)

		// 120ms elapsed but the window restarted at 60ms, so nothing fired.
		synctest.Wait()
		require.Equal(t, 0, callCount)

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		require.Equal(t, 1, callCount)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	var receivedPaths []string

	d := watcher.NewDebouncer(time.Hour, func(paths []string) {
		receivedPaths = paths
	})

	d.Add("/data/a.json")
	d.Flush()

	assert.Equal(t, []string{"/data/a.json"}, receivedPaths)
}

func TestDebouncer_FlushEmpty(t *testing.T) {
	called := false
	d := watcher.NewDebouncer(time.Hour, func([]string) { called = true })

	d.Flush()

	assert.False(t, called)
}
