package watcher_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/swatch/internal/adapters/logger"
	"go.trai.ch/swatch/internal/adapters/watcher"
	"go.trai.ch/swatch/internal/core/domain"
	"go.trai.ch/swatch/internal/core/ports"
)

func newWatcher(t *testing.T) *watcher.Watcher {
	t.Helper()
	log := logger.New()
	log.SetOutput(io.Discard)
	return watcher.NewWatcher(log)
}

func collectEvents(w *watcher.Watcher) <-chan ports.WatchEvent {
	out := make(chan ports.WatchEvent, 64)
	go func() {
		defer close(out)
		for event := range w.Events() {
			out <- event
		}
	}()
	return out
}

func waitFor(t *testing.T, events <-chan ports.WatchEvent, path string) {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case event, ok := <-events:
			require.True(t, ok, "event stream closed before %s", path)
			if event.Path == path {
				return
			}
		case <-timeout:
			t.Fatalf("no event for %s", path)
		}
	}
}

func TestWatcher_ReportsWritesInNestedDirectories(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "components")
	require.NoError(t, os.Mkdir(nested, domain.DirPerm))

	w := newWatcher(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, w.Start(ctx, root))
	defer func() { assert.NoError(t, w.Stop()) }()
	events := collectEvents(w)

	target := filepath.Join(nested, "_button.scss")
	require.NoError(t, os.WriteFile(target, []byte("a { }"), domain.FilePerm))

	waitFor(t, events, target)
}

func TestWatcher_FollowsNewDirectories(t *testing.T) {
	root := t.TempDir()

	w := newWatcher(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, w.Start(ctx, root))
	defer func() { assert.NoError(t, w.Stop()) }()
	events := collectEvents(w)

	dir := filepath.Join(root, "late")
	require.NoError(t, os.Mkdir(dir, domain.DirPerm))
	waitFor(t, events, dir)

	// The new directory is added after its create event is delivered, so
	// keep writing until the nested write is observed.
	target := filepath.Join(dir, "x.scss")
	require.Eventually(t, func() bool {
		if err := os.WriteFile(target, []byte("b { }"), domain.FilePerm); err != nil {
			return false
		}
		deadline := time.After(50 * time.Millisecond)
		for {
			select {
			case event := <-events:
				if event.Path == target {
					return true
				}
			case <-deadline:
				return false
			}
		}
	}, 5*time.Second, 10*time.Millisecond)
}

func TestWatcher_StartTwice(t *testing.T) {
	w := newWatcher(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, w.Start(ctx, t.TempDir()))
	defer func() { assert.NoError(t, w.Stop()) }()

	err := w.Start(ctx, t.TempDir())
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrWatchFailed.Error())
}

func TestWatcher_StopBeforeStart(t *testing.T) {
	assert.NoError(t, newWatcher(t).Stop())
}
