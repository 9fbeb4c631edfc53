package watcher

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	swatchfs "go.trai.ch/swatch/internal/adapters/fs"
	"go.trai.ch/swatch/internal/core/domain"
	"go.trai.ch/swatch/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 100

// Watcher implements recursive directory watching using fsnotify.
// The underlying fsnotify watcher is created on Start.
type Watcher struct {
	logger  ports.Logger
	ignores []string

	mu        sync.Mutex
	fsWatcher *fsnotify.Watcher
	events    chan ports.WatchEvent
}

// NewWatcher creates a new watcher that skips the walker's ignored directories.
func NewWatcher(logger ports.Logger) *Watcher {
	return &Watcher{
		logger:  logger,
		ignores: append(slices.Clone(swatchfs.DefaultIgnores), "node_modules"),
		events:  make(chan ports.WatchEvent, eventChannelBuffer),
	}
}

// Start begins watching every directory below roots.
func (w *Watcher) Start(ctx context.Context, roots ...string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fsWatcher != nil {
		return zerr.Wrap(domain.ErrWatchFailed, "watcher already started")
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}

	for _, root := range roots {
		for dir := range w.directories(root) {
			if err := fsWatcher.Add(dir); err != nil {
				_ = fsWatcher.Close()
				return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "path", dir)
			}
		}
	}

	w.fsWatcher = fsWatcher
	go w.processEvents(ctx, fsWatcher)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fsWatcher == nil {
		return nil
	}
	return w.fsWatcher.Close()
}

// Events returns an iterator of file system events.
// It ends once the watcher is stopped or its context is done.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

func (w *Watcher) directories(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // Unreadable directories are not watched
			}
			if !d.IsDir() {
				return nil
			}
			if path != root && w.skip(d.Name()) {
				return fs.SkipDir
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func (w *Watcher) skip(name string) bool {
	return slices.Contains(w.ignores, name)
}

func (w *Watcher) processEvents(ctx context.Context, fsWatcher *fsnotify.Watcher) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return
			}

			watchEvent, ok := convertEvent(event)
			if !ok || w.ignoredPath(event.Name) {
				continue
			}

			select {
			case w.events <- watchEvent:
			case <-ctx.Done():
				return
			}

			if watchEvent.Operation == ports.OpCreate {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() && !w.skip(info.Name()) {
					for dir := range w.directories(event.Name) {
						_ = fsWatcher.Add(dir)
					}
				}
			}

		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher: " + err.Error())
		}
	}
}

// ignoredPath reports whether any parent of path is an ignored directory,
// so writes into the cache directory never trigger a rebuild.
func (w *Watcher) ignoredPath(path string) bool {
	return slices.ContainsFunc(strings.Split(filepath.ToSlash(filepath.Dir(path)), "/"), w.skip)
}

func convertEvent(event fsnotify.Event) (ports.WatchEvent, bool) {
	switch {
	case event.Has(fsnotify.Write):
		return ports.WatchEvent{Path: event.Name, Operation: ports.OpWrite}, true
	case event.Has(fsnotify.Create):
		return ports.WatchEvent{Path: event.Name, Operation: ports.OpCreate}, true
	case event.Has(fsnotify.Remove):
		return ports.WatchEvent{Path: event.Name, Operation: ports.OpRemove}, true
	case event.Has(fsnotify.Rename):
		return ports.WatchEvent{Path: event.Name, Operation: ports.OpRename}, true
	default:
		return ports.WatchEvent{}, false
	}
}
