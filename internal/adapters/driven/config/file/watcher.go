package file

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher notifies when the config file changes on disk, so long-running
// surfaces (the TUI) can pick up new defaults without restarting.
type Watcher struct {
	fsw  *fsnotify.Watcher
	path string
}

// NewWatcher creates a watcher for the given config file path. The parent
// directory is watched rather than the file itself so that editors which
// replace the file (write to temp, rename over) are still observed.
func NewWatcher(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}

	return &Watcher{fsw: fsw, path: path}, nil
}

// Watch returns a channel that receives a signal whenever the config file
// is created or written. The channel is closed when ctx is cancelled or
// the watcher is closed.
func (w *Watcher) Watch(ctx context.Context) <-chan struct{} {
	changes := make(chan struct{}, 1)

	go func() {
		defer close(changes)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.fsw.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(w.path) {
					continue
				}
				if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) {
					select {
					case changes <- struct{}{}:
					default:
						// A signal is already pending; coalesce.
					}
				}
			case _, ok := <-w.fsw.Errors:
				if !ok {
					return
				}
				// Watch errors are not fatal for a config reload hint.
			}
		}
	}()

	return changes
}

// Close stops the watcher and releases its resources.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
