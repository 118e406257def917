package catalog

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"
)

const reloadOps = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename

// Watcher reloads a catalog directory when one of its files changes.
type Watcher struct {
	dir string
	fsw *fsnotify.Watcher
}

// NewWatcher starts watching dir. Changes are only reported once Run is
// called.
func NewWatcher(dir string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("catalog: create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("catalog: watch %s: %w", dir, err)
	}
	return &Watcher{dir: dir, fsw: fsw}, nil
}

// Run delivers a freshly loaded store, or the load error, to onReload after
// every change to a catalog file. It blocks until ctx is done or the watcher
// is closed.
func (w *Watcher) Run(ctx context.Context, onReload func(*Store, error)) error {
	defer w.fsw.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if event.Op&reloadOps == 0 || !Supported(event.Name) {
				continue
			}
			onReload(Load(w.dir))
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			onReload(nil, fmt.Errorf("catalog: watch: %w", err))
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
