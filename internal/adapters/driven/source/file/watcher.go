package file

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/AndreasRafn/RestaurantReviewsApp/internal/logger"
)

// Watcher reports changes to the catalog file so the application can
// refresh without restarting. Editors often replace files by rename,
// so the parent directory is watched and events are filtered by name.
type Watcher struct {
	fw   *fsnotify.Watcher
	path string
	done chan struct{}
}

// Watch starts watching the catalog file. onChange is invoked from the
// watcher goroutine whenever the file is written, created or renamed.
func Watch(path string, onChange func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, fmt.Errorf("resolving catalog path: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching catalog directory: %w", err)
	}

	w := &Watcher{fw: fw, path: abs, done: make(chan struct{})}
	go w.loop(onChange)
	return w, nil
}

func (w *Watcher) loop(onChange func()) {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				logger.Debug("file: catalog changed on disk (%s)", event.Op)
				onChange()
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			logger.Warn("file: watcher error: %v", err)
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fw.Close()
}
