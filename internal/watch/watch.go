// Package watch detects whole new files appearing in a directory and
// reports each one exactly once. It deliberately does not follow a
// file's growth after it appears — incremental parsing of a growing
// file is out of scope for the mining core this feeds.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// NewFileFunc is called once per newly observed file path.
type NewFileFunc func(path string) error

// Watcher reports new files created directly inside a directory.
type Watcher struct {
	dir     string
	onFile  NewFileFunc
	watcher *fsnotify.Watcher
}

// New builds a Watcher over dir. onFile is invoked for every file that
// appears after Run starts; pre-existing files are not reported.
func New(dir string, onFile NewFileFunc) *Watcher {
	return &Watcher{dir: dir, onFile: onFile}
}

// Run blocks, watching for new files until ctx is cancelled or an
// unrecoverable watcher error occurs.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: creating watcher: %w", err)
	}
	w.watcher = fw
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("watch: watching %s: %w", w.dir, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return fmt.Errorf("watch: event channel closed")
			}
			if event.Op&fsnotify.Create == 0 {
				continue
			}
			if err := w.handleCreate(event.Name); err != nil {
				return err
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return fmt.Errorf("watch: error channel closed")
			}
			return fmt.Errorf("watch: watcher error: %w", err)
		}
	}
}

func (w *Watcher) handleCreate(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		// The file may have already been removed/renamed away; not
		// our problem to report.
		return nil
	}
	if info.IsDir() {
		return nil
	}
	if filepath.Dir(path) != filepath.Clean(w.dir) {
		return nil
	}
	return w.onFile(path)
}
