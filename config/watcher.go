package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/teranos/declgen/errors"
	"github.com/teranos/declgen/logger"
)

// ChangeCallback runs after a debounced change to one of the watched files.
type ChangeCallback func(path string) error

// FileWatcher watches the feed and config files and fires a callback once
// per burst of writes.
type FileWatcher struct {
	watcher        *fsnotify.Watcher
	files          map[string]bool
	callback       ChangeCallback
	mu             sync.Mutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
}

// NewFileWatcher watches the directories holding paths. Editors replace
// files on save, so the parent directory is watched and events are
// filtered by name.
func NewFileWatcher(callback ChangeCallback, paths ...string) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	fw := &FileWatcher{
		watcher:        watcher,
		files:          make(map[string]bool),
		callback:       callback,
		debouncePeriod: 500 * time.Millisecond,
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			watcher.Close()
			return nil, errors.Wrapf(err, "failed to resolve %s", p)
		}
		fw.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, errors.Wrapf(err, "failed to watch %s", dir)
		}
	}
	return fw, nil
}

// SetDebounce overrides the default 500ms debounce period.
func (fw *FileWatcher) SetDebounce(d time.Duration) {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	fw.debouncePeriod = d
}

// Run blocks until ctx is done, dispatching debounced change callbacks.
func (fw *FileWatcher) Run(ctx context.Context) error {
	defer fw.watcher.Close()
	for {
		select {
		case <-ctx.Done():
			fw.mu.Lock()
			if fw.debounceTimer != nil {
				fw.debounceTimer.Stop()
			}
			fw.mu.Unlock()
			return nil

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !fw.files[abs] {
				continue
			}
			logger.Debugw("Watched file changed",
				logger.FieldFile, event.Name,
				"op", event.Op.String())
			fw.schedule(abs)

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warnw("File watcher error", logger.FieldError, err)
		}
	}
}

// schedule debounces rapid file changes into one callback
func (fw *FileWatcher) schedule(path string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.debounceTimer != nil {
		fw.debounceTimer.Stop()
	}
	fw.debounceTimer = time.AfterFunc(fw.debouncePeriod, func() {
		if err := fw.callback(path); err != nil {
			logger.Errorw("Change callback failed",
				logger.FieldFile, path,
				logger.FieldError, err)
		}
	})
}
