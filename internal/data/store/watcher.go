package store

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/penwyp/go-countdown/internal/util"
)

// FileEvent reports a change to the watched storage file
type FileEvent struct {
	Path      string
	Operation string
}

// Watcher reports writes to a single storage file.
// The parent directory is watched so atomic renames are seen.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	events  chan FileEvent
	done    chan struct{}
}

// NewWatcher starts watching path
func NewWatcher(path string) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(absPath)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(absPath), err)
	}

	w := &Watcher{
		watcher: fw,
		path:    absPath,
		events:  make(chan FileEvent, 16),
		done:    make(chan struct{}),
	}
	go w.processEvents()
	return w, nil
}

func (w *Watcher) processEvents() {
	defer close(w.events)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			select {
			case w.events <- FileEvent{Path: event.Name, Operation: event.Op.String()}:
			case <-w.done:
				return
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			util.LogError("Storage watch error: " + err.Error())

		case <-w.done:
			return
		}
	}
}

// Events returns the change channel, closed when the watcher stops
func (w *Watcher) Events() <-chan FileEvent {
	return w.events
}

func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
