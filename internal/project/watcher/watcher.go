// Package watcher reports external modifications to the open file.
package watcher

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches a single file and invokes a callback when something
// other than the editor changes it. The callback runs on the watcher
// goroutine; it should only post an event, never mutate editor state.
type FileWatcher struct {
	mu         sync.Mutex
	watcher    *fsnotify.Watcher
	path       string
	onChange   func()
	suppressed bool
	closeCh    chan struct{}
	closedWg   sync.WaitGroup
}

// New starts watching path. The parent directory is watched rather than
// the file itself so atomic rename-over-target writes are still seen.
func New(path string, onChange func()) (*FileWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &FileWatcher{
		watcher:  fsw,
		path:     absPath,
		onChange: onChange,
		closeCh:  make(chan struct{}),
	}

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Suppress mutes change notifications while the editor itself writes the
// file.
func (w *FileWatcher) Suppress() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.suppressed = true
}

// Resume re-enables change notifications.
func (w *FileWatcher) Resume() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.suppressed = false
}

// Close stops the watcher.
func (w *FileWatcher) Close() error {
	close(w.closeCh)
	err := w.watcher.Close()
	w.closedWg.Wait()
	return err
}

// processLoop drains fsnotify events, filtering for the watched file.
func (w *FileWatcher) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if ev.Name != w.path {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) &&
				!ev.Op.Has(fsnotify.Rename) && !ev.Op.Has(fsnotify.Remove) {
				continue
			}
			w.mu.Lock()
			suppressed := w.suppressed
			w.mu.Unlock()
			if !suppressed {
				w.onChange()
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are not actionable for the editor; drop them.
		}
	}
}
