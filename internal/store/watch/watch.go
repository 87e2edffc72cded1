// Package watch notifies the UI when the state file changes out-of-band,
// e.g. another process or a hand edit. The task pane treats storage as
// the source of truth, so an external write just needs to trigger a
// re-read.
package watch

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceDelay = 200 * time.Millisecond

// Watcher watches the directory holding the state file and emits one
// (debounced) notification per burst of writes to it. Watching the
// directory instead of the file survives editors that replace-on-save.
type Watcher struct {
	path    string
	fsw     *fsnotify.Watcher
	changes chan struct{}

	mu       sync.Mutex
	debounce *time.Timer
	closed   bool
}

// New starts watching the state file at path. Callers must Close.
func New(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve state path: %w", err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:    abs,
		fsw:     fsw,
		changes: make(chan struct{}, 1),
	}
	go w.loop()
	return w, nil
}

// Changes delivers one value per debounced burst of writes to the state
// file. The channel is closed by Close.
func (w *Watcher) Changes() <-chan struct{} { return w.changes }

// Close stops watching and closes the Changes channel.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.mu.Unlock()
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	defer close(w.changes)
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.bump()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			slog.Warn("state watcher error", "err", err)
		}
	}
}

// bump (re)arms the debounce timer; when it fires, one notification is
// posted, dropped if the consumer has not drained the previous one.
func (w *Watcher) bump() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.debounce == nil {
		w.debounce = time.AfterFunc(debounceDelay, w.fire)
		return
	}
	w.debounce.Reset(debounceDelay)
}

func (w *Watcher) fire() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	select {
	case w.changes <- struct{}{}:
	default:
	}
}
