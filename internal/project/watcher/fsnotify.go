package watcher

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FSNotifyWatcher implements Watcher using fsnotify.
type FSNotifyWatcher struct {
	mu sync.RWMutex

	watcher *fsnotify.Watcher
	config  Config

	path string // watched file, absolute
	dir  string // directory registered with fsnotify

	events chan Event
	errors chan error

	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

var _ Watcher = (*FSNotifyWatcher)(nil)

// NewFSNotifyWatcher creates a new fsnotify-based watcher.
func NewFSNotifyWatcher(opts ...Option) (*FSNotifyWatcher, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	bufSize := config.BufferSize
	if bufSize <= 0 {
		bufSize = 16
	}

	w := &FSNotifyWatcher{
		watcher: fsw,
		config:  config,
		events:  make(chan Event, bufSize),
		errors:  make(chan error, bufSize),
		closeCh: make(chan struct{}),
	}

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Watch starts watching path, replacing any file watched before.
func (w *FSNotifyWatcher) Watch(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(absPath); err != nil {
		if os.IsNotExist(err) {
			return ErrPathNotExist
		}
		return err
	}

	dir := filepath.Dir(absPath)
	if dir != w.dir {
		if err := w.watcher.Add(dir); err != nil {
			return err
		}
		if w.dir != "" {
			_ = w.watcher.Remove(w.dir)
		}
		w.dir = dir
	}
	w.path = absPath
	return nil
}

// Unwatch stops watching the current file.
func (w *FSNotifyWatcher) Unwatch() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	if w.path == "" {
		return ErrNotWatching
	}

	err := w.watcher.Remove(w.dir)
	w.path, w.dir = "", ""
	return err
}

// Path returns the watched file, or "" when idle.
func (w *FSNotifyWatcher) Path() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.path
}

// Events returns the event channel.
func (w *FSNotifyWatcher) Events() <-chan Event {
	return w.events
}

// Errors returns the error channel.
func (w *FSNotifyWatcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher.
func (w *FSNotifyWatcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	// Wait for processLoop to finish
	w.closedWg.Wait()

	close(w.events)
	close(w.errors)

	return w.watcher.Close()
}

// processLoop handles incoming fsnotify events. Events for the watched
// file are merged until the debounce timer fires.
func (w *FSNotifyWatcher) processLoop() {
	defer w.closedWg.Done()

	var (
		pending Event
		timer   *time.Timer
		fire    <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.closeCh:
			return

		case fsEvent, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			ev, ok := w.convert(fsEvent)
			if !ok {
				continue
			}
			if w.config.Debounce <= 0 {
				w.sendEvent(ev)
				continue
			}
			if pending.Op == 0 {
				pending = ev
			} else {
				pending.Op |= ev.Op
			}
			if timer == nil {
				timer = time.NewTimer(w.config.Debounce)
				fire = timer.C
			}

		case <-fire:
			w.sendEvent(pending)
			pending, timer, fire = Event{}, nil, nil

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

// convert turns an fsnotify event into an Event for the watched file.
func (w *FSNotifyWatcher) convert(fsEvent fsnotify.Event) (Event, bool) {
	op := convertOp(fsEvent.Op)
	if op == 0 {
		return Event{}, false
	}

	w.mu.RLock()
	path := w.path
	w.mu.RUnlock()

	if path == "" || filepath.Clean(fsEvent.Name) != path {
		return Event{}, false
	}
	return Event{Path: path, Op: op, Timestamp: time.Now()}, true
}

// convertOp converts fsnotify.Op to watcher.Op.
func convertOp(fsOp fsnotify.Op) Op {
	var op Op
	if fsOp.Has(fsnotify.Create) {
		op |= OpCreate
	}
	if fsOp.Has(fsnotify.Write) {
		op |= OpWrite
	}
	if fsOp.Has(fsnotify.Remove) {
		op |= OpRemove
	}
	if fsOp.Has(fsnotify.Rename) {
		op |= OpRename
	}
	if fsOp.Has(fsnotify.Chmod) {
		op |= OpChmod
	}
	return op
}

// sendEvent sends an event to the output channel.
func (w *FSNotifyWatcher) sendEvent(event Event) {
	select {
	case w.events <- event:
	default:
		w.sendError(errors.New("event channel full, dropping event"))
	}
}

// sendError sends an error to the output channel.
func (w *FSNotifyWatcher) sendError(err error) {
	select {
	case w.errors <- err:
	default:
		// Channel full, drop error
	}
}
