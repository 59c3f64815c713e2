// Package watcher reports external changes to the file being edited.
//
// fsnotify watches the file's parent directory rather than the file, so
// atomic saves by other programs (write a temporary file, rename it over
// the original) keep being reported. Events for other names in the
// directory are dropped, and bursts of events for the file are coalesced
// into one.
package watcher

import (
	"errors"
	"strings"
	"time"
)

// Common errors returned by watcher operations.
var (
	ErrWatcherClosed = errors.New("watcher is closed")
	ErrNotWatching   = errors.New("no file is being watched")
	ErrPathNotExist  = errors.New("path does not exist")
)

// Op represents the type of file system operation.
type Op uint32

const (
	// OpCreate indicates a file or directory was created.
	OpCreate Op = 1 << iota
	// OpWrite indicates a file was written to.
	OpWrite
	// OpRemove indicates a file or directory was removed.
	OpRemove
	// OpRename indicates a file or directory was renamed.
	OpRename
	// OpChmod indicates file permissions were changed.
	OpChmod
)

var opNames = []struct {
	op   Op
	name string
}{
	{OpCreate, "CREATE"},
	{OpWrite, "WRITE"},
	{OpRemove, "REMOVE"},
	{OpRename, "RENAME"},
	{OpChmod, "CHMOD"},
}

// String returns the operation names joined with '|'.
func (op Op) String() string {
	var parts []string
	for _, n := range opNames {
		if op.Has(n.op) {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "UNKNOWN"
	}
	return strings.Join(parts, "|")
}

// Has returns true if the operation includes the given op.
func (op Op) Has(o Op) bool {
	return o != 0 && op&o == o
}

// Event represents a change to the watched file.
type Event struct {
	// Path is the absolute path of the watched file.
	Path string

	// Op is every operation seen since the previous event.
	Op Op

	// Timestamp is when the first coalesced operation occurred.
	Timestamp time.Time
}

// Gone reports whether the file was removed or renamed away.
func (e Event) Gone() bool {
	return e.Op.Has(OpRemove) || e.Op.Has(OpRename)
}

// Watcher monitors a single file.
type Watcher interface {
	// Watch starts watching path, replacing any file watched before.
	Watch(path string) error

	// Unwatch stops watching the current file.
	Unwatch() error

	// Path returns the watched file, or "" when idle.
	Path() string

	// Events returns the channel of file change events.
	// The channel is closed when the watcher is closed.
	Events() <-chan Event

	// Errors returns the channel of watcher errors.
	// The channel is closed when the watcher is closed.
	Errors() <-chan error

	// Close stops the watcher and releases resources.
	Close() error
}

// Config configures a watcher.
type Config struct {
	// Debounce is how long events are collected before one is delivered.
	Debounce time.Duration

	// BufferSize is the size of the event and error channels.
	BufferSize int
}

// DefaultConfig returns the default watcher configuration.
func DefaultConfig() Config {
	return Config{
		Debounce:   100 * time.Millisecond,
		BufferSize: 16,
	}
}

// Option configures a watcher.
type Option func(*Config)

// WithDebounce sets the coalescing window. Zero delivers every event.
func WithDebounce(d time.Duration) Option {
	return func(c *Config) {
		c.Debounce = d
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(n int) Option {
	return func(c *Config) {
		c.BufferSize = n
	}
}
