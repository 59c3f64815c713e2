// Package history records the commands run in the editor and lets the user
// browse them.
//
// History is append-only. A browse index walks the entries: Add moves it
// past the newest entry, Prev steps toward the oldest and Next toward the
// newest, each stopping at the ends. Entries can be persisted as YAML.
package history

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/dshills/cellvim/internal/project/vfs"
)

// DefaultMaxEntries bounds the log when no size is given.
const DefaultMaxEntries = 1000

// fileVersion is written to persisted history files.
const fileVersion = 1

// ErrEmpty is returned when browsing a history with no entries.
var ErrEmpty = errors.New("history is empty")

// History is an append-only command log with a browse index.
type History struct {
	mu         sync.Mutex
	entries    []string
	index      int
	maxEntries int
}

// New creates a history holding at most maxEntries entries; the oldest are
// dropped first.
func New(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{maxEntries: maxEntries}
}

// Add appends an entry and moves the browse index past it.
func (h *History) Add(entry string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append(h.entries, entry)
	if over := len(h.entries) - h.maxEntries; over > 0 {
		h.entries = append(h.entries[:0], h.entries[over:]...)
	}
	h.index = len(h.entries)
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Entries returns a copy of all entries, oldest first.
func (h *History) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.entries...)
}

// Index returns the browse index. It equals Len when nothing is selected.
func (h *History) Index() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.index
}

// Prev moves the browse index one entry older, stopping at the oldest, and
// returns the selected entry.
func (h *History) Prev() (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.entries) == 0 {
		return "", ErrEmpty
	}
	if h.index > 0 {
		h.index--
	}
	return h.entries[h.index], nil
}

// Next moves the browse index one entry newer, stopping at the newest, and
// returns the selected entry.
func (h *History) Next() (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.entries) == 0 {
		return "", ErrEmpty
	}
	if h.index < len(h.entries)-1 {
		h.index++
	}
	if h.index >= len(h.entries) {
		h.index = len(h.entries) - 1
	}
	return h.entries[h.index], nil
}

// Selected returns the entry under the browse index.
func (h *History) Selected() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.index < 0 || h.index >= len(h.entries) {
		return "", false
	}
	return h.entries[h.index], true
}

// ResetBrowse moves the browse index past the newest entry.
func (h *History) ResetBrowse() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.index = len(h.entries)
}

// file is the persisted layout.
type file struct {
	Version int      `yaml:"version"`
	Entries []string `yaml:"entries"`
}

// Save writes the entries to path as YAML, creating the parent directory.
func (h *History) Save(fsys vfs.VFS, path string) error {
	h.mu.Lock()
	data, err := yaml.Marshal(file{Version: fileVersion, Entries: h.entries})
	h.mu.Unlock()
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create history dir: %w", err)
	}
	if err := fsys.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}

// Load reads a history written by Save. A missing file yields an empty
// history.
func Load(fsys vfs.VFS, path string, maxEntries int) (*History, error) {
	h := New(maxEntries)

	data, err := fsys.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return h, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode history %s: %w", path, err)
	}
	if f.Version > fileVersion {
		return nil, fmt.Errorf("history %s: unsupported version %d", path, f.Version)
	}

	for _, e := range f.Entries {
		h.Add(e)
	}
	return h, nil
}
