package vim

import (
	"strings"
	"sync"
)

// ClipboardProvider abstracts system clipboard access.
type ClipboardProvider interface {
	// Get returns the current clipboard content.
	Get() (string, error)

	// Set sets the clipboard content.
	Set(content string) error
}

// Register holds yanked lines.
type Register struct {
	mu    sync.RWMutex
	lines []string

	// clipboard mirrors yanks when set.
	clipboard ClipboardProvider
}

// NewRegister creates an empty register.
func NewRegister() *Register {
	return &Register{}
}

// SetClipboard sets the clipboard provider for system clipboard integration.
// A nil provider disables mirroring.
func (r *Register) SetClipboard(clipboard ClipboardProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clipboard = clipboard
}

// Yank stores lines, replacing the previous content. When a clipboard is
// configured the lines are mirrored to it joined by newlines; a clipboard
// failure is returned but the register is still updated.
func (r *Register) Yank(lines []string) error {
	r.mu.Lock()
	r.lines = append([]string(nil), lines...)
	cb := r.clipboard
	r.mu.Unlock()

	if cb == nil {
		return nil
	}
	return cb.Set(strings.Join(lines, "\n"))
}

// Lines returns a copy of the register content.
func (r *Register) Lines() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.lines...)
}

// IsEmpty returns true if nothing has been yanked.
func (r *Register) IsEmpty() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.lines) == 0
}

// Clear empties the register.
func (r *Register) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = nil
}
