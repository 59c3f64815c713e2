package mode

import "github.com/dshills/cellvim/internal/input/key"

// InsertMode types characters into the document.
type InsertMode struct{}

// NewInsertMode creates a new insert mode instance.
func NewInsertMode() *InsertMode {
	return &InsertMode{}
}

// Name returns the mode identifier.
func (m *InsertMode) Name() string {
	return ModeInsert
}

// DisplayName returns the human-readable mode name.
func (m *InsertMode) DisplayName() string {
	return "INSERT"
}

// CursorStyle returns the cursor style for insert mode.
func (m *InsertMode) CursorStyle() CursorStyle {
	return CursorBar
}

// Enter is called when entering insert mode.
func (m *InsertMode) Enter(ctx *Context) error {
	return nil
}

// Exit is called when leaving insert mode.
func (m *InsertMode) Exit(ctx *Context) error {
	return nil
}

// HandleKey interprets a key event.
func (m *InsertMode) HandleKey(event key.Event) *Result {
	switch {
	case event.IsEscape():
		return emit(ActionExitInsert, 1, "")
	case event.IsEnter():
		return emit(ActionNewline, 1, "")
	case event.IsBackspace():
		return emit(ActionBackspace, 1, "")
	case event.Key == key.KeyDelete:
		return emit(ActionDeleteChar, 1, "")
	}

	if name, ok := arrows[event.Key]; ok && event.Modifiers == key.ModNone {
		return emit(name, 1, "")
	}

	if event.IsChar() && !event.IsModified() {
		return emit(ActionInsertChar, 1, string(event.Rune))
	}

	// Other unmapped keys are ignored in insert mode
	return &Result{Consumed: false}
}
