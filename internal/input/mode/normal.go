package mode

import (
	"github.com/dshills/cellvim/internal/input/key"
	"github.com/dshills/cellvim/internal/input/vim"
)

// NormalMode interprets keys as commands.
type NormalMode struct {
	// count holds the numeric prefix for the next command.
	count vim.CountState

	// pending holds an operator waiting for its second key ('d' of "dd").
	pending rune

	// cmdline is open while ":" or "/" input is being typed.
	cmdline CommandLine

	// browsing is set while the history browser is shown.
	browsing bool
}

// NewNormalMode creates a new normal mode instance.
func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

// Name returns the mode identifier.
func (m *NormalMode) Name() string {
	return ModeNormal
}

// DisplayName returns the human-readable mode name.
func (m *NormalMode) DisplayName() string {
	return "NORMAL"
}

// CursorStyle returns the cursor style for normal mode.
func (m *NormalMode) CursorStyle() CursorStyle {
	if m.pending != 0 {
		return CursorUnderline
	}
	return CursorBlock
}

// Enter is called when entering normal mode.
func (m *NormalMode) Enter(ctx *Context) error {
	m.ResetState()
	return nil
}

// Exit is called when leaving normal mode.
func (m *NormalMode) Exit(ctx *Context) error {
	m.ResetState()
	return nil
}

// doubled maps operators to the action run when they are typed twice.
var doubled = map[rune]string{
	'd': ActionDeleteLine,
	'y': ActionYankLine,
	'>': ActionIndent,
	'<': ActionUnindent,
}

// single maps one-key commands to actions.
var single = map[rune]string{
	'i': ActionEnterInsert,
	'a': ActionAppend,
	'A': ActionAppendLineEnd,
	'o': ActionOpenBelow,
	'x': ActionDeleteChar,
	'D': ActionDeleteToEnd,
	'h': ActionCursorLeft,
	'j': ActionCursorDown,
	'k': ActionCursorUp,
	'l': ActionCursorRight,
	'0': ActionLineStart,
	'$': ActionLineEnd,
	'w': ActionWordForward,
	'b': ActionWordBackward,
	'e': ActionWordEnd,
	'p': ActionPasteAfter,
	'P': ActionPasteBefore,
	'J': ActionJoinLines,
	'n': ActionFindNext,
	'N': ActionFindPrevious,
}

// arrows maps navigation keys to motions; they work in both modes.
var arrows = map[key.Key]string{
	key.KeyLeft:  ActionCursorLeft,
	key.KeyRight: ActionCursorRight,
	key.KeyUp:    ActionCursorUp,
	key.KeyDown:  ActionCursorDown,
	key.KeyHome:  ActionLineStart,
	key.KeyEnd:   ActionLineEnd,
}

// HandleKey interprets a key event.
func (m *NormalMode) HandleKey(event key.Event) *Result {
	switch {
	case m.cmdline.Active():
		return m.handleCommandLine(event)
	case m.browsing:
		return m.handleBrowse(event)
	}

	if event.IsEscape() {
		m.ResetState()
		return consumed()
	}

	if name, ok := arrows[event.Key]; ok && event.Modifiers == key.ModNone {
		m.pending = 0
		return emit(name, m.count.Take(), "")
	}

	if !event.IsRune() || event.IsModified() {
		m.ResetState()
		return &Result{Consumed: false}
	}

	r := event.Rune
	if m.count.AccumulateDigit(r) {
		return consumed()
	}

	if op := m.pending; op != 0 {
		m.pending = 0
		if r == op {
			return emit(doubled[op], m.count.Take(), "")
		}
		// Any other key cancels the operator.
		m.count.Reset()
		return consumed()
	}

	if _, ok := doubled[r]; ok {
		m.pending = r
		return consumed()
	}

	switch r {
	case ':', '/':
		m.count.Reset()
		m.cmdline.Open(r)
		return consumed()
	case 'M':
		m.count.Reset()
		m.browsing = true
		return emit(ActionHistoryOpen, 1, "")
	}

	if name, ok := single[r]; ok {
		return emit(name, m.count.Take(), "")
	}

	m.count.Reset()
	return &Result{Consumed: false}
}

func (m *NormalMode) handleCommandLine(event key.Event) *Result {
	switch {
	case event.IsEscape():
		m.cmdline.Close()
	case event.IsEnter():
		name := ActionExCommand
		if m.cmdline.Prompt() == '/' {
			name = ActionSearch
		}
		text := m.cmdline.Buffer()
		m.cmdline.Close()
		return emit(name, 1, text)
	case event.IsBackspace():
		if !m.cmdline.Backspace() && m.cmdline.Buffer() == "" {
			m.cmdline.Close()
		}
	case event.Key == key.KeyDelete:
		m.cmdline.Delete()
	case event.Key == key.KeyLeft:
		m.cmdline.MoveLeft()
	case event.Key == key.KeyRight:
		m.cmdline.MoveRight()
	case event.IsChar() && !event.IsModified():
		m.cmdline.Insert(event.Rune)
	}
	return consumed()
}

func (m *NormalMode) handleBrowse(event key.Event) *Result {
	switch {
	case event.Key == key.KeyUp:
		return emit(ActionHistoryPrev, 1, "")
	case event.Key == key.KeyDown:
		return emit(ActionHistoryNext, 1, "")
	case event.IsEnter():
		m.browsing = false
		return emit(ActionHistorySelect, 1, "")
	case event.IsEscape():
		m.browsing = false
		return emit(ActionHistoryClose, 1, "")
	}
	return consumed()
}

// CommandLine returns the ":" / "/" input line.
func (m *NormalMode) CommandLine() *CommandLine {
	return &m.cmdline
}

// Browsing returns true while the history browser is open.
func (m *NormalMode) Browsing() bool {
	return m.browsing
}

// PendingOperator returns the operator awaiting its second key, or 0.
func (m *NormalMode) PendingOperator() rune {
	return m.pending
}

// PendingCount returns the count typed so far, or 0.
func (m *NormalMode) PendingCount() int {
	return m.count.Value
}

// ResetState clears the count, pending operator, command line and browser.
func (m *NormalMode) ResetState() {
	m.count.Reset()
	m.pending = 0
	m.cmdline.Close()
	m.browsing = false
}
