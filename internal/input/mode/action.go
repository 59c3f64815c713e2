package mode

import "fmt"

// Action names emitted by the modes.
const (
	// Mode changes
	ActionEnterInsert   = "mode.insert"
	ActionAppend        = "mode.append"
	ActionAppendLineEnd = "mode.append_line_end"
	ActionOpenBelow     = "mode.open_below"
	ActionExitInsert    = "mode.normal"

	// Motions
	ActionCursorLeft   = "cursor.left"
	ActionCursorRight  = "cursor.right"
	ActionCursorUp     = "cursor.up"
	ActionCursorDown   = "cursor.down"
	ActionLineStart    = "cursor.line_start"
	ActionLineEnd      = "cursor.line_end"
	ActionWordForward  = "cursor.word_forward"
	ActionWordBackward = "cursor.word_backward"
	ActionWordEnd      = "cursor.word_end"

	// Edits
	ActionInsertChar  = "editor.insert_char"
	ActionBackspace   = "editor.backspace"
	ActionNewline     = "editor.newline"
	ActionDeleteChar  = "editor.delete_char"
	ActionDeleteToEnd = "editor.delete_to_end"
	ActionDeleteLine  = "editor.delete_line"
	ActionYankLine    = "editor.yank_line"
	ActionIndent      = "editor.indent"
	ActionUnindent    = "editor.unindent"
	ActionPasteAfter  = "editor.paste_after"
	ActionPasteBefore = "editor.paste_before"
	ActionJoinLines   = "editor.join_lines"

	// Search
	ActionSearch       = "search.forward"
	ActionFindNext     = "search.next"
	ActionFindPrevious = "search.previous"

	// Command line
	ActionExCommand = "command.execute"

	// History browser
	ActionHistoryOpen   = "history.open"
	ActionHistoryPrev   = "history.prev"
	ActionHistoryNext   = "history.next"
	ActionHistorySelect = "history.select"
	ActionHistoryClose  = "history.close"
)

// Action is a command for the editor to execute.
type Action struct {
	// Name identifies the command.
	Name string

	// Count is the repeat count; always at least 1.
	Count int

	// Text carries the typed character, search pattern or command line.
	Text string
}

// String formats the action for logs and tests.
func (a Action) String() string {
	s := a.Name
	if a.Count > 1 {
		s = fmt.Sprintf("%s x%d", s, a.Count)
	}
	if a.Text != "" {
		s = fmt.Sprintf("%s %q", s, a.Text)
	}
	return s
}

// Result describes what a mode did with a key.
type Result struct {
	// Action is the action to execute, if any.
	Action *Action

	// Consumed indicates whether the key was handled.
	Consumed bool
}

func consumed() *Result {
	return &Result{Consumed: true}
}

func emit(name string, count int, text string) *Result {
	if count < 1 {
		count = 1
	}
	return &Result{
		Consumed: true,
		Action:   &Action{Name: name, Count: count, Text: text},
	}
}
