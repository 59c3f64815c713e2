package editor

import (
	"fmt"
	"strings"

	"github.com/dshills/cellvim/internal/input/mode"
)

// labels are the history descriptions of actions without text.
var labels = map[string]string{
	mode.ActionEnterInsert:   "Enter Insert Mode",
	mode.ActionAppend:        "Append",
	mode.ActionAppendLineEnd: "Append at End of Line",
	mode.ActionOpenBelow:     "Open Line Below",
	mode.ActionExitInsert:    "Exit Insert Mode",
	mode.ActionCursorLeft:    "Move Left",
	mode.ActionCursorRight:   "Move Right",
	mode.ActionCursorUp:      "Move Up",
	mode.ActionCursorDown:    "Move Down",
	mode.ActionLineStart:     "Move to Start of Line",
	mode.ActionLineEnd:       "Move to End of Line",
	mode.ActionWordForward:   "Move to Next Word",
	mode.ActionWordBackward:  "Move to Previous Word",
	mode.ActionWordEnd:       "Move to Word End",
	mode.ActionBackspace:     "Backspace",
	mode.ActionNewline:       "New Line",
	mode.ActionDeleteChar:    "Delete Char",
	mode.ActionDeleteToEnd:   "Delete to End of Line",
	mode.ActionDeleteLine:    "Delete Line",
	mode.ActionYankLine:      "Yank Line",
	mode.ActionIndent:        "Indent Line",
	mode.ActionUnindent:      "Unindent Line",
	mode.ActionPasteAfter:    "Paste After",
	mode.ActionPasteBefore:   "Paste Before",
	mode.ActionJoinLines:     "Join Lines",
	mode.ActionFindNext:      "n",
	mode.ActionFindPrevious:  "N",
}

// describe returns the history text for an action.
func describe(a mode.Action) string {
	var s string
	switch a.Name {
	case mode.ActionInsertChar:
		s = a.Text
	case mode.ActionSearch:
		s = "/" + a.Text
	case mode.ActionExCommand:
		s = ":" + strings.TrimSpace(a.Text)
	default:
		var ok bool
		if s, ok = labels[a.Name]; !ok {
			s = a.Name
		}
	}
	if a.Count > 1 {
		s = fmt.Sprintf("%s x%d", s, a.Count)
	}
	return s
}

func isHistoryAction(name string) bool {
	return strings.HasPrefix(name, "history.")
}

// browseHistory handles the history browser. Entries are only shown,
// never replayed.
func (e *Editor) browseHistory(name string) error {
	switch name {
	case mode.ActionHistoryOpen:
		e.history.ResetBrowse()
		if e.history.Len() == 0 {
			e.message = "history is empty"
			return nil
		}
		entry, err := e.history.Prev()
		if err != nil {
			return err
		}
		e.message = e.historyMessage(entry)

	case mode.ActionHistoryPrev, mode.ActionHistoryNext:
		move := e.history.Prev
		if name == mode.ActionHistoryNext {
			move = e.history.Next
		}
		entry, err := move()
		if err != nil {
			e.message = "history is empty"
			return nil
		}
		e.message = e.historyMessage(entry)

	case mode.ActionHistorySelect:
		if entry, ok := e.history.Selected(); ok {
			e.message = "selected: " + entry
		}
		e.history.ResetBrowse()

	case mode.ActionHistoryClose:
		e.history.ResetBrowse()
		e.message = ""
	}
	return nil
}

func (e *Editor) historyMessage(entry string) string {
	return fmt.Sprintf("history %d/%d: %s", e.history.Index()+1, e.history.Len(), entry)
}
