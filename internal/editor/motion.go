package editor

import (
	"github.com/dshills/cellvim/internal/engine/cursor"
	"github.com/dshills/cellvim/internal/engine/line"
	"github.com/dshills/cellvim/internal/input/mode"
)

// motions maps motion actions to cursor methods.
var motions = map[string]func(cursor.Cursor, *line.Document) cursor.Cursor{
	mode.ActionCursorLeft:   cursor.Cursor.Left,
	mode.ActionCursorRight:  cursor.Cursor.Right,
	mode.ActionCursorUp:     cursor.Cursor.Up,
	mode.ActionCursorDown:   cursor.Cursor.Down,
	mode.ActionLineStart:    cursor.Cursor.StartOfLine,
	mode.ActionLineEnd:      cursor.Cursor.EndOfLine,
	mode.ActionWordForward:  cursor.Cursor.NextWord,
	mode.ActionWordBackward: cursor.Cursor.PrevWord,
	mode.ActionWordEnd:      cursor.Cursor.WordEnd,
}

// move applies a motion Count times.
func (e *Editor) move(a mode.Action) {
	fn := motions[a.Name]
	for range a.Count {
		next := fn(e.cur, e.doc)
		if next == e.cur {
			break
		}
		e.cur = next
	}
}

// GotoLine moves to the first cell of a 1-based line number.
func (e *Editor) GotoLine(n int) error {
	c, err := cursor.ToLine(e.doc, n-1)
	if err != nil {
		return err
	}
	e.cur = c
	return nil
}
