package editor

import (
	"fmt"

	"github.com/dshills/cellvim/internal/engine/cursor"
	"github.com/dshills/cellvim/internal/engine/line"
)

// currentLine returns the line under the cursor.
func (e *Editor) currentLine() (*line.Line, error) {
	return e.doc.Line(e.cur.Line())
}

// insertText inserts each character at the cursor, applying the soft-wrap
// policy after every one.
func (e *Editor) insertText(text string) error {
	for _, r := range text {
		l, err := e.currentLine()
		if err != nil {
			return err
		}
		if _, err := l.InsertAt(e.cur.Col(), r); err != nil {
			return err
		}
		e.cur = cursor.New(e.cur.Line(), e.cur.Col()+1)
		e.markModified()
		if err := e.wrap(); err != nil {
			return err
		}
	}
	return nil
}

// wrap applies the soft-wrap policy to the cursor line. A cursor on a cell
// that moved follows it to the new line.
func (e *Editor) wrap() error {
	wrapped, err := e.doc.Wrap(e.cur.Line())
	if err != nil || !wrapped {
		return err
	}
	if width := e.doc.WrapWidth(); e.cur.Col() >= width {
		e.cur = cursor.New(e.cur.Line()+1, e.cur.Col()-width)
	}
	e.logger.Debug().Int("line", e.cur.Line()).Msg("soft wrap")
	return nil
}

// wrapFrom wraps line i until it fits, pushing overflow onto new lines.
// Returns the number of lines added.
func (e *Editor) wrapFrom(i int) (int, error) {
	added := 0
	for {
		wrapped, err := e.doc.Wrap(i + added)
		if err != nil || !wrapped {
			return added, err
		}
		added++
	}
}

// backspace deletes the character before the cursor. At the start of a
// line it joins the line onto the previous one.
func (e *Editor) backspace() error {
	if e.cur.Col() > 0 {
		l, err := e.currentLine()
		if err != nil {
			return err
		}
		if err := l.Remove(l.CellAt(e.cur.Col() - 1)); err != nil {
			return err
		}
		e.cur = cursor.New(e.cur.Line(), e.cur.Col()-1)
		e.markModified()
		return nil
	}

	if e.cur.Line() == 0 {
		return nil
	}
	prev := e.cur.Line() - 1
	col := e.doc.LineLen(prev)
	if err := e.doc.JoinWithNext(prev); err != nil {
		return err
	}
	e.cur = cursor.New(prev, col)
	e.markModified()
	return nil
}

// newline splits the line at the cursor.
func (e *Editor) newline() error {
	if _, _, err := e.doc.SplitLine(e.cur.Line(), e.cur.Col()); err != nil {
		return err
	}
	e.cur = cursor.New(e.cur.Line()+1, 0)
	e.markModified()
	return nil
}

// deleteChar removes up to count cells starting at the cursor.
func (e *Editor) deleteChar(count int) error {
	l, err := e.currentLine()
	if err != nil {
		return err
	}
	n := min(count, l.Len()-e.cur.Col())
	if n <= 0 {
		return nil
	}
	if err := l.Splice(e.cur.Col(), n, ""); err != nil {
		return err
	}
	e.markModified()
	return nil
}

// deleteToEnd removes every cell from the cursor to the end of the line.
func (e *Editor) deleteToEnd() error {
	l, err := e.currentLine()
	if err != nil {
		return err
	}
	return e.deleteChar(l.Len())
}

// deleteLines deletes count lines starting at the cursor line. The deleted
// text goes to the register.
func (e *Editor) deleteLines(count int) error {
	start := e.cur.Line()
	n := min(count, e.doc.LineCount()-start)
	deleted := make([]string, 0, n)
	for range n {
		deleted = append(deleted, e.doc.Text(start))
		if err := e.DeleteLine(start + 1); err != nil {
			return err
		}
	}
	if err := e.register.Yank(deleted); err != nil {
		e.logger.Warn().Err(err).Msg("clipboard")
	}
	e.message = fmt.Sprintf("%d fewer lines", n)
	return nil
}

// DeleteLine removes a line by 1-based number. The cursor moves to the
// first cell of the line now at its position.
func (e *Editor) DeleteLine(n int) error {
	if err := e.doc.DeleteLine(n - 1); err != nil {
		return err
	}
	if e.cur.Line() >= n-1 {
		e.cur = cursor.New(min(e.cur.Line(), e.doc.LineCount()-1), 0)
	}
	e.markModified()
	return nil
}

// yankLines copies count lines starting at the cursor line.
func (e *Editor) yankLines(count int) error {
	start := e.cur.Line()
	end := min(start+count, e.doc.LineCount())
	lines := e.doc.Lines()[start:end]

	err := e.register.Yank(lines)
	e.message = fmt.Sprintf("%d lines yanked", len(lines))
	if err != nil {
		// The register holds the lines even when the clipboard failed.
		e.logger.Warn().Err(err).Msg("clipboard")
		e.message += " (clipboard unavailable)"
	}
	return nil
}

// indent adds one leading space per count. Each space is a separate
// insertion followed by the soft-wrap policy.
func (e *Editor) indent(count int) error {
	for range count {
		l, err := e.currentLine()
		if err != nil {
			return err
		}
		l.InsertAtHead(' ')
		e.cur = cursor.New(e.cur.Line(), e.cur.Col()+1)
		e.markModified()
		if err := e.wrap(); err != nil {
			return err
		}
	}
	return nil
}

// unindent removes up to count leading spaces.
func (e *Editor) unindent(count int) error {
	l, err := e.currentLine()
	if err != nil {
		return err
	}
	for range count {
		head := l.Head()
		if head == line.NoCell || l.Value(head) != ' ' {
			break
		}
		if err := l.Remove(head); err != nil {
			return err
		}
		e.cur = cursor.New(e.cur.Line(), e.cur.Col()-1)
		e.markModified()
	}
	return nil
}

// pasteAfter inserts the register's lines below the cursor line, count
// times.
func (e *Editor) pasteAfter(count int) error {
	lines := e.register.Lines()
	if len(lines) == 0 {
		return ErrRegisterEmpty
	}

	at := e.cur.Line() + 1
	first := at
	for range count {
		for _, text := range lines {
			if err := e.doc.InsertLine(at, line.FromText(text)); err != nil {
				return err
			}
			added, err := e.wrapFrom(at)
			if err != nil {
				return err
			}
			at += 1 + added
		}
	}
	e.cur = cursor.New(first, 0)
	e.markModified()
	return nil
}

// pasteBefore inserts the register's lines above the cursor line. On the
// first line the text goes in front of the line's existing characters
// instead.
func (e *Editor) pasteBefore() error {
	lines := e.register.Lines()
	if len(lines) == 0 {
		return ErrRegisterEmpty
	}

	at := e.cur.Line()
	if at > 0 {
		i := at
		for _, text := range lines {
			if err := e.doc.InsertLine(i, line.FromText(text)); err != nil {
				return err
			}
			added, err := e.wrapFrom(i)
			if err != nil {
				return err
			}
			i += 1 + added
		}
		e.cur = cursor.New(at, 0)
		e.markModified()
		return nil
	}

	l, err := e.doc.Line(0)
	if err != nil {
		return err
	}
	last := lines[len(lines)-1]
	if err := l.Splice(0, 0, last); err != nil {
		return err
	}
	for i, text := range lines[:len(lines)-1] {
		if err := e.doc.InsertLine(i, line.FromText(text)); err != nil {
			return err
		}
	}
	if _, err := e.wrapFrom(len(lines) - 1); err != nil {
		return err
	}
	e.cur = cursor.New(0, 0)
	e.markModified()
	return nil
}

// joinLines appends the next line to the cursor line, count times.
func (e *Editor) joinLines(count int) error {
	cur := e.cur.Line()
	if cur+1 >= e.doc.LineCount() {
		return ErrNoJoin
	}
	col := e.doc.LineLen(cur)
	for range count {
		if cur+1 >= e.doc.LineCount() {
			break
		}
		if err := e.doc.JoinWithNext(cur); err != nil {
			return err
		}
	}
	e.cur = cursor.New(cur, col)
	e.markModified()
	return nil
}
