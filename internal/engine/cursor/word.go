package cursor

import "github.com/dshills/cellvim/internal/engine/line"

// Class is the word-motion class of a character.
type Class uint8

const (
	// ClassOther covers digits, control characters and non-ASCII.
	ClassOther Class = iota
	// ClassWord is an ASCII letter.
	ClassWord
	// ClassSeparator is ASCII punctuation or space.
	ClassSeparator
)

// String returns the class name.
func (k Class) String() string {
	switch k {
	case ClassWord:
		return "word"
	case ClassSeparator:
		return "separator"
	default:
		return "other"
	}
}

// Classify returns the class of r.
func Classify(r rune) Class {
	switch {
	case IsWordChar(r):
		return ClassWord
	case IsSeparator(r):
		return ClassSeparator
	default:
		return ClassOther
	}
}

// IsWordChar returns true for ASCII letters.
func IsWordChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// IsSeparator returns true for ASCII punctuation and space.
func IsSeparator(r rune) bool {
	switch {
	case r == ' ':
		return true
	case r >= '!' && r <= '/', r >= ':' && r <= '@', r >= '[' && r <= '`', r >= '{' && r <= '~':
		return true
	}
	return false
}

// NextWord moves to the first character of the next word.
//
// From the cursor it skips non-word characters, then the following word,
// then any trailing non-word run. If that exhausts the line the cursor
// lands on the first cell of the next line. On the last line with nothing
// further the cursor does not move.
func (c Cursor) NextWord(doc *line.Document) Cursor {
	c = c.Clamp(doc)
	l, err := doc.Line(c.line)
	if err != nil {
		return c
	}

	id := l.CellAt(c.col)
	col := c.col
	for id != line.NoCell && !IsWordChar(l.Value(id)) {
		id, col = l.Next(id), col+1
	}
	for id != line.NoCell && IsWordChar(l.Value(id)) {
		id, col = l.Next(id), col+1
	}
	for id != line.NoCell && !IsWordChar(l.Value(id)) {
		id, col = l.Next(id), col+1
	}

	if id != line.NoCell {
		return New(c.line, col)
	}
	if c.line+1 < doc.LineCount() {
		return New(c.line+1, 0)
	}
	return c
}

// PrevWord moves to the first character of the previous word.
//
// With no cell before the cursor it moves to the last cell of the previous
// line. At the start of the document it does nothing.
func (c Cursor) PrevWord(doc *line.Document) Cursor {
	c = c.Clamp(doc)
	l, err := doc.Line(c.line)
	if err != nil {
		return c
	}

	if c.col == 0 || l.IsEmpty() {
		if c.line == 0 {
			return c
		}
		return New(c.line-1, 0).EndOfLine(doc)
	}

	col := c.col - 1
	id := l.CellAt(col)
	for id != line.NoCell && !IsWordChar(l.Value(id)) {
		id, col = l.Prev(id), col-1
	}
	if id == line.NoCell {
		return New(c.line, 0)
	}
	for prev := l.Prev(id); prev != line.NoCell && IsWordChar(l.Value(prev)); prev = l.Prev(id) {
		id, col = prev, col-1
	}
	return New(c.line, col)
}

// WordEnd moves to the last character of the current or next word without
// leaving the line.
func (c Cursor) WordEnd(doc *line.Document) Cursor {
	c = c.Clamp(doc)
	l, err := doc.Line(c.line)
	if err != nil {
		return c
	}

	id := l.CellAt(c.col)
	if id == line.NoCell || l.Next(id) == line.NoCell {
		return c
	}

	col := c.col
	for next := l.Next(id); next != line.NoCell && IsSeparator(l.Value(next)); next = l.Next(id) {
		id, col = next, col+1
	}
	for next := l.Next(id); next != line.NoCell && IsWordChar(l.Value(next)); next = l.Next(id) {
		id, col = next, col+1
	}
	return New(c.line, col)
}
