package cursor

import (
	"fmt"

	"github.com/dshills/cellvim/internal/engine/line"
)

// Cursor represents an editing position in a document.
// Cursor is an immutable value type.
type Cursor struct {
	line int
	col  int
}

// New creates a cursor at the given line index and column.
// Negative values are raised to zero.
func New(lineIdx, col int) Cursor {
	if lineIdx < 0 {
		lineIdx = 0
	}
	if col < 0 {
		col = 0
	}
	return Cursor{line: lineIdx, col: col}
}

// Line returns the 0-based line index.
func (c Cursor) Line() int {
	return c.line
}

// Col returns the 0-based cell offset.
func (c Cursor) Col() int {
	return c.col
}

// IsAppend returns true if the cursor sits after the last cell of its line.
func (c Cursor) IsAppend(doc *line.Document) bool {
	return c.col >= doc.LineLen(c.line)
}

// Cell returns the cell under the cursor, or line.NoCell at the append
// position.
func (c Cursor) Cell(doc *line.Document) line.CellID {
	l, err := doc.Line(c.line)
	if err != nil {
		return line.NoCell
	}
	return l.CellAt(c.col)
}

// Clamp returns a cursor that is valid for doc: the line index is limited
// to the document and the column to [0, line length].
func (c Cursor) Clamp(doc *line.Document) Cursor {
	lineIdx := c.line
	if last := doc.LineCount() - 1; lineIdx > last {
		lineIdx = last
	}
	col := c.col
	if n := doc.LineLen(lineIdx); col > n {
		col = n
	}
	return New(lineIdx, col)
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("Cursor(%d:%d)", c.line, c.col)
}

// Equals returns true if two cursors are at the same position.
func (c Cursor) Equals(other Cursor) bool {
	return c.line == other.line && c.col == other.col
}

// Up moves to the first cell of the previous line.
// Does nothing on the first line.
func (c Cursor) Up(doc *line.Document) Cursor {
	if c.line == 0 {
		return c.Clamp(doc)
	}
	return New(c.line-1, 0)
}

// Down moves to the first cell of the next line.
// Does nothing on the last line.
func (c Cursor) Down(doc *line.Document) Cursor {
	if c.line >= doc.LineCount()-1 {
		return c.Clamp(doc)
	}
	return New(c.line+1, 0)
}

// Left moves one cell back, stopping at the start of the line.
func (c Cursor) Left(doc *line.Document) Cursor {
	c = c.Clamp(doc)
	if c.col == 0 {
		return c
	}
	return New(c.line, c.col-1)
}

// Right moves one cell forward, stopping at the append position.
func (c Cursor) Right(doc *line.Document) Cursor {
	c = c.Clamp(doc)
	if c.col >= doc.LineLen(c.line) {
		return c
	}
	return New(c.line, c.col+1)
}

// StartOfLine moves to the first cell of the line.
func (c Cursor) StartOfLine(doc *line.Document) Cursor {
	return New(c.Clamp(doc).line, 0)
}

// EndOfLine moves to the last cell of the line, or the append position on
// an empty line.
func (c Cursor) EndOfLine(doc *line.Document) Cursor {
	c = c.Clamp(doc)
	n := doc.LineLen(c.line)
	if n == 0 {
		return New(c.line, 0)
	}
	return New(c.line, n-1)
}

// AppendPosition moves past the last cell of the line.
func (c Cursor) AppendPosition(doc *line.Document) Cursor {
	c = c.Clamp(doc)
	return New(c.line, doc.LineLen(c.line))
}

// ToColumn moves to column n of the current line, clamped to the line.
func (c Cursor) ToColumn(doc *line.Document, n int) Cursor {
	return New(c.line, n).Clamp(doc)
}

// ToLine moves to the first cell of line index n.
func ToLine(doc *line.Document, n int) (Cursor, error) {
	if n < 0 || n >= doc.LineCount() {
		return Cursor{}, fmt.Errorf("%w: %d", line.ErrInvalidLineNumber, n+1)
	}
	return New(n, 0), nil
}
