package line

import (
	"fmt"
	"strings"
)

// DefaultWrapWidth is the line length that triggers a soft wrap.
const DefaultWrapWidth = 30

// Document is an ordered sequence of Lines.
// A Document always holds at least one Line.
type Document struct {
	lines     []*Line
	wrapWidth int
}

// Option configures a Document.
type Option func(*Document)

// WithWrapWidth sets the soft-wrap width. Non-positive values are ignored.
func WithWrapWidth(width int) Option {
	return func(d *Document) {
		if width > 0 {
			d.wrapWidth = width
		}
	}
}

// NewDocument creates a document holding a single empty line.
func NewDocument(opts ...Option) *Document {
	d := &Document{
		lines:     []*Line{New()},
		wrapWidth: DefaultWrapWidth,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// FromLines creates a document from line texts.
// An empty slice yields a document with one empty line.
func FromLines(texts []string, opts ...Option) *Document {
	d := NewDocument(opts...)
	d.SetLines(texts)
	return d
}

// WrapWidth returns the soft-wrap width.
func (d *Document) WrapWidth() int {
	return d.wrapWidth
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Line returns the line at index i.
func (d *Document) Line(i int) (*Line, error) {
	if i < 0 || i >= len(d.lines) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLineNumber, i+1)
	}
	return d.lines[i], nil
}

// Text returns the text of line i, or "" if i is out of range.
func (d *Document) Text(i int) string {
	if i < 0 || i >= len(d.lines) {
		return ""
	}
	return d.lines[i].String()
}

// LineLen returns the cell count of line i, or 0 if i is out of range.
func (d *Document) LineLen(i int) int {
	if i < 0 || i >= len(d.lines) {
		return 0
	}
	return d.lines[i].Len()
}

// Lines returns the text of every line.
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	for i, l := range d.lines {
		out[i] = l.String()
	}
	return out
}

// String returns the document text with lines joined by newlines.
func (d *Document) String() string {
	return strings.Join(d.Lines(), "\n")
}

// SetLines replaces the whole document with the given line texts.
func (d *Document) SetLines(texts []string) {
	lines := make([]*Line, 0, max(len(texts), 1))
	for _, t := range texts {
		lines = append(lines, FromText(t))
	}
	if len(lines) == 0 {
		lines = append(lines, New())
	}
	d.lines = lines
}

// InsertLine places l at index i, shifting later lines down.
// i may equal LineCount to append.
func (d *Document) InsertLine(i int, l *Line) error {
	if i < 0 || i > len(d.lines) {
		return fmt.Errorf("%w: %d", ErrInvalidLineNumber, i+1)
	}
	if l == nil {
		l = New()
	}
	d.lines = append(d.lines, nil)
	copy(d.lines[i+1:], d.lines[i:])
	d.lines[i] = l
	return nil
}

// DeleteLine removes line i. Deleting the only line leaves one empty line.
func (d *Document) DeleteLine(i int) error {
	if i < 0 || i >= len(d.lines) {
		return fmt.Errorf("%w: %d", ErrInvalidLineNumber, i+1)
	}
	if len(d.lines) == 1 {
		d.lines[0] = New()
		return nil
	}
	d.lines = append(d.lines[:i], d.lines[i+1:]...)
	return nil
}

// SplitLine splits line i at a cell offset. The cells from offset on move
// to a new line inserted at i+1. Both halves are returned.
func (d *Document) SplitLine(i, offset int) (left, right *Line, err error) {
	left, err = d.Line(i)
	if err != nil {
		return nil, nil, err
	}
	if offset < 0 || offset > left.Len() {
		return nil, nil, ErrOffsetOutOfRange
	}
	right, err = left.Split(offset)
	if err != nil {
		return nil, nil, err
	}
	_ = d.InsertLine(i+1, right)
	return left, right, nil
}

// JoinWithNext appends the cells of line i+1 to line i and removes line
// i+1, shifting every later index down by one.
func (d *Document) JoinWithNext(i int) error {
	if i < 0 || i+1 >= len(d.lines) {
		return fmt.Errorf("%w: no line after %d", ErrInvalidLineNumber, i+1)
	}
	d.lines[i].Join(d.lines[i+1])
	d.lines = append(d.lines[:i+1], d.lines[i+2:]...)
	return nil
}

// Wrap applies the soft-wrap policy to line i: when the line is longer
// than the wrap width, the overflow moves to a new line at i+1.
// Returns true if a wrap happened.
func (d *Document) Wrap(i int) (bool, error) {
	l, err := d.Line(i)
	if err != nil {
		return false, err
	}
	if l.Len() <= d.wrapWidth {
		return false, nil
	}
	if _, _, err := d.SplitLine(i, d.wrapWidth); err != nil {
		return false, err
	}
	return true, nil
}

// Validate checks every line's chain.
func (d *Document) Validate() error {
	if len(d.lines) == 0 {
		return fmt.Errorf("%w: document has no lines", ErrCorruptChain)
	}
	for i, l := range d.lines {
		if err := l.Validate(); err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	return nil
}
