package line

import (
	"fmt"
	"strings"
)

// CellID identifies a cell within the Line that owns it.
// A CellID is only meaningful for that Line.
type CellID int

// NoCell is the "none" sentinel: the previous link of the head, the next
// link of the tail, and the result of failed lookups.
const NoCell CellID = -1

// cell is one character slot in a Line's arena.
type cell struct {
	value rune
	prev  CellID
	next  CellID
	live  bool
}

// Line is a mutable chain of character cells.
type Line struct {
	cells  []cell
	free   []CellID
	head   CellID
	tail   CellID
	length int
}

// New creates an empty line.
func New() *Line {
	return &Line{head: NoCell, tail: NoCell}
}

// FromText creates a line holding the characters of s in order.
func FromText(s string) *Line {
	l := New()
	for _, r := range s {
		l.Append(r)
	}
	return l
}

// Len returns the number of cells in the line.
func (l *Line) Len() int {
	return l.length
}

// IsEmpty returns true if the line has no cells.
func (l *Line) IsEmpty() bool {
	return l.length == 0
}

// Head returns the first cell, or NoCell if the line is empty.
func (l *Line) Head() CellID {
	return l.head
}

// Tail returns the last cell, or NoCell if the line is empty.
func (l *Line) Tail() CellID {
	return l.tail
}

// Next returns the cell after id, or NoCell.
func (l *Line) Next(id CellID) CellID {
	if !l.live(id) {
		return NoCell
	}
	return l.cells[id].next
}

// Prev returns the cell before id, or NoCell.
func (l *Line) Prev(id CellID) CellID {
	if !l.live(id) {
		return NoCell
	}
	return l.cells[id].prev
}

// Value returns the character stored in id.
// Returns 0 if id is not a live cell of this line.
func (l *Line) Value(id CellID) rune {
	if !l.live(id) {
		return 0
	}
	return l.cells[id].value
}

// Set overwrites the character stored in id.
func (l *Line) Set(id CellID, r rune) error {
	if !l.live(id) {
		return ErrInvalidCell
	}
	l.cells[id].value = r
	return nil
}

// Contains returns true if id is a live cell of this line.
func (l *Line) Contains(id CellID) bool {
	return l.live(id)
}

func (l *Line) live(id CellID) bool {
	return id >= 0 && int(id) < len(l.cells) && l.cells[id].live
}

// alloc takes a slot from the free list or grows the arena.
func (l *Line) alloc(r rune) CellID {
	c := cell{value: r, prev: NoCell, next: NoCell, live: true}
	if n := len(l.free); n > 0 {
		id := l.free[n-1]
		l.free = l.free[:n-1]
		l.cells[id] = c
		return id
	}
	l.cells = append(l.cells, c)
	return CellID(len(l.cells) - 1)
}

// release returns a detached slot to the free list.
func (l *Line) release(id CellID) {
	l.cells[id] = cell{prev: NoCell, next: NoCell}
	l.free = append(l.free, id)
}

// InsertAfter inserts r directly after id and returns the new cell.
func (l *Line) InsertAfter(id CellID, r rune) (CellID, error) {
	if !l.live(id) {
		return NoCell, ErrInvalidCell
	}

	n := l.alloc(r)
	next := l.cells[id].next

	l.cells[n].prev = id
	l.cells[n].next = next
	l.cells[id].next = n
	if next == NoCell {
		l.tail = n
	} else {
		l.cells[next].prev = n
	}

	l.length++
	return n, nil
}

// InsertAtHead inserts r before the first cell and returns the new cell.
func (l *Line) InsertAtHead(r rune) CellID {
	n := l.alloc(r)
	l.cells[n].next = l.head
	if l.head == NoCell {
		l.tail = n
	} else {
		l.cells[l.head].prev = n
	}
	l.head = n
	l.length++
	return n
}

// Append inserts r after the last cell and returns the new cell.
func (l *Line) Append(r rune) CellID {
	if l.tail == NoCell {
		return l.InsertAtHead(r)
	}
	n, _ := l.InsertAfter(l.tail, r)
	return n
}

// InsertAt inserts r so that it ends up at the given offset.
// An offset equal to Len appends.
func (l *Line) InsertAt(offset int, r rune) (CellID, error) {
	if offset < 0 || offset > l.length {
		return NoCell, ErrOffsetOutOfRange
	}
	if offset == 0 {
		return l.InsertAtHead(r), nil
	}
	return l.InsertAfter(l.CellAt(offset-1), r)
}

// Remove unlinks id from the chain. Neighbours are linked directly to each
// other and the head or tail reference is updated when id was at an end.
func (l *Line) Remove(id CellID) error {
	if !l.live(id) {
		return ErrInvalidCell
	}

	prev, next := l.cells[id].prev, l.cells[id].next
	if prev == NoCell {
		l.head = next
	} else {
		l.cells[prev].next = next
	}
	if next == NoCell {
		l.tail = prev
	} else {
		l.cells[next].prev = prev
	}

	l.release(id)
	l.length--
	return nil
}

// CellAt returns the cell at a 0-based offset, or NoCell if the offset is
// outside [0, Len).
func (l *Line) CellAt(offset int) CellID {
	if offset < 0 || offset >= l.length {
		return NoCell
	}
	// Walk from whichever end is closer.
	if offset <= l.length/2 {
		id := l.head
		for i := 0; i < offset; i++ {
			id = l.cells[id].next
		}
		return id
	}
	id := l.tail
	for i := l.length - 1; i > offset; i-- {
		id = l.cells[id].prev
	}
	return id
}

// Offset returns the 0-based position of id, or -1 if it is not in the line.
func (l *Line) Offset(id CellID) int {
	if !l.live(id) {
		return -1
	}
	offset := 0
	for cur := l.head; cur != NoCell; cur = l.cells[cur].next {
		if cur == id {
			return offset
		}
		offset++
	}
	return -1
}

// String returns the text of the line.
func (l *Line) String() string {
	var sb strings.Builder
	sb.Grow(l.length)
	for id := l.head; id != NoCell; id = l.cells[id].next {
		sb.WriteRune(l.cells[id].value)
	}
	return sb.String()
}

// Runes returns the characters of the line in order.
func (l *Line) Runes() []rune {
	out := make([]rune, 0, l.length)
	for id := l.head; id != NoCell; id = l.cells[id].next {
		out = append(out, l.cells[id].value)
	}
	return out
}

// Reset discards the whole chain and rebuilds it from text.
func (l *Line) Reset(text string) {
	l.cells = l.cells[:0]
	l.free = l.free[:0]
	l.head, l.tail, l.length = NoCell, NoCell, 0
	for _, r := range text {
		l.Append(r)
	}
}

// Split detaches every cell at offset >= at and returns them as a new Line.
// The receiver keeps the cells before at. Values are copied into the new
// Line in their original order; the total cell count is preserved.
func (l *Line) Split(at int) (*Line, error) {
	if at < 0 || at > l.length {
		return nil, ErrOffsetOutOfRange
	}

	right := New()
	start := l.CellAt(at)
	if start == NoCell {
		return right, nil
	}

	newTail := l.cells[start].prev
	for id := start; id != NoCell; {
		next := l.cells[id].next
		right.Append(l.cells[id].value)
		l.release(id)
		l.length--
		id = next
	}

	l.tail = newTail
	if newTail == NoCell {
		l.head = NoCell
	} else {
		l.cells[newTail].next = NoCell
	}
	return right, nil
}

// Join appends copies of other's characters after the last cell.
// other is left untouched.
func (l *Line) Join(other *Line) {
	for id := other.head; id != NoCell; id = other.cells[id].next {
		l.Append(other.cells[id].value)
	}
}

// Splice replaces the n cells starting at offset with the characters of
// text. Matched cells are overwritten in place; surplus cells are removed
// when text is shorter and new cells are linked in when it is longer.
func (l *Line) Splice(offset, n int, text string) error {
	if offset < 0 || n < 0 || offset+n > l.length {
		return ErrOffsetOutOfRange
	}

	repl := []rune(text)
	id := l.CellAt(offset)
	prev := l.tail
	if id != NoCell {
		prev = l.cells[id].prev
	}

	i := 0
	for ; i < len(repl) && i < n; i++ {
		l.cells[id].value = repl[i]
		prev = id
		id = l.cells[id].next
	}
	for k := i; k < n; k++ {
		next := l.cells[id].next
		_ = l.Remove(id)
		id = next
	}
	for ; i < len(repl); i++ {
		if prev == NoCell {
			prev = l.InsertAtHead(repl[i])
			continue
		}
		prev, _ = l.InsertAfter(prev, repl[i])
	}
	return nil
}

// Validate walks the chain in both directions and reports any broken link,
// cycle, or length mismatch.
func (l *Line) Validate() error {
	if (l.head == NoCell) != (l.tail == NoCell) {
		return fmt.Errorf("%w: head %d tail %d", ErrCorruptChain, l.head, l.tail)
	}
	if l.head != NoCell && l.cells[l.head].prev != NoCell {
		return fmt.Errorf("%w: head has a previous cell", ErrCorruptChain)
	}
	if l.tail != NoCell && l.cells[l.tail].next != NoCell {
		return fmt.Errorf("%w: tail has a next cell", ErrCorruptChain)
	}

	count := 0
	prev := NoCell
	for id := l.head; id != NoCell; id = l.cells[id].next {
		if !l.live(id) {
			return fmt.Errorf("%w: dead cell %d in chain", ErrCorruptChain, id)
		}
		if l.cells[id].prev != prev {
			return fmt.Errorf("%w: cell %d prev %d, want %d", ErrCorruptChain, id, l.cells[id].prev, prev)
		}
		count++
		if count > len(l.cells) {
			return fmt.Errorf("%w: cycle detected", ErrCorruptChain)
		}
		prev = id
	}
	if prev != l.tail {
		return fmt.Errorf("%w: forward walk ends at %d, tail is %d", ErrCorruptChain, prev, l.tail)
	}
	if count != l.length {
		return fmt.Errorf("%w: walked %d cells, length %d", ErrCorruptChain, count, l.length)
	}

	back := 0
	for id := l.tail; id != NoCell; id = l.cells[id].prev {
		back++
		if back > count {
			return fmt.Errorf("%w: backward walk longer than forward", ErrCorruptChain)
		}
	}
	if back != count {
		return fmt.Errorf("%w: backward walk %d, forward %d", ErrCorruptChain, back, count)
	}
	return nil
}
