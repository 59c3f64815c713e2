package search

import (
	"fmt"

	"github.com/dshills/cellvim/internal/engine/line"
)

// Match is the position of a match: a line index and a 0-based cell offset.
type Match struct {
	Line int
	Col  int
}

// State is a snapshot of the search state.
type State struct {
	// Pattern is the last pattern searched for.
	Pattern string
	// Match is the last match; only meaningful when HasMatch is true.
	Match Match
	// HasMatch reports whether Match is set.
	HasMatch bool
}

// Engine tracks the last pattern and match.
// The zero value is ready to use.
type Engine struct {
	pattern  string
	match    Match
	hasMatch bool
}

// NewEngine creates an engine with no search state.
func NewEngine() *Engine {
	return &Engine{}
}

// State returns the current search state.
func (e *Engine) State() State {
	return State{Pattern: e.pattern, Match: e.match, HasMatch: e.hasMatch}
}

// Pattern returns the last pattern.
func (e *Engine) Pattern() string {
	return e.pattern
}

// LastMatch returns the last match, if any.
func (e *Engine) LastMatch() (Match, bool) {
	return e.match, e.hasMatch
}

// Remember records a match found elsewhere, such as by a replacement.
func (e *Engine) Remember(pattern string, m Match) {
	e.pattern = pattern
	e.match = m
	e.hasMatch = true
}

// Reset clears the search state.
func (e *Engine) Reset() {
	*e = Engine{}
}

// Search finds the first occurrence of pattern in doc, earliest line first
// and earliest column within a line. A failed search clears the recorded
// match but keeps the pattern for later repeats.
func (e *Engine) Search(doc *line.Document, pattern string) (Match, error) {
	if pattern == "" {
		return Match{}, ErrEmptyPattern
	}

	e.pattern = pattern
	m, ok := scanForward(doc, []rune(pattern), 0, 0)
	if !ok {
		e.match, e.hasMatch = Match{}, false
		return Match{}, fmt.Errorf("%w: %s", ErrNoMatch, pattern)
	}

	e.match, e.hasMatch = m, true
	return m, nil
}

// FindNext finds the next occurrence of the last pattern, starting one cell
// past the last match. The state is unchanged when nothing is found.
func (e *Engine) FindNext(doc *line.Document) (Match, error) {
	if e.pattern == "" {
		return Match{}, ErrNoPreviousSearch
	}

	from := e.resumePoint()
	m, ok := scanForward(doc, []rune(e.pattern), from.Line, from.Col)
	if !ok {
		return Match{}, fmt.Errorf("%w: no more occurrences of %s", ErrNoMatch, e.pattern)
	}

	e.match, e.hasMatch = m, true
	return m, nil
}

// FindPrevious repeats the last pattern in two phases. It first scans
// forward from one cell past the last match to the end of the document.
// Only when that finds nothing does it scan the lines before the last
// match, nearest line first, taking the earliest match in each.
func (e *Engine) FindPrevious(doc *line.Document) (Match, error) {
	if e.pattern == "" {
		return Match{}, ErrNoPreviousSearch
	}

	pat := []rune(e.pattern)
	from := e.resumePoint()
	if m, ok := scanForward(doc, pat, from.Line, from.Col); ok {
		e.match, e.hasMatch = m, true
		return m, nil
	}

	for i := from.Line - 1; i >= 0; i-- {
		l, err := doc.Line(i)
		if err != nil {
			continue
		}
		if col, ok := indexFrom(l, pat, 0); ok {
			e.match, e.hasMatch = Match{Line: i, Col: col}, true
			return e.match, nil
		}
	}

	return Match{}, fmt.Errorf("%w: no previous occurrences of %s", ErrNoMatch, e.pattern)
}

// resumePoint returns where repeat searches start: one cell past the last
// match, or the top of the document when there is none.
func (e *Engine) resumePoint() Match {
	if !e.hasMatch {
		return Match{}
	}
	return Match{Line: e.match.Line, Col: e.match.Col + 1}
}

// scanForward scans from (lineIdx, col) to the end of the document.
func scanForward(doc *line.Document, pat []rune, lineIdx, col int) (Match, bool) {
	for i := lineIdx; i < doc.LineCount(); i++ {
		l, err := doc.Line(i)
		if err != nil {
			return Match{}, false
		}
		start := 0
		if i == lineIdx {
			start = col
		}
		if c, ok := indexFrom(l, pat, start); ok {
			return Match{Line: i, Col: c}, true
		}
	}
	return Match{}, false
}

// indexFrom returns the offset of the first match at or after start.
func indexFrom(l *line.Line, pat []rune, start int) (int, bool) {
	col := start
	for id := l.CellAt(start); id != line.NoCell; id = l.Next(id) {
		if MatchAt(l, id, pat) {
			return col, true
		}
		col++
	}
	return 0, false
}

// MatchAt reports whether pat occurs in l starting at cell id, comparing
// one cell per pattern character along the chain.
func MatchAt(l *line.Line, id line.CellID, pat []rune) bool {
	if len(pat) == 0 {
		return false
	}
	for _, want := range pat {
		if id == line.NoCell || l.Value(id) != want {
			return false
		}
		id = l.Next(id)
	}
	return true
}
