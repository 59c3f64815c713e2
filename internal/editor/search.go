package editor

import (
	"fmt"

	"github.com/dshills/cellvim/internal/engine/cursor"
	"github.com/dshills/cellvim/internal/engine/line"
	"github.com/dshills/cellvim/internal/engine/search"
)

func (e *Editor) gotoMatch(m search.Match) {
	e.cur = cursor.New(m.Line, 0).ToColumn(e.doc, m.Col)
}

// searchFor finds the first occurrence of pattern and moves there.
func (e *Editor) searchFor(pattern string) error {
	m, err := e.search.Search(e.doc, pattern)
	if err != nil {
		return err
	}
	e.gotoMatch(m)
	e.message = "/" + pattern
	return nil
}

// findNext repeats the last search forward count times.
func (e *Editor) findNext(count int) error {
	return e.repeatSearch(count, e.search.FindNext)
}

// findPrevious repeats the last search backward count times.
func (e *Editor) findPrevious(count int) error {
	return e.repeatSearch(count, e.search.FindPrevious)
}

func (e *Editor) repeatSearch(count int, find func(*line.Document) (search.Match, error)) error {
	for range count {
		m, err := find(e.doc)
		if err != nil {
			return err
		}
		e.gotoMatch(m)
	}
	e.message = "/" + e.search.Pattern()
	return nil
}

// Substitute replaces old with repl on the cursor line, or in the whole
// document when document is set. The cursor moves to the first replaced
// occurrence, which also becomes the search match.
func (e *Editor) Substitute(old, repl string, global, document bool) error {
	opts := search.Options{Scope: search.ScopeLine, Line: e.cur.Line(), Global: global}
	if document {
		opts.Scope = search.ScopeDocument
	}

	res, err := search.Replace(e.doc, old, repl, opts)
	if err != nil {
		return err
	}

	e.search.Remember(old, res.First)
	e.gotoMatch(res.First)
	e.markModified()
	e.message = fmt.Sprintf("%d substitutions on %d lines", res.Count, len(res.Lines))
	e.logger.Debug().Int("count", res.Count).Str("scope", opts.Scope.String()).Msg("substitute")
	return nil
}
