package search

import (
	"fmt"
	"slices"

	"github.com/dshills/cellvim/internal/engine/line"
)

// Scope selects which lines a replacement may touch.
type Scope uint8

const (
	// ScopeLine limits replacement to Options.Line.
	ScopeLine Scope = iota
	// ScopeDocument walks every line in order.
	ScopeDocument
)

// String returns the scope name.
func (s Scope) String() string {
	switch s {
	case ScopeLine:
		return "line"
	case ScopeDocument:
		return "document"
	default:
		return "unknown"
	}
}

// Options controls a replacement.
type Options struct {
	// Scope selects line or document granularity.
	Scope Scope
	// Line is the line index for ScopeLine.
	Line int
	// Global replaces every occurrence within a line instead of the first.
	// For ScopeDocument it also continues past the first matching line.
	Global bool
}

// Result describes a completed replacement.
type Result struct {
	// Count is the number of occurrences replaced.
	Count int
	// Lines lists the indexes of rewritten lines in order.
	Lines []int
	// First is the position of the first replaced occurrence.
	First Match
}

// Replace substitutes occurrences of old with repl according to opts.
// It returns ErrEmptyPattern without touching the document when old is
// empty, and ErrNoMatch when nothing was replaced.
func Replace(doc *line.Document, old, repl string, opts Options) (Result, error) {
	if old == "" {
		return Result{}, ErrEmptyPattern
	}

	var res Result
	switch opts.Scope {
	case ScopeLine:
		l, err := doc.Line(opts.Line)
		if err != nil {
			return Result{}, err
		}
		res.record(opts.Line, replaceInLine(l, []rune(old), repl, opts.Global))

	case ScopeDocument:
		for i := 0; i < doc.LineCount(); i++ {
			l, _ := doc.Line(i)
			offsets := replaceInLine(l, []rune(old), repl, opts.Global)
			res.record(i, offsets)
			if len(offsets) > 0 && !opts.Global {
				break
			}
		}

	default:
		return Result{}, fmt.Errorf("replace: unknown scope %d", opts.Scope)
	}

	if res.Count == 0 {
		return Result{}, fmt.Errorf("%w: %s", ErrNoMatch, old)
	}
	return res, nil
}

// ReplaceInDocument replaces the first occurrence in the first line that
// contains old, or with global every occurrence in every line.
func ReplaceInDocument(doc *line.Document, old, repl string, global bool) (Result, error) {
	return Replace(doc, old, repl, Options{Scope: ScopeDocument, Global: global})
}

// ReplaceFirst replaces the first occurrence of old in line lineIdx.
func ReplaceFirst(doc *line.Document, lineIdx int, old, repl string) (Result, error) {
	return Replace(doc, old, repl, Options{Scope: ScopeLine, Line: lineIdx})
}

// ReplaceAll replaces every occurrence of old in line lineIdx.
func ReplaceAll(doc *line.Document, lineIdx int, old, repl string) (Result, error) {
	return Replace(doc, old, repl, Options{Scope: ScopeLine, Line: lineIdx, Global: true})
}

func (r *Result) record(lineIdx int, offsets []int) {
	if len(offsets) == 0 {
		return
	}
	if r.Count == 0 {
		r.First = Match{Line: lineIdx, Col: offsets[0]}
	}
	r.Count += len(offsets)
	r.Lines = append(r.Lines, lineIdx)
}

// replaceInLine finds non-overlapping occurrences of old on the line's text
// and splices repl over each. Matching resumes after the end of each
// occurrence in the original text, so replacement text is never rescanned.
// Returns the original offsets of the replaced occurrences.
func replaceInLine(l *line.Line, old []rune, repl string, global bool) []int {
	text := l.Runes()

	var offsets []int
	for i := 0; i+len(old) <= len(text); {
		if !slices.Equal(text[i:i+len(old)], old) {
			i++
			continue
		}
		offsets = append(offsets, i)
		if !global {
			break
		}
		i += len(old)
	}

	// Patch from the right so earlier offsets stay valid.
	for k := len(offsets) - 1; k >= 0; k-- {
		_ = l.Splice(offsets[k], len(old), repl)
	}
	return offsets
}
