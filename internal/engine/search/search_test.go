package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dshills/cellvim/internal/engine/line"
)

func TestSearchThenFindNext(t *testing.T) {
	doc := line.FromLines([]string{"abcabc", "xyz"})
	e := NewEngine()

	m, err := e.Search(doc, "abc")
	require.NoError(t, err)
	assert.Equal(t, Match{Line: 0, Col: 0}, m)

	m, err = e.FindNext(doc)
	require.NoError(t, err)
	assert.Equal(t, Match{Line: 0, Col: 3}, m)

	_, err = e.FindNext(doc)
	require.ErrorIs(t, err, ErrNoMatch)

	last, ok := e.LastMatch()
	assert.True(t, ok)
	assert.Equal(t, Match{Line: 0, Col: 3}, last, "failed repeat keeps the last match")
}

func TestSearchFailureClearsMatch(t *testing.T) {
	doc := line.FromLines([]string{"hello", "world"})
	e := NewEngine()

	_, err := e.Search(doc, "wor")
	require.NoError(t, err)

	_, err = e.Search(doc, "nope")
	require.ErrorIs(t, err, ErrNoMatch)

	st := e.State()
	assert.False(t, st.HasMatch)
	assert.Equal(t, "nope", st.Pattern)
}

func TestSearchEmptyPattern(t *testing.T) {
	e := NewEngine()
	_, err := e.Search(line.NewDocument(), "")
	require.ErrorIs(t, err, ErrEmptyPattern)
}

func TestSearchAcrossLines(t *testing.T) {
	doc := line.FromLines([]string{"one", "two", "three two"})
	e := NewEngine()

	m, err := e.Search(doc, "two")
	require.NoError(t, err)
	assert.Equal(t, Match{Line: 1, Col: 0}, m)

	m, err = e.FindNext(doc)
	require.NoError(t, err)
	assert.Equal(t, Match{Line: 2, Col: 6}, m)
}

func TestSearchPatternLongerThanLine(t *testing.T) {
	doc := line.FromLines([]string{"ab", "abc"})
	m, err := NewEngine().Search(doc, "abc")
	require.NoError(t, err)
	assert.Equal(t, Match{Line: 1, Col: 0}, m)
}

func TestRepeatWithoutPattern(t *testing.T) {
	doc := line.FromLines([]string{"abc"})
	e := NewEngine()

	_, err := e.FindNext(doc)
	require.ErrorIs(t, err, ErrNoPreviousSearch)
	_, err = e.FindPrevious(doc)
	require.ErrorIs(t, err, ErrNoPreviousSearch)
}

func TestFindPreviousPrefersForward(t *testing.T) {
	doc := line.FromLines([]string{"x", "x", "x"})
	e := NewEngine()
	e.Remember("x", Match{Line: 1, Col: 0})

	m, err := e.FindPrevious(doc)
	require.NoError(t, err)
	assert.Equal(t, Match{Line: 2, Col: 0}, m, "forward phase wins while a later match exists")
}

func TestFindPreviousFallsBackToEarlierLines(t *testing.T) {
	doc := line.FromLines([]string{"x x", "x", "y"})
	e := NewEngine()
	e.Remember("x", Match{Line: 2, Col: 0})

	m, err := e.FindPrevious(doc)
	require.NoError(t, err)
	assert.Equal(t, Match{Line: 1, Col: 0}, m, "nearest earlier line first")

	m, err = e.FindPrevious(doc)
	require.NoError(t, err)
	assert.Equal(t, Match{Line: 0, Col: 0}, m, "earliest match within the line")
}

func TestFindPreviousNothing(t *testing.T) {
	doc := line.FromLines([]string{"abc"})
	e := NewEngine()
	_, err := e.Search(doc, "abc")
	require.NoError(t, err)

	_, err = e.FindPrevious(doc)
	require.ErrorIs(t, err, ErrNoMatch)
}

func TestMatchAt(t *testing.T) {
	l := line.FromText("hello")
	assert.True(t, MatchAt(l, l.CellAt(1), []rune("ell")))
	assert.False(t, MatchAt(l, l.CellAt(3), []rune("lox")))
	assert.False(t, MatchAt(l, l.CellAt(3), []rune("lo!")), "runs off the tail")
	assert.False(t, MatchAt(l, l.Head(), nil))
}

func TestSearchAgreesWithTextView(t *testing.T) {
	alphabet := []rune("ab ")
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(rapid.StringOfN(rapid.RuneFrom(alphabet), 0, 8, -1), 1, 4).Draw(t, "lines")
		pattern := rapid.StringOfN(rapid.RuneFrom(alphabet), 1, 3, -1).Draw(t, "pattern")

		doc := line.FromLines(lines)
		m, err := NewEngine().Search(doc, pattern)

		for i, text := range lines {
			if col := runeIndex(text, pattern); col >= 0 {
				if err != nil {
					t.Fatalf("expected match in line %d: %v", i, err)
				}
				if m != (Match{Line: i, Col: col}) {
					t.Fatalf("got %+v, want line %d col %d", m, i, col)
				}
				return
			}
		}
		if err == nil {
			t.Fatalf("unexpected match %+v", m)
		}
	})
}

func runeIndex(s, sub string) int {
	rs, sr := []rune(s), []rune(sub)
	for i := 0; i+len(sr) <= len(rs); i++ {
		if string(rs[i:i+len(sr)]) == sub {
			return i
		}
	}
	return -1
}
