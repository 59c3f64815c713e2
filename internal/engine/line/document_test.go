package line

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNewDocument(t *testing.T) {
	d := NewDocument()
	require.Equal(t, 1, d.LineCount())
	require.Equal(t, "", d.Text(0))
	require.Equal(t, DefaultWrapWidth, d.WrapWidth())
	require.NoError(t, d.Validate())
}

func TestFromLines(t *testing.T) {
	d := FromLines([]string{"one", "two", "three"})
	require.Equal(t, 3, d.LineCount())
	require.Equal(t, []string{"one", "two", "three"}, d.Lines())
	require.Equal(t, "one\ntwo\nthree", d.String())

	empty := FromLines(nil)
	require.Equal(t, 1, empty.LineCount())
}

func TestDocumentLineOutOfRange(t *testing.T) {
	d := FromLines([]string{"a"})
	_, err := d.Line(1)
	require.ErrorIs(t, err, ErrInvalidLineNumber)
	_, err = d.Line(-1)
	require.ErrorIs(t, err, ErrInvalidLineNumber)
	assert.Equal(t, "", d.Text(5))
	assert.Equal(t, 0, d.LineLen(5))
}

func TestInsertLine(t *testing.T) {
	d := FromLines([]string{"a", "c"})
	require.NoError(t, d.InsertLine(1, FromText("b")))
	require.NoError(t, d.InsertLine(3, FromText("d")))
	require.NoError(t, d.InsertLine(0, nil))
	require.Equal(t, []string{"", "a", "b", "c", "d"}, d.Lines())

	require.ErrorIs(t, d.InsertLine(9, New()), ErrInvalidLineNumber)
}

func TestDeleteLine(t *testing.T) {
	d := FromLines([]string{"a", "b", "c"})
	require.NoError(t, d.DeleteLine(1))
	require.Equal(t, []string{"a", "c"}, d.Lines())

	require.ErrorIs(t, d.DeleteLine(2), ErrInvalidLineNumber)

	require.NoError(t, d.DeleteLine(0))
	require.NoError(t, d.DeleteLine(0))
	require.Equal(t, 1, d.LineCount())
	require.Equal(t, "", d.Text(0))
}

func TestSplitLine(t *testing.T) {
	d := FromLines([]string{"first", "hello world", "last"})
	left, right, err := d.SplitLine(1, 5)
	require.NoError(t, err)
	require.Equal(t, "hello", left.String())
	require.Equal(t, " world", right.String())
	require.Equal(t, []string{"first", "hello", " world", "last"}, d.Lines())

	_, _, err = d.SplitLine(1, 10)
	require.ErrorIs(t, err, ErrOffsetOutOfRange)
	_, _, err = d.SplitLine(7, 0)
	require.ErrorIs(t, err, ErrInvalidLineNumber)
	require.Equal(t, 4, d.LineCount())
}

func TestJoinWithNext(t *testing.T) {
	d := FromLines([]string{"foo", "bar", "baz"})
	require.NoError(t, d.JoinWithNext(0))
	require.Equal(t, []string{"foobar", "baz"}, d.Lines())

	require.ErrorIs(t, d.JoinWithNext(1), ErrInvalidLineNumber)
	require.Equal(t, []string{"foobar", "baz"}, d.Lines())
	require.NoError(t, d.Validate())
}

func TestJoinInvertsSplitProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		texts := rapid.SliceOfN(rapid.StringMatching(`[a-z ]{0,20}`), 1, 5).Draw(t, "lines")
		i := rapid.IntRange(0, len(texts)-1).Draw(t, "line")
		at := rapid.IntRange(0, len(texts[i])).Draw(t, "at")

		d := FromLines(texts)
		_, _, err := d.SplitLine(i, at)
		require.NoError(t, err)
		require.Equal(t, len(texts)+1, d.LineCount())
		require.Equal(t, len(texts[i]), d.LineLen(i)+d.LineLen(i+1))

		require.NoError(t, d.JoinWithNext(i))
		require.Equal(t, texts, d.Lines())
		require.NoError(t, d.Validate())
	})
}

func TestWrapSplitsOverflow(t *testing.T) {
	d := NewDocument()
	l, err := d.Line(0)
	require.NoError(t, err)

	for i := 0; i < 31; i++ {
		l.Append('a' + rune(i%26))
		_, err := d.Wrap(0)
		require.NoError(t, err)
	}

	require.Equal(t, 2, d.LineCount())
	require.Equal(t, 30, d.LineLen(0))
	require.Equal(t, 1, d.LineLen(1))
	require.Equal(t, "e", d.Text(1))
	require.NoError(t, d.Validate())
}

func TestWrapNoOpWithinWidth(t *testing.T) {
	d := FromLines([]string{strings.Repeat("x", 30)})
	wrapped, err := d.Wrap(0)
	require.NoError(t, err)
	require.False(t, wrapped)
	require.Equal(t, 1, d.LineCount())
}

func TestWithWrapWidth(t *testing.T) {
	d := FromLines([]string{"abcdef"}, WithWrapWidth(4))
	wrapped, err := d.Wrap(0)
	require.NoError(t, err)
	require.True(t, wrapped)
	require.Equal(t, []string{"abcd", "ef"}, d.Lines())

	ignored := NewDocument(WithWrapWidth(0))
	require.Equal(t, DefaultWrapWidth, ignored.WrapWidth())
}

func TestSetLines(t *testing.T) {
	d := FromLines([]string{"a", "b"})
	d.SetLines([]string{"x"})
	require.Equal(t, []string{"x"}, d.Lines())
	d.SetLines(nil)
	require.Equal(t, []string{""}, d.Lines())
}
