package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/cellvim/internal/engine/line"
)

func doc(lines ...string) *line.Document {
	return line.FromLines(lines)
}

func TestNewClampsNegative(t *testing.T) {
	c := New(-1, -5)
	assert.Equal(t, 0, c.Line())
	assert.Equal(t, 0, c.Col())
}

func TestClamp(t *testing.T) {
	d := doc("abc", "de")
	tests := []struct {
		name string
		in   Cursor
		want Cursor
	}{
		{"valid", New(0, 2), New(0, 2)},
		{"append", New(0, 3), New(0, 3)},
		{"past end", New(1, 9), New(1, 2)},
		{"past last line", New(5, 1), New(1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equals(tt.in.Clamp(d)), "got %s", tt.in.Clamp(d))
		})
	}
}

func TestVerticalMotionClampsAtEdges(t *testing.T) {
	d := doc("one", "two", "three")

	c := New(0, 2).Up(d)
	assert.Equal(t, New(0, 2), c)

	c = c.Down(d)
	assert.Equal(t, New(1, 0), c)
	c = c.Down(d).Down(d)
	assert.Equal(t, New(2, 0), c)

	c = c.Up(d)
	assert.Equal(t, New(1, 0), c)
}

func TestHorizontalMotionClampsAtLineEdges(t *testing.T) {
	d := doc("ab", "cd")

	c := New(0, 0).Left(d)
	assert.Equal(t, New(0, 0), c)

	c = c.Right(d).Right(d).Right(d)
	assert.Equal(t, New(0, 2), c, "right stops at the append position")
	assert.True(t, c.IsAppend(d))

	c = c.Left(d)
	assert.Equal(t, New(0, 1), c)
}

func TestStartEndOfLine(t *testing.T) {
	d := doc("hello", "")
	c := New(0, 2)
	assert.Equal(t, New(0, 0), c.StartOfLine(d))
	assert.Equal(t, New(0, 4), c.EndOfLine(d))
	assert.Equal(t, New(0, 5), c.AppendPosition(d))

	empty := New(1, 0)
	assert.Equal(t, New(1, 0), empty.EndOfLine(d))
	assert.True(t, empty.IsAppend(d))
	assert.Equal(t, line.NoCell, empty.Cell(d))
}

func TestToColumn(t *testing.T) {
	d := doc("hello")
	assert.Equal(t, New(0, 3), New(0, 0).ToColumn(d, 3))
	assert.Equal(t, New(0, 5), New(0, 0).ToColumn(d, 50))
}

func TestToLine(t *testing.T) {
	d := doc("a", "b")
	c, err := ToLine(d, 1)
	require.NoError(t, err)
	assert.Equal(t, New(1, 0), c)

	_, err = ToLine(d, 2)
	require.ErrorIs(t, err, line.ErrInvalidLineNumber)
}

func TestCell(t *testing.T) {
	d := doc("xyz")
	l, _ := d.Line(0)
	c := New(0, 1)
	assert.Equal(t, 'y', l.Value(c.Cell(d)))
}
