package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/cellvim/internal/input/mode"
)

func TestStatusSnapshot(t *testing.T) {
	e, _ := newEditor(t, "abc", "def")
	e.SetFileName("/tmp/notes.txt")

	require.NoError(t, typeKeys(t, e, "jlx"))
	s := e.Status()
	assert.Equal(t, "NORMAL", s.Mode)
	assert.Equal(t, 2, s.Line)
	assert.Equal(t, 2, s.Column)
	assert.Equal(t, 2, s.TotalLines)
	assert.Equal(t, "Delete Char", s.LastCommand)
	assert.True(t, s.Modified)
	assert.Equal(t, mode.CursorBlock, s.CursorStyle)
	assert.Equal(t, "NORMAL  notes.txt [+]  2/2:2  Delete Char", s.String())
}

func TestStatusTracksMode(t *testing.T) {
	e, _ := newEditor(t)
	require.NoError(t, typeKeys(t, e, "i"))
	s := e.Status()
	assert.Equal(t, "INSERT", s.Mode)
	assert.Equal(t, mode.CursorBar, s.CursorStyle)
}

func TestStatusPendingKeys(t *testing.T) {
	e, _ := newEditor(t, "a")
	require.NoError(t, typeKeys(t, e, "12d"))
	assert.Equal(t, "12d", e.Status().Pending)
	assert.Equal(t, mode.CursorUnderline, e.Status().CursorStyle)
}

func TestStatusNoName(t *testing.T) {
	s := Status{Mode: "NORMAL", Line: 1, Column: 1, TotalLines: 1}
	assert.Equal(t, "NORMAL  [No Name]  1/1:1", s.String())
}

func TestHistoryRecordsCommands(t *testing.T) {
	e, _ := newEditor(t, "a", "b", "c")

	require.NoError(t, typeKeys(t, e, "2dd/c<CR>:s/c/d<CR>"))
	assert.Equal(t, []string{"Delete Line x2", "/c", ":s/c/d"}, e.History().Entries())
}

func TestHistoryBrowser(t *testing.T) {
	e, _ := newEditor(t, "abc")
	require.NoError(t, typeKeys(t, e, "x>>"))

	require.NoError(t, typeKeys(t, e, "M"))
	assert.True(t, e.Status().Browsing)
	assert.Equal(t, "history 2/2: Indent Line", e.Message())

	require.NoError(t, typeKeys(t, e, "<Up>"))
	assert.Equal(t, "history 1/2: Delete Char", e.Message())

	require.NoError(t, typeKeys(t, e, "<Up>"))
	assert.Equal(t, "history 1/2: Delete Char", e.Message(), "stops at the oldest entry")

	require.NoError(t, typeKeys(t, e, "<Down><CR>"))
	assert.Equal(t, "selected: Indent Line", e.Message())
	assert.False(t, e.Status().Browsing)

	assert.Equal(t, " bc", e.Lines()[0], "selection is never replayed")
	assert.Equal(t, 2, e.History().Len(), "browsing is not recorded")
}

func TestHistoryBrowserEmpty(t *testing.T) {
	e, _ := newEditor(t, "abc")
	require.NoError(t, typeKeys(t, e, "M<Up>"))
	assert.Equal(t, "history is empty", e.Message())

	require.NoError(t, typeKeys(t, e, "<Esc>"))
	assert.False(t, e.Status().Browsing)
	assert.Equal(t, "", e.Message())
}
