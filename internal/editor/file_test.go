package editor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/cellvim/internal/project/filestore"
)

func TestOpen(t *testing.T) {
	e, mem := newEditor(t)
	require.NoError(t, mem.AddFile("/src/a.txt", "one\ntwo\n"))

	require.NoError(t, e.Open(context.Background(), "/src/a.txt"))
	assert.Equal(t, []string{"one", "two"}, e.Lines())
	assert.Equal(t, "/src/a.txt", e.FileName())
	assert.False(t, e.Modified())
}

func TestOpenFailureLeavesDocument(t *testing.T) {
	e, _ := newEditor(t, "keep", "me")
	e.SetFileName("/orig.txt")
	require.NoError(t, typeKeys(t, e, "j$"))

	err := e.Open(context.Background(), "/missing.txt")
	require.ErrorIs(t, err, filestore.ErrFileUnavailable)
	assert.Equal(t, []string{"keep", "me"}, e.Lines())
	assert.Equal(t, "/orig.txt", e.FileName())
	assert.Equal(t, 1, e.Cursor().Line())
}

func TestEditCommand(t *testing.T) {
	e, mem := newEditor(t, "x")
	require.NoError(t, mem.AddFile("/b.txt", "b\n"))

	require.NoError(t, typeKeys(t, e, "ix<Esc>:e /b.txt<CR>"))
	assert.ErrorIs(t, e.RunCommand(context.Background(), "e /b.txt"), ErrUnsavedChanges)
	assert.Equal(t, []string{"xx"}, e.Lines())

	require.NoError(t, typeKeys(t, e, ":e! /b.txt<CR>"))
	assert.Equal(t, []string{"b"}, e.Lines())
	assert.False(t, e.Modified())
}

func TestWriteCommand(t *testing.T) {
	e, mem := newEditor(t)

	require.NoError(t, typeKeys(t, e, "ihi<Esc>:w<CR>"))
	assert.Contains(t, e.Message(), "no file name")
	assert.True(t, e.Modified())

	require.NoError(t, typeKeys(t, e, ":w /out.txt<CR>"))
	data, err := mem.ReadFile("/out.txt")
	require.NoError(t, err)
	assert.Equal(t, "hi\n", string(data))
	assert.False(t, e.Modified())
	assert.Equal(t, "/out.txt", e.FileName())

	require.NoError(t, typeKeys(t, e, "A!<Esc>:w<CR>"))
	data, err = mem.ReadFile("/out.txt")
	require.NoError(t, err)
	assert.Equal(t, "hi!\n", string(data))
}

func TestWriteCopyKeepsModified(t *testing.T) {
	e, mem := newEditor(t)
	e.SetFileName("/main.txt")

	require.NoError(t, typeKeys(t, e, "ia<Esc>:w /copy.txt<CR>"))
	assert.True(t, mem.Exists("/copy.txt"))
	assert.True(t, e.Modified(), "writing a copy leaves the buffer unsaved")
	assert.Equal(t, "/main.txt", e.FileName())
}

func TestSaveFailureLeavesState(t *testing.T) {
	e, mem := newEditor(t)
	require.NoError(t, mem.AddFile("/ro.txt", "old\n"))
	mem.SetReadOnly("/ro.txt", true)
	require.NoError(t, e.Open(context.Background(), "/ro.txt"))

	require.NoError(t, typeKeys(t, e, "Anew<Esc>:w<CR>"))
	assert.Contains(t, e.Message(), "permission denied")
	assert.True(t, e.Modified())
	assert.Equal(t, []string{"oldnew"}, e.Lines())

	data, err := mem.ReadFile("/ro.txt")
	require.NoError(t, err)
	assert.Equal(t, "old\n", string(data))
}

func TestQuitWithUnsavedChanges(t *testing.T) {
	e, _ := newEditor(t)

	require.NoError(t, typeKeys(t, e, "ix<Esc>"))
	require.NoError(t, typeKeys(t, e, ":q<CR>"), "blocked quit is reported, not returned")
	assert.Contains(t, e.Message(), "no write since last change")
	assert.ErrorIs(t, e.Quit(false), ErrUnsavedQuit)

	assert.ErrorIs(t, typeKeys(t, e, ":q!<CR>"), ErrQuit)
}

func TestForcedQuitAlwaysSucceeds(t *testing.T) {
	for _, modified := range []bool{false, true} {
		e, _ := newEditor(t, "a")
		if modified {
			require.NoError(t, typeKeys(t, e, "x"))
		}
		assert.Equal(t, modified, e.Modified())
		assert.ErrorIs(t, e.Quit(true), ErrQuit)
	}
}

func TestQuitUnmodified(t *testing.T) {
	e, _ := newEditor(t, "a")
	assert.ErrorIs(t, typeKeys(t, e, ":q<CR>"), ErrQuit)
}

func TestWriteQuit(t *testing.T) {
	e, mem := newEditor(t)

	assert.ErrorIs(t, typeKeys(t, e, "ibye<Esc>:wq /f.txt<CR>"), ErrQuit)
	data, err := mem.ReadFile("/f.txt")
	require.NoError(t, err)
	assert.Equal(t, "bye\n", string(data))
}

func TestWriteQuitCopyBlocksWithUnsavedChanges(t *testing.T) {
	e, mem := newEditor(t)
	e.SetFileName("/main.txt")

	require.NoError(t, typeKeys(t, e, "ia<Esc>:wq /copy.txt<CR>"))
	assert.True(t, mem.Exists("/copy.txt"))
	assert.True(t, e.Modified())
	assert.Contains(t, e.Message(), "no write since last change")

	assert.ErrorIs(t, typeKeys(t, e, ":wq<CR>"), ErrQuit)
}

func TestWriteQuitFailureDoesNotQuit(t *testing.T) {
	e, _ := newEditor(t)
	require.NoError(t, typeKeys(t, e, "ix<Esc>:wq /no/dir/f.txt<CR>"))
	assert.Contains(t, e.Message(), "file does not exist")
	assert.True(t, e.Modified())
}
