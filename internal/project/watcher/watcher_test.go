package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpString(t *testing.T) {
	assert.Equal(t, "WRITE", OpWrite.String())
	assert.Equal(t, "CREATE|RENAME", (OpCreate | OpRename).String())
	assert.Equal(t, "UNKNOWN", Op(0).String())
}

func TestOpHas(t *testing.T) {
	op := OpWrite | OpChmod
	assert.True(t, op.Has(OpWrite))
	assert.True(t, op.Has(OpChmod))
	assert.False(t, op.Has(OpRemove))
	assert.False(t, op.Has(0))
}

func TestEventGone(t *testing.T) {
	assert.True(t, Event{Op: OpRemove}.Gone())
	assert.True(t, Event{Op: OpRename | OpWrite}.Gone())
	assert.False(t, Event{Op: OpWrite}.Gone())
}

func TestConvertOp(t *testing.T) {
	assert.Equal(t, OpCreate|OpWrite, convertOp(fsnotify.Create|fsnotify.Write))
	assert.Equal(t, Op(0), convertOp(0))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func waitEvent(t *testing.T, w Watcher) Event {
	t.Helper()
	select {
	case ev := <-w.Events():
		return ev
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestWatchReportsWrites(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "doc.txt")
	writeFile(t, file, "one")

	w, err := NewFSNotifyWatcher(WithDebounce(20 * time.Millisecond))
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Watch(file))
	assert.Equal(t, file, w.Path())

	writeFile(t, filepath.Join(dir, "other.txt"), "noise")
	writeFile(t, file, "two")

	ev := waitEvent(t, w)
	assert.Equal(t, file, ev.Path)
	assert.True(t, ev.Op.Has(OpWrite) || ev.Op.Has(OpCreate), "got %s", ev.Op)
}

func TestWatchCoalescesBursts(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "doc.txt")
	writeFile(t, file, "")

	w, err := NewFSNotifyWatcher(WithDebounce(200 * time.Millisecond))
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Watch(file))

	for range 5 {
		writeFile(t, file, "burst")
	}

	waitEvent(t, w)
	select {
	case ev := <-w.Events():
		t.Fatalf("unexpected second event %s", ev.Op)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWatchReportsRemoval(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "doc.txt")
	writeFile(t, file, "x")

	w, err := NewFSNotifyWatcher(WithDebounce(0))
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Watch(file))

	require.NoError(t, os.Remove(file))
	ev := waitEvent(t, w)
	assert.True(t, ev.Gone())
}

func TestWatchMissingFile(t *testing.T) {
	w, err := NewFSNotifyWatcher()
	require.NoError(t, err)
	defer w.Close()

	err = w.Watch(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, ErrPathNotExist)
	assert.Equal(t, "", w.Path())
}

func TestUnwatch(t *testing.T) {
	file := filepath.Join(t.TempDir(), "doc.txt")
	writeFile(t, file, "x")

	w, err := NewFSNotifyWatcher()
	require.NoError(t, err)
	defer w.Close()

	assert.ErrorIs(t, w.Unwatch(), ErrNotWatching)
	require.NoError(t, w.Watch(file))
	require.NoError(t, w.Unwatch())
	assert.Equal(t, "", w.Path())
}

func TestClose(t *testing.T) {
	w, err := NewFSNotifyWatcher()
	require.NoError(t, err)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close(), "second close is a no-op")

	_, ok := <-w.Events()
	assert.False(t, ok)
	assert.ErrorIs(t, w.Watch("/tmp"), ErrWatcherClosed)
}
