// Package renderer draws editor snapshots.
//
// A Snapshot is a read-only copy of the document text, the cursor and the
// status taken once per command cycle. Renderers never see the editor
// itself. Text writes plain frames to an io.Writer; the tcell terminal
// lives in the backend subpackage.
package renderer

import (
	"github.com/dshills/cellvim/internal/editor"
)

// Renderer displays snapshots.
type Renderer interface {
	// Render draws one frame.
	Render(snap Snapshot) error
}

// Position is a 0-based line index and cell offset.
type Position struct {
	Line int
	Col  int
}

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	Lines  []string
	Cursor Position
	Status editor.Status
}

// Capture takes a snapshot of e.
func Capture(e *editor.Editor) Snapshot {
	c := e.Cursor()
	return Snapshot{
		Lines:  e.Lines(),
		Cursor: Position{Line: c.Line(), Col: c.Col()},
		Status: e.Status(),
	}
}

// Func adapts a function to the Renderer interface.
type Func func(Snapshot) error

// Render calls f.
func (f Func) Render(snap Snapshot) error {
	return f(snap)
}
