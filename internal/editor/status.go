package editor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dshills/cellvim/internal/input/mode"
)

// Status is a snapshot of the editor for display. It is recomputed on
// every call and never stored.
type Status struct {
	Mode        string
	Line        int // 1-based
	Column      int // 1-based
	TotalLines  int
	LastCommand string
	Message     string
	FileName    string
	Modified    bool

	// CommandLine is the ":" or "/" input being typed, prompt included.
	CommandLine string
	// Pending is the count and operator typed so far.
	Pending string
	// Browsing is set while the history browser is open.
	Browsing bool
	// CursorStyle is the current mode's cursor shape.
	CursorStyle mode.CursorStyle
}

// Status recomputes the status snapshot.
func (e *Editor) Status() Status {
	s := Status{
		Mode:        "NORMAL",
		Line:        e.cur.Line() + 1,
		Column:      e.cur.Col() + 1,
		TotalLines:  e.doc.LineCount(),
		LastCommand: e.lastCommand,
		Message:     e.message,
		FileName:    e.fileName,
		Modified:    e.modified,
	}
	if m := e.modes.Current(); m != nil {
		s.Mode = m.DisplayName()
		s.CursorStyle = m.CursorStyle()
	}

	if n := e.modes.Normal(); n != nil && e.modes.IsMode(mode.ModeNormal) {
		if cl := n.CommandLine(); cl.Active() {
			s.CommandLine = cl.String()
		}
		if c := n.PendingCount(); c > 0 {
			s.Pending = fmt.Sprint(c)
		}
		if op := n.PendingOperator(); op != 0 {
			s.Pending += string(op)
		}
		s.Browsing = n.Browsing()
	}
	return s
}

// String renders the status as a single line:
//
//	NORMAL  main.go [+]  3/10:5  Delete Line  3 fewer lines
func (s Status) String() string {
	name := s.FileName
	if name == "" {
		name = "[No Name]"
	} else {
		name = filepath.Base(name)
	}
	if s.Modified {
		name += " [+]"
	}

	parts := []string{
		s.Mode,
		name,
		fmt.Sprintf("%d/%d:%d", s.Line, s.TotalLines, s.Column),
	}
	if s.Pending != "" {
		parts = append(parts, s.Pending)
	}
	if s.LastCommand != "" {
		parts = append(parts, s.LastCommand)
	}
	if s.Message != "" {
		parts = append(parts, s.Message)
	}
	return strings.Join(parts, "  ")
}
