package mode

import "github.com/dshills/cellvim/internal/input/key"

// Mode defines the interface for editor modes.
// Each mode determines how key events are interpreted and what cursor
// style is displayed.
type Mode interface {
	// Name returns the unique mode identifier (e.g., "normal", "insert").
	Name() string

	// DisplayName returns a human-readable name for the status line.
	DisplayName() string

	// CursorStyle returns the cursor style for this mode.
	CursorStyle() CursorStyle

	// Enter is called when entering this mode.
	Enter(ctx *Context) error

	// Exit is called when leaving this mode.
	Exit(ctx *Context) error

	// HandleKey interprets a key event.
	HandleKey(event key.Event) *Result
}

// Context provides information during mode transitions.
type Context struct {
	// PreviousMode is the mode being transitioned from (for Enter).
	PreviousMode string

	// NextMode is the mode being transitioned to (for Exit).
	NextMode string
}

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorBlock is a full-cell block cursor (normal mode).
	CursorBlock CursorStyle = iota

	// CursorBar is a thin vertical bar cursor (insert mode).
	CursorBar

	// CursorUnderline is an underline cursor.
	CursorUnderline
)

// String returns a human-readable cursor style name.
func (c CursorStyle) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorBar:
		return "bar"
	case CursorUnderline:
		return "underline"
	default:
		return "unknown"
	}
}

// Standard mode names.
const (
	ModeNormal = "normal"
	ModeInsert = "insert"
)
