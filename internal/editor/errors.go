package editor

import "errors"

// Editor errors. All of them are reported in the status message; only
// ErrQuit ends the session.
var (
	// ErrQuit signals that the session should end.
	ErrQuit = errors.New("quit requested")

	// ErrUnsavedQuit indicates a quit was blocked by unsaved changes.
	ErrUnsavedQuit = errors.New("no write since last change (add ! to override)")

	// ErrUnsavedChanges indicates a file switch was blocked by unsaved
	// changes.
	ErrUnsavedChanges = errors.New("unsaved changes (add ! to override)")

	// ErrNoFileName indicates a write with no file name given or remembered.
	ErrNoFileName = errors.New("no file name")

	// ErrUnknownCommand indicates command-line text that is not a command.
	ErrUnknownCommand = errors.New("not an editor command")

	// ErrBadSubstitute indicates a malformed s/old/new/ command.
	ErrBadSubstitute = errors.New("malformed substitute command")

	// ErrNoJoin indicates J on the last line.
	ErrNoJoin = errors.New("no line to join")

	// ErrRegisterEmpty indicates a paste with nothing yanked.
	ErrRegisterEmpty = errors.New("nothing to paste")
)
