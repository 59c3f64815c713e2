package line

import "errors"

// Errors returned by line and document operations.
var (
	// ErrInvalidLineNumber indicates a line index outside the document.
	ErrInvalidLineNumber = errors.New("invalid line number")

	// ErrOffsetOutOfRange indicates a cell offset outside the line.
	ErrOffsetOutOfRange = errors.New("offset out of range")

	// ErrInvalidCell indicates a cell reference that is not live in the line.
	ErrInvalidCell = errors.New("invalid cell")

	// ErrCorruptChain is returned by Validate when the links are inconsistent.
	ErrCorruptChain = errors.New("corrupt cell chain")
)
