package filestore

import (
	"errors"
	"fmt"
)

// Standard errors returned by the filestore package.
var (
	// ErrFileUnavailable is matched by every load or save failure.
	ErrFileUnavailable = errors.New("file unavailable")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrFileTooLarge indicates the file exceeds the maximum size limit.
	ErrFileTooLarge = errors.New("file too large")

	// ErrBinaryFile indicates the file appears to be binary.
	ErrBinaryFile = errors.New("binary file")
)

// PathError represents a load or save failure for a path.
// It matches both ErrFileUnavailable and the underlying cause with
// errors.Is.
type PathError struct {
	Op   string // load or save
	Path string // File path
	Err  error  // Underlying error
}

// Error implements the error interface.
func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns ErrFileUnavailable and the underlying error.
func (e *PathError) Unwrap() []error {
	return []error{ErrFileUnavailable, e.Err}
}

func pathError(op, path string, err error) *PathError {
	return &PathError{Op: op, Path: path, Err: err}
}
