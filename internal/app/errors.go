package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrAlreadyRunning indicates Run was called twice.
	ErrAlreadyRunning = errors.New("application already running")

	// ErrNoKeySource indicates Options.Source was not set.
	ErrNoKeySource = errors.New("no key source")
)

// InitError wraps a failure to set up one component.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("init %s: %v", e.Component, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}
