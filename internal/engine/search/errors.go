package search

import "errors"

// Errors returned by search and replace operations.
var (
	// ErrEmptyPattern indicates a search or replace was given an empty pattern.
	ErrEmptyPattern = errors.New("empty pattern")

	// ErrNoMatch indicates the pattern does not occur where it was looked for.
	ErrNoMatch = errors.New("pattern not found")

	// ErrNoPreviousSearch indicates a repeat search without a prior pattern.
	ErrNoPreviousSearch = errors.New("no previous search pattern")
)
