package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// NewLogger returns a JSON logger writing to file. An empty file discards
// logs: the terminal belongs to the editor. Every entry carries a session
// id so runs appended to the same file can be told apart.
//
// The level can be one of: trace, debug, info, warn, error, fatal.
// The returned func closes the file.
func NewLogger(level, file string) (zerolog.Logger, func(), error) {
	closer := func() {}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, closer, err
	}

	var writer io.Writer = io.Discard
	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return zerolog.Logger{}, closer, fmt.Errorf("create logs dir: %w", err)
		}
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return zerolog.Logger{}, closer, err
		}
		closer = func() { _ = f.Close() }
		writer = f
	}

	l := zerolog.New(writer).
		With().
		Timestamp().
		Str("session", uuid.NewString()).
		Logger().
		Level(lvl)

	return l, closer, nil
}
