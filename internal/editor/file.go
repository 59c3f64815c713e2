package editor

import (
	"context"
	"fmt"

	"github.com/dshills/cellvim/internal/engine/cursor"
)

// Open loads path into the document. On failure the document, cursor and
// file name are unchanged.
func (e *Editor) Open(ctx context.Context, path string) error {
	lines, err := e.store.Load(ctx, path)
	if err != nil {
		return err
	}

	e.doc.SetLines(lines)
	e.cur = cursor.New(0, 0)
	e.fileName = path
	e.modified = false
	e.message = fmt.Sprintf("%q %dL", path, e.doc.LineCount())
	e.logger.Info().Str("file", path).Int("lines", e.doc.LineCount()).Msg("opened")
	return nil
}

// Save writes the document to path, or to the current file name when path
// is empty. A successful save clears the modified flag and, when the
// editor had no file name, adopts path.
func (e *Editor) Save(ctx context.Context, path string) error {
	if path == "" {
		path = e.fileName
	}
	if path == "" {
		return ErrNoFileName
	}

	lines := e.doc.Lines()
	if err := e.store.Save(ctx, path, lines); err != nil {
		return err
	}

	if e.fileName == "" || path == e.fileName {
		e.fileName = path
		e.modified = false
	}
	e.message = fmt.Sprintf("%q %dL written", path, len(lines))
	e.logger.Info().Str("file", path).Int("lines", len(lines)).Msg("saved")
	return nil
}

// Quit returns ErrQuit, or ErrUnsavedQuit when there are unsaved changes
// and force is not set.
func (e *Editor) Quit(force bool) error {
	if e.modified && !force {
		return ErrUnsavedQuit
	}
	return ErrQuit
}

// RunCommand parses and executes a command line.
func (e *Editor) RunCommand(ctx context.Context, text string) error {
	cmd, err := ParseCommand(text)
	if err != nil {
		return err
	}

	switch cmd.Kind {
	case CmdNone:
		return nil
	case CmdWrite:
		return e.Save(ctx, cmd.File)
	case CmdWriteQuit:
		if err := e.Save(ctx, cmd.File); err != nil {
			return err
		}
		// Writing a copy leaves the buffer unsaved.
		return e.Quit(false)
	case CmdQuit:
		return e.Quit(cmd.Force)
	case CmdEdit:
		if e.modified && !cmd.Force {
			return ErrUnsavedChanges
		}
		return e.Open(ctx, cmd.File)
	case CmdSubstitute:
		return e.Substitute(cmd.Old, cmd.New, cmd.Global, cmd.Document)
	case CmdGoto:
		return e.GotoLine(cmd.Line)
	case CmdDeleteLine:
		if err := e.DeleteLine(cmd.Line); err != nil {
			return err
		}
		e.message = fmt.Sprintf("deleted line %d", cmd.Line)
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownCommand, text)
}
