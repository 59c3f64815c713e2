package editor

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/dshills/cellvim/internal/engine/cursor"
	"github.com/dshills/cellvim/internal/engine/line"
	"github.com/dshills/cellvim/internal/engine/search"
	"github.com/dshills/cellvim/internal/input/history"
	"github.com/dshills/cellvim/internal/input/key"
	"github.com/dshills/cellvim/internal/input/mode"
	"github.com/dshills/cellvim/internal/input/vim"
	"github.com/dshills/cellvim/internal/project/filestore"
	"github.com/dshills/cellvim/internal/project/vfs"
)

// Editor is the modal controller. It owns the document and every piece of
// state that refers into it.
//
// Editor is not safe for concurrent use. The event loop calls it from a
// single goroutine.
type Editor struct {
	doc    *line.Document
	cur    cursor.Cursor
	modes  *mode.Manager
	search *search.Engine

	history  *history.History
	register *vim.Register
	store    filestore.Store

	fileName    string
	modified    bool
	lastCommand string
	message     string

	logger zerolog.Logger
}

// Option configures an Editor.
type Option func(*Editor)

// WithStore sets the file store. The default reads and writes the OS file
// system.
func WithStore(s filestore.Store) Option {
	return func(e *Editor) {
		e.store = s
	}
}

// WithHistory sets the command history.
func WithHistory(h *history.History) Option {
	return func(e *Editor) {
		e.history = h
	}
}

// WithRegister sets the yank register.
func WithRegister(r *vim.Register) Option {
	return func(e *Editor) {
		e.register = r
	}
}

// WithWrapWidth sets the soft-wrap width.
func WithWrapWidth(width int) Option {
	return func(e *Editor) {
		e.doc = line.NewDocument(line.WithWrapWidth(width))
	}
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Editor) {
		e.logger = logger
	}
}

// New creates an editor holding one empty line in Normal mode.
func New(opts ...Option) *Editor {
	e := &Editor{
		doc:    line.NewDocument(),
		modes:  mode.NewDefaultManager(),
		search: search.NewEngine(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.history == nil {
		e.history = history.New(history.DefaultMaxEntries)
	}
	if e.register == nil {
		e.register = vim.NewRegister()
	}
	if e.store == nil {
		e.store = filestore.New(vfs.NewOSFS())
	}
	e.logger = e.logger.With().Str("component", "editor").Logger()
	return e
}

// Document returns the document. Callers must not keep references to its
// lines across editor calls.
func (e *Editor) Document() *line.Document {
	return e.doc
}

// Cursor returns the cursor position.
func (e *Editor) Cursor() cursor.Cursor {
	return e.cur
}

// Lines returns the text of every line.
func (e *Editor) Lines() []string {
	return e.doc.Lines()
}

// SetLines replaces the document content without touching the file name.
// The document is marked unmodified.
func (e *Editor) SetLines(lines []string) {
	e.doc.SetLines(lines)
	e.cur = cursor.New(0, 0)
	e.modified = false
}

// Modes returns the mode manager.
func (e *Editor) Modes() *mode.Manager {
	return e.modes
}

// Mode returns the current mode name.
func (e *Editor) Mode() string {
	return e.modes.CurrentName()
}

// History returns the command history.
func (e *Editor) History() *history.History {
	return e.history
}

// Register returns the yank register.
func (e *Editor) Register() *vim.Register {
	return e.register
}

// SearchState returns the search state.
func (e *Editor) SearchState() search.State {
	return e.search.State()
}

// Modified reports whether there are unsaved changes.
func (e *Editor) Modified() bool {
	return e.modified
}

// FileName returns the current file name.
func (e *Editor) FileName() string {
	return e.fileName
}

// SetFileName sets the file name used by a plain ":w".
func (e *Editor) SetFileName(name string) {
	e.fileName = name
}

// Message returns the status message.
func (e *Editor) Message() string {
	return e.message
}

// SetMessage sets the status message.
func (e *Editor) SetMessage(msg string) {
	e.message = msg
}

// HandleKey feeds one key event through the current mode and executes the
// resulting action. Failures become the status message; only ErrQuit is
// returned.
func (e *Editor) HandleKey(ctx context.Context, ev key.Event) error {
	res := e.modes.HandleKey(ev)
	if res == nil || res.Action == nil {
		return nil
	}

	err := e.Execute(ctx, *res.Action)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrQuit):
		return err
	default:
		e.message = err.Error()
		e.logger.Warn().Err(err).Str("action", res.Action.Name).Msg("command failed")
		return nil
	}
}

// Execute runs one action. Mutating actions mark the document modified,
// and every action except history browsing is appended to the history.
func (e *Editor) Execute(ctx context.Context, a mode.Action) error {
	if a.Count < 1 {
		a.Count = 1
	}
	e.logger.Debug().Stringer("action", a).Msg("execute")

	if !isHistoryAction(a.Name) {
		e.message = ""
		e.lastCommand = describe(a)
		e.history.Add(e.lastCommand)
	}

	var err error
	switch a.Name {
	case mode.ActionEnterInsert, mode.ActionAppend, mode.ActionAppendLineEnd,
		mode.ActionOpenBelow, mode.ActionExitInsert:
		err = e.switchMode(a)

	case mode.ActionCursorLeft, mode.ActionCursorRight, mode.ActionCursorUp,
		mode.ActionCursorDown, mode.ActionLineStart, mode.ActionLineEnd,
		mode.ActionWordForward, mode.ActionWordBackward, mode.ActionWordEnd:
		e.move(a)

	case mode.ActionInsertChar:
		err = e.insertText(a.Text)
	case mode.ActionBackspace:
		err = e.backspace()
	case mode.ActionNewline:
		err = e.newline()
	case mode.ActionDeleteChar:
		err = e.deleteChar(a.Count)
	case mode.ActionDeleteToEnd:
		err = e.deleteToEnd()
	case mode.ActionDeleteLine:
		err = e.deleteLines(a.Count)
	case mode.ActionYankLine:
		err = e.yankLines(a.Count)
	case mode.ActionIndent:
		err = e.indent(a.Count)
	case mode.ActionUnindent:
		err = e.unindent(a.Count)
	case mode.ActionPasteAfter:
		err = e.pasteAfter(a.Count)
	case mode.ActionPasteBefore:
		err = e.pasteBefore()
	case mode.ActionJoinLines:
		err = e.joinLines(a.Count)

	case mode.ActionSearch:
		err = e.searchFor(a.Text)
	case mode.ActionFindNext:
		err = e.findNext(a.Count)
	case mode.ActionFindPrevious:
		err = e.findPrevious(a.Count)

	case mode.ActionExCommand:
		err = e.RunCommand(ctx, a.Text)

	case mode.ActionHistoryOpen, mode.ActionHistoryPrev, mode.ActionHistoryNext,
		mode.ActionHistorySelect, mode.ActionHistoryClose:
		err = e.browseHistory(a.Name)

	default:
		err = ErrUnknownCommand
	}

	e.cur = e.cur.Clamp(e.doc)
	return err
}

func (e *Editor) switchMode(a mode.Action) error {
	switch a.Name {
	case mode.ActionAppend:
		e.cur = cursor.New(e.cur.Line(), e.cur.Col()+1).Clamp(e.doc)
	case mode.ActionAppendLineEnd:
		e.cur = e.cur.AppendPosition(e.doc)
	case mode.ActionOpenBelow:
		if err := e.doc.InsertLine(e.cur.Line()+1, line.New()); err != nil {
			return err
		}
		e.cur = cursor.New(e.cur.Line()+1, 0)
		e.markModified()
	case mode.ActionExitInsert:
		return e.modes.Switch(mode.ModeNormal)
	}
	return e.modes.Switch(mode.ModeInsert)
}

func (e *Editor) markModified() {
	e.modified = true
}
