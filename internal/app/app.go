// Package app runs the editor: it wires the document store, history,
// clipboard, file watcher, key source and renderer around an
// editor.Editor and drives the event loop.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/dshills/cellvim/internal/config"
	"github.com/dshills/cellvim/internal/editor"
	"github.com/dshills/cellvim/internal/input/history"
	"github.com/dshills/cellvim/internal/input/key"
	"github.com/dshills/cellvim/internal/input/vim"
	"github.com/dshills/cellvim/internal/project/filestore"
	"github.com/dshills/cellvim/internal/project/vfs"
	"github.com/dshills/cellvim/internal/project/watcher"
	"github.com/dshills/cellvim/internal/renderer"
)

// Options configures the application.
type Options struct {
	// Config holds the settings. The zero value is replaced by
	// config.Defaults.
	Config config.Config

	// File is opened on startup. A file that does not exist yet becomes
	// the file name for the first write.
	File string

	// FS backs the document store and history file. Defaults to the OS.
	FS vfs.VFS

	// Source produces keys. Required.
	Source key.Source

	// Renderer draws a frame after every event. Optional.
	Renderer renderer.Renderer

	// Watcher reports external changes to File. Optional; ignored when
	// Config.Watch is false.
	Watcher watcher.Watcher

	// Clipboard receives yanks when Config.Editor.Clipboard is set.
	Clipboard vim.ClipboardProvider

	Logger zerolog.Logger
}

// Application is the central coordinator. It owns the editor and is the
// only goroutine that touches it.
type Application struct {
	opts    Options
	cfg     config.Config
	fs      vfs.VFS
	store   *filestore.FileStore
	editor  *editor.Editor
	logger  zerolog.Logger
	watcher watcher.Watcher
	watched string

	running  atomic.Bool
	done     chan struct{}
	stopOnce sync.Once
}

// New creates an application and loads the startup file.
func New(ctx context.Context, opts Options) (*Application, error) {
	if opts.Source == nil {
		return nil, ErrNoKeySource
	}
	cfg := opts.Config
	if cfg == (config.Config{}) {
		cfg = config.Defaults()
	}
	if err := cfg.Validate(); err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}

	app := &Application{
		opts:   opts,
		cfg:    cfg,
		fs:     opts.FS,
		logger: opts.Logger.With().Str("component", "app").Logger(),
		done:   make(chan struct{}),
	}
	if app.fs == nil {
		app.fs = vfs.NewOSFS()
	}
	if cfg.Watch {
		app.watcher = opts.Watcher
	}
	app.store = filestore.New(app.fs)

	hist, err := app.loadHistory()
	if err != nil {
		return nil, &InitError{Component: "history", Err: err}
	}

	reg := vim.NewRegister()
	if cfg.Editor.Clipboard && opts.Clipboard != nil {
		reg.SetClipboard(opts.Clipboard)
	}

	app.editor = editor.New(
		editor.WithStore(app.store),
		editor.WithHistory(hist),
		editor.WithRegister(reg),
		editor.WithWrapWidth(cfg.Editor.WrapWidth),
		editor.WithLogger(opts.Logger),
	)

	if opts.File != "" {
		if err := app.openStartupFile(ctx, opts.File); err != nil {
			return nil, &InitError{Component: "document", Err: err}
		}
	}
	return app, nil
}

func (app *Application) loadHistory() (*history.History, error) {
	size := app.cfg.Editor.HistorySize
	if app.cfg.History.File == "" {
		return history.New(size), nil
	}
	return history.Load(app.fs, app.cfg.History.File, size)
}

func (app *Application) openStartupFile(ctx context.Context, path string) error {
	if !app.store.Exists(path) {
		app.editor.SetFileName(path)
		app.editor.SetMessage(fmt.Sprintf("%q [New]", path))
		return nil
	}
	return app.editor.Open(ctx, path)
}

// Editor returns the editor. It must not be used while Run is active.
func (app *Application) Editor() *editor.Editor {
	return app.editor
}

// IsRunning reports whether Run is active.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Shutdown asks Run to return.
func (app *Application) Shutdown() {
	app.stopOnce.Do(func() { close(app.done) })
}

type keyResult struct {
	ev  key.Event
	err error
}

// Run processes events until the editor quits, the key source is
// exhausted, ctx is done or Shutdown is called. Each key is handled to
// completion and followed by one frame.
func (app *Application) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer app.saveHistory()

	keys := make(chan keyResult)
	go app.readKeys(ctx, keys)

	app.syncWatch()
	var (
		fileEvents <-chan watcher.Event
		fileErrors <-chan error
	)
	if app.watcher != nil {
		fileEvents, fileErrors = app.watcher.Events(), app.watcher.Errors()
	}

	if err := app.render(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-app.done:
			return nil

		case kr := <-keys:
			if kr.err != nil {
				if errors.Is(kr.err, key.ErrSourceClosed) {
					return nil
				}
				return kr.err
			}
			if kr.ev.Key != key.KeyNone {
				err := app.editor.HandleKey(ctx, kr.ev)
				if errors.Is(err, editor.ErrQuit) {
					app.logger.Info().Msg("quit")
					return nil
				}
				app.syncWatch()
			}

		case ev, ok := <-fileEvents:
			if !ok {
				fileEvents = nil
				continue
			}
			app.handleFileEvent(ev)

		case err, ok := <-fileErrors:
			if !ok {
				fileErrors = nil
				continue
			}
			app.logger.Warn().Err(err).Msg("watcher error")
			continue
		}

		if err := app.render(); err != nil {
			return err
		}
	}
}

// readKeys forwards key events until the source fails or ctx is done.
func (app *Application) readKeys(ctx context.Context, out chan<- keyResult) {
	for {
		ev, err := app.opts.Source.Next(ctx)
		select {
		case out <- keyResult{ev: ev, err: err}:
		case <-ctx.Done():
			return
		}
		if err != nil {
			return
		}
	}
}

func (app *Application) render() error {
	if app.opts.Renderer == nil {
		return nil
	}
	if err := app.opts.Renderer.Render(renderer.Capture(app.editor)); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// syncWatch points the watcher at the editor's current file.
func (app *Application) syncWatch() {
	name := app.editor.FileName()
	if app.watcher == nil || name == app.watched || !app.store.Exists(name) {
		return
	}
	if err := app.watcher.Watch(name); err != nil {
		app.logger.Warn().Err(err).Str("file", name).Msg("watch failed")
		return
	}
	app.watched = name
	app.logger.Debug().Str("file", name).Msg("watching")
}

func (app *Application) handleFileEvent(ev watcher.Event) {
	name := app.editor.FileName()
	app.logger.Debug().Str("file", ev.Path).Stringer("op", ev.Op).Msg("file event")
	switch {
	case ev.Gone() && !app.store.Exists(name):
		app.editor.SetMessage(fmt.Sprintf("%q was removed from disk", name))
	case app.store.ChangedOnDisk(name):
		app.editor.SetMessage(fmt.Sprintf("%q changed on disk", name))
	}
}

func (app *Application) saveHistory() {
	path := app.cfg.History.File
	if path == "" {
		return
	}
	if err := app.editor.History().Save(app.fs, path); err != nil {
		app.logger.Warn().Err(err).Str("file", path).Msg("saving history failed")
	}
}
