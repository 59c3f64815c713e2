// Package backend draws snapshots on a tcell screen and reads keys from it.
package backend

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/cellvim/internal/input/key"
	"github.com/dshills/cellvim/internal/input/mode"
	"github.com/dshills/cellvim/internal/renderer"
)

// ErrClosed is returned by Next after Close.
var ErrClosed = errors.New("terminal closed")

// Terminal implements renderer.Renderer and key.Source on a tcell screen.
// Resizes are reported by Next as a KeyNone event so the caller can
// redraw.
type Terminal struct {
	screen   tcell.Screen
	viewport *renderer.Viewport

	lineNumbers bool

	events chan tcell.Event
	quit   chan struct{}

	mu        sync.Mutex
	started   bool
	closeOnce sync.Once
}

var (
	_ renderer.Renderer = (*Terminal)(nil)
	_ key.Source        = (*Terminal)(nil)
)

// NewTerminal creates a terminal on the controlling tty.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	return NewTerminalWithScreen(screen), nil
}

// NewTerminalWithScreen creates a terminal on an existing screen, such as
// a tcell simulation screen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen:   screen,
		viewport: renderer.NewViewport(80, 22),
		events:   make(chan tcell.Event, 64),
		quit:     make(chan struct{}),
	}
}

// SetLineNumbers turns the line number gutter on or off.
func (t *Terminal) SetLineNumbers(on bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lineNumbers = on
}

// Init initializes the screen and starts delivering events.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	t.screen.EnablePaste()
	t.screen.Clear()

	go t.screen.ChannelEvents(t.events, t.quit)
	t.started = true
	return nil
}

// Close restores the terminal. It is safe to call more than once.
func (t *Terminal) Close() {
	t.closeOnce.Do(func() {
		close(t.quit)
		t.mu.Lock()
		defer t.mu.Unlock()
		if t.started {
			t.screen.Fini()
		}
	})
}

// Size returns the screen size in cells.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.screen.Size()
}

// Next waits for the next key. Resize events yield KeyNone.
func (t *Terminal) Next(ctx context.Context) (key.Event, error) {
	for {
		select {
		case <-ctx.Done():
			return key.Event{}, ctx.Err()
		case <-t.quit:
			return key.Event{}, ErrClosed
		case ev, ok := <-t.events:
			if !ok {
				return key.Event{}, ErrClosed
			}
			if e, ok := t.convertEvent(ev); ok {
				return e, nil
			}
		}
	}
}

// convertEvent maps a tcell event to a key event. Events with no key
// meaning report false.
func (t *Terminal) convertEvent(ev tcell.Event) (key.Event, bool) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return convertKeyEvent(e), true
	case *tcell.EventResize:
		t.mu.Lock()
		t.screen.Sync()
		t.mu.Unlock()
		return key.Special(key.KeyNone), true
	default:
		return key.Event{}, false
	}
}

// Render draws a snapshot: document lines, then the status bar and the
// message line at the bottom.
func (t *Terminal) Render(snap renderer.Snapshot) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	width, height := t.screen.Size()
	if width <= 0 || height < 3 {
		return nil
	}
	t.screen.Clear()

	total := len(snap.Lines)
	gutter := 0
	if t.lineNumbers {
		gutter = len(fmt.Sprint(total)) + 1
	}
	textWidth := max(width-gutter, 1)
	textHeight := height - 2

	cursorText := ""
	if snap.Cursor.Line < total {
		cursorText = snap.Lines[snap.Cursor.Line]
	}
	cursorX := renderer.DisplayColumn(cursorText, snap.Cursor.Col)

	t.viewport.Resize(textWidth, textHeight)
	t.viewport.Reveal(snap.Cursor.Line, cursorX, total)
	start, end := t.viewport.VisibleRange(total)
	left := t.viewport.LeftColumn()

	gutterStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	tildeStyle := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	for row := 0; row < textHeight; row++ {
		i := start + row
		if i >= end {
			t.screen.SetContent(0, row, '~', nil, tildeStyle)
			continue
		}
		if gutter > 0 {
			drawString(t.screen, 0, row, gutter, fmt.Sprintf("%*d ", gutter-1, i+1), gutterStyle)
		}
		drawLine(t.screen, gutter, row, textWidth, left, snap.Lines[i], tcell.StyleDefault)
	}

	statusStyle := tcell.StyleDefault.Reverse(true).Bold(true)
	status := renderer.StatusLine(snap.Status, width)
	drawString(t.screen, 0, height-2, width, status, statusStyle)
	message := renderer.MessageLine(snap.Status, width)
	drawString(t.screen, 0, height-1, width, message, tcell.StyleDefault)

	t.screen.SetCursorStyle(convertCursorStyle(snap.Status.CursorStyle))
	if snap.Status.CommandLine != "" {
		t.screen.ShowCursor(min(runewidth.StringWidth(message), width-1), height-1)
	} else {
		t.screen.ShowCursor(gutter+cursorX-left, snap.Cursor.Line-start)
	}

	t.screen.Show()
	return nil
}

// drawString writes s at (x, y), padding with spaces to width cells.
func drawString(s tcell.Screen, x, y, width int, text string, style tcell.Style) {
	col := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if col+w > width {
			break
		}
		s.SetContent(x+col, y, r, nil, style)
		col += max(w, 1)
	}
	for ; col < width; col++ {
		s.SetContent(x+col, y, ' ', nil, style)
	}
}

// drawLine writes the part of text between screen columns left and
// left+width.
func drawLine(s tcell.Screen, x, y, width, left int, text string, style tcell.Style) {
	col := 0
	for _, r := range text {
		w := max(runewidth.RuneWidth(r), 1)
		if col >= left && col-left+w <= width {
			s.SetContent(x+col-left, y, r, nil, style)
		}
		col += w
		if col-left >= width {
			break
		}
	}
}

func convertCursorStyle(c mode.CursorStyle) tcell.CursorStyle {
	switch c {
	case mode.CursorBar:
		return tcell.CursorStyleSteadyBar
	case mode.CursorUnderline:
		return tcell.CursorStyleSteadyUnderline
	default:
		return tcell.CursorStyleSteadyBlock
	}
}

// convertKeyEvent converts a tcell key event. Control letters arrive as
// their own tcell keys and become the letter with ModCtrl.
func convertKeyEvent(e *tcell.EventKey) key.Event {
	mods := convertMod(e.Modifiers())
	k := e.Key()

	if k == tcell.KeyRune {
		return key.NewRuneEvent(e.Rune(), mods)
	}
	if sk := convertKey(k); sk != key.KeyNone {
		return key.NewSpecialEvent(sk, mods)
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return key.NewRuneEvent('a'+rune(k-tcell.KeyCtrlA), mods.With(key.ModCtrl))
	}
	return key.Special(key.KeyNone)
}

// convertKey converts tcell special keys. Keys with no equivalent map to
// KeyNone.
func convertKey(k tcell.Key) key.Key {
	switch k {
	case tcell.KeyEscape:
		return key.KeyEscape
	case tcell.KeyEnter:
		return key.KeyEnter
	case tcell.KeyTab:
		return key.KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.KeyBackspace
	case tcell.KeyDelete:
		return key.KeyDelete
	case tcell.KeyHome:
		return key.KeyHome
	case tcell.KeyEnd:
		return key.KeyEnd
	case tcell.KeyPgUp:
		return key.KeyPageUp
	case tcell.KeyPgDn:
		return key.KeyPageDown
	case tcell.KeyUp:
		return key.KeyUp
	case tcell.KeyDown:
		return key.KeyDown
	case tcell.KeyLeft:
		return key.KeyLeft
	case tcell.KeyRight:
		return key.KeyRight
	default:
		return key.KeyNone
	}
}

func convertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= key.ModCtrl
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		result |= key.ModAlt
	}
	return result
}
