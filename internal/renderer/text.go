package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TextOptions configures a Text renderer.
type TextOptions struct {
	// Width and Height are the frame size in cells. Height includes the
	// status and message lines.
	Width  int
	Height int

	// LineNumbers prefixes every line with its 1-based number.
	LineNumbers bool
}

// DefaultTextOptions returns an 80x24 frame with line numbers.
func DefaultTextOptions() TextOptions {
	return TextOptions{Width: 80, Height: 24, LineNumbers: true}
}

// Text renders frames as plain text to a writer. The status bar is styled
// with lipgloss; the styling degrades to plain text when the writer is
// not a terminal.
type Text struct {
	w        io.Writer
	opts     TextOptions
	viewport *Viewport

	statusStyle  lipgloss.Style
	gutterStyle  lipgloss.Style
	tildeStyle   lipgloss.Style
	messageStyle lipgloss.Style
}

var _ Renderer = (*Text)(nil)

// NewText creates a text renderer writing to w.
func NewText(w io.Writer, opts TextOptions) *Text {
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Height < 3 {
		opts.Height = 3
	}

	r := lipgloss.NewRenderer(w)
	return &Text{
		w:            w,
		opts:         opts,
		viewport:     NewViewport(opts.Width, opts.Height-2),
		statusStyle:  r.NewStyle().Reverse(true).Bold(true),
		gutterStyle:  r.NewStyle().Faint(true),
		tildeStyle:   r.NewStyle().Foreground(lipgloss.Color("4")),
		messageStyle: r.NewStyle(),
	}
}

// Viewport returns the renderer's viewport.
func (t *Text) Viewport() *Viewport {
	return t.viewport
}

// Render writes one frame.
func (t *Text) Render(snap Snapshot) error {
	var sb strings.Builder
	t.renderLines(&sb, snap)

	sb.WriteString(t.statusStyle.Render(StatusLine(snap.Status, t.opts.Width)))
	sb.WriteByte('\n')
	sb.WriteString(t.messageStyle.Render(MessageLine(snap.Status, t.opts.Width)))
	sb.WriteByte('\n')

	_, err := io.WriteString(t.w, sb.String())
	return err
}

func (t *Text) renderLines(sb *strings.Builder, snap Snapshot) {
	total := len(snap.Lines)
	gutter := 0
	if t.opts.LineNumbers {
		gutter = len(fmt.Sprint(total)) + 1
	}
	textWidth := max(t.opts.Width-gutter, 1)

	t.viewport.Resize(textWidth, t.opts.Height-2)
	cursorLine := ""
	if snap.Cursor.Line < total {
		cursorLine = snap.Lines[snap.Cursor.Line]
	}
	t.viewport.Reveal(snap.Cursor.Line, DisplayColumn(cursorLine, snap.Cursor.Col), total)

	start, end := t.viewport.VisibleRange(total)
	for i := start; i < end; i++ {
		if gutter > 0 {
			sb.WriteString(t.gutterStyle.Render(fmt.Sprintf("%*d ", gutter-1, i+1)))
		}
		sb.WriteString(visible(snap.Lines[i], t.viewport.LeftColumn(), textWidth))
		sb.WriteByte('\n')
	}
	_, height := t.viewport.Size()
	for i := end - start; i < height; i++ {
		sb.WriteString(t.tildeStyle.Render("~"))
		sb.WriteByte('\n')
	}
}

// visible returns the part of text between screen columns left and
// left+width.
func visible(text string, left, width int) string {
	if left > 0 {
		col := 0
		for i, r := range text {
			if col >= left {
				text = text[i:]
				break
			}
			col += runewidth.RuneWidth(r)
			if i+len(string(r)) == len(text) {
				text = ""
			}
		}
	}
	return runewidth.Truncate(text, width, "")
}
