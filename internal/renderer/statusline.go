package renderer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/cellvim/internal/editor"
)

// StatusLine formats the status bar for a screen width: mode, file name
// and pending keys on the left, position on the right.
func StatusLine(s editor.Status, width int) string {
	name := "[No Name]"
	if s.FileName != "" {
		name = filepath.Base(s.FileName)
	}
	if s.Modified {
		name += " [+]"
	}

	left := " " + s.Mode + "  " + name
	if s.Pending != "" {
		left += "  " + s.Pending
	}
	if s.Browsing {
		left += "  [history]"
	}
	right := fmt.Sprintf("%s  %d/%d:%d ", s.LastCommand, s.Line, s.TotalLines, s.Column)
	right = strings.TrimLeft(right, " ")

	return fit(left, right, width)
}

// MessageLine formats the line under the status bar: the command line
// while one is being typed, otherwise the last message.
func MessageLine(s editor.Status, width int) string {
	text := s.Message
	if s.CommandLine != "" {
		text = s.CommandLine
	}
	return runewidth.Truncate(text, width, "…")
}

// fit places left and right on one line of exactly width cells. The right
// part wins when both do not fit.
func fit(left, right string, width int) string {
	if width <= 0 {
		return ""
	}
	rw := runewidth.StringWidth(right)
	if rw >= width {
		return runewidth.Truncate(right, width, "")
	}
	left = runewidth.Truncate(left, width-rw-1, "…")
	gap := width - rw - runewidth.StringWidth(left)
	return left + strings.Repeat(" ", gap) + right
}

// DisplayColumn returns the screen column of cell offset col in text.
func DisplayColumn(text string, col int) int {
	w := 0
	for i, r := range []rune(text) {
		if i >= col {
			break
		}
		w += runewidth.RuneWidth(r)
	}
	if n := len([]rune(text)); col > n {
		w += col - n
	}
	return w
}
