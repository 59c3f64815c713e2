package mode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/cellvim/internal/input/key"
)

// feed sends a key script to the mode and collects the emitted actions.
func feed(t *testing.T, m Mode, script string) []Action {
	t.Helper()
	events, err := key.ParseScript(script)
	require.NoError(t, err)

	var actions []Action
	for _, e := range events {
		if res := m.HandleKey(e); res.Action != nil {
			actions = append(actions, *res.Action)
		}
	}
	return actions
}

func TestNormalSingleKeys(t *testing.T) {
	tests := []struct {
		script string
		want   Action
	}{
		{"i", Action{Name: ActionEnterInsert, Count: 1}},
		{"x", Action{Name: ActionDeleteChar, Count: 1}},
		{"0", Action{Name: ActionLineStart, Count: 1}},
		{"$", Action{Name: ActionLineEnd, Count: 1}},
		{"w", Action{Name: ActionWordForward, Count: 1}},
		{"J", Action{Name: ActionJoinLines, Count: 1}},
		{"N", Action{Name: ActionFindPrevious, Count: 1}},
		{"<Up>", Action{Name: ActionCursorUp, Count: 1}},
		{"5j", Action{Name: ActionCursorDown, Count: 5}},
		{"12l", Action{Name: ActionCursorRight, Count: 12}},
	}
	for _, tt := range tests {
		t.Run(tt.script, func(t *testing.T) {
			got := feed(t, NewNormalMode(), tt.script)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0])
		})
	}
}

func TestNormalDoubledOperators(t *testing.T) {
	tests := []struct {
		script string
		want   Action
	}{
		{"dd", Action{Name: ActionDeleteLine, Count: 1}},
		{"3dd", Action{Name: ActionDeleteLine, Count: 3}},
		{"d2d", Action{Name: ActionDeleteLine, Count: 2}},
		{"yy", Action{Name: ActionYankLine, Count: 1}},
		{"2>>", Action{Name: ActionIndent, Count: 2}},
		{"<lt><lt>", Action{Name: ActionUnindent, Count: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.script, func(t *testing.T) {
			got := feed(t, NewNormalMode(), tt.script)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0])
		})
	}
}

func TestNormalCountResetsAfterCommand(t *testing.T) {
	m := NewNormalMode()
	got := feed(t, m, "3jj")
	require.Len(t, got, 2)
	assert.Equal(t, 3, got[0].Count)
	assert.Equal(t, 1, got[1].Count)
	assert.Equal(t, 0, m.PendingCount())
}

func TestNormalOperatorCanceled(t *testing.T) {
	m := NewNormalMode()
	assert.Empty(t, feed(t, m, "dy"))
	assert.Equal(t, rune(0), m.PendingOperator())

	feed(t, m, "d")
	assert.Equal(t, 'd', m.PendingOperator())
	assert.Equal(t, CursorUnderline, m.CursorStyle())
	feed(t, m, "<Esc>")
	assert.Equal(t, rune(0), m.PendingOperator())
}

func TestNormalUnmappedNotConsumed(t *testing.T) {
	m := NewNormalMode()
	res := m.HandleKey(key.Rune('Z'))
	assert.False(t, res.Consumed)
	assert.Nil(t, res.Action)

	res = m.HandleKey(key.NewRuneEvent('c', key.ModCtrl))
	assert.False(t, res.Consumed)
}

func TestCommandLine(t *testing.T) {
	m := NewNormalMode()
	assert.Empty(t, feed(t, m, ":wq"))
	assert.True(t, m.CommandLine().Active())
	assert.Equal(t, ":wq", m.CommandLine().String())

	got := feed(t, m, "<CR>")
	require.Len(t, got, 1)
	assert.Equal(t, Action{Name: ActionExCommand, Count: 1, Text: "wq"}, got[0])
	assert.False(t, m.CommandLine().Active())
}

func TestCommandLineEditing(t *testing.T) {
	m := NewNormalMode()
	got := feed(t, m, "/abd<BS>c<Left><Left>x<CR>")
	require.Len(t, got, 1)
	assert.Equal(t, Action{Name: ActionSearch, Count: 1, Text: "axbc"}, got[0])
}

func TestCommandLineDigitsAreText(t *testing.T) {
	got := feed(t, NewNormalMode(), ":12<CR>")
	require.Len(t, got, 1)
	assert.Equal(t, "12", got[0].Text)
}

func TestCommandLineCancel(t *testing.T) {
	m := NewNormalMode()
	assert.Empty(t, feed(t, m, ":q<Esc>"))
	assert.False(t, m.CommandLine().Active())

	assert.Empty(t, feed(t, m, "/<BS>"))
	assert.False(t, m.CommandLine().Active(), "backspace on empty line closes it")
}

func TestHistoryBrowser(t *testing.T) {
	m := NewNormalMode()
	got := feed(t, m, "M<Up><Up>x<Down><CR>")
	names := make([]string, len(got))
	for i, a := range got {
		names[i] = a.Name
	}
	assert.Equal(t, []string{
		ActionHistoryOpen, ActionHistoryPrev, ActionHistoryPrev,
		ActionHistoryNext, ActionHistorySelect,
	}, names)
	assert.False(t, m.Browsing())

	got = feed(t, m, "M<Esc>")
	require.Len(t, got, 2)
	assert.Equal(t, ActionHistoryClose, got[1].Name)
}

func TestInsertMode(t *testing.T) {
	got := feed(t, NewInsertMode(), "hi<BS><CR><Left><Del><Esc>")
	want := []Action{
		{Name: ActionInsertChar, Count: 1, Text: "h"},
		{Name: ActionInsertChar, Count: 1, Text: "i"},
		{Name: ActionBackspace, Count: 1},
		{Name: ActionNewline, Count: 1},
		{Name: ActionCursorLeft, Count: 1},
		{Name: ActionDeleteChar, Count: 1},
		{Name: ActionExitInsert, Count: 1},
	}
	assert.Equal(t, want, got)
}

func TestInsertModeDigitsAndSpaces(t *testing.T) {
	got := feed(t, NewInsertMode(), "3 <Space>")
	require.Len(t, got, 3)
	assert.Equal(t, "3", got[0].Text)
	assert.Equal(t, " ", got[1].Text)
	assert.Equal(t, " ", got[2].Text)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "cursor.down x3", Action{Name: ActionCursorDown, Count: 3}.String())
	assert.Equal(t, `search.forward "foo"`, Action{Name: ActionSearch, Count: 1, Text: "foo"}.String())
}

func TestCommandLineBuffer(t *testing.T) {
	var c CommandLine
	assert.False(t, c.Active())
	assert.Equal(t, "", c.String())

	c.Open(':')
	c.Insert('a')
	c.Insert('c')
	c.MoveLeft()
	c.Insert('b')
	assert.Equal(t, "abc", c.Buffer())
	assert.Equal(t, 2, c.CursorPos())

	assert.True(t, c.Delete())
	assert.False(t, c.Delete())
	assert.False(t, c.MoveRight())
	assert.Equal(t, "ab", c.Buffer())
}
