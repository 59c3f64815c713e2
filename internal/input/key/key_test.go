package key

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyNone, "None"},
		{KeyEscape, "Escape"},
		{KeyEnter, "Enter"},
		{KeyBackspace, "Backspace"},
		{KeyUp, "Up"},
		{KeyRight, "Right"},
		{KeyRune, "Rune"},
		{Key(200), "Key(200)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.key.String())
		})
	}
}

func TestKeyFromName(t *testing.T) {
	assert.Equal(t, KeyEscape, KeyFromName("ESC"))
	assert.Equal(t, KeyEnter, KeyFromName(" cr "))
	assert.Equal(t, KeyNone, KeyFromName("hyper"))
	assert.True(t, KeyLeft.IsArrowKey())
	assert.False(t, KeyHome.IsArrowKey())
}

func TestEventPredicates(t *testing.T) {
	assert.True(t, Rune('a').IsChar())
	assert.False(t, Rune('\n').IsChar())
	assert.False(t, Event{Key: KeyRune}.IsRune(), "zero rune")
	assert.False(t, NewRuneEvent('A', ModShift).IsModified())
	assert.True(t, NewRuneEvent('c', ModCtrl).IsModified())
	assert.True(t, Special(KeyEscape).IsEscape())
	assert.False(t, NewSpecialEvent(KeyEscape, ModAlt).IsEscape())
}

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Event
	}{
		{"a", Rune('a')},
		{"<", Rune('<')},
		{"<Esc>", Special(KeyEscape)},
		{"<cr>", Special(KeyEnter)},
		{"<BS>", Special(KeyBackspace)},
		{"<Space>", Rune(' ')},
		{"<lt>", Rune('<')},
		{"<C-c>", NewRuneEvent('c', ModCtrl)},
		{"<A-Up>", NewSpecialEvent(KeyUp, ModAlt)},
		{"Enter", Special(KeyEnter)},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("")
	require.ErrorIs(t, err, ErrEmptySpec)

	_, err = Parse("<X-a>")
	require.ErrorIs(t, err, ErrInvalidSpec)

	_, err = Parse("<Nope>")
	require.ErrorIs(t, err, ErrInvalidSpec)
}

func TestParseScript(t *testing.T) {
	events, err := ParseScript("ihé<Esc>:w<CR>")
	require.NoError(t, err)
	assert.Equal(t, []Event{
		Rune('i'), Rune('h'), Rune('é'), Special(KeyEscape),
		Rune(':'), Rune('w'), Special(KeyEnter),
	}, events)

	_, err = ParseScript("a<Esc")
	require.ErrorIs(t, err, ErrUnmatchedBracket)
}

func TestFormatScriptRoundTrip(t *testing.T) {
	script := "ia<lt>b<Esc>dd<Up><C-c>"
	events, err := ParseScript(script)
	require.NoError(t, err)
	assert.Equal(t, script, FormatScript(events))
}

func TestSliceSource(t *testing.T) {
	src, err := NewScriptSource("ab")
	require.NoError(t, err)
	ctx := context.Background()

	e, err := src.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, Rune('a'), e)
	assert.Equal(t, 1, src.Remaining())

	_, err = src.Next(ctx)
	require.NoError(t, err)

	_, err = src.Next(ctx)
	require.ErrorIs(t, err, ErrSourceClosed)
}

func TestSliceSourceCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewSliceSource(Rune('a')).Next(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestChanSource(t *testing.T) {
	ch := make(chan Event, 1)
	ch <- Rune('x')
	close(ch)
	src := ChanSource{C: ch}

	e, err := src.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Rune('x'), e)

	_, err = src.Next(context.Background())
	require.ErrorIs(t, err, ErrSourceClosed)
}

func TestChain(t *testing.T) {
	src := Chain(NewSliceSource(Rune('a')), NewSliceSource(), NewSliceSource(Rune('b')))
	ctx := context.Background()

	var got []Event
	for {
		e, err := src.Next(ctx)
		if err != nil {
			require.ErrorIs(t, err, ErrSourceClosed)
			break
		}
		got = append(got, e)
	}
	assert.Equal(t, []Event{Rune('a'), Rune('b')}, got)
}
