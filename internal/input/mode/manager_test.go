package mode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/cellvim/internal/input/key"
)

func TestDefaultManager(t *testing.T) {
	m := NewDefaultManager()
	assert.Equal(t, ModeNormal, m.CurrentName())
	assert.Equal(t, []string{ModeInsert, ModeNormal}, m.Modes())
	assert.NotNil(t, m.Normal())
}

func TestManagerSwitch(t *testing.T) {
	m := NewDefaultManager()

	var from, to string
	unregister := m.OnChange(func(a, b Mode) {
		from, to = a.Name(), b.Name()
	})

	require.NoError(t, m.Switch(ModeInsert))
	assert.True(t, m.IsMode(ModeInsert))
	assert.Equal(t, ModeNormal, m.Previous().Name())
	assert.Equal(t, ModeNormal, from)
	assert.Equal(t, ModeInsert, to)

	unregister()
	require.NoError(t, m.Switch(ModeNormal))
	assert.Equal(t, ModeInsert, to, "callback removed")
}

func TestManagerSwitchUnknown(t *testing.T) {
	m := NewDefaultManager()
	require.Error(t, m.Switch("visual"))
	require.Error(t, m.SetInitialMode("visual"))
	assert.Equal(t, ModeNormal, m.CurrentName())
}

func TestManagerSwitchSameModeIsNoop(t *testing.T) {
	m := NewDefaultManager()
	calls := 0
	m.OnChange(func(_, _ Mode) { calls++ })
	require.NoError(t, m.Switch(ModeNormal))
	assert.Equal(t, 0, calls)
}

func TestManagerSwitchResetsNormalState(t *testing.T) {
	m := NewDefaultManager()
	m.HandleKey(key.Rune('3'))
	m.HandleKey(key.Rune('d'))

	require.NoError(t, m.Switch(ModeInsert))
	require.NoError(t, m.Switch(ModeNormal))
	assert.Equal(t, 0, m.Normal().PendingCount())
	assert.Equal(t, rune(0), m.Normal().PendingOperator())
}

func TestManagerHandleKeyRoutes(t *testing.T) {
	m := NewDefaultManager()
	res := m.HandleKey(key.Rune('i'))
	require.NotNil(t, res.Action)
	assert.Equal(t, ActionEnterInsert, res.Action.Name)

	require.NoError(t, m.Switch(ModeInsert))
	res = m.HandleKey(key.Rune('i'))
	require.NotNil(t, res.Action)
	assert.Equal(t, ActionInsertChar, res.Action.Name)

	empty := NewManager()
	assert.False(t, empty.HandleKey(key.Rune('i')).Consumed)
}

func TestCursorStyleString(t *testing.T) {
	assert.Equal(t, "block", CursorBlock.String())
	assert.Equal(t, "bar", NewInsertMode().CursorStyle().String())
	assert.Equal(t, "unknown", CursorStyle(9).String())
}
