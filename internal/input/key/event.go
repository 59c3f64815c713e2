package key

import (
	"fmt"
	"unicode"
)

// Event represents a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// Rune is shorthand for an unmodified character event.
func Rune(r rune) Event {
	return NewRuneEvent(r, ModNone)
}

// Special is shorthand for an unmodified special key event.
func Special(k Key) Event {
	return NewSpecialEvent(k, ModNone)
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune)
}

// IsModified returns true if Ctrl or Alt is held.
// Shift alone does not count for characters since it changes the character
// itself.
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers&(ModCtrl|ModAlt) != 0
	}
	return e.Modifiers != ModNone
}

// IsEscape returns true if this is the Escape key (with no modifiers).
func (e Event) IsEscape() bool {
	return e.Key == KeyEscape && e.Modifiers == ModNone
}

// IsEnter returns true if this is the Enter key (with no modifiers).
func (e Event) IsEnter() bool {
	return e.Key == KeyEnter && e.Modifiers == ModNone
}

// IsBackspace returns true if this is Backspace (with no modifiers).
func (e Event) IsBackspace() bool {
	return e.Key == KeyBackspace && e.Modifiers == ModNone
}

// String returns the event in script notation: "a", "<Esc>", "<C-c>".
func (e Event) String() string {
	if e.IsRune() && !e.IsModified() {
		if e.Rune == '<' {
			return "<lt>"
		}
		return string(e.Rune)
	}

	prefix := ""
	if e.Modifiers.Has(ModCtrl) {
		prefix += "C-"
	}
	if e.Modifiers.Has(ModAlt) {
		prefix += "A-"
	}

	name := e.Key.String()
	switch e.Key {
	case KeyRune:
		name = string(e.Rune)
	case KeyEscape:
		name = "Esc"
	case KeyEnter:
		name = "CR"
	case KeyBackspace:
		name = "BS"
	}
	return "<" + prefix + name + ">"
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s}", e.Key, e.Rune, e.Modifiers)
}
