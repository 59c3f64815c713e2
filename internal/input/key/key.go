package key

import (
	"fmt"
	"strings"
)

// Key represents a keyboard key.
// For character keys, use KeyRune and set the Rune field in Event.
type Key uint8

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// KeyRune is used for character keys (letters, numbers, punctuation).
	// The actual character is stored in Event.Rune.
	KeyRune
)

var keyNames = [...]string{
	KeyNone:      "None",
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyRune:      "Rune",
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", k)
}

// IsSpecial returns true if this is a special (non-character) key.
func (k Key) IsSpecial() bool {
	return k != KeyNone && k != KeyRune
}

// IsArrowKey returns true if this is an arrow key.
func (k Key) IsArrowKey() bool {
	return k >= KeyUp && k <= KeyRight
}

// keyNameMap maps key names (lowercase) to Key values.
var keyNameMap = map[string]Key{
	"escape":    KeyEscape,
	"esc":       KeyEscape,
	"enter":     KeyEnter,
	"return":    KeyEnter,
	"cr":        KeyEnter,
	"tab":       KeyTab,
	"backspace": KeyBackspace,
	"bs":        KeyBackspace,
	"delete":    KeyDelete,
	"del":       KeyDelete,
	"home":      KeyHome,
	"end":       KeyEnd,
	"pageup":    KeyPageUp,
	"pgup":      KeyPageUp,
	"pagedown":  KeyPageDown,
	"pgdn":      KeyPageDown,
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
}

// KeyFromName returns the Key for a given name (case-insensitive).
// Returns KeyNone if the name is not recognized.
func KeyFromName(name string) Key {
	name = strings.ToLower(strings.TrimSpace(name))
	if k, ok := keyNameMap[name]; ok {
		return k
	}
	return KeyNone
}
