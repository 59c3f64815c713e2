package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse errors
var (
	ErrEmptySpec        = errors.New("empty key specification")
	ErrInvalidSpec      = errors.New("invalid key specification")
	ErrUnmatchedBracket = errors.New("unmatched bracket in key specification")
)

// Parse parses a single key specification.
//
// Supported formats:
//   - Single character: "a", "A", "1", "@"
//   - Bracketed names: "<Esc>", "<CR>", "<BS>", "<Up>", "<Space>", "<lt>"
//   - Modifiers: "<C-c>", "<A-x>"
func Parse(spec string) (Event, error) {
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") && len(spec) > 2 {
		return parseBracketed(spec[1 : len(spec)-1])
	}

	runes := []rune(spec)
	if len(runes) == 1 {
		return Rune(runes[0]), nil
	}
	if k := KeyFromName(spec); k != KeyNone {
		return Special(k), nil
	}
	return Event{}, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
}

// parseBracketed parses the inside of "<...>", e.g. "C-c", "CR", "lt".
func parseBracketed(inner string) (Event, error) {
	var mods Modifier
	for len(inner) > 2 && inner[1] == '-' {
		switch inner[0] {
		case 'C', 'c':
			mods = mods.With(ModCtrl)
		case 'A', 'a', 'M', 'm':
			mods = mods.With(ModAlt)
		case 'S', 's':
			mods = mods.With(ModShift)
		default:
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, inner[:1])
		}
		inner = inner[2:]
	}

	switch strings.ToLower(inner) {
	case "space":
		return NewRuneEvent(' ', mods), nil
	case "lt":
		return NewRuneEvent('<', mods), nil
	case "gt":
		return NewRuneEvent('>', mods), nil
	}

	if k := KeyFromName(inner); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}

	runes := []rune(inner)
	if len(runes) == 1 {
		return NewRuneEvent(runes[0], mods), nil
	}
	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, inner)
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Event {
	event, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return event
}

// ParseScript parses a continuous key script such as "ihi<Esc>:w<CR>".
// Characters outside brackets are literal key presses.
func ParseScript(s string) ([]Event, error) {
	var events []Event
	for i := 0; i < len(s); {
		if s[i] == '<' {
			end := strings.IndexByte(s[i:], '>')
			if end == -1 {
				return nil, fmt.Errorf("%w at offset %d", ErrUnmatchedBracket, i)
			}
			event, err := Parse(s[i : i+end+1])
			if err != nil {
				return nil, err
			}
			events = append(events, event)
			i += end + 1
			continue
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		events = append(events, Rune(r))
		i += size
	}
	return events, nil
}

// FormatScript is the inverse of ParseScript.
func FormatScript(events []Event) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(e.String())
	}
	return sb.String()
}
