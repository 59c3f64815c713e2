// Package key provides abstract key events and the sources that produce
// them.
//
// An Event is either a printable character (KeyRune plus the rune) or a
// named control key such as Escape, Enter, Backspace or an arrow. Terminal
// decoding of raw input bytes happens in the renderer backend; everything
// above that layer sees only Events.
//
// # Key scripts
//
// ParseScript turns a string into a sequence of events, with named keys in
// angle brackets:
//
//	ihello<Esc>:wq<CR>
//
// Use <lt> for a literal '<'. Scripts drive SliceSource, which replays a
// fixed sequence and is used by tests and the --keys flag.
package key
