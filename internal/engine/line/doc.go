// Package line provides the character-cell storage of the editor engine.
//
// A Line is a doubly linked chain of character cells. The chain is kept in
// an arena owned by the Line: each cell lives in a slice slot and refers to
// its neighbours by slot index rather than by pointer, so removing or
// rebuilding cells can never leave a dangling reference behind. Freed slots
// are recycled by later insertions.
//
// A Document is the ordered sequence of Lines. It always holds at least one
// (possibly empty) Line and is indexed by position only; there are no
// persistent line identifiers.
//
// Soft wrap:
//
// Documents enforce a fixed wrap width (DefaultWrapWidth cells). After a
// character is inserted, Wrap moves every cell beyond the width onto a new
// Line placed directly after the current one. Cells are moved by value, in
// order, so no cell is ever shared between Lines.
//
// Basic usage:
//
//	doc := line.NewDocument()
//	l, _ := doc.Line(0)
//	l.Append('h')
//	l.Append('i')
//	doc.Text(0) // "hi"
//
// Thread Safety:
//
// Line and Document are not safe for concurrent use. The editor owns a
// single Document and mutates it from one goroutine.
package line
