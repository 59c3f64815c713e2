// Package cursor provides the editing position and the motions built on it.
//
// A Cursor is an immutable (line, column) value. The column is a 0-based
// cell offset into the line; a column equal to the line length is the
// append position, which is also the only position on an empty line.
//
// Cursors never hold references into the document. Every motion takes the
// document explicitly and returns a new Cursor, and Clamp revalidates a
// Cursor after a structural edit has shortened or removed its line.
//
// Word Motions:
//
// Characters fall into exactly one class: ASCII letters are word
// characters, ASCII punctuation and space are separators, and everything
// else is "other". NextWord and PrevWord may cross line boundaries;
// Left and Right never do.
package cursor
