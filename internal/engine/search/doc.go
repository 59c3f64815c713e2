// Package search implements literal pattern search and substring
// replacement over a line.Document.
//
// Engine holds the search state: the last pattern and the position of the
// last match. Search scans the document line by line and cell by cell and
// records the earliest match. FindNext resumes one cell past the recorded
// match. FindPrevious first scans forward from that point to the end of the
// document and only when nothing is found there scans the earlier lines,
// nearest first.
//
// Replace rewrites lines through a single algorithm: occurrences are found
// on the line's text, left to right and without overlap, and each one is
// patched into the cell chain with line.Line.Splice. Options select the
// scope (current line or whole document) and whether every occurrence in a
// line is replaced.
//
// Matching is exact and case-sensitive. Regular expressions are not
// supported.
package search
