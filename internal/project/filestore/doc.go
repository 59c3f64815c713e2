// Package filestore loads documents from and saves them to files.
//
// Files are read whole, decoded into line texts with any line ending
// style, and remembered by absolute path so a later save writes the same
// layout back. A failed load or save never touches the caller's
// document: the store only hands out and takes in plain line slices.
package filestore
