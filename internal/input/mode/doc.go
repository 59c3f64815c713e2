// Package mode provides the modal key handling for the editor.
//
// There are two modes. Normal mode interprets keys as commands and Insert
// mode types them as text. Each Mode turns a key.Event into an Action for
// the editor to execute; modes never touch the document themselves.
//
// Normal mode also carries short-lived input state: a numeric count
// prefix, a pending operator ("d" waiting for the second "d"), a
// CommandLine for ":" and "/" input, and the history browser opened with
// "M". While the command line or the browser is active they receive every
// key.
//
// # Mode Lifecycle
//
// The Manager switches modes. When switching:
//  1. Current mode's Exit() is called
//  2. New mode's Enter() is called
//  3. Mode change callbacks are notified
package mode
