// Package vim holds small pieces of vim-style command state shared by the
// modes and the editor: the numeric count prefix and the yank register.
//
// A count is typed as digits before a command ("3dd"). '0' only extends a
// count that has already started; on its own it is the line-start motion.
//
// The Register keeps the lines of the last yank. It can mirror yanks to the
// system clipboard through a ClipboardProvider; SystemClipboard is the
// implementation used in the terminal.
package vim
