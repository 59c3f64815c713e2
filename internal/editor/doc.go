// Package editor implements the modal controller.
//
// An Editor owns a line.Document and every piece of state that points
// into it: the cursor, the search state, the yank register and the
// command history. Keys go through the mode manager, which turns them
// into mode.Actions; Execute applies an action to the document and
// revalidates the cursor afterwards.
//
// Command-line text typed after ':' is parsed by ParseCommand:
//
//	:w [file]          write
//	:wq [file], :x     write and quit
//	:q, :q!            quit, forced quit
//	:e[!] file         open
//	:s/old/new/[g]     substitute on the cursor line
//	:%s/old/new/[g]    substitute in the whole document
//	:N                 go to line N
//	:d N               delete line N
package editor
