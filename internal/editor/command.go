package editor

import (
	"fmt"
	"strconv"
	"strings"
)

// CommandKind identifies a command-line command.
type CommandKind uint8

const (
	// CmdNone is an empty command line.
	CmdNone CommandKind = iota
	// CmdWrite is ":w [file]".
	CmdWrite
	// CmdWriteQuit is ":wq [file]" or ":x".
	CmdWriteQuit
	// CmdQuit is ":q" or ":q!".
	CmdQuit
	// CmdEdit is ":e[!] file".
	CmdEdit
	// CmdSubstitute is ":s/old/new/[g]" or ":%s/old/new/[g]".
	CmdSubstitute
	// CmdGoto is ":N".
	CmdGoto
	// CmdDeleteLine is ":d N".
	CmdDeleteLine
)

var kindNames = map[CommandKind]string{
	CmdNone:       "none",
	CmdWrite:      "write",
	CmdWriteQuit:  "write-quit",
	CmdQuit:       "quit",
	CmdEdit:       "edit",
	CmdSubstitute: "substitute",
	CmdGoto:       "goto",
	CmdDeleteLine: "delete",
}

// String returns the command kind name.
func (k CommandKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Command is a parsed command line.
type Command struct {
	Kind CommandKind

	// Force is set by a trailing '!'.
	Force bool

	// File is the file argument of w, wq and e.
	File string

	// Line is the 1-based line number of goto and delete.
	Line int

	// Old, New and Global describe a substitution; Document selects the
	// '%' range.
	Old      string
	New      string
	Global   bool
	Document bool
}

// ParseCommand parses the text typed after ':'.
func ParseCommand(text string) (Command, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Command{Kind: CmdNone}, nil
	}

	if n, err := strconv.Atoi(text); err == nil {
		return Command{Kind: CmdGoto, Line: n}, nil
	}

	if rest, ok := strings.CutPrefix(text, "%s"); ok && isDelimited(rest) {
		return parseSubstitute(rest, true)
	}
	if rest, ok := strings.CutPrefix(text, "s"); ok && isDelimited(rest) {
		return parseSubstitute(rest, false)
	}

	name, arg, _ := strings.Cut(text, " ")
	arg = strings.TrimSpace(arg)
	force := strings.HasSuffix(name, "!")
	name = strings.TrimSuffix(name, "!")

	switch name {
	case "w", "write":
		return Command{Kind: CmdWrite, File: arg, Force: force}, nil
	case "wq", "x":
		return Command{Kind: CmdWriteQuit, File: arg, Force: force}, nil
	case "q", "quit":
		if arg != "" {
			break
		}
		return Command{Kind: CmdQuit, Force: force}, nil
	case "e", "edit":
		if arg == "" {
			return Command{}, fmt.Errorf("%w: %s", ErrNoFileName, text)
		}
		return Command{Kind: CmdEdit, File: arg, Force: force}, nil
	case "d", "delete":
		n, err := strconv.Atoi(arg)
		if err != nil {
			break
		}
		return Command{Kind: CmdDeleteLine, Line: n}, nil
	}

	// "d5" without a space
	if digits, ok := strings.CutPrefix(text, "d"); ok {
		if n, err := strconv.Atoi(digits); err == nil {
			return Command{Kind: CmdDeleteLine, Line: n}, nil
		}
	}

	return Command{}, fmt.Errorf("%w: %s", ErrUnknownCommand, text)
}

func isDelimited(s string) bool {
	return strings.HasPrefix(s, "/")
}

// parseSubstitute parses "/old/new/flags". The trailing delimiter is
// optional. "\/" stands for a literal slash.
func parseSubstitute(s string, document bool) (Command, error) {
	parts := splitUnescaped(s[1:], '/')
	if len(parts) < 2 || len(parts) > 3 {
		return Command{}, fmt.Errorf("%w: %s", ErrBadSubstitute, s)
	}

	cmd := Command{Kind: CmdSubstitute, Old: parts[0], New: parts[1], Document: document}
	if len(parts) == 3 {
		switch parts[2] {
		case "":
		case "g":
			cmd.Global = true
		default:
			return Command{}, fmt.Errorf("%w: unknown flags %q", ErrBadSubstitute, parts[2])
		}
	}
	return cmd, nil
}

func splitUnescaped(s string, sep rune) []string {
	var (
		parts []string
		cur   strings.Builder
	)
	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		switch {
		case rs[i] == '\\' && i+1 < len(rs) && rs[i+1] == sep:
			cur.WriteRune(sep)
			i++
		case rs[i] == sep:
			parts = append(parts, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(rs[i])
		}
	}
	return append(parts, cur.String())
}

// String formats the command as it would be typed.
func (c Command) String() string {
	bang := ""
	if c.Force {
		bang = "!"
	}
	switch c.Kind {
	case CmdWrite:
		return strings.TrimSpace(":w" + bang + " " + c.File)
	case CmdWriteQuit:
		return strings.TrimSpace(":wq" + bang + " " + c.File)
	case CmdQuit:
		return ":q" + bang
	case CmdEdit:
		return ":e" + bang + " " + c.File
	case CmdSubstitute:
		s := ":s/"
		if c.Document {
			s = ":%s/"
		}
		s += c.Old + "/" + c.New
		if c.Global {
			s += "/g"
		}
		return s
	case CmdGoto:
		return ":" + strconv.Itoa(c.Line)
	case CmdDeleteLine:
		return ":d " + strconv.Itoa(c.Line)
	default:
		return ":"
	}
}
