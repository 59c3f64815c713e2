package mode

// CommandLine is the single-line input used for ":" commands and "/"
// searches.
type CommandLine struct {
	// buffer holds the text being typed.
	buffer []rune

	// cursorPos is the cursor position within the buffer.
	cursorPos int

	// prompt is ':' or '/'; zero when the line is closed.
	prompt rune
}

// Open starts input with the given prompt character.
func (c *CommandLine) Open(prompt rune) {
	c.prompt = prompt
	c.buffer = c.buffer[:0]
	c.cursorPos = 0
}

// Close ends input and clears the buffer.
func (c *CommandLine) Close() {
	c.prompt = 0
	c.buffer = c.buffer[:0]
	c.cursorPos = 0
}

// Active returns true while input is open.
func (c *CommandLine) Active() bool {
	return c.prompt != 0
}

// Prompt returns the prompt character.
func (c *CommandLine) Prompt() rune {
	return c.prompt
}

// Buffer returns the typed text.
func (c *CommandLine) Buffer() string {
	return string(c.buffer)
}

// CursorPos returns the cursor position in the buffer.
func (c *CommandLine) CursorPos() int {
	return c.cursorPos
}

// String returns the prompt followed by the text, or "" when closed.
func (c *CommandLine) String() string {
	if !c.Active() {
		return ""
	}
	return string(c.prompt) + string(c.buffer)
}

// Insert inserts a character at the cursor position.
func (c *CommandLine) Insert(r rune) {
	if c.cursorPos >= len(c.buffer) {
		c.buffer = append(c.buffer, r)
	} else {
		c.buffer = append(c.buffer[:c.cursorPos+1], c.buffer[c.cursorPos:]...)
		c.buffer[c.cursorPos] = r
	}
	c.cursorPos++
}

// Backspace deletes the character before the cursor.
func (c *CommandLine) Backspace() bool {
	if c.cursorPos == 0 {
		return false
	}
	c.buffer = append(c.buffer[:c.cursorPos-1], c.buffer[c.cursorPos:]...)
	c.cursorPos--
	return true
}

// Delete deletes the character at the cursor.
func (c *CommandLine) Delete() bool {
	if c.cursorPos >= len(c.buffer) {
		return false
	}
	c.buffer = append(c.buffer[:c.cursorPos], c.buffer[c.cursorPos+1:]...)
	return true
}

// MoveLeft moves the cursor left.
func (c *CommandLine) MoveLeft() bool {
	if c.cursorPos == 0 {
		return false
	}
	c.cursorPos--
	return true
}

// MoveRight moves the cursor right.
func (c *CommandLine) MoveRight() bool {
	if c.cursorPos >= len(c.buffer) {
		return false
	}
	c.cursorPos++
	return true
}
