package vim

// MaxCount caps an accumulated count prefix.
const MaxCount = 9999

// CountState tracks count prefix accumulation.
type CountState struct {
	// Value is the accumulated count value.
	Value int

	// Active indicates if a count is being accumulated.
	Active bool
}

// NewCountState creates a new count state.
func NewCountState() *CountState {
	return &CountState{}
}

// Reset clears the count state.
func (c *CountState) Reset() {
	c.Value = 0
	c.Active = false
}

// AccumulateDigit adds a digit to the count.
// Returns true if the digit was accepted.
// Only accepts ASCII digits 0-9.
func (c *CountState) AccumulateDigit(r rune) bool {
	if r < '0' || r > '9' {
		return false
	}

	digit := int(r - '0')

	// '0' at the start is not a count, it's a motion
	if !c.Active && digit == 0 {
		return false
	}

	c.Active = true
	c.Value = c.Value*10 + digit
	if c.Value > MaxCount {
		c.Value = MaxCount
	}
	return true
}

// Get returns the effective count (1 if no count was specified).
func (c *CountState) Get() int {
	if c.Value <= 0 {
		return 1
	}
	return c.Value
}

// Take returns the effective count and resets the state.
func (c *CountState) Take() int {
	n := c.Get()
	c.Reset()
	return n
}

// IsCountStart returns true if the character could start a count.
// Note: '0' cannot start a count (it's a motion to line start).
func IsCountStart(r rune) bool {
	return r >= '1' && r <= '9'
}
