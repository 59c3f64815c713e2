package renderer

// Viewport tracks which lines and columns of a document are on screen.
// It scrolls only as far as needed to keep the cursor visible.
type Viewport struct {
	top, left     int
	width, height int
	margin        int
}

// NewViewport creates a viewport of the given size.
func NewViewport(width, height int) *Viewport {
	v := &Viewport{}
	v.Resize(width, height)
	return v
}

// Resize changes the viewport size.
func (v *Viewport) Resize(width, height int) {
	v.width = max(width, 1)
	v.height = max(height, 1)
}

// SetMargin sets how many lines are kept visible above and below the
// cursor when scrolling.
func (v *Viewport) SetMargin(n int) {
	v.margin = max(n, 0)
}

// Size returns the viewport width and height.
func (v *Viewport) Size() (width, height int) {
	return v.width, v.height
}

// TopLine returns the first visible line index.
func (v *Viewport) TopLine() int {
	return v.top
}

// LeftColumn returns the first visible screen column.
func (v *Viewport) LeftColumn() int {
	return v.left
}

// VisibleRange returns the half-open range of visible line indexes for a
// document of total lines.
func (v *Viewport) VisibleRange(total int) (start, end int) {
	return v.top, min(v.top+v.height, total)
}

// Reveal scrolls so that line and screen column col are visible. Returns
// true if the viewport moved.
func (v *Viewport) Reveal(line, col, total int) bool {
	top, left := v.top, v.left
	margin := min(v.margin, (v.height-1)/2)

	switch {
	case line < v.top+margin:
		v.top = max(line-margin, 0)
	case line > v.top+v.height-1-margin:
		v.top = line - v.height + 1 + margin
	}
	// Never scroll past the last line.
	v.top = max(min(v.top, total-v.height), 0)

	switch {
	case col < v.left:
		v.left = col
	case col >= v.left+v.width:
		v.left = col - v.width + 1
	}
	return top != v.top || left != v.left
}
