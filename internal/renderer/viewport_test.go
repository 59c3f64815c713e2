package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewportRevealScrollsMinimally(t *testing.T) {
	v := NewViewport(10, 5)

	assert.False(t, v.Reveal(2, 0, 100))
	assert.Equal(t, 0, v.TopLine())

	assert.True(t, v.Reveal(7, 0, 100))
	assert.Equal(t, 3, v.TopLine())

	assert.True(t, v.Reveal(1, 0, 100))
	assert.Equal(t, 1, v.TopLine())

	start, end := v.VisibleRange(100)
	assert.Equal(t, 1, start)
	assert.Equal(t, 6, end)
}

func TestViewportNeverScrollsPastEnd(t *testing.T) {
	v := NewViewport(10, 5)
	v.Reveal(7, 0, 100)

	assert.True(t, v.Reveal(4, 0, 5))
	assert.Equal(t, 0, v.TopLine())

	start, end := v.VisibleRange(3)
	assert.Equal(t, 0, start)
	assert.Equal(t, 3, end)
}

func TestViewportMargin(t *testing.T) {
	v := NewViewport(10, 5)
	v.SetMargin(1)

	v.Reveal(4, 0, 100)
	assert.Equal(t, 1, v.TopLine())

	v.Reveal(1, 0, 100)
	assert.Equal(t, 0, v.TopLine())
}

func TestViewportHorizontal(t *testing.T) {
	v := NewViewport(10, 5)

	v.Reveal(0, 15, 1)
	assert.Equal(t, 6, v.LeftColumn())

	v.Reveal(0, 2, 1)
	assert.Equal(t, 2, v.LeftColumn())
}

func TestViewportResizeKeepsMinimum(t *testing.T) {
	v := NewViewport(0, -3)
	w, h := v.Size()
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
}
