package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapDown(t *testing.T) {
	assert.Equal(t, 119.0, snapDown(119.9375, 1))
	assert.Equal(t, 120.0, snapDown(120, 1))
	assert.Equal(t, 119.875, snapDown(119.9375, 0.125))
	assert.Equal(t, 0.0, snapDown(0.75, 1))
	// Non-positive increment leaves the value alone.
	assert.Equal(t, 7.3, snapDown(7.3, 0))
}

func TestSnapUp(t *testing.T) {
	// snapUp applies the integer ceiling identity to floats: exact
	// multiples are unchanged, integers round up past the increment,
	// fractional remainders under one unit stay below it.
	assert.Equal(t, 120.0, snapUp(120, 1))
	assert.Equal(t, 122.0, snapUp(121.25, 2))
	assert.Equal(t, 119.0, snapUp(119.5, 1))
	assert.Equal(t, 7.3, snapUp(7.3, 0))
}

func TestIntersect(t *testing.T) {
	a := rect{x0: 0, y0: 0, x1: 100, y1: 100}
	b := rect{x0: 50, y0: 50, x1: 150, y1: 150}

	iv, ok := intersect(a, b)
	assert.True(t, ok)
	assert.Equal(t, rect{x0: 50, y0: 50, x1: 100, y1: 100}, iv)

	// Edge contact has zero area.
	_, ok = intersect(a, rect{x0: 100, y0: 0, x1: 200, y1: 100})
	assert.False(t, ok)

	_, ok = intersect(a, rect{x0: 200, y0: 200, x1: 300, y1: 300})
	assert.False(t, ok)

	assert.True(t, overlaps(a, b))
	assert.False(t, overlaps(a, rect{x0: 100, y0: 0, x1: 200, y1: 100}))
}
