package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlapsIgnoresTouchingEdges(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	assert.False(t, a.Overlaps(Rect{X: 10, Y: 0, W: 10, H: 10}))
	assert.False(t, a.Overlaps(Rect{X: 0, Y: 10, W: 10, H: 10}))
	assert.True(t, a.Overlaps(Rect{X: 9.5, Y: 9.5, W: 10, H: 10}))
}

func TestClampX(t *testing.T) {
	wall := Rect{X: 100, Y: 0, W: 16, H: 16}

	tests := []struct {
		name  string
		start Rect
		dx    float64
		wantX float64
	}{
		{"moving right stops at left edge", Rect{X: 90, Y: 0, W: 20, H: 16}, 5, 80},
		{"moving left stops at right edge", Rect{X: 110, Y: 0, W: 20, H: 16}, -5, 116},
		{"no overlap keeps position", Rect{X: 40, Y: 0, W: 20, H: 16}, 5, 40},
		{"zero delta never clamps", Rect{X: 95, Y: 0, W: 20, H: 16}, 0, 95},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampX(tt.start, wall, tt.dx)
			assert.Equal(t, tt.wantX, got.X)
			if tt.dx != 0 {
				assert.False(t, got.Overlaps(wall))
			}
		})
	}
}

func TestClampY(t *testing.T) {
	wall := Rect{X: 0, Y: 100, W: 16, H: 16}

	down := ClampY(Rect{X: 0, Y: 90, W: 16, H: 20}, wall, 4)
	assert.Equal(t, 80.0, down.Y)
	assert.False(t, down.Overlaps(wall))

	up := ClampY(Rect{X: 0, Y: 110, W: 16, H: 20}, wall, -4)
	assert.Equal(t, 116.0, up.Y)
	assert.False(t, up.Overlaps(wall))
}

func TestDiagonalScaleKeepsStraightLineSpeed(t *testing.T) {
	dx, dy := DiagonalScale(6.5, -6.5)
	assert.InDelta(t, 6.5*math.Sqrt2/2, dx, 1e-9)
	assert.InDelta(t, -6.5*math.Sqrt2/2, dy, 1e-9)
	assert.InDelta(t, 6.5, math.Hypot(dx, dy), 1e-9)

	dx, dy = DiagonalScale(6.5, 0)
	assert.Equal(t, 6.5, dx)
	assert.Equal(t, 0.0, dy)
}

func TestScrollInto(t *testing.T) {
	r := Rect{X: 1000, Y: 200, W: 96, H: 96}
	got, sx, sy := ScrollInto(r, 1200, 600, 150)
	assert.Equal(t, -46.0, sx)
	assert.Equal(t, 0.0, sy)
	assert.Equal(t, 1050.0-96, got.X)

	r = Rect{X: 300, Y: 140, W: 96, H: 96}
	got, sx, sy = ScrollInto(r, 1200, 600, 150)
	assert.Equal(t, 0.0, sx)
	assert.Equal(t, 10.0, sy)
	assert.Equal(t, 150.0, got.Y)
}

func TestUnion(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	b := Rect{X: 5, Y: -5, W: 20, H: 10}
	assert.Equal(t, Rect{X: 0, Y: -5, W: 25, H: 15}, a.Union(b))
	assert.Equal(t, a, a.Union(a))
}
