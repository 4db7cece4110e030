package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBulletVelocityPointsAtTarget(t *testing.T) {
	tests := []struct {
		name           string
		tx, ty         float64
		wantDX, wantDY float64
	}{
		{"right", 100, 0, 20, 0},
		{"left", -100, 0, -20, 0},
		{"down", 0, 100, 0, 20},
		{"up", 0, -100, 0, -20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dx, dy := BulletVelocity(FireAngle(0, 0, tt.tx, tt.ty), 20)
			assert.InDelta(t, tt.wantDX, dx, 1e-9)
			assert.InDelta(t, tt.wantDY, dy, 1e-9)
		})
	}
}

func TestShooterVelocityPointsAtTarget(t *testing.T) {
	dx, dy := ShooterVelocity(ShooterAngle(10, 10, 10, 110), 7)
	assert.InDelta(t, 0, dx, 1e-9)
	assert.InDelta(t, 7, dy, 1e-9)

	dx, dy = ShooterVelocity(ShooterAngle(10, 10, 60, 10), 7)
	assert.InDelta(t, 7, dx, 1e-9)
	assert.InDelta(t, 0, dy, 1e-9)
}

func TestSpreadAndHeading(t *testing.T) {
	base := ShooterAngle(0, 0, 300, 0)
	angles := Spread(base, []float64{-20, -10, 0, 10, 20})
	assert.Len(t, angles, 5)

	for i, a := range angles {
		vx, vy := ShooterVelocity(a, 8)
		assert.InDelta(t, []float64{-20, -10, 0, 10, 20}[i], HeadingOf(vx, vy)-base, 1e-9)
	}
}

func TestDirection(t *testing.T) {
	x, y := Direction(0, 0, 3, 4)
	assert.InDelta(t, 0.6, x, 1e-9)
	assert.InDelta(t, 0.8, y, 1e-9)

	x, y = Direction(5, 5, 5, 5)
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 0.0, y)
}

func TestRay(t *testing.T) {
	s := Ray(0, 0, 10, 0, 30, 800)
	assert.InDelta(t, 30, s.X0, 1e-9)
	assert.InDelta(t, 0, s.Y0, 1e-9)
	assert.InDelta(t, 830, s.X1, 1e-9)
	assert.InDelta(t, 0, s.Y1, 1e-9)
}
