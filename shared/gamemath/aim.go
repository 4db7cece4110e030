package gamemath

import "math"

func deg(rad float64) float64 { return rad * 180 / math.Pi }
func rad(deg float64) float64 { return deg * math.Pi / 180 }

// FireAngle returns the aim angle in degrees from (x, y) toward (tx, ty),
// measured from the +y (down) axis toward +x.
func FireAngle(x, y, tx, ty float64) float64 {
	return deg(math.Atan2(tx-x, ty-y))
}

// BulletVelocity converts a FireAngle into a velocity of the given speed.
// The travel direction is FireAngle-90 degrees counter-clockwise from +x.
func BulletVelocity(fireAngle, speed float64) (float64, float64) {
	travel := rad(fireAngle - 90)
	return math.Cos(travel) * speed, -math.Sin(travel) * speed
}

// ShooterAngle returns the aim angle in degrees from (x, y) toward
// (tx, ty), measured clockwise from the -y (up) axis.
func ShooterAngle(x, y, tx, ty float64) float64 {
	return deg(math.Atan2(tx-x, -(ty - y)))
}

// ShooterVelocity converts a ShooterAngle into a velocity.
func ShooterVelocity(angle, speed float64) (float64, float64) {
	a := rad(angle)
	return math.Sin(a) * speed, -math.Cos(a) * speed
}

// Spread returns base offset by each entry of offsets, in order.
func Spread(base float64, offsets []float64) []float64 {
	out := make([]float64, len(offsets))
	for i, o := range offsets {
		out[i] = base + o
	}
	return out
}

// HeadingOf returns the ShooterAngle convention heading of a velocity.
func HeadingOf(vx, vy float64) float64 {
	return deg(math.Atan2(vx, -vy))
}

// Direction returns the unit vector from (x, y) toward (tx, ty), or
// (1, 0) when the points coincide.
func Direction(x, y, tx, ty float64) (float64, float64) {
	dx, dy := tx-x, ty-y
	d := math.Hypot(dx, dy)
	if d == 0 {
		return 1, 0
	}
	return dx / d, dy / d
}

// Segment is a line from (X0, Y0) to (X1, Y1).
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// Ray returns the segment that starts offset along the direction from
// (x, y) toward (tx, ty) and extends length further.
func Ray(x, y, tx, ty, offset, length float64) Segment {
	ux, uy := Direction(x, y, tx, ty)
	sx, sy := x+ux*offset, y+uy*offset
	return Segment{X0: sx, Y0: sy, X1: sx + ux*length, Y1: sy + uy*length}
}
