package gamemath

import "math"

// DiagonalScale shrinks a step that moves on both axes so the combined
// displacement matches a single-axis step.
func DiagonalScale(dx, dy float64) (float64, float64) {
	if dx != 0 && dy != 0 {
		return dx * math.Sqrt2 / 2, dy * math.Sqrt2 / 2
	}
	return dx, dy
}

// ClampX pushes r out of o after an x-axis move of dx. Moving right puts
// r's right edge on o's left edge, moving left puts r's left edge on o's
// right edge. r is returned unchanged when the rects do not overlap.
func ClampX(r, o Rect, dx float64) Rect {
	if !r.Overlaps(o) {
		return r
	}
	if dx > 0 {
		r.X = o.X - r.W
	}
	if dx < 0 {
		r.X = o.X + o.W
	}
	return r
}

// ClampY is ClampX for the y axis.
func ClampY(r, o Rect, dy float64) Rect {
	if !r.Overlaps(o) {
		return r
	}
	if dy > 0 {
		r.Y = o.Y - r.H
	}
	if dy < 0 {
		r.Y = o.Y + o.H
	}
	return r
}

// ScrollInto keeps r inside the box inset by edge from every side of a
// width×height screen. It returns the clamped rect and the scroll that
// must be applied to everything else to compensate.
func ScrollInto(r Rect, width, height, edge float64) (Rect, float64, float64) {
	var sx, sy float64
	if r.Right() > width-edge {
		sx = (width - edge) - r.Right()
		r.X = width - edge - r.W
	}
	if r.Left() < edge {
		sx = edge - r.Left()
		r.X = edge
	}
	if r.Bottom() > height-edge {
		sy = (height - edge) - r.Bottom()
		r.Y = height - edge - r.H
	}
	if r.Top() < edge {
		sy = edge - r.Top()
		r.Y = edge
	}
	return r, sx, sy
}
