// Package physics provides collision detection and geometry utilities.
package physics

// Rect is an axis-aligned box with its top-left corner at (X, Y).
type Rect struct {
	X, Y float64
	W, H float64
}

// Center returns the center point of the box.
func (r Rect) Center() (x, y float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Overlaps reports whether two boxes intersect. Boxes that only touch
// along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return Overlaps(r.X, r.Y, r.W, r.H, o.X, o.Y, o.W, o.H)
}

// Overlaps checks if two axis-aligned boxes intersect.
func Overlaps(x1, y1, w1, h1, x2, y2, w2, h2 float64) bool {
	return x1 < x2+w2 && x2 < x1+w1 && y1 < y2+h2 && y2 < y1+h1
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Midpoint returns the point halfway between two points.
func Midpoint(x1, y1, x2, y2 float64) (x, y float64) {
	return (x1 + x2) / 2, (y1 + y2) / 2
}
