package core

import "math"

// HitboxShrink is the fraction trimmed from each side of a player box
// before collision tests. 0.375 per side leaves the center 25% on each axis.
const HitboxShrink = 0.375

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether the two boxes intersect. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// Shrink trims f of the width and height from every side.
func (r Rect) Shrink(f float64) Rect {
	return Rect{
		X: r.X + r.W*f,
		Y: r.Y + r.H*f,
		W: r.W * (1 - 2*f),
		H: r.H * (1 - 2*f),
	}
}

// Center returns the midpoint of the box.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Distance is the euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// AngleTo returns the heading from (x1,y1) toward (x2,y2).
func AngleTo(x1, y1, x2, y2 float64) float64 {
	return math.Atan2(y2-y1, x2-x1)
}
