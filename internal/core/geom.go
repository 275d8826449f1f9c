// Package core provides the primitives shared by every Star Quest engine:
// geometry, the cell screen, input frames, the frame clock, the deferred
// event queue and the award gate. It has no external dependencies (in
// particular no Bubble Tea) so engines stay pure and testable.
package core

import "math"

// Rect is an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center cell of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// RectF is an axis-aligned box in world units (virtual pixels).
type RectF struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// CenteredRectF builds a box from its center and full size.
func CenteredRectF(cx, cy, w, h float64) RectF {
	return RectF{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 { return r.X + r.W }

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 { return r.Y + r.H }

// Overlaps reports a strict overlap on both axes. Touching edges do not
// overlap. A zero-width box overlaps when its x lies strictly inside the
// other box, which lets a point-like probe be tested against a box.
func (r RectF) Overlaps(o RectF) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Overlap returns the signed length shared by [a0,a1] and [b0,b1].
// A value <= 0 means the intervals are disjoint.
func Overlap(a0, a1, b0, b1 float64) float64 {
	return math.Min(a1, b1) - math.Max(a0, b0)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Lerp moves a toward b by fraction t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
