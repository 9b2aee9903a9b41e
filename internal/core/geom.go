// Package core holds the terminal-independent drawing primitives the
// baseball field is rendered with. It has no Bubble Tea or lipgloss
// dependencies, so the layout can be tested as plain text.
package core

// Point is a cell position on the screen.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned box of cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Lerp returns the point a fraction t of the way from a to b, rounded down.
// t is clamped to [0, 1].
func Lerp(a, b Point, t float64) Point {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return Point{
		X: a.X + int(float64(b.X-a.X)*t),
		Y: a.Y + int(float64(b.Y-a.Y)*t),
	}
}
