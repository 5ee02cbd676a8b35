// Package core provides fundamental types shared by the simulation and the
// platform layers: vectors, the screen buffer, input frames and runtime config.
// It has no external dependencies so game logic stays pure and testable.
package core

import "cmp"

// Rect is a cell rectangle on the screen buffer, used for viewports and boxes.
// It covers [X, X+W) x [Y, Y+H).
type Rect struct {
	X, Y int
	W, H int
}

// NewRect returns the rectangle at (x, y) spanning w by h cells.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks the rectangle by n cells on every side.
// The result never has negative size.
func (r Rect) Inset(n int) Rect {
	return Rect{
		X: r.X + n,
		Y: r.Y + n,
		W: max(r.W-2*n, 0),
		H: max(r.H-2*n, 0),
	}
}

// Clamp restricts v to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
