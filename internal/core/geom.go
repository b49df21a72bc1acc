// Package core provides fundamental types and utilities shared by the game
// simulation and the platform drivers. It has no external dependencies (no
// Bubble Tea, no ebiten) to keep game logic pure and testable.
package core

import "math"

// Rect represents an integer axis-aligned box in screen cells.
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

// RectF is an axis-aligned box in logical playfield units.
type RectF struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewRectF creates a logical rectangle.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// ContainsPoint reports whether (x, y) lies inside r, edges included.
func (r RectF) ContainsPoint(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// NearestPoint returns the point of r closest to (x, y).
func (r RectF) NearestPoint(x, y float64) (float64, float64) {
	return ClampF(x, r.X, r.Right()), ClampF(y, r.Y, r.Bottom())
}

// Circle is a disc in logical units.
type Circle struct {
	X, Y float64 // Center
	R    float64
}

// CircleIntersectsRect reports whether the circle touches the rectangle:
// the distance from the center to the nearest point of the rectangle is at
// most the radius.
func CircleIntersectsRect(c Circle, r RectF) bool {
	nx, ny := r.NearestPoint(c.X, c.Y)
	dx := c.X - nx
	dy := c.Y - ny
	return dx*dx+dy*dy <= c.R*c.R
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
	return math.Max(min, math.Min(max, val))
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
