// Package core provides fundamental types and utilities for the runner platform.
// It contains no external dependencies (especially no Bubble Tea or Ebiten) to keep
// game logic pure and testable.
package core

import "math"

// Box is an axis-aligned bounding box in world units (pixels).
// The world is y-up: Y is the bottom edge, measured from the ground line.
type Box struct {
	X, Y float64 // Bottom-left corner
	W, H float64 // Width and height
}

// NewBox creates a box with the given bottom-left corner and size.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 { return b.X }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.X + b.W }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Y }

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 { return b.Y + b.H }

// Overlaps reports whether two boxes share at least one point.
// Touching edges count as overlap: only strict separation on an axis
// keeps the boxes apart.
func (b Box) Overlaps(other Box) bool {
	return !(b.Right() < other.Left() ||
		b.Left() > other.Right() ||
		b.Top() < other.Bottom() ||
		b.Bottom() > other.Top())
}

// Rect represents an integer rectangle in screen cells (y-down).
// Used by the Screen buffer for drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
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
