package graphics

import "math"

// Offset represents a 2D point or vector in logical pixels.
type Offset struct {
	X float64
	Y float64
}

// Add returns the sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Size represents width and height dimensions.
type Size struct {
	Width  float64
	Height float64
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{Left: left, Top: top, Right: left + width, Bottom: top + height}
}

// RectFromSize constructs a Rect anchored at the origin.
func RectFromSize(size Size) Rect {
	return RectFromLTWH(0, 0, size.Width, size.Height)
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the height of the rectangle.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{X: (r.Left + r.Right) * 0.5, Y: (r.Top + r.Bottom) * 0.5}
}

// Inset shrinks the rectangle by d on every side. Negative values grow it.
func (r Rect) Inset(d float64) Rect {
	return Rect{Left: r.Left + d, Top: r.Top + d, Right: r.Right - d, Bottom: r.Bottom - d}
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Radius represents corner radii for rounded rectangles.
type Radius struct {
	X float64
	Y float64
}

// CircularRadius creates a circular radius with equal X/Y values.
func CircularRadius(value float64) Radius {
	return Radius{X: value, Y: value}
}

// RRect is a rectangle with uniform rounded corners.
type RRect struct {
	Rect   Rect
	Radius Radius
}

// RRectFromRectAndRadius creates a rounded rectangle.
func RRectFromRectAndRadius(rect Rect, radius Radius) RRect {
	return RRect{Rect: rect, Radius: radius}
}

// Distance returns the euclidean distance between two points.
func Distance(a, b Offset) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
