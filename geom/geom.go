// Package geom holds the value types used to place widgets: points, sizes
// and rectangles, along with the hit-test predicates built on them.
package geom

import "math"

// Point is a position in pixels.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Size is a width and height in pixels.
type Size struct {
	Width, Height float64
}

// Sz is shorthand for Size{w, h}.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

// Fits reports whether s fits inside box on both axes.
func (s Size) Fits(box Size) bool {
	return s.Width <= box.Width && s.Height <= box.Height
}

// Empty reports whether either dimension is zero.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect is the placement of an element: its top-left corner relative to the
// parent's origin and its size. Width and Height are never negative once a
// Rect has passed through Canon.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// R is shorthand for Rect{x, y, w, h}.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// FromParts assembles a Rect from a position and a size.
func FromParts(p Point, s Size) Rect {
	return Rect{X: p.X, Y: p.Y, Width: s.Width, Height: s.Height}
}

// Canon clamps negative dimensions to zero.
func (r Rect) Canon() Rect {
	r.Width = math.Max(0, r.Width)
	r.Height = math.Max(0, r.Height)
	return r
}

// Position returns the top-left corner.
func (r Rect) Position() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the width and height.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Max returns the bottom-right corner.
func (r Rect) Max() Point {
	return Point{X: r.X + r.Width, Y: r.Y + r.Height}
}

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// WithPosition returns r moved to p, keeping its size.
func (r Rect) WithPosition(p Point) Rect {
	r.X, r.Y = p.X, p.Y
	return r
}

// WithSize returns r resized to s, keeping its position.
func (r Rect) WithSize(s Size) Rect {
	r.Width, r.Height = s.Width, s.Height
	return r
}

// Translate returns r moved by d.
func (r Rect) Translate(d Point) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Expand grows r by d on every side. A negative d shrinks it; the result is
// canonicalized.
func (r Rect) Expand(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, Width: r.Width + 2*d, Height: r.Height + 2*d}.Canon()
}

// Hit reports whether p lies strictly inside r. Points on any edge are
// outside, so two widgets sharing an edge never both claim a pointer.
func (r Rect) Hit(p Point) bool {
	return p.X > r.X && p.X < r.X+r.Width &&
		p.Y > r.Y && p.Y < r.Y+r.Height
}

// Pixels returns the integer pixel dimensions needed to hold r, rounding
// fractional sizes up.
func (s Size) Pixels() (w, h int) {
	return int(math.Ceil(s.Width)), int(math.Ceil(s.Height))
}
