// SPDX-License-Identifier: Unlicense OR MIT

/*
Package f32 holds the float32 geometry of measured chips: sizes,
placements and hit areas.

Coordinates start at the top left corner of the content and grow to the
right and downwards, as in package image.
*/
package f32

import "strconv"

// Point is a position or, with the width in X and the height in Y, a
// size.
type Point struct {
	X, Y float32
}

// Rectangle covers the points p with Min.X <= p.X < Max.X and
// Min.Y <= p.Y < Max.Y.
type Rectangle struct {
	Min, Max Point
}

// Pt returns Point{X: x, Y: y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Rect returns the rectangle spanned by the corners (x0, y0) and
// (x1, y1), in either order.
func Rect(x0, y0, x1, y1 float32) Rectangle {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Rectangle{Min: Pt(x0, y0), Max: Pt(x1, y1)}
}

func (p Point) String() string {
	return "(" + ftoa(p.X) + "," + ftoa(p.Y) + ")"
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul scales p by s.
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// In reports whether r covers p.
func (p Point) In(r Rectangle) bool {
	return r.Min.X <= p.X && p.X < r.Max.X &&
		r.Min.Y <= p.Y && p.Y < r.Max.Y
}

func (r Rectangle) String() string {
	return r.Min.String() + "-" + r.Max.String()
}

func (r Rectangle) Dx() float32 {
	return r.Max.X - r.Min.X
}

func (r Rectangle) Dy() float32 {
	return r.Max.Y - r.Min.Y
}

// Size returns the width and height of r.
func (r Rectangle) Size() Point {
	return r.Max.Sub(r.Min)
}

// Empty reports whether r covers no points.
func (r Rectangle) Empty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}

// Add translates r by p.
func (r Rectangle) Add(p Point) Rectangle {
	return Rectangle{Min: r.Min.Add(p), Max: r.Max.Add(p)}
}

func ftoa(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}
