// Package geom provides the 2D geometry primitives used by the interaction
// engine: points, rectangles, circles, minimum enclosing circles and grid
// sampling over circular regions.
package geom

import "math"

// Point represents a 2D point in pixel coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Mid returns the midpoint of two points.
func Mid(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// Rect represents an axis-aligned rectangle given by its top-left corner
// and dimensions.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.Left + r.Width/2, Y: r.Top + r.Height/2}
}

// Contains reports whether the point lies within the rectangle.
// Points on the left/top edges are inside; right/bottom edges are outside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Left+r.Width &&
		p.Y >= r.Top && p.Y < r.Top+r.Height
}

// Circle represents a circle by center and radius.
type Circle struct {
	Center Point   `json:"center"`
	R      float64 `json:"r"`
}

// containsEps absorbs floating point error when testing circle membership.
const containsEps = 1e-9

// Contains reports whether the point lies inside or on the circle.
func (c Circle) Contains(p Point) bool {
	return Dist(c.Center, p) <= c.R+containsEps
}
