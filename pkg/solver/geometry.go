package solver

import "fmt"

// Dimension is a style length: either undefined or an exact number of points.
// The zero value is undefined.
type Dimension struct {
	points  float64
	defined bool
}

// Undefined returns a Dimension that leaves the length to the solver.
func Undefined() Dimension { return Dimension{} }

// Points returns a Dimension of exactly v points.
func Points(v float64) Dimension { return Dimension{points: v, defined: true} }

// IsDefined reports whether the dimension carries an exact length.
func (d Dimension) IsDefined() bool { return d.defined }

// Value returns the length and whether it is defined.
func (d Dimension) Value() (float64, bool) { return d.points, d.defined }

// String returns "auto" for undefined dimensions, else the point value.
func (d Dimension) String() string {
	if !d.defined {
		return "auto"
	}
	return fmt.Sprintf("%gpt", d.points)
}

// Number is an available-space value: a defined point value, or undefined
// to request intrinsic sizing.
type Number struct {
	value   float64
	defined bool
}

// Defined returns a Number holding v.
func Defined(v float64) Number { return Number{value: v, defined: true} }

// UndefinedNumber returns a Number without a value.
func UndefinedNumber() Number { return Number{} }

// IsDefined reports whether the number carries a value.
func (n Number) IsDefined() bool { return n.defined }

// Value returns the number and whether it is defined.
func (n Number) Value() (float64, bool) { return n.value, n.defined }

// OrElse returns the value if defined, else fallback.
func (n Number) OrElse(fallback float64) float64 {
	if n.defined {
		return n.value
	}
	return fallback
}

// Size pairs a width and a height.
type Size[T any] struct {
	Width  T
	Height T
}

// Point is an (X, Y) coordinate.
type Point struct {
	X, Y float64
}

// Add returns p offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Layout is the solved box of a node. Location is relative to the parent box.
type Layout struct {
	Location Point
	Size     Size[float64]
}

// Right returns the x-coordinate of the right edge.
func (l Layout) Right() float64 { return l.Location.X + l.Size.Width }

// Bottom returns the y-coordinate of the bottom edge.
func (l Layout) Bottom() float64 { return l.Location.Y + l.Size.Height }

// Viewport builds an available size from optional width and height.
// A nil pointer leaves that axis undefined.
func Viewport(width, height *float64) Size[Number] {
	var s Size[Number]
	if width != nil {
		s.Width = Defined(*width)
	}
	if height != nil {
		s.Height = Defined(*height)
	}
	return s
}
