package curve

import (
	"fmt"
	"math"
)

// Point is a position in glyph space. Glyph space is y-down, as the glyph
// data was authored on a screen canvas.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Translate returns pt moved by v.
func (pt Point) Translate(v Vec2) Point {
	return Point{pt.X + v.X, pt.Y + v.Y}
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Sub returns the vector from o to pt.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{pt.X - o.X, pt.Y - o.Y}
}

// Lerp returns the point a fraction t of the way from pt to o.
func (pt Point) Lerp(o Point, t float64) Point {
	return pt.Translate(o.Sub(pt).Mul(t))
}

func (pt Point) Midpoint(o Point) Point {
	return Point{(pt.X + o.X) / 2, (pt.Y + o.Y) / 2}
}

func (pt Point) Distance(o Point) float64 {
	return math.Hypot(pt.X-o.X, pt.Y-o.Y)
}

// IsFinite reports whether neither coordinate is infinite or NaN.
func (pt Point) IsFinite() bool {
	return finite(pt.X, pt.Y)
}
