package curve

import (
	"fmt"
	"math"
)

// Vec2 is a displacement or direction in glyph space. Directions of travel
// need not be of unit length unless a function says otherwise.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the cross product. It is positive when
// o is clockwise from v on the page.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Hypot returns the length of v.
func (v Vec2) Hypot() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length. The zero vector becomes NaN.
func (v Vec2) Normalize() Vec2 {
	return v.Div(v.Hypot())
}

// Turn90 rotates the vector by a quarter turn, mapping ⟨x, y⟩ to ⟨y, -x⟩.
// Applied to the direction of travel of an involute, this yields the normal
// that points towards the centre of curvature's side of the string.
func (v Vec2) Turn90() Vec2 {
	return Vec2{X: v.Y, Y: -v.X}
}

// TransformLinear applies only the linear part of aff, ignoring its
// translation. Direction vectors are transformed this way.
func (v Vec2) TransformLinear(aff Affine) Vec2 {
	return Vec2{
		X: aff.N0*v.X + aff.N2*v.Y,
		Y: aff.N1*v.X + aff.N3*v.Y,
	}
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Mul(f float64) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

func (v Vec2) Div(f float64) Vec2 {
	return Vec2{v.X / f, v.Y / f}
}

func (v Vec2) Negate() Vec2 {
	return Vec2{-v.X, -v.Y}
}
