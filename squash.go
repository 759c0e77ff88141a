package curve

import "fmt"

// Squash is a 2×2 linear map applied to an involute's defining data before
// solving and removed again after evaluation. Squashing the circular
// construction yields elliptical and sheared variants of the same curve.
//
// The matrix is stored row-major:
//
//	| M0 M1 |
//	| M2 M3 |
type Squash struct {
	M0, M1, M2, M3 float64
}

// Apply maps v into the squashed coordinate system.
func (sq Squash) Apply(v Vec2) Vec2 {
	return Vec2{
		X: sq.M0*v.X + sq.M1*v.Y,
		Y: sq.M2*v.X + sq.M3*v.Y,
	}
}

// Unapply maps v out of the squashed coordinate system.
func (sq Squash) Unapply(v Vec2) Vec2 {
	det := sq.M0*sq.M3 - sq.M1*sq.M2
	return Vec2{
		X: (sq.M3*v.X - sq.M1*v.Y) / det,
		Y: (-sq.M2*v.X + sq.M0*v.Y) / det,
	}
}

// Transform returns the squash to use after the curve's geometry has been
// transformed by aff. Each column of the matrix is mapped through the inverse
// of aff's linear part; translation plays no role.
func (sq Squash) Transform(aff Affine) Squash {
	inv := aff.Linear().Invert()
	c0 := Vec(sq.M0, sq.M2).TransformLinear(inv)
	c1 := Vec(sq.M1, sq.M3).TransformLinear(inv)
	return Squash{c0.X, c1.X, c0.Y, c1.Y}
}

func (sq Squash) String() string {
	return fmt.Sprintf("Squash{%g, %g, %g, %g}", sq.M0, sq.M1, sq.M2, sq.M3)
}
