package curve

import (
	"fmt"
	"math"
)

// Affine is an affine map of glyph space, given by the six coefficients
// (a, b, c, d, e, f) of the matrix
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// A point (x, y) maps to (ax+cy+e, bx+dy+f). This is PostScript's order,
// which the glyph data's transformations were written in.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity leaves every point where it is.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Scale scales x and y independently about the origin.
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate moves every point by v.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotate rotates by th radians about the origin. Positive angles turn the
// x axis towards the y axis, which is clockwise on the page.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

func (aff Affine) String() string {
	return fmt.Sprintf("[%g %g %g %g %g %g]", aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5)
}

// Mul returns the map that applies o first and then aff.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenTranslate returns aff followed by a move of v.
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

// Linear returns aff without its translation.
func (aff Affine) Linear() Affine {
	aff.N4, aff.N5 = 0, 0
	return aff
}

// Determinant returns the determinant of the linear part.
func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// Invert returns the inverse map. The result is NaN if aff is singular.
func (aff Affine) Invert() Affine {
	k := 1 / aff.Determinant()
	return Affine{
		k * aff.N3,
		-k * aff.N1,
		-k * aff.N2,
		k * aff.N0,
		k * (aff.N2*aff.N5 - aff.N3*aff.N4),
		k * (aff.N1*aff.N4 - aff.N0*aff.N5),
	}
}
