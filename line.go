package curve

import "fmt"

// Crosspoint returns the point where the line through a0 and a1 crosses the
// line through b0 and b1, both extended to infinity. It reports false if the
// lines are parallel, which includes either pair of points coinciding.
//
// Axis-aligned lines are very common in glyph data and are handled
// separately: the general formula divides by direction components that may be
// zero even when the lines do cross, and the special cases are exact.
func Crosspoint(a0, a1, b0, b1 Point) (Point, bool) {
	dxa := a1.X - a0.X
	dya := a1.Y - a0.Y
	dxb := b1.X - b0.X
	dyb := b1.Y - b0.Y

	if dya*dxb == dxa*dyb {
		return Point{}, false
	}

	// With the parallel case out of the way, a vertical line a implies that
	// dxb is nonzero, so we can extrapolate along b to a's x coordinate.
	// The other three cases are symmetric.
	if dxa == 0 {
		return Point{a0.X, (a0.X-b0.X)*dyb/dxb + b0.Y}, true
	}
	if dxb == 0 {
		return Point{b0.X, (b0.X-a0.X)*dya/dxa + a0.Y}, true
	}
	if dya == 0 {
		return Point{(a0.Y-b0.Y)*dxb/dyb + b0.X, a0.Y}, true
	}
	if dyb == 0 {
		return Point{(b0.Y-a0.Y)*dxa/dya + a0.X, b0.Y}, true
	}

	// All four direction components are nonzero. Equating
	//
	//	y = ya0 + dya (x - xa0) / dxa
	//	y = yb0 + dyb (x - xb0) / dxb
	//
	// and multiplying out the denominators gives x; y follows the same way.
	det := dya*dxb - dyb*dxa
	xtop := dxb*dxa*(b0.Y-a0.Y) + dya*dxb*a0.X - dyb*dxa*b0.X
	ytop := dya*dyb*(a0.X-b0.X) + dxb*dya*b0.Y - dxa*dyb*a0.Y
	return Point{xtop / det, ytop / det}, true
}

// Line represents a straight stroke between two points.
type Line struct {
	P0 Point
	P1 Point
}

var _ Segment = Line{}

func (Line) isSegment() {}

func (Line) Kind() Kind { return LineKind }

// CrossingPoint computes the point where two lines, if extended to infinity,
// would cross. See [Crosspoint].
func (l Line) CrossingPoint(o Line) (Point, bool) {
	return Crosspoint(l.P0, l.P1, o.P0, o.P1)
}

func (l Line) Eval(t float64) Point {
	return Point{
		X: l.P0.X + t*(l.P1.X-l.P0.X),
		Y: l.P0.Y + t*(l.P1.Y-l.P0.Y),
	}
}

func (l Line) Deriv(t float64) Vec2 {
	return l.P1.Sub(l.P0)
}

func (l Line) EndData(e End) (Point, Vec2) {
	if e == Finish {
		return l.P1, l.P0.Sub(l.P1)
	}
	return l.P0, l.P1.Sub(l.P0)
}

// SetEndData moves an end of the line. The direction is ignored: a straight
// line's direction is determined by its two ends.
func (l Line) SetEndData(e End, pt Point, dir Vec2) (Segment, bool) {
	if e == Finish {
		if pt == l.P1 {
			return l, false
		}
		l.P1 = pt
		return l, true
	}
	if pt == l.P0 {
		return l, false
	}
	l.P0 = pt
	return l, true
}

func (l Line) Transform(aff Affine, full bool) Segment {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

func (l Line) Degenerate() bool { return false }

func (l Line) Placeholder() []Point { return []Point{l.P0, l.P1} }

func (l Line) Serialize() string {
	return fmt.Sprintf("curve.Line{curve.Pt(%g, %g), curve.Pt(%g, %g)}", l.P0.X, l.P0.Y, l.P1.X, l.P1.Y)
}
