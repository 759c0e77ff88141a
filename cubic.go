package curve

import "fmt"

var _ Segment = CubicBez{}

// CubicBez is a cubic Bézier curve given by its four control points.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (CubicBez) isSegment() {}

func (CubicBez) Kind() Kind { return CubicKind }

func (cb CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(cb.P0).Mul(mt * mt * mt)
	b := Vec2(cb.P1).Mul(mt * mt * 3.0)
	c := Vec2(cb.P2).Mul(mt * 3.0)
	d := Vec2(cb.P3)
	v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Deriv returns the derivative of the curve, which is the quadratic Bézier
// 3((P1−P0)(1−t)² + 2(P2−P1)(1−t)t + (P3−P2)t²).
func (cb CubicBez) Deriv(t float64) Vec2 {
	mt := 1.0 - t
	d0 := cb.P1.Sub(cb.P0)
	d1 := cb.P2.Sub(cb.P1)
	d2 := cb.P3.Sub(cb.P2)
	return d0.Mul(3 * mt * mt).Add(d1.Mul(6 * mt * t)).Add(d2.Mul(3 * t * t))
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

// EndData returns an end point and the vector from it to its adjacent
// control point.
func (c CubicBez) EndData(e End) (Point, Vec2) {
	if e == Finish {
		return c.P3, c.P2.Sub(c.P3)
	}
	return c.P0, c.P1.Sub(c.P0)
}

// SetEndData moves an end point and swings its handle round to dir. The
// handle keeps its length.
func (c CubicBez) SetEndData(e End, pt Point, dir Vec2) (Segment, bool) {
	dir = dir.Normalize()
	end, ctrl := &c.P0, &c.P1
	if e == Finish {
		end, ctrl = &c.P3, &c.P2
	}
	handle := ctrl.Sub(*end)
	hlen := handle.Hypot()
	old := handle.Div(hlen)
	if pt == *end && dir == old {
		return c, false
	}
	*end = pt
	*ctrl = pt.Translate(dir.Mul(hlen))
	return c, true
}

func (c CubicBez) Transform(aff Affine, full bool) Segment {
	return CubicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}

func (c CubicBez) Degenerate() bool { return false }

func (c CubicBez) Placeholder() []Point { return []Point{c.P0, c.P1, c.P2, c.P3} }

func (c CubicBez) Serialize() string {
	return fmt.Sprintf("curve.CubicBez{curve.Pt(%g, %g), curve.Pt(%g, %g), curve.Pt(%g, %g), curve.Pt(%g, %g)}",
		c.P0.X, c.P0.Y, c.P1.X, c.P1.Y, c.P2.X, c.P2.Y, c.P3.X, c.P3.Y)
}
