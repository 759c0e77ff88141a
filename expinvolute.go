package curve

import (
	"fmt"
	"math"
)

var _ Segment = ExpInvolute{}

// ExpInvolute is the involute of the exponential curve y = k·e^(−bx). The
// string unwound from an exponential becomes infinitely long towards the
// asymptote, so the involute has zero curvature at that end. This lets a
// curved stroke run into a straight one without a jolt in curvature.
//
// P1 is the end with zero curvature and D1 becomes the direction of the
// asymptote. P2 and D2 are unconstrained.
//
// Arc length along y = e^(−bx) has the antiderivative
//
//	I(u) = −(u + atanh(−1/u)) / b,  u = √(1 + b²e^(−2bx))
//
// and the total arc length from x = 0 onwards exceeds the distance to the
// asymptote by
//
//	(√(b²+1) − atanh(1/√(b²+1)) − log(b/2) − 1) / b
//
// which is what makes the parameters solvable in closed form.
type ExpInvolute struct {
	P1, P2 Point
	D1, D2 Vec2

	params ExpInvoluteParams
	ok     bool
}

// ExpInvoluteParams are the solved parameters of an [ExpInvolute].
//
// The curve is computed in a local frame whose origin is Origin, whose axes
// are XDir and YDir and whose unit length is Unit. In that frame P2 is at
// (0, 1) and P1 is at (CX1, 0). The exponential starts at height K with
// initial slope B, and R is the string length at P2.
type ExpInvoluteParams struct {
	B, K, R float64
	Origin  Point
	XDir    Vec2
	YDir    Vec2
	Unit    float64
	CX1     float64
}

// expParamSpan is how far along the exponential's own x axis the curve is
// evaluated. By then the exponential is indistinguishable from its asymptote.
const expParamSpan = 15

// NewExpInvolute returns the solved involute with zero curvature at p1.
func NewExpInvolute(p1 Point, d1 Vec2, p2 Point, d2 Vec2) ExpInvolute {
	c := ExpInvolute{P1: p1, D1: d1.Normalize(), P2: p2, D2: d2.Normalize()}
	c.solve()
	return c
}

func (ExpInvolute) isSegment() {}

func (ExpInvolute) Kind() Kind { return ExpInvoluteKind }

// Params returns the solved parameters. The second result is false if the
// curve is degenerate.
func (c ExpInvolute) Params() (ExpInvoluteParams, bool) {
	return c.params, c.ok
}

func (c ExpInvolute) Degenerate() bool { return !c.ok }

func (c *ExpInvolute) solve() {
	c.params, c.ok = solveExpInvolute(c.P1, c.D1, c.P2, c.D2)
	if !c.ok {
		Logger().Debug("exponential involute is degenerate", "p1", c.P1, "d1", c.D1, "p2", c.P2, "d2", c.D2)
	}
}

// solveExpInvolute expects d1 and d2 to be normalized.
//
// In the local frame P2 is at (0, 1) and P1 lies on the x axis. The slope b
// of the exponential is fixed by the direction at P2, which leaves one degree
// of freedom: the height k at which the exponential starts. That puts its
// start at x = (1−k)/b, and P1 must then be at
//
//	(1−k)/b − k·excess − (1−k)·√(1 + 1/b²)
//
// which is linear in k.
func solveExpInvolute(p1 Point, d1 Vec2, p2 Point, d2 Vec2) (ExpInvoluteParams, bool) {
	// The y axis runs along the direction at p1 and the x axis across it,
	// both flipped as needed to put p2 above and to the right of p1.
	ydir := d1
	xdir := Vec(-ydir.Y, ydir.X)
	delta := p2.Sub(p1)
	if delta.Dot(xdir) < 0 {
		xdir = xdir.Negate()
	}
	if delta.Dot(ydir) < 0 {
		ydir = ydir.Negate()
	}
	unit := delta.Dot(ydir)
	origin := p2.Translate(ydir.Mul(-unit))

	b := math.Abs((d2.Y*ydir.X - d2.X*ydir.Y) / (d2.Y*xdir.X - d2.X*xdir.Y))

	u0 := math.Sqrt(b*b + 1)
	excess := (u0 - math.Atanh(1/u0) - math.Log(b/2) - 1) / b
	slantratio := math.Sqrt(1 + 1/(b*b))

	cx1 := p1.Sub(origin).Dot(xdir) / unit

	k := (1/b - slantratio - cx1) / (1/b - slantratio + excess)
	r := (1 - k) * slantratio

	params := ExpInvoluteParams{
		B:      b,
		K:      k,
		R:      r,
		Origin: origin,
		XDir:   xdir,
		YDir:   ydir,
		Unit:   unit,
		CX1:    cx1,
	}
	if b == 0 || unit == 0 || !finite(b, k, r, unit, cx1, excess, slantratio) {
		return ExpInvoluteParams{}, false
	}
	return params, true
}

func (c ExpInvolute) mustBeSolved(op string) {
	if !c.ok {
		usagePanic(op, "exponential involute from %s to %s has no solved parameters", c.P1, c.P2)
	}
}

// local maps a point in the local frame back to glyph space.
func (p ExpInvoluteParams) local(x, y float64) Point {
	return p.Origin.
		Translate(p.XDir.Mul(p.Unit * x)).
		Translate(p.YDir.Mul(p.Unit * y))
}

func (c ExpInvolute) Eval(t float64) Point {
	c.mustBeSolved("Eval")
	p := c.params
	if t == 0 {
		// The string is infinitely long here; the general formula loses all
		// significance, so use the known end point.
		return p.local(p.CX1, 0)
	}

	// Position and direction on the exponential itself.
	s := (1 - t) * expParamSpan
	e := math.Exp(-p.B * s)
	x := (1-p.K)/p.B + p.K*s
	y := p.K * e
	d := Vec(-1, p.B*e).Normalize()

	u := math.Sqrt(1 + p.B*p.B*math.Exp(-2*p.B*s))
	if u < 1.000001 {
		return p.local(p.CX1, 0)
	}
	u0 := math.Sqrt(1 + p.B*p.B)
	arc := ((u + math.Atanh(-1/u)) - (u0 + math.Atanh(-1/u0))) / -p.B
	r := p.R + p.K*arc
	return p.local(x+d.X*r, y+d.Y*r)
}

// Deriv returns the unit direction of travel. The involute always moves at
// right angles to the string, which lies along the exponential's tangent.
func (c ExpInvolute) Deriv(t float64) Vec2 {
	c.mustBeSolved("Deriv")
	p := c.params
	d := Vec(0, 1)
	if t != 0 {
		s := (1 - t) * expParamSpan
		d = Vec(p.B*math.Exp(-p.B*s), 1)
	}
	return p.XDir.Mul(d.X).Add(p.YDir.Mul(d.Y)).Normalize()
}

func (c ExpInvolute) EndData(e End) (Point, Vec2) {
	return involuteEndData(e, c.P1, c.D1, c.P2, c.D2)
}

func (c ExpInvolute) SetEndData(e End, pt Point, dir Vec2) (Segment, bool) {
	if !setInvoluteEndData(e, pt, dir, &c.P1, &c.D1, &c.P2, &c.D2) {
		return c, false
	}
	c.solve()
	return c, true
}

func (c ExpInvolute) Transform(aff Affine, full bool) Segment {
	return NewExpInvolute(
		c.P1.Transform(aff), c.D1.TransformLinear(aff),
		c.P2.Transform(aff), c.D2.TransformLinear(aff),
	)
}

func (c ExpInvolute) Placeholder() []Point { return placeholder(c.P1, c.P2) }

// Suspect reports whether the exponential had to start outside the span
// between the two ends, which means the data asks for a shape this curve
// can't make.
func (c ExpInvolute) Suspect() bool {
	return c.ok && (c.params.K < 0 || c.params.K > 1)
}

func (c ExpInvolute) Serialize() string {
	return fmt.Sprintf("curve.NewExpInvolute(curve.Pt(%g, %g), curve.Vec(%g, %g), curve.Pt(%g, %g), curve.Vec(%g, %g))",
		c.P1.X, c.P1.Y, c.D1.X, c.D1.Y, c.P2.X, c.P2.Y, c.D2.X, c.D2.Y)
}
