package curve

import (
	"fmt"
	"math"
)

var _ Segment = CircleInvolute{}

// CircleInvolute is the involute of a circular arc: the path traced by the
// end of a taut string as it is unwound from a circle. Its curvature changes
// smoothly from one value to another, which suits calligraphic outlines.
//
// The curve is defined by its two ends and the direction of travel at each.
// The circle and the string lengths are solved for in closed form.
type CircleInvolute struct {
	P1, P2 Point
	// D1 and D2 are the directions of travel at P1 and P2. They are
	// normalized when the curve is solved.
	D1, D2 Vec2
	// Squash, if not nil, is applied to the defining data before solving
	// and removed again after evaluation.
	Squash *Squash

	params CircleInvoluteParams
	ok     bool
}

// CircleInvoluteParams are the solved parameters of a [CircleInvolute]. The
// centre of curvature moves round a circle of the given radius from angle Phi
// to Phi+Theta, while the string length changes linearly from S1 to S1+DS.
type CircleInvoluteParams struct {
	Radius float64
	Center Point
	Phi    float64
	Theta  float64
	S1     float64
	DS     float64
}

// NewCircleInvolute returns the solved involute starting at p1 heading in
// direction d1 and ending at p2 heading in direction d2. If the data can't be
// solved (for example because the directions are parallel), the curve is
// degenerate.
func NewCircleInvolute(p1 Point, d1 Vec2, p2 Point, d2 Vec2, sq *Squash) CircleInvolute {
	c := CircleInvolute{P1: p1, D1: d1.Normalize(), P2: p2, D2: d2.Normalize(), Squash: sq}
	c.solve()
	return c
}

func (CircleInvolute) isSegment() {}

func (CircleInvolute) Kind() Kind { return CircleInvoluteKind }

// Params returns the solved parameters. The second result is false if the
// curve is degenerate.
func (c CircleInvolute) Params() (CircleInvoluteParams, bool) {
	return c.params, c.ok
}

func (c CircleInvolute) Degenerate() bool { return !c.ok }

func (c *CircleInvolute) solve() {
	c.params, c.ok = solveCircleInvolute(c.P1, c.D1, c.P2, c.D2, c.Squash)
	if !c.ok {
		Logger().Debug("circle involute is degenerate", "p1", c.P1, "d1", c.D1, "p2", c.P2, "d2", c.D2)
	}
}

// solveCircleInvolute expects d1 and d2 to be normalized.
func solveCircleInvolute(p1 Point, d1 Vec2, p2 Point, d2 Vec2, sq *Squash) (CircleInvoluteParams, bool) {
	if sq != nil {
		p1 = Point(sq.Apply(Vec2(p1)))
		p2 = Point(sq.Apply(Vec2(p2)))
		d1 = sq.Apply(d1).Normalize()
		d2 = sq.Apply(d2).Normalize()
	}

	n1 := d1.Turn90()
	n2 := d2.Turn90()

	// Where the normals cross, and the signed distance from there to each
	// end along that end's own normal.
	cp, ok := Crosspoint(p1, p1.Translate(n1), p2, p2.Translate(n2))
	if !ok {
		return CircleInvoluteParams{}, false
	}
	dd := cp.Sub(p2).Dot(n2) - cp.Sub(p1).Dot(n1)

	// The turning angle. Its magnitude comes from the dot product of the
	// unit directions, its sign from their cross product.
	dp := d1.Dot(d2)
	if math.Abs(dp) > 1 {
		dp /= math.Abs(dp)
	}
	theta := -math.Acos(dp)
	if d1.Cross(d2) > 0 {
		theta = -theta
	}

	// A circle of radius r touching the normal through p1 needs a string of
	// length d1 - r tan(θ/2) there, and d2 + r tan(θ/2) at p2. The
	// difference has to equal the arc length rθ between the two touching
	// points, so d2-d1 = rθ - 2r tan(θ/2). r is negated relative to that
	// to suit the evaluation formula.
	den := -theta + 2*math.Tan(theta/2)
	if den == 0 {
		return CircleInvoluteParams{}, false
	}
	r := dd / den

	// The centre is where the normals cross once each has been shifted by r
	// along its direction of travel.
	q1 := p1.Translate(d1.Mul(-r))
	q2 := p2.Translate(d2.Mul(-r))
	center, ok := Crosspoint(q1, q1.Translate(n1), q2, q2.Translate(n2))
	if !ok {
		return CircleInvoluteParams{}, false
	}

	s1 := center.Sub(p1).Dot(n1)
	s2 := center.Sub(p2).Dot(n2)
	params := CircleInvoluteParams{
		Radius: r,
		Center: center,
		Phi:    math.Atan2(d1.Y, d1.X),
		Theta:  theta,
		S1:     s1,
		DS:     s2 - s1,
	}
	if !finite(params.Radius, params.Center.X, params.Center.Y, params.Phi, params.Theta, params.S1, params.DS) {
		return CircleInvoluteParams{}, false
	}
	return params, true
}

func (c CircleInvolute) mustBeSolved(op string) {
	if !c.ok {
		usagePanic(op, "circle involute from %s to %s has no solved parameters", c.P1, c.P2)
	}
}

func (c CircleInvolute) Eval(t float64) Point {
	c.mustBeSolved("Eval")
	p := c.params
	angle := p.Phi + p.Theta*t
	s := p.S1 + p.DS*t
	dy, dx := math.Sincos(angle)
	v := Vec2(p.Center).Add(Vec(dx, dy).Mul(p.Radius)).Add(Vec(-dy, dx).Mul(s))
	if c.Squash != nil {
		v = c.Squash.Unapply(v)
	}
	return Point(v)
}

func (c CircleInvolute) Deriv(t float64) Vec2 {
	c.mustBeSolved("Deriv")
	p := c.params
	angle := p.Phi + p.Theta*t
	s := p.S1 + p.DS*t
	dy, dx := math.Sincos(angle)
	n := Vec(-dy, dx)
	dd := Vec(-dy*p.Theta, dx*p.Theta)
	dn := Vec(-dd.Y, dd.X)
	v := dd.Mul(p.Radius).Add(dn.Mul(s)).Add(n.Mul(p.DS))
	if c.Squash != nil {
		v = c.Squash.Unapply(v)
	}
	return v
}

func (c CircleInvolute) EndData(e End) (Point, Vec2) {
	return involuteEndData(e, c.P1, c.D1, c.P2, c.D2)
}

func (c CircleInvolute) SetEndData(e End, pt Point, dir Vec2) (Segment, bool) {
	if !setInvoluteEndData(e, pt, dir, &c.P1, &c.D1, &c.P2, &c.D2) {
		return c, false
	}
	c.solve()
	return c, true
}

// Transform maps the ends and directions through aff. The squash matrix is
// only adjusted when full is set; leaving it alone lets a glyph be resized
// while its curves keep their character.
func (c CircleInvolute) Transform(aff Affine, full bool) Segment {
	sq := c.Squash
	if full {
		base := Squash{1, 0, 0, 1}
		if sq != nil {
			base = *sq
		}
		base = base.Transform(aff)
		sq = &base
	}
	return NewCircleInvolute(
		c.P1.Transform(aff), c.D1.TransformLinear(aff),
		c.P2.Transform(aff), c.D2.TransformLinear(aff),
		sq,
	)
}

func (c CircleInvolute) Placeholder() []Point { return placeholder(c.P1, c.P2) }

// Suspect reports whether the solved curve sets off in the wrong direction
// at either end, which makes for a visibly kinked join even though the
// parameters are valid.
func (c CircleInvolute) Suspect() bool {
	if !c.ok {
		return false
	}
	return c.Deriv(0).Dot(c.D1) < 0 || c.Deriv(1).Dot(c.D2) < 0
}

func (c CircleInvolute) Serialize() string {
	s := fmt.Sprintf("curve.NewCircleInvolute(curve.Pt(%g, %g), curve.Vec(%g, %g), curve.Pt(%g, %g), curve.Vec(%g, %g), ",
		c.P1.X, c.P1.Y, c.D1.X, c.D1.Y, c.P2.X, c.P2.Y, c.D2.X, c.D2.Y)
	if c.Squash == nil {
		return s + "nil)"
	}
	return s + fmt.Sprintf("&curve.Squash{%g, %g, %g, %g})", c.Squash.M0, c.Squash.M1, c.Squash.M2, c.Squash.M3)
}

// involuteEndData reports the end data of a curve defined by two ends and
// two directions of travel. At the finish the tangent is reversed so that it
// points into the curve.
func involuteEndData(e End, p1 Point, d1 Vec2, p2 Point, d2 Vec2) (Point, Vec2) {
	if e == Finish {
		return p2, d2.Negate()
	}
	return p1, d1
}

// setInvoluteEndData stores new end data into the defining fields and reports
// whether they changed. A direction that is parallel to the old one counts
// as unchanged. Stored directions are normalized; solving never touches them.
func setInvoluteEndData(e End, pt Point, dir Vec2, p1 *Point, d1 *Vec2, p2 *Point, d2 *Vec2) bool {
	p, d := p1, d1
	if e == Finish {
		p, d = p2, d2
		dir = dir.Negate()
	}
	if pt == *p && dir.Cross(*d) == 0 {
		return false
	}
	*p = pt
	*d = dir.Normalize()
	return true
}
