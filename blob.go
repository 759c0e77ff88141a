package curve

import "math"

// Side picks which way a [Blob] curls.
type Side int

const (
	// Right curls clockwise on the page, looking out of the curve end.
	Right Side = iota
	// Left curls anticlockwise.
	Left
)

// turn rotates v a quarter turn towards side.
func (s Side) turn(v Vec2) Vec2 {
	if s == Right {
		return Vec(-v.Y, v.X)
	}
	return Vec(v.Y, -v.X)
}

// Blob finishes end e of curve h with a blob: a spiral of four circle
// involutes that winds once round, shrinking from radius to radius-shrink,
// and is filled in by a chisel nib anchored at the spiral's centre. The nib
// radius is that of the curve's own round nib at the end.
//
// It returns the handles of the new curves.
func Blob(g *Glyph, h Handle, e End, side Side, radius, shrink float64) []Handle {
	seg := g.live("Blob", h)
	t := float64(e)
	nib := g.Nib(h).Resolve(SampleAt(seg, t))
	if nib.Kind == ChiselNib {
		g.panicf("Blob", h, "blob needs a round nib at the %s end, have %s", e, nib)
	}
	return BlobWithNib(g, h, e, side, radius, shrink, nib.Radius)
}

// BlobWithNib is like [Blob] with an explicit nib radius.
func BlobWithNib(g *Glyph, h Handle, e End, side Side, radius, shrink, nibRadius float64) []Handle {
	seg := g.live("Blob", h)
	t := float64(e)
	p := seg.Eval(t)
	d := seg.Deriv(t)
	if e == Start {
		d = d.Negate()
	}
	d = d.Normalize()
	n := side.turn(d)

	// A single involute going once round unwinds from a circle whose
	// circumference is the amount the radius shrinks by.
	r := shrink / (2 * math.Pi)
	c := p.Translate(n.Mul(radius)).Translate(d.Mul(-r))
	nib := Computed(PointToPoint{Target: c, Radius: nibRadius})

	out := make([]Handle, 0, 4)
	for range 4 {
		nn := side.turn(n)
		radius -= shrink / 4
		np := c.Translate(n.Mul(-r)).Translate(nn.Mul(-radius))
		bh := g.AddCircleInvolute(p, d, np, n)
		g.SetNib(bh, nib)
		out = append(out, bh)
		p, d, n = np, n, nn
	}
	return out
}
