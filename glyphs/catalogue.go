package glyphs

import (
	"math"

	"github.com/gonville/curve"
)

// Default returns a registry holding the built-in glyphs.
func Default() *Registry {
	r := NewRegistry()
	r.Register("clefCstraightright", clefCStraightRight)
	r.Register("clefG", clefG)
	r.Register("breve", breve)
	r.Register("restcrotchet", restCrotchet)
	r.Register("restcrotchetz", restCrotchetZ)
	r.Register("restminim", restMinim)
	for n, name := range []string{"restquaver", "restsemi", "restdemi", "resthemi", "restquasi", "rest6", "rest7", "rest8"} {
		r.Register(name, restQuaver(n+1))
	}
	r.Register("flat", flat)
	r.Register("natural", natural)
	r.Register("sharp", sharp)
	return r
}

var (
	pt  = curve.Pt
	vec = curve.Vec
)

// half is the weld used between curves whose tangents are deliberately
// different.
var half = curve.WeldOpts{Half: true}

// roundBy returns a computed round nib.
func roundBy(f func(s curve.NibSample) float64) curve.Nib {
	return curve.Computed(curve.NibFuncOf(func(s curve.NibSample) curve.Nib {
		return curve.Round(f(s))
	}))
}

func clefCStraightRight(g *curve.Glyph) {
	c0 := g.AddLine(pt(437, 420), pt(740, 420))
	c1 := g.AddLine(pt(740, 420), pt(740, 186))
	c2 := g.AddLine(pt(437, 528), pt(740, 528))
	c3 := g.AddLine(pt(740, 528), pt(740, 762))
	g.Weld(c0, curve.Finish, c1, curve.Start)
	g.Weld(c2, curve.Finish, c3, curve.Start)

	bar := curve.Chisel(8, math.Pi/2, 20, 20)
	g.SetNib(c0, bar)
	g.SetNib(c2, bar)
	g.DefaultNib = curve.Round(8)
	curve.Blob(g, c1, curve.Finish, curve.Right, 40, 9)
	curve.Blob(g, c3, curve.Finish, curve.Left, 40, 9)

	g.Anchors["hy"] = 474
}

// clefG is drawn as one chain of curves whose stroke width varies with the
// angle of travel. At the top the two edges of the thick stroke part
// company: the outside is pointed but the inside is smooth. The inside edge
// is a separate chain, and the top two curves of the main chain are drawn
// with a nib reaching across to it.
func clefG(g *curve.Glyph) {
	inner := curve.NewGlyph(g.Name + "/inner")
	t0 := inner.AddCircleInvolute(pt(603, 161), vec(-0.33035, -0.943858), pt(563, 145), vec(-0.943858, 0.33035))
	t1 := inner.AddCircleInvolute(pt(563, 145), vec(-0.943858, 0.33035), pt(504.709, 289.062), vec(0.208758, 0.977967))
	inner.Weld(t0, curve.Finish, t1, curve.Start)
	tcs := []curve.Segment{inner.Segment(t0), inner.Segment(t1)}

	c0 := g.AddCircleInvolute(pt(528, 654), vec(-0.90286, -0.429934), pt(569, 507), vec(1, 0))
	c1 := g.AddCircleInvolute(pt(569, 507), vec(1, 0), pt(666, 607), vec(0, 1))
	c2 := g.AddCircleInvolute(pt(666, 607), vec(0, 1), pt(549, 715), vec(-1, 0))
	c3 := g.AddCircleInvolute(pt(549, 715), vec(-1, 0), pt(437, 470), vec(0.581238, -0.813733))
	c4 := g.AddCircleInvolute(pt(437, 470), vec(0.581238, -0.813733), pt(536, 357), vec(0.731055, -0.682318))
	c5 := g.AddCircleInvolute(pt(536, 357), vec(0.731055, -0.682318), pt(603, 161), vec(-0.33035, -0.943858))
	c6 := g.AddCircleInvolute(pt(603, 161), vec(-0.33035, -0.943858), pt(559, 90), vec(-0.83205, -0.5547))
	c7 := g.AddCircleInvolute(pt(559, 90), vec(-0.77193, 0.635707), pt(500, 267), vec(0.211282, 0.977425))
	c8 := g.AddLine(pt(500, 267), pt(605.66, 762))
	c9 := g.AddExpInvolute(pt(606, 762), vec(0.211282, 0.977425), pt(598, 856), vec(-0.514496, 0.857493))
	c10 := g.AddCircleInvolute(pt(598, 856), vec(-0.514496, 0.857493), pt(446, 865), vec(-0.633238, -0.773957))
	g.Weld(c0, curve.Finish, c1, curve.Start)
	g.Weld(c1, curve.Finish, c2, curve.Start)
	g.Weld(c2, curve.Finish, c3, curve.Start)
	g.Weld(c3, curve.Finish, c4, curve.Start)
	g.Weld(c4, curve.Finish, c5, curve.Start)
	g.Weld(c5, curve.Finish, c6, curve.Start)
	g.WeldOpt(c6, curve.Finish, c7, curve.Start, half)
	g.Weld(c7, curve.Finish, c8, curve.Start)
	g.Weld(c8, curve.Finish, c9, curve.Start)
	g.Weld(c9, curve.Finish, c10, curve.Start)

	// The nib is thickest when travelling across a direction that turns
	// from horizontal to the direction at the end of c4 and on to the
	// reverse of the direction at the end of c5.
	angled := func(base, amp float64, dir func(t float64) float64) curve.Nib {
		return roundBy(func(s curve.NibSample) float64 {
			return base + amp*math.Cos(s.Theta-dir(s.T))
		})
	}
	phi := g.TangentAngleAt(c4, 1)
	gamma := g.TangentAngleAt(c5, 1) - math.Pi
	level := func(float64) float64 { return 0 }
	for _, c := range []curve.Handle{c0, c1, c2} {
		g.SetNib(c, angled(17, 11, level))
	}
	g.SetNib(c3, angled(17, 11, func(t float64) float64 { return phi * t }))
	g.SetNib(c4, angled(17, 11, func(float64) float64 { return phi }))
	g.SetNib(c5, angled(18, 10, func(t float64) float64 { return phi + (gamma-phi)*t }))
	g.SetNib(c6, curve.Computed(curve.FollowCurves{Curves: tcs, Index: 0, Parts: 2, Radius: 8}))
	g.SetNib(c7, curve.Computed(curve.FollowCurves{Curves: tcs, Index: 1, Parts: 2, Radius: 8}))
	for _, c := range []curve.Handle{c8, c9, c10} {
		g.SetNib(c, curve.Round(8))
	}
	curve.Blob(g, c10, curve.Finish, curve.Right, 45, 9)

	// Drawn at an unusual scale.
	const scale, originX, originY = 1736, 800, 822
	g.Anchors["scale"] = scale
	g.Anchors["originx"] = originX
	g.Anchors["originy"] = originY
	g.Anchors["hy"] = 1000 - originY*scale/3600.0
}

// breve draws the bars either side of a breve. The note head between them
// is an ellipse, which isn't built from curves.
func breve(g *curve.Glyph) {
	g.AddLine(pt(398, 390), pt(398, 554))
	g.AddLine(pt(656, 390), pt(656, 554))
	g.AddLine(pt(362, 390), pt(362, 554))
	g.AddLine(pt(692, 390), pt(692, 554))
	g.DefaultNib = curve.Round(10)
}

// restCrotchet draws the two sides of the upper zig-zag separately: the
// outline on the left is one chain of curves, and the nib reaches across to
// a second chain on the right.
func restCrotchet(g *curve.Glyph) {
	inner := curve.NewGlyph(g.Name + "/inner")
	t0 := inner.AddLine(pt(502, 276), pt(589, 352))
	t1 := inner.AddCircleInvolute(pt(589, 352), vec(-0.585491, 0.810679), pt(592, 535), vec(0.74783, 0.66389))
	inner.WeldOpt(t0, curve.Finish, t1, curve.Start, half)
	tcs := []curve.Segment{inner.Segment(t0), inner.Segment(t1)}

	c0 := g.AddCircleInvolute(pt(502, 276), vec(0.753113, 0.657892), pt(494, 448), vec(-0.613941, 0.789352))
	c1 := g.AddLine(pt(494, 448), pt(592, 535))
	c2 := g.AddCircleInvolute(pt(592, 535), vec(-0.952424, -0.304776), pt(524, 569), vec(-0.378633, 0.925547))
	c3 := g.AddCircleInvolute(pt(524, 569), vec(-0.378633, 0.925547), pt(547, 649), vec(0.745241, 0.666795))
	g.WeldOpt(c0, curve.Finish, c1, curve.Start, half)
	g.WeldOpt(c1, curve.Finish, c2, curve.Start, half)
	g.Weld(c2, curve.Finish, c3, curve.Start)

	g.SetNib(c0, curve.Computed(curve.FollowCurves{Curves: tcs, Index: 0, Parts: 2, Radius: 6}))
	g.SetNib(c1, curve.Computed(curve.FollowCurves{Curves: tcs, Index: 1, Parts: 2, Radius: 6}))
	phi0 := g.TangentAngleAt(c2, 0)
	phi1 := g.TangentAngleAt(c3, 1) + math.Pi
	phia := (phi0 + phi1) / 2
	g.SetNib(c2, curve.Computed(curve.NibFuncOf(func(s curve.NibSample) curve.Nib {
		return curve.Chisel(6, phia, (1-(1-s.T)*(1-s.T))*40, 0)
	})))
	g.SetNib(c3, curve.Computed(curve.NibFuncOf(func(s curve.NibSample) curve.Nib {
		return curve.Chisel(6, phia, (1-s.T*s.T)*40, 0)
	})))
}

func restCrotchetZ(g *curve.Glyph) {
	c0 := g.AddLine(pt(532, 271), pt(412, 81))
	c1 := g.AddCircleInvolute(pt(412, 81), vec(0.5339929913860784, 0.8454889030321733), pt(525, 125), vec(0.784883, -0.619644))
	c2 := g.AddCircleInvolute(pt(532, 271), vec(-0.5339929913860784, -0.8454889030321733), pt(419, 227), vec(-0.784883, 0.619644))
	g.WeldOpt(c0, curve.Finish, c1, curve.Start, half)

	g.DefaultNib = curve.Round(8)
	curve.Blob(g, c1, curve.Finish, curve.Left, 33, 3)
	curve.Blob(g, c2, curve.Finish, curve.Left, 33, 3)
}

func restMinim(g *curve.Glyph) {
	g.AddFill(pt(440, 439), pt(440, 505), pt(614, 505), pt(614, 439))
}

// restQuaver returns the builder for a rest with n hooks.
func restQuaver(n int) Builder {
	return func(g *curve.Glyph) {
		xoff := float64(39 - 4*max(0, n-5))
		fn := float64(n)
		c0 := g.AddLine(pt(570-xoff*fn, 141+130*fn), pt(588, 81))
		cs := make([]curve.Handle, n)
		for i := range cs {
			fi := float64(i)
			cs[i] = g.AddCircleInvolute(
				pt(588-xoff*fi, 81+130*fi), vec(-0.347314, 0.937749),
				pt(480-xoff*fi, 125+130*fi), vec(-0.784883, -0.619644))
		}
		g.WeldOpt(c0, curve.Finish, cs[0], curve.Start, half)

		g.DefaultNib = curve.Round(8)
		for _, c := range cs {
			curve.Blob(g, c, curve.Finish, curve.Right, 33, 3)
		}

		co := cs[(n-1)/2]
		g.Anchors["cy"] = g.PointAt(co, 1).Y - 33*math.Sin(g.TangentAngleAt(co, 1)-math.Pi/2) + 76
		g.Anchors["height"] = 1000 + 130*fn
	}
}

func flat(g *curve.Glyph) {
	c0 := g.AddLine(pt(430, 236), pt(430, 548))
	c1 := g.AddCubic(pt(430, 548), pt(481, 499), pt(515.999, 458), pt(505, 424))
	c2 := g.AddCircleInvolute(pt(505, 424), vec(-0.307801, -0.951451), pt(430, 436), vec(-0.462566, 0.886585))
	g.WeldOpt(c0, curve.Finish, c1, curve.Start, half)
	g.Weld(c1, curve.Finish, c2, curve.Start)

	g.SetNib(c0, curve.Round(8))
	// The bowl thickens towards its right-hand side.
	x0 := g.PointAt(c1, 0).X
	x1 := g.PointAt(c1, 1).X
	g.DefaultNib = roundBy(func(s curve.NibSample) float64 {
		f := (s.Point.X - x0) / (x1 - x0)
		return 8 + 12*f*f
	})

	g.Anchors["ox"] = g.PointAt(c0, 0.5).X - 8
	g.Anchors["hy"] = g.PointAt(c0, 1).Y - 8
}

func natural(g *curve.Glyph) {
	c0 := g.AddLine(pt(519, 622), pt(519, 399))
	c1 := g.AddLine(pt(519, 399), pt(442, 418))
	c2 := g.AddLine(pt(442, 318), pt(442, 539))
	c3 := g.AddLine(pt(442, 539), pt(519, 520))
	g.WeldOpt(c0, curve.Finish, c1, curve.Start, half)
	g.WeldOpt(c2, curve.Finish, c3, curve.Start, half)

	g.DefaultNib = curve.Chisel(8, math.Pi/2, 16, 16)

	g.Anchors["ox"] = g.PointAt(c3, 0).X - 8
	g.Anchors["cy"] = g.PointAt(c0, 0).Y
}

func sharp(g *curve.Glyph) {
	c0 := g.AddLine(pt(442, 306), pt(442, 652))
	g.AddLine(pt(493, 291), pt(493, 637))
	c2 := g.AddLine(pt(413, 419), pt(523, 392))
	g.AddLine(pt(413, 551), pt(523, 524))

	g.DefaultNib = curve.Chisel(8, math.Pi/2, 16, 16)

	g.Anchors["ox"] = g.PointAt(c2, 0).X - 8
	g.Anchors["cy"] = g.PointAt(c0, 1).Y
}
