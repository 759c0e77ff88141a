package curve

import "cmp"

type endRef struct {
	h Handle
	e End
}

func (r endRef) compare(o endRef) int {
	if c := cmp.Compare(r.h, o.h); c != 0 {
		return c
	}
	return cmp.Compare(r.e, o.e)
}

type weld struct {
	other   endRef
	half    bool
	special *Special

	// The position and tangent this end was last given by propagation.
	joined bool
	pos    Point
	dir    Vec2
}

// Special describes a weld whose ends are kept apart by a fixed amount
// instead of coinciding. The displacement from one end to the other is
// Offset plus Along units in the direction of the first end's tangent plus
// Across units perpendicular to it.
type Special struct {
	Offset Vec2
	Along  float64
	Across float64
}

func (s Special) reversed() Special {
	return Special{Offset: s.Offset.Negate(), Along: s.Along, Across: s.Across}
}

// displacement returns the offset from an end with tangent d to its partner.
// d must not be zero.
func (s Special) displacement(d Vec2) Vec2 {
	u := d.Div(d.Hypot())
	return s.Offset.Add(u.Mul(s.Along)).Add(u.Turn90().Mul(s.Across))
}

// WeldOpts configures a weld.
type WeldOpts struct {
	// Half welds only join positions; each curve keeps its own tangent.
	Half bool
	// Special, if not nil, keeps the ends apart.
	Special *Special
}

// Weld joins end ea of curve a to end eb of curve b, so that they share a
// position and a tangent, and makes them agree straight away.
//
// It panics if either end is already welded.
func (g *Glyph) Weld(a Handle, ea End, b Handle, eb End) {
	g.weld("Weld", a, ea, b, eb, WeldOpts{})
}

// WeldOpt is like [Glyph.Weld] but allows for half and special welds.
func (g *Glyph) WeldOpt(a Handle, ea End, b Handle, eb End, opts WeldOpts) {
	g.weld("WeldOpt", a, ea, b, eb, opts)
}

func (g *Glyph) weld(op string, a Handle, ea End, b Handle, eb End, opts WeldOpts) {
	g.entry(op, a)
	g.entry(op, b)
	ra, rb := endRef{a, ea}, endRef{b, eb}
	if ra == rb {
		g.panicf(op, a, "cannot weld %s end to itself", ea)
	}
	if _, ok := g.welds[ra]; ok {
		g.panicf(op, a, "%s end is already welded", ea)
	}
	if _, ok := g.welds[rb]; ok {
		g.panicf(op, b, "%s end is already welded", eb)
	}
	wa := weld{other: rb, half: opts.Half}
	wb := weld{other: ra, half: opts.Half}
	if opts.Special != nil {
		sa, sb := *opts.Special, opts.Special.reversed()
		wa.special, wb.special = &sa, &sb
	}
	g.welds[ra] = wa
	g.welds[rb] = wb
	g.propagate(op, ra, 0)
}

// Unweld releases the weld on an end of a curve, if any. Both curves keep
// their current geometry.
func (g *Glyph) Unweld(h Handle, e End) {
	g.entry("Unweld", h)
	ref := endRef{h, e}
	w, ok := g.welds[ref]
	if !ok {
		return
	}
	delete(g.welds, w.other)
	delete(g.welds, ref)
}

// Welded reports the curve end that end e of curve h is welded to.
func (g *Glyph) Welded(h Handle, e End) (Handle, End, bool) {
	g.entry("Welded", h)
	w, ok := g.welds[endRef{h, e}]
	if !ok {
		return NoHandle, Start, false
	}
	return w.other.h, w.other.e, true
}

// Update makes a welded end and its partner agree again after one of them
// has changed. It does nothing for an unwelded end.
func (g *Glyph) Update(h Handle, e End) {
	g.entry("Update", h)
	g.propagate("Update", endRef{h, e}, 0)
}

// UpdateWithPriority is like [Glyph.Update] but raises the priority of the
// end being updated to at least pri, for both position and tangent.
func (g *Glyph) UpdateWithPriority(h Handle, e End, pri int) {
	g.entry("UpdateWithPriority", h)
	g.propagate("UpdateWithPriority", endRef{h, e}, pri)
}

// MovePriority is the priority an end that is moved by hand gets over its
// partner.
const MovePriority = 2

// Move sets the position and tangent of an end, as when the end is dragged
// by hand, and pulls its partner along.
func (g *Glyph) Move(h Handle, e End, pt Point, dir Vec2) {
	en := g.entry("Move", h)
	en.seg, _ = en.seg.SetEndData(e, pt, dir)
	g.propagate("Move", endRef{h, e}, MovePriority)
}

// Join returns the position and tangent last agreed on for a welded end.
// Straight lines can't take on a tangent, so this is where the tangent a
// line's end was given can be observed.
func (g *Glyph) Join(h Handle, e End) (Point, Vec2, bool) {
	g.entry("Join", h)
	w, ok := g.welds[endRef{h, e}]
	if !ok || !w.joined {
		return Point{}, Vec2{}, false
	}
	return w.pos, w.dir, true
}

// propagate runs a single pass of weld resolution from one end to its
// partner. Other welds on either curve aren't revisited.
//
// Positions are blended with priority 1 on both sides, and tangents with
// each curve's weld priority. override, if positive, raises both priorities
// of the initiating end. The higher priority wins outright, and equal
// priorities take the average.
func (g *Glyph) propagate(op string, from endRef, override int) {
	w, ok := g.welds[from]
	if !ok {
		return
	}
	to := w.other
	us, them := &g.curves[from.h], &g.curves[to.h]

	ourPos, ourDir := 1, us.priority
	if override > 0 {
		ourPos = max(ourPos, override)
		ourDir = max(ourDir, override)
	}
	theirPos, theirDir := 1, them.priority

	sp, sd := us.seg.EndData(from.e)
	op2, od := them.seg.EndData(to.e)

	var shift Vec2
	if w.special != nil {
		if sd.IsZero() {
			g.panicf(op, from.h, "special weld on %s end, which has no tangent", from.e)
		}
		shift = w.special.displacement(sd)
		op2 = op2.Translate(shift.Negate())
	}

	sp = Point(blend(Vec2(sp), ourPos, Vec2(op2), theirPos))
	op2 = sp.Translate(shift)

	if !w.half {
		d := blend(sd, ourDir, od.Negate(), theirDir)
		if d.IsZero() {
			d = Vec(1, 0)
		}
		sd, od = d, d.Negate()
	}

	us.seg, _ = us.seg.SetEndData(from.e, sp, sd)
	them.seg, _ = them.seg.SetEndData(to.e, op2, od)

	w.joined, w.pos, w.dir = true, sp, sd
	g.welds[from] = w
	tw := g.welds[to]
	tw.joined, tw.pos, tw.dir = true, op2, od
	g.welds[to] = tw

	Logger().Debug("weld updated", "glyph", g.Name, "curve", int(from.h), "end", from.e,
		"partner", int(to.h), "partner_end", to.e, "pos", sp, "dir", sd)
}

// blend combines a and b according to their priorities.
func blend(a Vec2, pa int, b Vec2, pb int) Vec2 {
	switch {
	case pa > pb:
		return a
	case pb > pa:
		return b
	default:
		return a.Add(b).Div(2)
	}
}
