package curve

import (
	"fmt"
	"io"
	"iter"
	"maps"
	"slices"
)

// Handle refers to a curve in a [Glyph]. Handles are assigned in order of
// addition, starting at zero, and stay valid until the curve is removed.
type Handle int

type entry struct {
	seg      Segment
	priority int
	nib      Nib
	removed  bool
}

// Glyph is a collection of curves that are drawn together, along with the
// welds that keep their ends joined.
//
// A Glyph owns its curves; they are addressed by [Handle]. Methods panic with
// a [*UsageError] when given a handle that doesn't refer to a live curve.
// A Glyph is not safe for concurrent use.
type Glyph struct {
	Name string
	// DefaultNib is used for curves that have no nib of their own.
	DefaultNib Nib
	// Anchors holds named glyph-space coordinates, such as the position of
	// an attachment point or the height of a stem, for use by code that
	// places the glyph.
	Anchors map[string]float64

	curves []entry
	welds  map[endRef]weld
	fills  [][]Point
}

// NewGlyph returns an empty glyph.
func NewGlyph(name string) *Glyph {
	return &Glyph{
		Name:    name,
		Anchors: map[string]float64{},
		welds:   map[endRef]weld{},
	}
}

func (g *Glyph) panicf(op string, h Handle, format string, args ...any) {
	panic(&UsageError{Glyph: g.Name, Handle: h, Op: op, Msg: fmt.Sprintf(format, args...)})
}

func (g *Glyph) entry(op string, h Handle) *entry {
	if h < 0 || int(h) >= len(g.curves) {
		g.panicf(op, h, "no such curve")
	}
	en := &g.curves[h]
	if en.removed {
		g.panicf(op, h, "curve has been removed")
	}
	return en
}

// DefaultPriority returns the weld priority a segment gets when it's added to
// a glyph. Straight lines win tangent disputes against curves, so that a curve
// welded to a line bends to meet it instead of kinking the line.
func DefaultPriority(seg Segment) int {
	if seg.Kind() == LineKind {
		return 3
	}
	return 1
}

// Add adds seg to the glyph and returns its handle.
func (g *Glyph) Add(seg Segment) Handle {
	if seg == nil {
		g.panicf("Add", NoHandle, "nil segment")
	}
	h := Handle(len(g.curves))
	g.curves = append(g.curves, entry{seg: seg, priority: DefaultPriority(seg)})
	if seg.Degenerate() {
		Logger().Warn("degenerate curve added", "glyph", g.Name, "curve", int(h), "kind", seg.Kind())
	}
	return h
}

// AddLine adds a straight line from p0 to p1.
func (g *Glyph) AddLine(p0, p1 Point) Handle {
	return g.Add(Line{p0, p1})
}

// AddCubic adds a cubic Bézier.
func (g *Glyph) AddCubic(p0, p1, p2, p3 Point) Handle {
	return g.Add(CubicBez{p0, p1, p2, p3})
}

// AddCircleInvolute adds a circle involute without a squash matrix.
func (g *Glyph) AddCircleInvolute(p1 Point, d1 Vec2, p2 Point, d2 Vec2) Handle {
	return g.Add(NewCircleInvolute(p1, d1, p2, d2, nil))
}

// AddExpInvolute adds an exponential involute.
func (g *Glyph) AddExpInvolute(p1 Point, d1 Vec2, p2 Point, d2 Vec2) Handle {
	return g.Add(NewExpInvolute(p1, d1, p2, d2))
}

// Remove deletes a curve, releasing any welds on its ends. The handle is not
// reused.
func (g *Glyph) Remove(h Handle) {
	en := g.entry("Remove", h)
	g.Unweld(h, Start)
	g.Unweld(h, Finish)
	en.removed = true
	en.seg = nil
}

// Segment returns the current geometry of a curve.
func (g *Glyph) Segment(h Handle) Segment {
	return g.entry("Segment", h).seg
}

// Len returns the number of live curves.
func (g *Glyph) Len() int {
	n := 0
	for _, en := range g.curves {
		if !en.removed {
			n++
		}
	}
	return n
}

// Curves returns an iterator over the live curves in handle order.
func (g *Glyph) Curves() iter.Seq2[Handle, Segment] {
	return func(yield func(Handle, Segment) bool) {
		for i, en := range g.curves {
			if en.removed {
				continue
			}
			if !yield(Handle(i), en.seg) {
				return
			}
		}
	}
}

// SetPriority sets the weld priority of a curve. The curve with the higher
// priority keeps its tangent when two welded ends disagree.
func (g *Glyph) SetPriority(h Handle, pri int) {
	g.entry("SetPriority", h).priority = pri
}

// Priority returns the weld priority of a curve.
func (g *Glyph) Priority(h Handle) int {
	return g.entry("Priority", h).priority
}

// SetNib sets the nib a curve is drawn with. Passing a zero Nib makes the
// curve use the glyph's DefaultNib again.
func (g *Glyph) SetNib(h Handle, n Nib) {
	g.entry("SetNib", h).nib = n
}

// Nib returns the nib a curve is drawn with, taking the glyph default into
// account. The result may be a computed nib.
func (g *Glyph) Nib(h Handle) Nib {
	if n := g.entry("Nib", h).nib; n.Kind != NoNib {
		return n
	}
	return g.DefaultNib
}

// AddFill adds a filled polygon to the glyph.
func (g *Glyph) AddFill(pts ...Point) {
	if len(pts) < 3 {
		g.panicf("AddFill", NoHandle, "a fill needs at least 3 points, got %d", len(pts))
	}
	g.fills = append(g.fills, slices.Clone(pts))
}

// Fills returns the glyph's filled polygons.
func (g *Glyph) Fills() iter.Seq[[]Point] {
	return slices.Values(g.fills)
}

// PointAt evaluates curve h at t.
func (g *Glyph) PointAt(h Handle, t float64) Point {
	return g.live("PointAt", h).Eval(t)
}

// DirectionAt returns the direction of travel of curve h at t.
func (g *Glyph) DirectionAt(h Handle, t float64) Vec2 {
	return g.live("DirectionAt", h).Deriv(t)
}

// TangentAngleAt returns [TangentAngle] for curve h.
func (g *Glyph) TangentAngleAt(h Handle, t float64) float64 {
	return TangentAngle(g.live("TangentAngleAt", h), t)
}

// NibAt returns the resolved nib of curve h at t.
func (g *Glyph) NibAt(h Handle, t float64) Nib {
	seg := g.live("NibAt", h)
	return g.Nib(h).Resolve(SampleAt(seg, t))
}

// live returns a solved segment, naming the glyph and handle in the panic if
// it isn't.
func (g *Glyph) live(op string, h Handle) Segment {
	seg := g.entry(op, h).seg
	if seg.Degenerate() {
		g.panicf(op, h, "%s has no solved parameters", seg.Kind())
	}
	return seg
}

// Transform maps every curve and fill of the glyph through aff. See
// [Segment.Transform] for the meaning of full. Welds are kept, and recorded
// joins are mapped along with the curves. Anchors are left alone.
func (g *Glyph) Transform(aff Affine, full bool) {
	for i := range g.curves {
		en := &g.curves[i]
		if en.removed {
			continue
		}
		en.seg = en.seg.Transform(aff, full)
	}
	for _, fill := range g.fills {
		for i, pt := range fill {
			fill[i] = pt.Transform(aff)
		}
	}
	for ref, w := range g.welds {
		if w.joined {
			w.pos = w.pos.Transform(aff)
			w.dir = w.dir.TransformLinear(aff)
			g.welds[ref] = w
		}
	}
}

// ProblemKind classifies a [Problem].
type ProblemKind int

const (
	// ProblemDegenerate means the curve's parameters couldn't be solved. It
	// is drawn as a placeholder.
	ProblemDegenerate ProblemKind = iota + 1
	// ProblemSuspect means the curve solved, but in a way that's almost
	// certainly not what was intended.
	ProblemSuspect
)

func (k ProblemKind) String() string {
	switch k {
	case ProblemDegenerate:
		return "degenerate"
	case ProblemSuspect:
		return "suspect"
	default:
		return "unknown"
	}
}

// Problem describes a curve an author should look at.
type Problem struct {
	Handle Handle
	Kind   ProblemKind
}

type suspecter interface {
	Suspect() bool
}

// Problems reports the degenerate and suspect curves of the glyph in handle
// order.
func (g *Glyph) Problems() []Problem {
	var out []Problem
	for h, seg := range g.Curves() {
		if seg.Degenerate() {
			out = append(out, Problem{h, ProblemDegenerate})
		} else if s, ok := seg.(suspecter); ok && s.Suspect() {
			out = append(out, Problem{h, ProblemSuspect})
		}
	}
	return out
}

// Serialize writes Go statements that rebuild the glyph's curves, welds,
// nibs, anchors and fills against a *curve.Glyph named g.
func (g *Glyph) Serialize(w io.Writer) error {
	ew := &errWriter{w: w}
	ew.printf("g := curve.NewGlyph(%q)\n", g.Name)
	if g.DefaultNib.Kind == RoundNib || g.DefaultNib.Kind == ChiselNib {
		ew.printf("g.DefaultNib = curve.%s\n", g.DefaultNib)
	}
	for _, name := range slices.Sorted(maps.Keys(g.Anchors)) {
		ew.printf("g.Anchors[%q] = %g\n", name, g.Anchors[name])
	}
	for h, seg := range g.Curves() {
		ew.printf("c%d := g.Add(%s)\n", int(h), seg.Serialize())
		en := g.curves[h]
		if en.priority != DefaultPriority(seg) {
			ew.printf("g.SetPriority(c%d, %d)\n", int(h), en.priority)
		}
		if en.nib.Kind == RoundNib || en.nib.Kind == ChiselNib {
			ew.printf("g.SetNib(c%d, curve.%s)\n", int(h), en.nib)
		}
	}
	refs := make([]endRef, 0, len(g.welds))
	for ref := range g.welds {
		refs = append(refs, ref)
	}
	slices.SortFunc(refs, endRef.compare)
	for _, ref := range refs {
		w := g.welds[ref]
		if w.other.compare(ref) < 0 {
			continue
		}
		if !w.half && w.special == nil {
			ew.printf("g.Weld(c%d, curve.%s, c%d, curve.%s)\n", int(ref.h), ref.e, int(w.other.h), w.other.e)
			continue
		}
		opts := fmt.Sprintf("Half: %t", w.half)
		if w.special != nil {
			opts += fmt.Sprintf(", Special: &curve.Special{Offset: curve.Vec(%g, %g), Along: %g, Across: %g}",
				w.special.Offset.X, w.special.Offset.Y, w.special.Along, w.special.Across)
		}
		ew.printf("g.WeldOpt(c%d, curve.%s, c%d, curve.%s, curve.WeldOpts{%s})\n",
			int(ref.h), ref.e, int(w.other.h), w.other.e, opts)
	}
	for _, fill := range g.fills {
		ew.printf("g.AddFill(")
		for i, pt := range fill {
			if i > 0 {
				ew.printf(", ")
			}
			ew.printf("curve.Pt(%g, %g)", pt.X, pt.Y)
		}
		ew.printf(")\n")
	}
	return ew.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
