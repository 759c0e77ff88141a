package curve

// Ink selects how a primitive is coloured.
type Ink int

const (
	// InkNormal is the glyph itself.
	InkNormal Ink = iota
	// InkAlert marks something the author needs to fix, such as a curve
	// that couldn't be solved.
	InkAlert
)

func (i Ink) String() string {
	if i == InkAlert {
		return "alert"
	}
	return "normal"
}

// Sink receives the primitives a glyph is drawn with. Coordinates are in
// glyph space.
type Sink interface {
	// StrokePolyline strokes pts with round caps and joins.
	StrokePolyline(pts []Point, width float64, ink Ink)
	FillDisc(c Point, r float64, ink Ink)
	FillPolygon(pts []Point, ink Ink)
}

// PlaceholderWidth is the stroke width of the placeholder drawn for a curve
// that couldn't be solved.
const PlaceholderWidth = 4

// RenderOptions control [Render].
type RenderOptions struct {
	// Samples is the number of points at which each curve is evaluated.
	Samples int
}

var DefaultRenderOptions = RenderOptions{
	Samples: DefaultSamples,
}

func (o RenderOptions) WithSamples(n int) RenderOptions { o.Samples = n; return o }

// Render draws g into sink. Every live curve is evaluated at evenly spaced
// parameters and the nib in effect at each one is stamped there: a chisel nib
// as a stroked line between its tips, a round nib as a disc. Curves that
// couldn't be solved are drawn as placeholders in alert ink. Fills are drawn
// last.
func Render(g *Glyph, sink Sink, opts RenderOptions) {
	n := opts.Samples
	if n < 2 {
		n = DefaultSamples
	}
	for h, seg := range g.Curves() {
		if seg.Degenerate() {
			Logger().Warn("drawing placeholder for degenerate curve", "glyph", g.Name, "curve", int(h))
			sink.StrokePolyline(seg.Placeholder(), PlaceholderWidth, InkAlert)
			continue
		}
		nib := g.Nib(h)
		for t, p := range Samples(seg, n) {
			s := NibSample{Segment: seg, T: t, Point: p, Theta: TangentAngle(seg, t)}
			stamp(sink, nib.Resolve(s), p)
		}
	}
	for _, fill := range g.fills {
		sink.FillPolygon(fill, InkNormal)
	}
}

func stamp(sink Sink, nib Nib, p Point) {
	switch nib.Kind {
	case ChiselNib:
		a, b := nib.Endpoints(p)
		sink.StrokePolyline([]Point{a, b}, 2*nib.Radius, InkNormal)
	case RoundNib:
		if nib.Radius != 0 {
			sink.FillDisc(p, nib.Radius, InkNormal)
		}
	}
}

// OpKind identifies a recorded drawing operation.
type OpKind int

const (
	OpStroke OpKind = iota + 1
	OpDisc
	OpFill
)

// Op is a drawing operation recorded by [Recording]. Width is only set for
// strokes and Radius only for discs; a disc's centre is Points[0].
type Op struct {
	Kind   OpKind
	Points []Point
	Width  float64
	Radius float64
	Ink    Ink
}

// Recording is a [Sink] that remembers what was drawn.
type Recording struct {
	Ops []Op
}

var _ Sink = (*Recording)(nil)

func (r *Recording) StrokePolyline(pts []Point, width float64, ink Ink) {
	r.Ops = append(r.Ops, Op{Kind: OpStroke, Points: append([]Point(nil), pts...), Width: width, Ink: ink})
}

func (r *Recording) FillDisc(c Point, radius float64, ink Ink) {
	r.Ops = append(r.Ops, Op{Kind: OpDisc, Points: []Point{c}, Radius: radius, Ink: ink})
}

func (r *Recording) FillPolygon(pts []Point, ink Ink) {
	r.Ops = append(r.Ops, Op{Kind: OpFill, Points: append([]Point(nil), pts...), Ink: ink})
}
