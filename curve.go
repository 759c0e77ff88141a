package curve

import (
	"iter"
	"math"
)

// DefaultSamples is the number of points at which each curve is evaluated
// when it is turned into stroked primitives.
const DefaultSamples = 1001

// Kind identifies the variant of a [Segment].
type Kind int

const (
	LineKind Kind = iota + 1
	CubicKind
	CircleInvoluteKind
	ExpInvoluteKind
)

func (k Kind) String() string {
	switch k {
	case LineKind:
		return "Line"
	case CubicKind:
		return "CubicBez"
	case CircleInvoluteKind:
		return "CircleInvolute"
	case ExpInvoluteKind:
		return "ExpInvolute"
	default:
		return "InvalidKind"
	}
}

// End names one end of a segment.
type End int

const (
	// Start is the end at t = 0.
	Start End = 0
	// Finish is the end at t = 1.
	Finish End = 1
)

func (e End) String() string {
	if e == Start {
		return "Start"
	}
	return "Finish"
}

// Segment is a parametric curve from which glyphs are built. The set of
// implementations is closed: [Line], [CubicBez], [CircleInvolute] and
// [ExpInvolute].
//
// Segments are values. Methods that change the defining data return a new,
// re-solved segment instead of modifying the receiver.
type Segment interface {
	Kind() Kind

	// Eval evaluates the curve at parameter t ∈ [0, 1]. It panics if the
	// segment is degenerate.
	Eval(t float64) Point

	// Deriv returns the direction of travel at t. The vector isn't
	// necessarily of unit length. It panics if the segment is degenerate.
	Deriv(t float64) Vec2

	// EndData returns the position of an end together with the tangent at
	// that end. The tangent points from the end into the curve, so the
	// tangent reported for Finish is the reverse of the direction of travel.
	EndData(e End) (Point, Vec2)

	// SetEndData returns the segment with the given end moved to pt and its
	// tangent (in the same sense as EndData) set to dir, and reports whether
	// anything changed.
	SetEndData(e End, pt Point, dir Vec2) (Segment, bool)

	// Transform maps the defining geometry through aff and re-solves. For
	// involutes, full also transforms the squash matrix.
	Transform(aff Affine, full bool) Segment

	// Degenerate reports whether solving the curve's parameters failed.
	Degenerate() bool

	// Placeholder returns a polyline standing in for the curve when it is
	// degenerate.
	Placeholder() []Point

	// Serialize returns a Go expression reconstructing the segment.
	Serialize() string

	isSegment()
}

// TangentAngle returns the angle of the direction of travel at t, measured
// anticlockwise on the page. As glyph space is y-down this is atan2(-dy, dx).
func TangentAngle(seg Segment, t float64) float64 {
	d := seg.Deriv(t)
	return math.Atan2(-d.Y, d.X)
}

// Curvature estimates the signed curvature of seg at t from the circle
// through three nearby points. Near the ends the points are taken from inside
// the curve.
func Curvature(seg Segment, t float64) float64 {
	const h = 1e-3
	t0, t1, t2 := t-h, t, t+h
	if t0 < 0 {
		t0, t1, t2 = 0, h, 2*h
	} else if t2 > 1 {
		t0, t1, t2 = 1-2*h, 1-h, 1
	}
	a, b, c := seg.Eval(t0), seg.Eval(t1), seg.Eval(t2)
	den := b.Distance(a) * c.Distance(b) * c.Distance(a)
	if den == 0 {
		return 0
	}
	return 2 * b.Sub(a).Cross(c.Sub(a)) / den
}

// Samples returns an iterator over n evenly spaced parameters in [0, 1] and
// the points of seg at those parameters. Both ends are always included when
// n ≥ 2.
func Samples(seg Segment, n int) iter.Seq2[float64, Point] {
	return func(yield func(float64, Point) bool) {
		if n <= 0 {
			return
		}
		if n == 1 {
			yield(0, seg.Eval(0))
			return
		}
		for i := range n {
			t := float64(i) / float64(n-1)
			if !yield(t, seg.Eval(t)) {
				return
			}
		}
	}
}

// placeholder draws a small zig-zag between two ends, so that a curve whose
// parameters couldn't be solved is still visible at roughly the right place.
func placeholder(p1, p2 Point) []Point {
	return []Point{
		p1,
		{(2*p1.X+3*p2.X)/5 - (p1.Y-p2.Y)/14, (2*p1.Y+3*p2.Y)/5 + (p1.X-p2.X)/14},
		{(3*p1.X+2*p2.X)/5 + (p1.Y-p2.Y)/14, (3*p1.Y+2*p2.Y)/5 - (p1.X-p2.X)/14},
		p2,
	}
}

func finite(fs ...float64) bool {
	for _, f := range fs {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
