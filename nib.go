package curve

import (
	"fmt"
	"math"
)

// NibKind identifies the variant of a [Nib].
type NibKind int

const (
	// NoNib means no nib has been assigned; the glyph's default applies.
	NoNib NibKind = iota
	// RoundNib is a circular pen of a given radius.
	RoundNib
	// ChiselNib is a flat pen laid along an axis.
	ChiselNib
	// ComputedNib derives a round or chisel nib from the position along the
	// curve.
	ComputedNib
)

// Nib is the virtual pen used to turn a curve's centre line into a stroke.
//
// A chisel nib is a round-ended line segment of half-width Radius whose axis
// is at Angle (anticlockwise on the page). It reaches Forward along the axis
// ahead of the centre-line point and Backward behind it.
type Nib struct {
	Kind     NibKind
	Radius   float64
	Angle    float64
	Forward  float64
	Backward float64
	Func     NibFunc
}

// Round returns a circular nib of radius r.
func Round(r float64) Nib {
	return Nib{Kind: RoundNib, Radius: r}
}

// Chisel returns a chisel nib.
func Chisel(r, angle, forward, backward float64) Nib {
	return Nib{Kind: ChiselNib, Radius: r, Angle: angle, Forward: forward, Backward: backward}
}

// Computed returns a nib that is worked out afresh at every point.
func Computed(f NibFunc) Nib {
	return Nib{Kind: ComputedNib, Func: f}
}

// NibSample is what a [NibFunc] gets to see of the curve being drawn.
type NibSample struct {
	Segment Segment
	T       float64
	Point   Point
	// Theta is the tangent angle at T, see [TangentAngle].
	Theta float64
}

// SampleAt evaluates seg at t for nib computation.
func SampleAt(seg Segment, t float64) NibSample {
	return NibSample{
		Segment: seg,
		T:       t,
		Point:   seg.Eval(t),
		Theta:   TangentAngle(seg, t),
	}
}

// NibFunc computes a nib for one point of a curve. Implementations must not
// depend on anything but the sample and their own immutable configuration.
type NibFunc interface {
	Nib(s NibSample) Nib
}

// NibFuncOf adapts an ordinary function to a [NibFunc].
type NibFuncOf func(s NibSample) Nib

func (f NibFuncOf) Nib(s NibSample) Nib { return f(s) }

// Resolve returns the round or chisel nib that applies at s. A NoNib result
// means nothing is drawn.
func (n Nib) Resolve(s NibSample) Nib {
	for n.Kind == ComputedNib {
		if n.Func == nil {
			usagePanic("Resolve", "computed nib without a function")
		}
		n = n.Func.Nib(s)
	}
	return n
}

// Axis returns the unit vector of a chisel nib's axis in glyph space.
func (n Nib) Axis() Vec2 {
	sin, cos := math.Sincos(n.Angle)
	return Vec(cos, -sin)
}

// Endpoints returns the two ends of a chisel nib centred on p.
func (n Nib) Endpoints(p Point) (Point, Point) {
	a := n.Axis()
	return p.Translate(a.Mul(n.Forward)), p.Translate(a.Mul(-n.Backward))
}

func (n Nib) String() string {
	switch n.Kind {
	case NoNib:
		return "NoNib"
	case RoundNib:
		return fmt.Sprintf("Round(%g)", n.Radius)
	case ChiselNib:
		return fmt.Sprintf("Chisel(%g, %g, %g, %g)", n.Radius, n.Angle, n.Forward, n.Backward)
	case ComputedNib:
		return fmt.Sprintf("Computed(%T)", n.Func)
	default:
		return "InvalidNib"
	}
}

// PointToPoint is a chisel nib with one end on the curve and the other at a
// fixed Target.
type PointToPoint struct {
	Target Point
	Radius float64
}

func (p PointToPoint) Nib(s NibSample) Nib {
	angle := math.Atan2(s.Point.Y-p.Target.Y, p.Target.X-s.Point.X)
	return Chisel(p.Radius, angle, s.Point.Distance(p.Target), 0)
}

// FollowCurves is a chisel nib with one end on the curve being drawn and the
// other on the corresponding point of a different chain of curves. The
// curve being drawn is taken to be part Index of a chain of Parts curves,
// and the whole of that chain is matched against the whole of Curves.
//
// Two outlines that run alongside each other keep a consistent stroke
// between them this way.
type FollowCurves struct {
	Curves []Segment
	Index  int
	Parts  int
	Radius float64
}

func (f FollowCurves) Nib(s NibSample) Nib {
	n := len(f.Curves)
	switch {
	case n == 0:
		usagePanic("FollowCurves", "no curves to follow")
	case f.Parts <= 0:
		usagePanic("FollowCurves", "chain has %d parts", f.Parts)
	case f.Index < 0 || f.Index >= f.Parts:
		usagePanic("FollowCurves", "index %d out of range for %d parts", f.Index, f.Parts)
	}
	tt := (s.T + float64(f.Index)) * float64(n) / float64(f.Parts)
	ti := min(max(int(tt), 0), n-1)
	target := f.Curves[ti].Eval(tt - float64(ti))
	return PointToPoint{Target: target, Radius: f.Radius}.Nib(s)
}
