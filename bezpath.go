package curve

import (
	"fmt"
	"iter"
	"slices"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a cubic bezier using the current location and the three points.
	CubicToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is the element of a Bézier path.
//
// A valid path has MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	case CubicToKind:
		kind = "CubicTo"
	case ClosePathKind:
		kind = "ClosePath"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// BezPath is a Bézier path made of lines and cubic Béziers. Sinks that work
// with outlines turn the primitives of a glyph into BezPaths.
type BezPath []PathElement

// Push adds an element to the path.
func (p *BezPath) Push(el PathElement) {
	*p = append(*p, el)
}

func (p *BezPath) MoveTo(pt Point)          { p.Push(MoveTo(pt)) }
func (p *BezPath) LineTo(pt Point)          { p.Push(LineTo(pt)) }
func (p *BezPath) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }
func (p *BezPath) ClosePath()               { p.Push(ClosePath()) }

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Solution from http://spencermortensen.com/articles/bezier-circle/
const quarterArm = 0.551915024494

// quarterTo appends a quarter circle around c, from c+from to c+to. The two
// vectors must be perpendicular and of equal length.
func (p *BezPath) quarterTo(c Point, from, to Vec2) {
	p.CubicTo(
		c.Translate(from).Translate(to.Mul(quarterArm)),
		c.Translate(to).Translate(from.Mul(quarterArm)),
		c.Translate(to),
	)
}

// Capsule returns the outline of a line from a to b stroked with round caps
// to width 2r. If a and b coincide, the outline is a circle. All capsules
// wind the same way, so that overlapping capsules reinforce each other under
// the non-zero rule.
func Capsule(a, b Point, r float64) BezPath {
	u := b.Sub(a)
	if u.IsZero() {
		u = Vec(1, 0)
	} else {
		u = u.Normalize()
	}
	u = u.Mul(r)
	n := Vec(-u.Y, u.X)

	var p BezPath
	p.MoveTo(a.Translate(n))
	p.LineTo(b.Translate(n))
	p.quarterTo(b, n, u)
	p.quarterTo(b, u, n.Negate())
	p.LineTo(a.Translate(n.Negate()))
	p.quarterTo(a, n.Negate(), u.Negate())
	p.quarterTo(a, u.Negate(), n)
	p.ClosePath()
	return p
}

// Polygon returns the closed outline through pts.
func Polygon(pts []Point) BezPath {
	if len(pts) == 0 {
		return nil
	}
	p := make(BezPath, 0, len(pts)+1)
	p.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		p.LineTo(pt)
	}
	p.ClosePath()
	return p
}
