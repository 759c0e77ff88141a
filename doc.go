// Package curve provides the geometry music glyphs are drawn from: a small
// family of parametric curves, welds that keep their ends joined, and nibs
// that turn centre lines into strokes.
//
// # Coordinates
//
// Glyph space is y-down, as on a page, and glyphs are designed on a canvas
// roughly 1000 units square. Angles such as a chisel nib's axis or the result
// of [TangentAngle] are measured anticlockwise as the page is viewed, which
// means the y component is negated before taking the arctangent.
//
// # Curves
//
// A [Segment] is one of:
//   - [Line], a straight stroke
//   - [CubicBez], a cubic Bézier given by its control points
//   - [CircleInvolute], the path traced by the end of a string unwound from a
//     circle while its length changes linearly, which connects any two
//     points with given directions with a smoothly varying curvature
//   - [ExpInvolute], a stretched exponential used for long tails whose
//     curvature should fade away
//
// The two involutes are defined by their end points and directions. Their
// remaining parameters are solved for whenever those change; a curve for
// which no solution exists is degenerate. Evaluating a degenerate curve
// panics, but it can still be drawn as a placeholder by [Render] so that
// the author can see where it is.
//
// [Crosspoint] finds where two lines cross. It is used throughout for
// constructing curves and is exact for the axis-aligned lines glyph data is
// full of.
//
// # Glyphs and welds
//
// A [Glyph] owns its curves and hands out a [Handle] for each. Welding two
// curve ends with [Glyph.Weld] makes them share a position and a tangent.
// When the two disagree, the curve with the higher priority wins; equal
// priorities meet halfway. Half welds only join positions, and special welds
// keep the ends a fixed distance apart. Moving an end with [Glyph.Move] pulls
// its partner along, but the change is not passed on any further.
//
// Misusing a glyph, such as welding an end twice or asking for a point on a
// degenerate curve, panics with a [*UsageError]. The glyphs package recovers
// these and reports them as errors naming the glyph.
//
// # Nibs
//
// A [Nib] is round or chisel shaped, or is computed afresh for every point
// of a curve by a [NibFunc]. [PointToPoint] and [FollowCurves] stretch a
// chisel nib from the curve to a fixed point or to another chain of curves;
// [Blob] uses the former to fill in the spirals at the end of a stroke.
//
// # Rendering
//
// [Render] samples every curve and reports the stamps of its nib to a
// [Sink]. The raster package provides a Sink that draws into an image, and
// [Recording] keeps the primitives for inspection.
//
// # Literature
//
//   - [Approximate a circle with cubic Bézier curves] by Spencer Mortensen
//
// [Approximate a circle with cubic Bézier curves]: https://spencermortensen.com/articles/bezier-circle/
package curve
