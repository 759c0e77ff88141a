// Package raster draws glyphs into images.
//
// A [Canvas] is a [curve.Sink]: pass it to [curve.Render] and then call
// [Canvas.Image]. Strokes and discs are turned into round-capped outlines and
// filled with the non-zero rule by [golang.org/x/image/vector].
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/gonville/curve"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/vector"
)

// Options configure a [Canvas].
type Options struct {
	// Width and Height are the size of the drawing area in glyph units.
	Width, Height float64
	// Scale is the number of pixels per glyph unit.
	Scale float64
	// Ink and Alert are the colours of normal and alert primitives.
	Ink, Alert color.Color
	// Background fills the image before anything is drawn.
	Background color.Color
}

var DefaultOptions = Options{
	Width:      1000,
	Height:     1000,
	Scale:      1,
	Ink:        color.Black,
	Alert:      color.RGBA{R: 0xff, A: 0xff},
	Background: color.White,
}

func (o Options) WithSize(w, h float64) Options   { o.Width, o.Height = w, h; return o }
func (o Options) WithScale(s float64) Options     { o.Scale = s; return o }
func (o Options) WithInk(c color.Color) Options   { o.Ink = c; return o }
func (o Options) WithAlert(c color.Color) Options { o.Alert = c; return o }

// Canvas accumulates the primitives of a glyph. Normal strokes, fills and
// alert primitives go to separate rasterizers, so that fills of either
// winding don't cancel out strokes, and alerts stay visible on top.
type Canvas struct {
	opts    Options
	strokes *vector.Rasterizer
	fills   *vector.Rasterizer
	alerts  *vector.Rasterizer
	aff     curve.Affine
}

var _ curve.Sink = (*Canvas)(nil)

// NewCanvas returns an empty canvas. Zero fields of opts take their value
// from [DefaultOptions].
func NewCanvas(opts Options) *Canvas {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = DefaultOptions.Width, DefaultOptions.Height
	}
	if opts.Scale <= 0 {
		opts.Scale = DefaultOptions.Scale
	}
	if opts.Ink == nil {
		opts.Ink = DefaultOptions.Ink
	}
	if opts.Alert == nil {
		opts.Alert = DefaultOptions.Alert
	}
	if opts.Background == nil {
		opts.Background = DefaultOptions.Background
	}
	w := int(math.Ceil(opts.Width * opts.Scale))
	h := int(math.Ceil(opts.Height * opts.Scale))
	return &Canvas{
		opts:    opts,
		strokes: vector.NewRasterizer(w, h),
		fills:   vector.NewRasterizer(w, h),
		alerts:  vector.NewRasterizer(w, h),
		aff:     curve.Scale(opts.Scale, opts.Scale),
	}
}

// Bounds returns the pixel bounds of the canvas.
func (c *Canvas) Bounds() image.Rectangle {
	return c.strokes.Bounds()
}

func (c *Canvas) pick(ink curve.Ink, fill bool) *vector.Rasterizer {
	switch {
	case ink == curve.InkAlert:
		return c.alerts
	case fill:
		return c.fills
	default:
		return c.strokes
	}
}

func (c *Canvas) StrokePolyline(pts []curve.Point, width float64, ink curve.Ink) {
	z := c.pick(ink, false)
	r := width / 2
	if len(pts) == 1 {
		c.draw(z, curve.Capsule(pts[0], pts[0], r))
		return
	}
	for i := 1; i < len(pts); i++ {
		c.draw(z, curve.Capsule(pts[i-1], pts[i], r))
	}
}

func (c *Canvas) FillDisc(p curve.Point, r float64, ink curve.Ink) {
	c.draw(c.pick(ink, false), curve.Capsule(p, p, r))
}

func (c *Canvas) FillPolygon(pts []curve.Point, ink curve.Ink) {
	c.draw(c.pick(ink, true), curve.Polygon(pts))
}

func (c *Canvas) vec(p curve.Point) f32.Vec2 {
	p = p.Transform(c.aff)
	return f32.Vec2{float32(p.X), float32(p.Y)}
}

func (c *Canvas) draw(z *vector.Rasterizer, path curve.BezPath) {
	for el := range path.Elements() {
		switch el.Kind {
		case curve.MoveToKind:
			v := c.vec(el.P0)
			z.MoveTo(v[0], v[1])
		case curve.LineToKind:
			v := c.vec(el.P0)
			z.LineTo(v[0], v[1])
		case curve.CubicToKind:
			b, cc, d := c.vec(el.P0), c.vec(el.P1), c.vec(el.P2)
			z.CubeTo(b[0], b[1], cc[0], cc[1], d[0], d[1])
		case curve.ClosePathKind:
			z.ClosePath()
		}
	}
}

// Image composites everything drawn so far onto the background.
func (c *Canvas) Image() *image.RGBA {
	b := c.Bounds()
	img := image.NewRGBA(b)
	draw.Draw(img, b, image.NewUniform(c.opts.Background), image.Point{}, draw.Src)
	c.strokes.Draw(img, b, image.NewUniform(c.opts.Ink), image.Point{})
	c.fills.Draw(img, b, image.NewUniform(c.opts.Ink), image.Point{})
	c.alerts.Draw(img, b, image.NewUniform(c.opts.Alert), image.Point{})
	return img
}

// Draw renders g onto a new canvas and returns the image.
func Draw(g *curve.Glyph, ropts curve.RenderOptions, opts Options) *image.RGBA {
	c := NewCanvas(opts)
	curve.Render(g, c, ropts)
	return c.Image()
}
