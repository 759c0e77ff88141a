package curve

import (
	"math"
	"testing"
)

func TestRenderChisel(t *testing.T) {
	g := NewGlyph("chisel")
	g.DefaultNib = Chisel(2, math.Pi/2, 5, 5)
	g.AddLine(Pt(0, 0), Pt(10, 0))

	var rec Recording
	Render(g, &rec, DefaultRenderOptions.WithSamples(3))
	if len(rec.Ops) != 3 {
		t.Fatalf("got %d ops, want 3", len(rec.Ops))
	}
	for i, op := range rec.Ops {
		x := 5 * float64(i)
		if op.Kind != OpStroke || op.Width != 4 || op.Ink != InkNormal || len(op.Points) != 2 {
			t.Fatalf("op %d: got %+v", i, op)
		}
		assertNear(t, op.Points[0], Pt(x, -5), 1e-9)
		assertNear(t, op.Points[1], Pt(x, 5), 1e-9)
	}
}

func TestRenderRound(t *testing.T) {
	g := NewGlyph("round")
	g.DefaultNib = Round(3)
	g.AddLine(Pt(0, 0), Pt(10, 0))
	h := g.AddLine(Pt(0, 10), Pt(10, 10))
	g.SetNib(h, Round(0))

	var rec Recording
	Render(g, &rec, DefaultRenderOptions.WithSamples(5))
	want := []Op{
		{Kind: OpDisc, Points: []Point{Pt(0, 0)}, Radius: 3},
		{Kind: OpDisc, Points: []Point{Pt(2.5, 0)}, Radius: 3},
		{Kind: OpDisc, Points: []Point{Pt(5, 0)}, Radius: 3},
		{Kind: OpDisc, Points: []Point{Pt(7.5, 0)}, Radius: 3},
		{Kind: OpDisc, Points: []Point{Pt(10, 0)}, Radius: 3},
	}
	diff(t, want, rec.Ops)
}

func TestRenderDefaultSamples(t *testing.T) {
	g := NewGlyph("samples")
	g.DefaultNib = Round(1)
	g.AddLine(Pt(0, 0), Pt(10, 0))
	for _, n := range []int{0, 1} {
		var rec Recording
		Render(g, &rec, RenderOptions{Samples: n})
		if len(rec.Ops) != DefaultSamples {
			t.Errorf("samples %d: got %d ops, want %d", n, len(rec.Ops), DefaultSamples)
		}
	}
}

func TestRenderDegenerate(t *testing.T) {
	g := NewGlyph("degenerate")
	g.DefaultNib = Round(1)
	bad := NewCircleInvolute(Pt(0, 0), Vec(1, 0), Pt(10, 5), Vec(1, 0), nil)
	g.Add(bad)
	g.AddLine(Pt(0, 10), Pt(10, 10))

	var rec Recording
	Render(g, &rec, DefaultRenderOptions.WithSamples(2))
	if len(rec.Ops) != 3 {
		t.Fatalf("got %d ops, want 3", len(rec.Ops))
	}
	want := Op{Kind: OpStroke, Points: bad.Placeholder(), Width: PlaceholderWidth, Ink: InkAlert}
	diff(t, want, rec.Ops[0])
	for _, op := range rec.Ops[1:] {
		if op.Kind != OpDisc || op.Ink != InkNormal {
			t.Errorf("got %+v", op)
		}
	}
}

func TestRenderFillsLast(t *testing.T) {
	g := NewGlyph("fill")
	g.DefaultNib = Round(1)
	g.AddFill(Pt(0, 0), Pt(10, 0), Pt(0, 10))
	g.AddLine(Pt(0, 0), Pt(10, 0))

	var rec Recording
	Render(g, &rec, DefaultRenderOptions.WithSamples(2))
	if len(rec.Ops) != 3 {
		t.Fatalf("got %d ops, want 3", len(rec.Ops))
	}
	diff(t, Op{Kind: OpFill, Points: []Point{Pt(0, 0), Pt(10, 0), Pt(0, 10)}}, rec.Ops[2])
}

func TestRenderSkipsRemoved(t *testing.T) {
	g := NewGlyph("removed")
	g.DefaultNib = Round(1)
	h := g.AddLine(Pt(0, 0), Pt(10, 0))
	g.Remove(h)
	var rec Recording
	Render(g, &rec, DefaultRenderOptions)
	if len(rec.Ops) != 0 {
		t.Errorf("got %d ops, want none", len(rec.Ops))
	}
}
