package curve

import (
	"math"
	"testing"
)

func TestBlob(t *testing.T) {
	g := NewGlyph("blob")
	g.DefaultNib = Round(8)
	h := g.AddLine(Pt(0, 40), Pt(100, 40))
	hs := Blob(g, h, Finish, Right, 20, 9)
	if len(hs) != 4 {
		t.Fatalf("got %d curves, want 4", len(hs))
	}

	first := g.Segment(hs[0]).(CircleInvolute)
	diff(t, Pt(100, 40), first.P1)
	diff(t, Vec(1, 0), first.D1)

	centre := Pt(100-9/(2*math.Pi), 60)
	for i, bh := range hs {
		c := g.Segment(bh).(CircleInvolute)
		if c.Degenerate() {
			t.Errorf("curve %d is degenerate", i)
		}
		if i > 0 {
			prev := g.Segment(hs[i-1]).(CircleInvolute)
			diff(t, prev.P2, c.P1)
			diff(t, prev.D2, c.D1)
		}
		nib := g.Nib(bh)
		ptp, ok := nib.Func.(PointToPoint)
		if nib.Kind != ComputedNib || !ok {
			t.Fatalf("curve %d: got nib %s", i, nib)
		}
		assertNear(t, ptp.Target, centre, 1e-9)
		if ptp.Radius != 8 {
			t.Errorf("got nib radius %g, want 8", ptp.Radius)
		}
	}
	// Once round, the spiral heads the way it started.
	last := g.Segment(hs[3]).(CircleInvolute)
	assertNearVec(t, last.D2, Vec(1, 0), 1e-12)
}

func TestBlobStart(t *testing.T) {
	g := NewGlyph("blob")
	h := g.AddLine(Pt(0, 40), Pt(100, 40))
	hs := BlobWithNib(g, h, Start, Left, 20, 9, 3)
	first := g.Segment(hs[0]).(CircleInvolute)
	diff(t, Pt(0, 40), first.P1)
	diff(t, Vec(-1, 0), first.D1)
	ptp := g.Nib(hs[0]).Func.(PointToPoint)
	assertNear(t, ptp.Target, Pt(9/(2*math.Pi), 60), 1e-9)
	if ptp.Radius != 3 {
		t.Errorf("got nib radius %g, want 3", ptp.Radius)
	}
}

func TestBlobChisel(t *testing.T) {
	g := NewGlyph("blob")
	h := g.AddLine(Pt(0, 40), Pt(100, 40))
	g.SetNib(h, Chisel(1, 0, 2, 2))
	uerr := mustPanicUsage(t, func() { Blob(g, h, Finish, Right, 20, 9) })
	if uerr.Handle != h || uerr.Glyph != "blob" {
		t.Errorf("got %v", uerr)
	}
	if g.Len() != 1 {
		t.Errorf("got %d curves, want 1", g.Len())
	}
}
