package curve

import (
	"errors"
	"strings"
	"testing"
)

func TestGlyphHandles(t *testing.T) {
	g := NewGlyph("handles")
	a := g.AddLine(Pt(0, 0), Pt(10, 0))
	b := g.AddCubic(Pt(0, 0), Pt(5, 5), Pt(10, 5), Pt(15, 0))
	c := g.AddLine(Pt(0, 10), Pt(10, 10))
	if a != 0 || b != 1 || c != 2 {
		t.Fatalf("got handles %d, %d, %d", a, b, c)
	}
	g.Remove(b)
	if n := g.Len(); n != 2 {
		t.Errorf("got %d curves, want 2", n)
	}
	var got []Handle
	for h := range g.Curves() {
		got = append(got, h)
	}
	diff(t, []Handle{a, c}, got)

	// Handles aren't reused.
	if d := g.AddLine(Pt(0, 0), Pt(1, 1)); d != 3 {
		t.Errorf("got handle %d, want 3", d)
	}

	uerr := mustPanicUsage(t, func() { g.Segment(b) })
	want := &UsageError{Glyph: "handles", Handle: b, Op: "Segment", Msg: "curve has been removed"}
	diff(t, want, uerr)
	if s := uerr.Error(); s != "curve: Segment in glyph handles on curve c1: curve has been removed" {
		t.Errorf("got %q", s)
	}
	uerr = mustPanicUsage(t, func() { g.PointAt(42, 0) })
	if uerr.Handle != 42 || uerr.Op != "PointAt" {
		t.Errorf("got %v", uerr)
	}
}

func TestGlyphDegenerateEval(t *testing.T) {
	g := NewGlyph("degenerate")
	h := g.Add(NewCircleInvolute(Pt(0, 0), Vec(1, 0), Pt(10, 5), Vec(1, 0), nil))
	for name, fn := range map[string]func(){
		"PointAt":        func() { g.PointAt(h, 0.5) },
		"DirectionAt":    func() { g.DirectionAt(h, 0.5) },
		"TangentAngleAt": func() { g.TangentAngleAt(h, 0.5) },
		"NibAt":          func() { g.NibAt(h, 0.5) },
	} {
		uerr := mustPanicUsage(t, fn)
		if uerr.Op != name || uerr.Handle != h || uerr.Glyph != "degenerate" {
			t.Errorf("got %v", uerr)
		}
	}
}

func TestDefaultPriority(t *testing.T) {
	if p := DefaultPriority(Line{}); p != 3 {
		t.Errorf("got %d for a line, want 3", p)
	}
	if p := DefaultPriority(CubicBez{}); p != 1 {
		t.Errorf("got %d for a cubic, want 1", p)
	}
	g := NewGlyph("priority")
	h := g.AddLine(Pt(0, 0), Pt(1, 0))
	g.SetPriority(h, 7)
	if p := g.Priority(h); p != 7 {
		t.Errorf("got %d, want 7", p)
	}
}

func TestGlyphFills(t *testing.T) {
	g := NewGlyph("fills")
	pts := []Point{Pt(0, 0), Pt(1, 0), Pt(0, 1)}
	g.AddFill(pts...)
	pts[0] = Pt(5, 5)
	var got [][]Point
	for f := range g.Fills() {
		got = append(got, f)
	}
	diff(t, [][]Point{{Pt(0, 0), Pt(1, 0), Pt(0, 1)}}, got)

	mustPanicUsage(t, func() { g.AddFill(Pt(0, 0), Pt(1, 1)) })
}

func TestGlyphProblems(t *testing.T) {
	g := NewGlyph("problems")
	g.AddLine(Pt(0, 0), Pt(10, 0))
	g.Add(NewCircleInvolute(Pt(0, 0), Vec(1, 0), Pt(10, 5), Vec(1, 0), nil))
	g.Add(NewExpInvolute(Pt(0, 0), Vec(0, 1), Pt(-50, 100), Vec(-1, 0.2)))
	want := []Problem{{1, ProblemDegenerate}, {2, ProblemSuspect}}
	diff(t, want, g.Problems())
}

func TestGlyphTransform(t *testing.T) {
	g := NewGlyph("transform")
	g.Anchors["cy"] = 5
	a := g.AddLine(Pt(0, 0), Pt(10, 0))
	b := g.AddLine(Pt(10, 0), Pt(10, 10))
	g.Weld(a, Finish, b, Start)
	g.AddFill(Pt(0, 0), Pt(1, 0), Pt(0, 1))

	g.Transform(Scale(2, 2), false)
	diff(t, Line{Pt(0, 0), Pt(20, 0)}, g.Segment(a))
	diff(t, Line{Pt(20, 0), Pt(20, 20)}, g.Segment(b))
	p, d, _ := g.Join(a, Finish)
	diff(t, Pt(20, 0), p)
	diff(t, Vec(-10, -10), d)
	for f := range g.Fills() {
		diff(t, []Point{Pt(0, 0), Pt(2, 0), Pt(0, 2)}, f)
	}
	if g.Anchors["cy"] != 5 {
		t.Errorf("anchor moved to %g", g.Anchors["cy"])
	}
	// Still welded.
	if _, _, ok := g.Welded(b, Start); !ok {
		t.Error("weld lost")
	}
}

func TestGlyphSerialize(t *testing.T) {
	g := NewGlyph("test")
	c0 := g.AddLine(Pt(0, 0), Pt(10, 0))
	c1 := g.AddCubic(Pt(10, 0), Pt(20, 0), Pt(20, 10), Pt(20, 20))
	g.SetNib(c1, Round(8))
	c2 := g.AddLine(Pt(20, 20), Pt(20, 30))
	g.SetPriority(c2, 5)
	g.SetNib(c2, Chisel(1, 0.5, 2, 3))
	c3 := g.AddLine(Pt(30, 30), Pt(40, 30))
	g.SetNib(c3, Computed(PointToPoint{}))
	g.WeldOpt(c0, Finish, c1, Start, WeldOpts{Half: true})
	g.Weld(c1, Finish, c2, Start)
	g.AddFill(Pt(0, 0), Pt(1, 0), Pt(0, 1))

	var sb strings.Builder
	if err := g.Serialize(&sb); err != nil {
		t.Fatal(err)
	}
	want := `g := curve.NewGlyph("test")
c0 := g.Add(curve.Line{curve.Pt(0, 0), curve.Pt(10, 0)})
c1 := g.Add(curve.CubicBez{curve.Pt(10, 0), curve.Pt(20, 0), curve.Pt(20, 10), curve.Pt(20, 20)})
g.SetNib(c1, curve.Round(8))
c2 := g.Add(curve.Line{curve.Pt(20, 20), curve.Pt(20, 30)})
g.SetPriority(c2, 5)
g.SetNib(c2, curve.Chisel(1, 0.5, 2, 3))
c3 := g.Add(curve.Line{curve.Pt(30, 30), curve.Pt(40, 30)})
g.WeldOpt(c0, curve.Finish, c1, curve.Start, curve.WeldOpts{Half: true})
g.Weld(c1, curve.Finish, c2, curve.Start)
g.AddFill(curve.Pt(0, 0), curve.Pt(1, 0), curve.Pt(0, 1))
`
	diff(t, want, sb.String())
}

func TestGlyphSerializeSpecial(t *testing.T) {
	g := NewGlyph("special")
	a := g.AddLine(Pt(0, 0), Pt(10, 0))
	b := g.AddLine(Pt(15, 0), Pt(25, 0))
	g.WeldOpt(a, Finish, b, Start, WeldOpts{Special: &Special{Offset: Vec(5, 0)}})
	var sb strings.Builder
	if err := g.Serialize(&sb); err != nil {
		t.Fatal(err)
	}
	want := "g.WeldOpt(c0, curve.Finish, c1, curve.Start, curve.WeldOpts{Half: false, " +
		"Special: &curve.Special{Offset: curve.Vec(5, 0), Along: 0, Across: 0}})\n"
	if !strings.HasSuffix(sb.String(), want) {
		t.Errorf("got\n%s\nwant suffix\n%s", sb.String(), want)
	}
}

func TestGlyphSerializeDefaults(t *testing.T) {
	g := NewGlyph("defaults")
	g.DefaultNib = Chisel(2, 1.5, 4, 4)
	g.Anchors["top"] = 12.5
	g.Anchors["bottom"] = -3
	g.AddLine(Pt(0, 0), Pt(10, 0))

	var sb strings.Builder
	if err := g.Serialize(&sb); err != nil {
		t.Fatal(err)
	}
	want := `g := curve.NewGlyph("defaults")
g.DefaultNib = curve.Chisel(2, 1.5, 4, 4)
g.Anchors["bottom"] = -3
g.Anchors["top"] = 12.5
c0 := g.Add(curve.Line{curve.Pt(0, 0), curve.Pt(10, 0)})
`
	diff(t, want, sb.String())
}

type failingWriter struct{ n int }

var errFull = errors.New("full")

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errFull
	}
	w.n--
	return len(p), nil
}

func TestGlyphSerializeError(t *testing.T) {
	g := NewGlyph("err")
	g.AddLine(Pt(0, 0), Pt(1, 0))
	g.AddLine(Pt(1, 0), Pt(2, 0))
	w := &failingWriter{n: 1}
	if err := g.Serialize(w); !errors.Is(err, errFull) {
		t.Errorf("got %v, want %v", err, errFull)
	}
	if w.n != 0 {
		t.Errorf("writer still has %d writes left", w.n)
	}
}
