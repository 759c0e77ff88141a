package glyphs

import (
	"context"
	"errors"
	"slices"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gonville/curve"
)

func TestDefaultNames(t *testing.T) {
	r := Default()
	names := r.Names()
	if !slices.IsSorted(names) {
		t.Errorf("names aren't sorted: %v", names)
	}
	for _, name := range []string{"clefG", "flat", "natural", "sharp", "restquaver", "rest8"} {
		if !r.Has(name) {
			t.Errorf("%s isn't registered", name)
		}
	}
	if r.Has("flat ") {
		t.Error("Has matched a name that isn't registered")
	}
}

func TestBuildDefault(t *testing.T) {
	r := Default()
	for _, name := range r.Names() {
		t.Run(name, func(t *testing.T) {
			g, err := r.Build(name)
			if err != nil {
				t.Fatal(err)
			}
			if g.Name != name {
				t.Errorf("got glyph named %q", g.Name)
			}
			if g.Len() == 0 && !hasFill(g) {
				t.Error("glyph is empty")
			}
		})
	}
}

func hasFill(g *curve.Glyph) bool {
	for range g.Fills() {
		return true
	}
	return false
}

func TestBuildClean(t *testing.T) {
	r := Default()
	for _, name := range []string{"natural", "sharp", "breve", "restminim"} {
		g, err := r.Build(name)
		if err != nil {
			t.Fatal(err)
		}
		if p := g.Problems(); len(p) != 0 {
			t.Errorf("%s: got problems %v", name, p)
		}
		var rec curve.Recording
		curve.Render(g, &rec, curve.DefaultRenderOptions.WithSamples(10))
		if len(rec.Ops) == 0 {
			t.Errorf("%s: nothing drawn", name)
		}
		for _, op := range rec.Ops {
			if op.Ink == curve.InkAlert {
				t.Errorf("%s: drawn in alert ink: %+v", name, op)
				break
			}
		}
	}
}

func TestBuildAnchors(t *testing.T) {
	r := Default()
	g, err := r.Build("restsemi")
	if err != nil {
		t.Fatal(err)
	}
	if h := g.Anchors["height"]; h != 1260 {
		t.Errorf("got height %g, want 1260", h)
	}
	if _, ok := g.Anchors["cy"]; !ok {
		t.Error("no cy anchor")
	}
	// Two hooks, each finished off with a blob of four curves.
	if n := g.Len(); n != 1+2*5 {
		t.Errorf("got %d curves, want 11", n)
	}
}

func TestBuildUsageError(t *testing.T) {
	r := NewRegistry()
	r.Register("broken", func(g *curve.Glyph) {
		a := g.AddLine(curve.Pt(0, 0), curve.Pt(1, 0))
		b := g.AddLine(curve.Pt(1, 0), curve.Pt(2, 0))
		c := g.AddLine(curve.Pt(1, 0), curve.Pt(1, 1))
		g.Weld(a, curve.Finish, b, curve.Start)
		g.Weld(a, curve.Finish, c, curve.Start)
	})
	g, err := r.Build("broken")
	if g != nil {
		t.Error("got a glyph despite the error")
	}
	var uerr *curve.UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("got %v, want a *curve.UsageError", err)
	}
	if uerr.Glyph != "broken" || uerr.Handle != 0 || uerr.Op != "Weld" {
		t.Errorf("got %+v", uerr)
	}
}

func TestBuildBadNib(t *testing.T) {
	r := NewRegistry()
	r.Register("unfollowed", func(g *curve.Glyph) {
		h := g.AddLine(curve.Pt(0, 0), curve.Pt(10, 0))
		g.SetNib(h, curve.Computed(curve.FollowCurves{Radius: 1}))
		g.NibAt(h, 0.5)
	})
	_, err := r.Build("unfollowed")
	var uerr *curve.UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("got %v, want a *curve.UsageError", err)
	}
	if uerr.Glyph != "unfollowed" || uerr.Op != "FollowCurves" {
		t.Errorf("got %+v", uerr)
	}
}

func TestBuildUnknown(t *testing.T) {
	if _, err := NewRegistry().Build("nope"); err == nil {
		t.Error("expected an error")
	}
}

func TestBuildOtherPanic(t *testing.T) {
	r := NewRegistry()
	r.Register("boom", func(*curve.Glyph) { panic("boom") })
	defer func() {
		if rec := recover(); rec != "boom" {
			t.Errorf("got panic %v, want boom", rec)
		}
	}()
	r.Build("boom")
	t.Error("Build returned")
}

func TestRegisterDuplicate(t *testing.T) {
	r := NewRegistry()
	r.Register("x", func(*curve.Glyph) {})
	defer func() {
		if recover() == nil {
			t.Error("expected a panic")
		}
	}()
	r.Register("x", func(*curve.Glyph) {})
}

func TestBuildAll(t *testing.T) {
	r := Default()
	names := r.Names()
	var mu sync.Mutex
	seen := map[string]bool{}
	err := BuildAll(context.Background(), r, names, 4, func(name string, g *curve.Glyph) error {
		mu.Lock()
		defer mu.Unlock()
		if g.Name != name {
			t.Errorf("got glyph %q for %q", g.Name, name)
		}
		seen[name] = true
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(seen) != len(names) {
		t.Errorf("built %d glyphs, want %d", len(seen), len(names))
	}
}

func TestBuildAllLimit(t *testing.T) {
	r := NewRegistry()
	var running, peak atomic.Int32
	var names []string
	for _, name := range []string{"a", "b", "c", "d", "e", "f"} {
		names = append(names, name)
		r.Register(name, func(*curve.Glyph) {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			running.Add(-1)
		})
	}
	err := BuildAll(context.Background(), r, names, 2, func(string, *curve.Glyph) error { return nil })
	if err != nil {
		t.Fatal(err)
	}
	if p := peak.Load(); p > 2 {
		t.Errorf("%d builds ran at once, want at most 2", p)
	}
}

func TestBuildAllError(t *testing.T) {
	r := Default()
	errStop := errors.New("stop")
	var calls atomic.Int32
	err := BuildAll(context.Background(), r, r.Names(), 1, func(string, *curve.Glyph) error {
		calls.Add(1)
		return errStop
	})
	if !errors.Is(err, errStop) {
		t.Errorf("got %v, want %v", err, errStop)
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("fn called %d times after failing, want 1", n)
	}

	err = BuildAll(context.Background(), r, []string{"flat", "missing"}, 0, func(string, *curve.Glyph) error { return nil })
	if err == nil {
		t.Error("expected an error for an unknown glyph")
	}
}

func TestBuildAllCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var calls atomic.Int32
	err := BuildAll(ctx, Default(), []string{"flat", "sharp"}, 1, func(string, *curve.Glyph) error {
		calls.Add(1)
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want %v", err, context.Canceled)
	}
	if calls.Load() != 0 {
		t.Error("fn called despite cancellation")
	}
}
