// Package glyphs holds the glyph definitions and builds them.
//
// Glyphs are registered explicitly with a [Registry] under a name. Building
// a glyph runs its [Builder] on a fresh [curve.Glyph]; mistakes in the
// glyph data, such as welding an end twice, come back as errors naming the
// glyph.
package glyphs

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/gonville/curve"

	"golang.org/x/sync/errgroup"
)

// Builder populates a glyph with curves.
type Builder func(g *curve.Glyph)

// Registry maps glyph names to builders. A Registry is safe for concurrent
// use once all glyphs have been registered.
type Registry struct {
	builders map[string]Builder
}

func NewRegistry() *Registry {
	return &Registry{builders: map[string]Builder{}}
}

// Register adds a glyph. It panics if name is already taken.
func (r *Registry) Register(name string, b Builder) {
	if _, ok := r.builders[name]; ok {
		panic(fmt.Sprintf("glyphs: duplicate glyph %q", name))
	}
	r.builders[name] = b
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.builders))
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[name]
	return ok
}

// Build runs the builder for name on a new glyph.
func (r *Registry) Build(name string) (g *curve.Glyph, err error) {
	b, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("glyphs: unknown glyph %q", name)
	}
	g = curve.NewGlyph(name)
	defer func() {
		if rec := recover(); rec != nil {
			uerr, ok := curve.AsUsageError(rec)
			if !ok {
				panic(rec)
			}
			if uerr.Glyph == "" {
				uerr.Glyph = name
			}
			curve.Logger().Warn("glyph build failed", "glyph", name, "err", uerr)
			g, err = nil, fmt.Errorf("glyphs: building %s: %w", name, uerr)
		}
	}()
	b(g)
	for _, p := range g.Problems() {
		curve.Logger().Warn("problem curve", "glyph", name, "curve", int(p.Handle), "problem", p.Kind)
	}
	return g, nil
}

// BuildAll builds the named glyphs concurrently, running at most workers
// builds at a time, and calls fn with each glyph as it's finished. fn may be
// called concurrently. Every glyph is built into its own [curve.Glyph], so
// builds share no mutable state.
//
// The first error, from a build or from fn, cancels the remaining work and is
// returned.
func BuildAll(ctx context.Context, r *Registry, names []string, workers int, fn func(name string, g *curve.Glyph) error) error {
	eg, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}
	for _, name := range names {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			g, err := r.Build(name)
			if err != nil {
				return err
			}
			return fn(name, g)
		})
	}
	return eg.Wait()
}
