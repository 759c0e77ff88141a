// Command glyphrender renders glyphs to PNG files.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/gonville/curve"
	"github.com/gonville/curve/glyphs"
	"github.com/gonville/curve/raster"
)

func main() {
	var (
		out     = flag.String("out", ".", "output directory")
		scale   = flag.Float64("scale", 1, "pixels per glyph unit")
		samples = flag.Int("samples", curve.DefaultSamples, "points evaluated per curve")
		workers = flag.Int("workers", 4, "glyphs rendered at once")
		verbose = flag.Bool("v", false, "log problems with curves and welds")
		list    = flag.Bool("list", false, "list glyph names and exit")
		dump    = flag.Bool("dump", false, "print the curves of each glyph instead of rendering")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [glyph...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	curve.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	reg := glyphs.Default()
	if *list {
		for _, name := range reg.Names() {
			fmt.Println(name)
		}
		return
	}

	names := flag.Args()
	if len(names) == 0 {
		names = reg.Names()
	}
	for _, name := range names {
		if !reg.Has(name) {
			log.Fatalf("unknown glyph %q", name)
		}
	}

	if *dump {
		// Dumps are written in order, one glyph at a time.
		w := bufio.NewWriter(os.Stdout)
		for _, name := range names {
			g, err := reg.Build(name)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Fprintf(w, "// %s\n", name)
			if err := g.Serialize(w); err != nil {
				log.Fatal(err)
			}
		}
		if err := w.Flush(); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}
	ropts := curve.DefaultRenderOptions.WithSamples(*samples)
	var mu sync.Mutex
	written := 0
	err := glyphs.BuildAll(context.Background(), reg, names, *workers, func(name string, g *curve.Glyph) error {
		opts := raster.DefaultOptions.WithScale(*scale)
		if h, ok := g.Anchors["height"]; ok {
			opts = opts.WithSize(opts.Width, h)
		}
		img := raster.Draw(g, ropts, opts)
		path := filepath.Join(*out, name+".png")
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := png.Encode(f, img); err != nil {
			f.Close()
			return fmt.Errorf("encoding %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		mu.Lock()
		written++
		mu.Unlock()
		return nil
	})
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	log.Printf("Rendered %d glyphs to %s\n", written, *out)
}
