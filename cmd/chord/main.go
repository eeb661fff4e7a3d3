// Command chord finds, in a set of circles, the intersecting pair with the
// longest common chord.
//
// Usage:
//
//	chord -in task.json -svg out.svg
//	chord -random 20 -seed 1 -bounds -10,-10,10,10 -png out.png -out task.yaml
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/plot/vg"

	"honnef.co/go/chord"
	"honnef.co/go/chord/internal/plotimg"
)

type config struct {
	in      string
	out     string
	format  string
	bounds  chord.Rect
	circles []chord.Circle
	rims    [][2]chord.Point
	random  int
	seed    uint64
	svg     string
	img     string
	verbose bool
}

func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated numbers, got %q", n, s)
	}
	out := make([]float64, n)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

func parseFlags(fs *flag.FlagSet, args []string) (*config, error) {
	cfg := &config{bounds: chord.Rect{X0: -10, Y0: -10, X1: 10, Y1: 10}}
	fs.StringVar(&cfg.in, "in", "", "read the task from this JSON or YAML file")
	fs.StringVar(&cfg.out, "out", "", "save the task to this JSON or YAML file")
	fs.StringVar(&cfg.format, "format", "", "task file format (json or yaml); derived from the file extension by default")
	fs.Func("bounds", "task bounds as x0,y0,x1,y1, used without -in (default -10,-10,10,10)", func(s string) error {
		f, err := parseFloats(s, 4)
		if err != nil {
			return err
		}
		cfg.bounds = chord.NewRectFromPoints(chord.Pt(f[0], f[1]), chord.Pt(f[2], f[3]))
		return nil
	})
	fs.Func("circle", "add a circle given as x,y,r; may be repeated", func(s string) error {
		f, err := parseFloats(s, 3)
		if err != nil {
			return err
		}
		if !(f[2] > 0) {
			return fmt.Errorf("radius must be positive, got %g", f[2])
		}
		cfg.circles = append(cfg.circles, chord.Circle{Center: chord.Pt(f[0], f[1]), Radius: f[2]})
		return nil
	})
	fs.Func("rim", "add the circle around x,y passing through px,py, given as x,y,px,py; may be repeated", func(s string) error {
		f, err := parseFloats(s, 4)
		if err != nil {
			return err
		}
		cfg.rims = append(cfg.rims, [2]chord.Point{chord.Pt(f[0], f[1]), chord.Pt(f[2], f[3])})
		return nil
	})
	fs.IntVar(&cfg.random, "random", 0, "add this many random circles")
	fs.Uint64Var(&cfg.seed, "seed", 0, "seed for -random; 0 picks a random seed")
	fs.StringVar(&cfg.svg, "svg", "", "draw the solved task as SVG to this file")
	fs.StringVar(&cfg.img, "png", "", "plot the solved task to this image file (format by extension)")
	fs.BoolVar(&cfg.verbose, "v", false, "log every circle")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "%s\n\nUsage of chord:\n", chord.Statement)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.random < 0 {
		return nil, fmt.Errorf("-random must not be negative, got %d", cfg.random)
	}
	if b := cfg.bounds; cfg.in == "" && (b.Width() <= 0 || b.Height() <= 0) {
		return nil, fmt.Errorf("-bounds %s has no positive extent", b)
	}
	return cfg, nil
}

func taskFormat(override, path string) (chord.Format, error) {
	if override != "" {
		return chord.ParseFormat(override)
	}
	return chord.FormatFromPath(path)
}

func loadTask(cfg *config) (*chord.Task, error) {
	if cfg.in == "" {
		return chord.NewTask(cfg.bounds, nil), nil
	}
	f, err := taskFormat(cfg.format, cfg.in)
	if err != nil {
		return nil, err
	}
	r, err := os.Open(cfg.in)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return chord.ReadTask(r, f)
}

func saveTask(cfg *config, t *chord.Task) error {
	f, err := taskFormat(cfg.format, cfg.out)
	if err != nil {
		return err
	}
	w, err := os.Create(cfg.out)
	if err != nil {
		return err
	}
	if err := chord.WriteTask(w, t, f); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func saveSVG(path string, t *chord.Task) error {
	w, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := chord.WriteTaskSVG(w, t, chord.RenderOptions{}); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func run(cfg *config, stdout io.Writer, log *slog.Logger) error {
	t, err := loadTask(cfg)
	if err != nil {
		return err
	}
	log.Info("task loaded", "bounds", t.Bounds().String(), "circles", t.Len())

	for _, c := range cfg.circles {
		t.AddCircle(c.Center, c.Radius)
		log.Debug("circle added", "circle", c.String())
	}
	for _, rim := range cfg.rims {
		c, ok := t.AddCircleFromPoints(rim[0], rim[1])
		if !ok {
			log.Warn("circle has no radius, skipped", "center", rim[0].String())
			continue
		}
		log.Debug("circle added", "circle", c.String())
	}
	if cfg.random > 0 {
		seed := cfg.seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		rng := rand.New(rand.NewPCG(seed, seed))
		for _, c := range t.AddRandomCircles(rng, cfg.random) {
			log.Debug("circle added", "circle", c.String())
		}
		log.Info("random circles added", "count", cfg.random, "seed", seed)
	}

	if t.Solve() {
		sol, _ := t.Solution()
		log.Info("solved", "length", sol.Length())
		fmt.Fprintf(stdout, "circles: %s %s\n", sol.Circles[0], sol.Circles[1])
		fmt.Fprintf(stdout, "chord: %s %s\n", sol.Points[0], sol.Points[1])
		fmt.Fprintf(stdout, "length: %g\n", sol.Length())
	} else {
		log.Info("no intersecting pair", "circles", t.Len())
		fmt.Fprintln(stdout, "no intersecting pair")
	}

	if cfg.svg != "" {
		if err := saveSVG(cfg.svg, t); err != nil {
			return fmt.Errorf("couldn't write SVG: %w", err)
		}
		log.Info("wrote SVG", "path", cfg.svg)
	}
	if cfg.img != "" {
		if err := plotimg.Save(cfg.img, t, 6*vg.Inch, 6*vg.Inch); err != nil {
			return err
		}
		log.Info("wrote plot", "path", cfg.img)
	}
	if cfg.out != "" {
		if err := saveTask(cfg, t); err != nil {
			return fmt.Errorf("couldn't save task: %w", err)
		}
		log.Info("saved task", "path", cfg.out)
	}
	return nil
}

func main() {
	fs := flag.NewFlagSet("chord", flag.ContinueOnError)
	cfg, err := parseFlags(fs, os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(cfg, os.Stdout, log); err != nil {
		log.Error("chord failed", "err", err)
		os.Exit(1)
	}
}
