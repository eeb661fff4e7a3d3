package chord

import (
	"io"
	"iter"
	"slices"
)

// Colors used by [WriteTaskSVG].
const (
	BoundsColor = "#bbbbbb"
	CircleColor = "#1f77b4"
	SolvedColor = "#d62728"
	ChordColor  = "#2ca02c"
)

// RenderOptions controls [WriteTaskSVG].
type RenderOptions struct {
	// Size of the canvas in pixels. Defaults to 800×800.
	Width, Height float64
	// Accuracy of the circle approximation, in task units. Defaults to 1e-3.
	Tolerance float64
	// Stroke width in pixels. Defaults to 1.
	StrokeWidth float64
	Path        SVGOptions
}

func (opts RenderOptions) withDefaults() RenderOptions {
	if opts.Width <= 0 {
		opts.Width = 800
	}
	if opts.Height <= 0 {
		opts.Height = 800
	}
	if opts.Tolerance <= 0 {
		opts.Tolerance = 1e-3
	}
	if opts.StrokeWidth <= 0 {
		opts.StrokeWidth = 1
	}
	return opts
}

// WriteTaskSVG draws t as an SVG document: the task's bounds, its active
// circles, and, if the task is solved, the solved pair and their chord. The
// task's y-up coordinate system is mapped onto the y-down canvas.
func WriteTaskSVG(w io.Writer, t *Task, opts RenderOptions) error {
	opts = opts.withDefaults()
	aff := MapRect(t.Bounds(), Rect{0, 0, opts.Width, opts.Height})

	sw := &svgWriter{w: w, opts: opts.Path}
	path := func(seq iter.Seq[PathElement], color string) {
		sw.printf(`<path d="`)
		if sw.err == nil {
			sw.err = BezPath(slices.Collect(seq)).Transform(aff).WriteSVG(w, opts.Path)
		}
		sw.printf(`" fill="none" stroke="%s" stroke-width="%s" />`+"\n", color, sw.num(opts.StrokeWidth))
	}

	sw.printf(`<svg viewBox="0 0 %[1]s %[2]s" width="%[1]s" height="%[2]s" xmlns="http://www.w3.org/2000/svg">`+"\n",
		sw.num(opts.Width), sw.num(opts.Height))
	path(t.Bounds().PathElements(), BoundsColor)
	for _, c := range t.Circles() {
		path(c.PathElements(opts.Tolerance), CircleColor)
	}
	if sol, ok := t.Solution(); ok {
		for _, c := range sol.Circles {
			path(c.PathElements(opts.Tolerance), SolvedColor)
		}
		path(sol.Chord().PathElements(), ChordColor)
	}
	sw.printf("</svg>\n")
	return sw.err
}
