// Package plotimg renders tasks as raster or vector images using gonum/plot.
package plotimg

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"honnef.co/go/chord"
)

var (
	circleColor = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	solvedColor = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
	chordColor  = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
)

// Tolerance is the maximum deviation, in task units, of the drawn polylines
// from the true circles.
const Tolerance = 1e-3

// Margin is the space left around the drawing, as a fraction of its larger
// side.
const Margin = 0.05

func xys(pts []chord.Point) plotter.XYs {
	out := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		out[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	return out
}

func addLine(p *plot.Plot, pts []chord.Point, c color.Color, width vg.Length) (*plotter.Line, error) {
	l, err := plotter.NewLine(xys(pts))
	if err != nil {
		return nil, err
	}
	l.LineStyle.Color = c
	l.LineStyle.Width = width
	p.Add(l)
	return l, nil
}

// New builds a plot of t: active circles, the solved pair and the chord. The
// axes span the task's bounds, extended to include every circle, plus a
// [Margin] on each side.
func New(t *chord.Task) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Longest common chord"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	extent := t.Bounds().Abs()
	var legendCircle, legendSolved bool
	for _, c := range t.Circles() {
		l, err := addLine(p, c.Flatten(Tolerance), circleColor, vg.Points(1))
		if err != nil {
			return nil, fmt.Errorf("couldn't plot %s: %w", c, err)
		}
		if !legendCircle {
			p.Legend.Add("circles", l)
			legendCircle = true
		}
		extent = extent.Union(c.BoundingBox())
	}
	if sol, ok := t.Solution(); ok {
		for _, c := range sol.Circles {
			l, err := addLine(p, c.Flatten(Tolerance), solvedColor, vg.Points(1.5))
			if err != nil {
				return nil, fmt.Errorf("couldn't plot %s: %w", c, err)
			}
			if !legendSolved {
				p.Legend.Add("solved pair", l)
				legendSolved = true
			}
			extent = extent.Union(c.BoundingBox())
		}
		ch := sol.Chord()
		l, err := addLine(p, []chord.Point{ch.P0, ch.P1}, chordColor, vg.Points(2))
		if err != nil {
			return nil, fmt.Errorf("couldn't plot chord: %w", err)
		}
		p.Legend.Add(fmt.Sprintf("chord (%.4g)", ch.Length()), l)
	}

	m := Margin * max(extent.Width(), extent.Height())
	extent = extent.Inflate(m, m)
	p.X.Min, p.X.Max = extent.X0, extent.X1
	p.Y.Min, p.Y.Max = extent.Y0, extent.Y1
	return p, nil
}

// Save renders t to the named file. The image format is chosen by the file
// extension, for example png or svg.
func Save(path string, t *chord.Task, width, height vg.Length) error {
	p, err := New(t)
	if err != nil {
		return err
	}
	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("couldn't save plot to %s: %w", path, err)
	}
	return nil
}
