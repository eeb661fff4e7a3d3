package chord

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

type PathElementKind int

const (
	// Start a new subpath at P0.
	MoveToKind PathElementKind = iota + 1
	// Draw a straight line to P0.
	LineToKind
	// Draw a cubic Bézier with control points P0 and P1, ending at P2.
	CubicToKind
	// Draw a straight line back to the start of the subpath.
	ClosePathKind
)

func (k PathElementKind) String() string {
	switch k {
	case MoveToKind:
		return "MoveTo"
	case LineToKind:
		return "LineTo"
	case CubicToKind:
		return "CubicTo"
	case ClosePathKind:
		return "ClosePath"
	default:
		return fmt.Sprintf("PathElementKind(%d)", int(k))
	}
}

// PathElement is one drawing command of a [BezPath]. Which of the points are
// used depends on the kind.
type PathElement struct {
	Kind       PathElementKind
	P0, P1, P2 Point
}

func (el PathElement) String() string {
	return fmt.Sprintf("%s(%s, %s, %s)", el.Kind, el.P0, el.P1, el.P2)
}

// Transform applies aff to the points the element uses.
func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind, LineToKind:
		el.P0 = el.P0.Transform(aff)
	case CubicToKind:
		el.P0, el.P1, el.P2 = el.P0.Transform(aff), el.P1.Transform(aff), el.P2.Transform(aff)
	}
	return el
}

func MoveTo(pt Point) PathElement { return PathElement{Kind: MoveToKind, P0: pt} }
func LineTo(pt Point) PathElement { return PathElement{Kind: LineToKind, P0: pt} }
func ClosePath() PathElement      { return PathElement{Kind: ClosePathKind} }

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

// BezPath is a sequence of path elements. Every subpath starts with a MoveTo.
type BezPath []PathElement

// Transform returns a copy of p with aff applied to every element.
func (p BezPath) Transform(aff Affine) BezPath {
	out := make(BezPath, len(p))
	for i, el := range p {
		out[i] = el.Transform(aff)
	}
	return out
}

// WriteSVG writes p to w as the value of an SVG path's d attribute, using
// absolute commands only.
func (p BezPath) WriteSVG(w io.Writer, opts SVGOptions) error {
	sw := &svgWriter{w: w, opts: opts}
	sw.path(p)
	return sw.err
}

// SVGOptions controls how numbers are formatted by [BezPath.WriteSVG] and
// [WriteTaskSVG].
type SVGOptions struct {
	// Number of decimal places to keep. Trailing zeros are dropped. Zero
	// means as many as are needed to represent each number exactly.
	MaxPrecision int
}

func (opts SVGOptions) format(n float64) string {
	if opts.MaxPrecision <= 0 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	return s
}

// svgWriter writes SVG markup and keeps the first write error. Once an error
// occurred, all further writes are dropped.
type svgWriter struct {
	w    io.Writer
	opts SVGOptions
	err  error
}

func (sw *svgWriter) printf(format string, args ...any) {
	if sw.err != nil {
		return
	}
	_, sw.err = fmt.Fprintf(sw.w, format, args...)
}

func (sw *svgWriter) num(f float64) string { return sw.opts.format(f) }

func (sw *svgWriter) pt(p Point) string { return sw.num(p.X) + "," + sw.num(p.Y) }

func (sw *svgWriter) path(p BezPath) {
	for i, el := range p {
		if i > 0 {
			sw.printf(" ")
		}
		switch el.Kind {
		case MoveToKind:
			sw.printf("M%s", sw.pt(el.P0))
		case LineToKind:
			sw.printf("L%s", sw.pt(el.P0))
		case CubicToKind:
			sw.printf("C%s %s %s", sw.pt(el.P0), sw.pt(el.P1), sw.pt(el.P2))
		case ClosePathKind:
			sw.printf("Z")
		default:
			panic(fmt.Sprintf("unhandled case %v", el.Kind))
		}
	}
}
