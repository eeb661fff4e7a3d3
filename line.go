package chord

import (
	"iter"
)

// Line is a segment between two points. The chord of two intersecting circles
// is a Line.
type Line struct {
	P0, P1 Point
}

// Length returns the distance between the segment's end points.
func (l Line) Length() float64 {
	return l.P0.Distance(l.P1)
}

// PathElements describes the segment as an open path.
func (l Line) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(l.P0)) && yield(LineTo(l.P1))
	}
}
