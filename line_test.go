package chord

import (
	"math"
	"slices"
	"testing"
)

func TestLineLength(t *testing.T) {
	l := Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}
	want := math.Sqrt(2.0)
	if d := math.Abs(l.Length() - want); d > 1e-12 {
		t.Errorf("got length %v, want %v", l.Length(), want)
	}
	if rev := (Line{l.P1, l.P0}); rev.Length() != l.Length() {
		t.Errorf("reversed line has length %v, want %v", rev.Length(), l.Length())
	}
}

func TestLinePathElements(t *testing.T) {
	l := Line{Pt(1, 2), Pt(3, 4)}
	diff(t, []PathElement{MoveTo(Pt(1, 2)), LineTo(Pt(3, 4))}, slices.Collect(l.PathElements()))
}
