package chord

import (
	"fmt"
	"iter"
	"math/rand/v2"
)

// Rect is an axis-aligned rectangle spanning [X0, X1]×[Y0, Y1]. A [Task]
// uses one to describe the extent of its coordinate system.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns the rectangle with opposite corners p0 and p1.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// Abs reorders r's coordinates so that X0 ≤ X1 and Y0 ≤ Y1.
func (r Rect) Abs() Rect {
	r.X0, r.X1 = min(r.X0, r.X1), max(r.X0, r.X1)
	r.Y0, r.Y1 = min(r.Y0, r.Y1), max(r.Y0, r.Y1)
	return r
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g, %g]×[%g, %g]", r.X0, r.X1, r.Y0, r.Y1)
}

// Width returns X1 − X0, which is negative for a rectangle that isn't
// normalized.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns Y1 − Y0, which is negative for a rectangle that isn't
// normalized.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Union returns the smallest rectangle covering both r and o. Both must be
// normalized, see [Rect.Abs].
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// Inflate grows a normalized rectangle by dx on the left and right and by dy
// at the top and bottom.
func (r Rect) Inflate(dx, dy float64) Rect {
	return Rect{r.X0 - dx, r.Y0 - dy, r.X1 + dx, r.Y1 + dy}
}

// RandomPoint returns a point drawn uniformly from the rectangle.
func (r Rect) RandomPoint(rng *rand.Rand) Point {
	return Point{
		X: r.X0 + rng.Float64()*r.Width(),
		Y: r.Y0 + rng.Float64()*r.Height(),
	}
}

func (r Rect) IsInf() bool {
	return Pt(r.X0, r.Y0).IsInf() || Pt(r.X1, r.Y1).IsInf()
}

func (r Rect) IsNaN() bool {
	return Pt(r.X0, r.Y0).IsNaN() || Pt(r.X1, r.Y1).IsNaN()
}

// PathElements describes the rectangle's outline as a closed path, starting
// at (X0, Y0).
func (r Rect) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(Pt(r.X0, r.Y0))) &&
			yield(LineTo(Pt(r.X1, r.Y0))) &&
			yield(LineTo(Pt(r.X1, r.Y1))) &&
			yield(LineTo(Pt(r.X0, r.Y1))) &&
			yield(ClosePath())
	}
}
