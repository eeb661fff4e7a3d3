package chord

import (
	"fmt"
	"iter"
	"math"
)

// Circle is a circle with a positive radius. Circles are compared by value;
// two circles with the same center and radius are equal.
type Circle struct {
	Center Point
	Radius float64
}

func (c Circle) String() string {
	return fmt.Sprintf("circle(%s, %g)", c.Center, c.Radius)
}

// Intersects reports whether c and o cross in two distinct points. Tangent
// circles, nested circles and concentric circles do not intersect.
func (c Circle) Intersects(o Circle) bool {
	return Intersects(c, o)
}

// IntersectionPoints is shorthand for [IntersectionPoints](c, o).
func (c Circle) IntersectionPoints(o Circle) (Point, Point) {
	return IntersectionPoints(c, o)
}

// Intersects reports whether c1 and c2 cross in two distinct points, that is
// whether the distance d between their centers satisfies
//
//	|r1 − r2| < d < r1 + r2
//
// Both bounds are strict, so tangent circles don't intersect. Neither do
// concentric ones, including two copies of the same circle.
func Intersects(c1, c2 Circle) bool {
	d := c1.Center.Distance(c2.Center)
	return d < c1.Radius+c2.Radius && d > math.Abs(c1.Radius-c2.Radius)
}

// IntersectionPoints returns the two points in which c1 and c2 cross.
//
// The result is only meaningful if [Intersects] reports true for the two
// circles. The first point lies to the left of the line from c1's center to
// c2's center (in a y-up space), the second one to the right.
func IntersectionPoints(c1, c2 Circle) (Point, Point) {
	d := c2.Center.Sub(c1.Center)
	dLen := d.Hypot()
	u := d.Normalize()

	r1, r2 := c1.Radius, c2.Radius
	// Signed distance from c1's center to the foot of the chord.
	l := (r1*r1 - r2*r2 + dLen*dLen) / (2 * dLen)
	h2 := r1*r1 - l*l
	if h2 < 0 {
		h2 = 0
	}
	h := math.Sqrt(h2)

	foot := c1.Center.Translate(u.Mul(l))
	off := u.Turn90().Mul(h)
	return foot.Translate(off), foot.Translate(off.Negate())
}

// Chord returns the line connecting the two intersection points of c1 and c2.
// It returns false if the circles don't intersect.
func Chord(c1, c2 Circle) (Line, bool) {
	if !Intersects(c1, c2) {
		return Line{}, false
	}
	p0, p1 := IntersectionPoints(c1, c2)
	return Line{p0, p1}, true
}

// PathElements approximates the circle with cubic Béziers, starting and
// ending at the rightmost point and running anti-clockwise in a y-up space.
func (c Circle) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		scaledError := math.Abs(c.Radius) / tolerance
		var n int
		var armLength float64
		if scaledError < 1.0/1.9608e-4 {
			// Solution from http://spencermortensen.com/articles/bezier-circle/
			n = 4
			armLength = 0.551915024494
		} else {
			// This is empirically determined to fall within error tolerance.
			n = int(math.Ceil(math.Pow(1.1163*scaledError, 1.0/6.0)))
			armLength = (4.0 / 3.0) * math.Tan(math.Pi/2/(float64(n)))
		}

		x, y := c.Center.Splat()
		r := c.Radius
		if !yield(MoveTo(Pt(x+r, y))) {
			return
		}
		deltaTh := 2.0 * math.Pi / float64(n)
		for ix := 1; ix <= n; ix++ {
			a := armLength
			th1 := deltaTh * float64(ix)
			th0 := th1 - deltaTh
			s0, c0 := math.Sincos(th0)
			var s1, c1 float64
			if ix == n {
				s1 = 0.0
				c1 = 1.0
			} else {
				s1, c1 = math.Sincos(th1)
			}
			if !yield(CubicTo(
				Pt(x+r*(c0-a*s0), y+r*(s0+a*c0)),
				Pt(x+r*(c1+a*s1), y+r*(s1-a*c1)),
				Pt(x+r*c1, y+r*s1),
			)) {
				return
			}
		}
		yield(ClosePath())
	}
}

// Flatten approximates the circle with a closed polyline whose segments
// deviate from the circle by at most tolerance. The last point repeats the
// first one.
func (c Circle) Flatten(tolerance float64) []Point {
	r := math.Abs(c.Radius)
	// Each segment spans an angle θ with sagitta r·(1 − cos(θ/2)) ≤ tolerance.
	cos := max(-1, min(1, 1-tolerance/r))
	th := 2 * math.Acos(cos)
	n := 3
	if th > 0 {
		n = max(n, int(math.Ceil(2*math.Pi/th)))
	}

	pts := make([]Point, n+1)
	for i := range n {
		s, co := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		pts[i] = Pt(c.Center.X+r*co, c.Center.Y+r*s)
	}
	pts[n] = pts[0]
	return pts
}

// IsInf reports whether the center or the radius is infinite.
func (c Circle) IsInf() bool {
	return c.Center.IsInf() || math.IsInf(c.Radius, 0)
}

// IsNaN reports whether the center or the radius is NaN.
func (c Circle) IsNaN() bool {
	return c.Center.IsNaN() || math.IsNaN(c.Radius)
}

// BoundingBox returns the smallest rectangle containing the circle.
func (c Circle) BoundingBox() Rect {
	r := math.Abs(c.Radius)
	return Rect{c.Center.X - r, c.Center.Y - r, c.Center.X + r, c.Center.Y + r}
}
