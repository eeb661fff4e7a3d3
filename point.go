package chord

import (
	"fmt"
	"math"
)

// Point is a location in a task's coordinate system, which has its y axis
// pointing up.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (pt Point) Splat() (x, y float64) { return pt.X, pt.Y }

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Translate moves pt by v.
func (pt Point) Translate(v Vec2) Point {
	return Pt(pt.X+v.X, pt.Y+v.Y)
}

func (pt Point) Transform(aff Affine) Point {
	x, y := pt.Splat()
	return Pt(aff.N0*x+aff.N2*y+aff.N4, aff.N1*x+aff.N3*y+aff.N5)
}

// Sub returns the vector pointing from o to pt.
func (pt Point) Sub(o Point) Vec2 {
	return Vec(pt.X-o.X, pt.Y-o.Y)
}

// Distance returns the length of the segment between pt and o.
func (pt Point) Distance(o Point) float64 {
	return pt.Sub(o).Hypot()
}

// IsInf reports whether either coordinate is an infinity.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether either coordinate is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}
