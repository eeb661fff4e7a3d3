package chord

import (
	"fmt"
	"math"
)

// Vec2 is a displacement between two points, such as the vector between the
// centers of two circles.
type Vec2 struct {
	X, Y float64
}

// Vec is shorthand for Vec2{X: x, Y: y}.
func Vec(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Hypot returns the length of v.
func (v Vec2) Hypot() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize scales v to unit length. The zero vector has no direction and
// normalizes to ⟨NaN, NaN⟩.
func (v Vec2) Normalize() Vec2 {
	return v.Mul(1 / v.Hypot())
}

// Turn90 returns v rotated by 90°, ⟨−y, x⟩. In a y-up space this is an
// anti-clockwise rotation.
func (v Vec2) Turn90() Vec2 {
	return Vec(-v.Y, v.X)
}

func (v Vec2) Mul(f float64) Vec2 {
	return Vec(v.X*f, v.Y*f)
}

func (v Vec2) Negate() Vec2 {
	return Vec(-v.X, -v.Y)
}
