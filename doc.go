// Package chord solves the longest common chord problem: given a set of
// circles in the plane, find the pair of intersecting circles whose two
// intersection points are farthest apart.
//
// # Geometry
//
// [Point], [Vec2], [Circle], [Line] and [Rect] are small value types. Two
// circles intersect in the sense of this package if they cross in two
// distinct points (see [Intersects]); tangent and concentric circles don't.
// [IntersectionPoints] computes both crossing points of an intersecting pair,
// and [Chord] returns the segment between them.
//
// # Tasks
//
// A [Task] holds a working set of circles inside a bounded coordinate system.
// [Task.Solve] searches every pair for the longest chord and moves the winning
// pair out of the working set, [Task.Cancel] puts it back and [Task.Clear]
// discards everything. The search is a brute-force scan over all pairs, which
// is adequate for the hand-placed or randomly generated sets tasks are meant
// for.
//
// Tasks can be persisted as JSON or YAML with [ReadTask] and [WriteTask], and
// drawn as SVG with [WriteTaskSVG].
package chord
