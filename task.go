package chord

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// Statement describes the problem a [Task] solves.
const Statement = `Given a set of circles in the plane, find the pair of intersecting circles
for which the segment connecting their two intersection points is longest.`

// State is the state of a [Task].
type State int

const (
	// Unsolved is the initial state. No circles are set aside.
	Unsolved State = iota
	// Solved means that the most recent call to [Task.Solve] found a pair of
	// intersecting circles and moved it out of the active set.
	Solved
)

func (s State) String() string {
	switch s {
	case Unsolved:
		return "unsolved"
	case Solved:
		return "solved"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Solution is the outcome of a successful [Task.Solve]: the pair of circles
// with the longest common chord and that chord's end points.
type Solution struct {
	Circles [2]Circle
	Points  [2]Point
}

// Chord returns the segment between the two intersection points.
func (s Solution) Chord() Line {
	return Line{s.Points[0], s.Points[1]}
}

// Length returns the length of the chord.
func (s Solution) Length() float64 {
	return s.Chord().Length()
}

// Pair identifies two circles of a slice by index, with I < J, together with
// their common chord.
type Pair struct {
	I, J  int
	Chord Line
}

// LongestChord searches all pairs of circles for the intersecting pair whose
// chord is longest. Pairs are visited in order of ascending I, then ascending
// J; among pairs with equal chord length the first one visited wins. It
// returns false if no two circles intersect.
func LongestChord(circles []Circle) (Pair, bool) {
	best := Pair{I: -1, J: -1}
	bestLen := 0.0
	for i := range circles {
		for j := i + 1; j < len(circles); j++ {
			if !Intersects(circles[i], circles[j]) {
				continue
			}
			p0, p1 := IntersectionPoints(circles[i], circles[j])
			if l := p0.Distance(p1); l > bestLen || best.I == -1 {
				bestLen = l
				best = Pair{I: i, J: j, Chord: Line{p0, p1}}
			}
		}
	}
	return best, best.I != -1
}

// Task is a set of circles in a bounded coordinate system together with the
// answer to the longest chord problem for that set.
//
// Solving moves the winning pair out of the active set; cancelling puts it
// back. A Task is not safe for concurrent use. Callers that solve on one
// goroutine and render on another must serialize access.
type Task struct {
	bounds   Rect
	circles  []Circle
	state    State
	solution Solution
}

// NewTask returns an unsolved task over a copy of circles. Bounds describe
// the task's coordinate system; they don't constrain the circles.
func NewTask(bounds Rect, circles []Circle) *Task {
	return &Task{
		bounds:  bounds,
		circles: slices.Clone(circles),
	}
}

// Bounds returns the extent of the task's coordinate system.
func (t *Task) Bounds() Rect { return t.bounds }

// Circles returns a copy of the active circles, in insertion order.
func (t *Task) Circles() []Circle { return slices.Clone(t.circles) }

// Len returns the number of active circles.
func (t *Task) Len() int { return len(t.circles) }

// State returns whether the task currently holds a solution.
func (t *Task) State() State { return t.state }

// IsSolved reports whether the task is in the [Solved] state, that is whether
// [Task.Solution] has a result.
func (t *Task) IsSolved() bool { return t.state == Solved }

// Solution returns the current solution. It returns false unless the task is
// in the [Solved] state.
func (t *Task) Solution() (Solution, bool) {
	if t.state != Solved {
		return Solution{}, false
	}
	return t.solution, true
}

// AddCircle appends a circle to the active set. Any outstanding solution is
// cancelled first, since it may no longer be the answer.
//
// The radius is not validated; it must be positive.
func (t *Task) AddCircle(center Point, radius float64) Circle {
	t.Cancel()
	c := Circle{Center: center, Radius: radius}
	t.circles = append(t.circles, c)
	return c
}

// CircleFromPoints returns the circle around center that passes through rim.
// It returns false if the two points coincide.
func CircleFromPoints(center, rim Point) (Circle, bool) {
	r := center.Distance(rim)
	if r == 0 {
		return Circle{}, false
	}
	return Circle{Center: center, Radius: r}, true
}

// AddCircleFromPoints adds the circle around center passing through rim, as
// built by [CircleFromPoints]. Nothing happens if the points coincide.
func (t *Task) AddCircleFromPoints(center, rim Point) (Circle, bool) {
	c, ok := CircleFromPoints(center, rim)
	if !ok {
		return Circle{}, false
	}
	return t.AddCircle(c.Center, c.Radius), true
}

// AddRandomCircles adds n circles with centers drawn uniformly from the
// task's bounds. Each radius is the absolute x coordinate of another random
// point in the bounds, redrawn while it is zero.
//
// AddRandomCircles panics if n is positive and the bounds' x range is {0},
// since no radius could ever be drawn.
func (t *Task) AddRandomCircles(rng *rand.Rand, n int) []Circle {
	if n > 0 && t.bounds.X0 == 0 && t.bounds.X1 == 0 {
		panic(fmt.Sprintf("chord: can't draw random radii from bounds %s", t.bounds))
	}
	added := make([]Circle, 0, n)
	for range n {
		r := t.bounds.RandomPoint(rng).X
		for r == 0 {
			r = t.bounds.RandomPoint(rng).X
		}
		if r < 0 {
			r = -r
		}
		added = append(added, t.AddCircle(t.bounds.RandomPoint(rng), r))
	}
	return added
}

// Solve finds the pair of intersecting circles with the longest chord, see
// [LongestChord]. On success it moves the pair out of the active set, records
// it together with the chord and reports true. Otherwise the task is left
// unsolved.
//
// Any previous solution is cancelled before searching.
func (t *Task) Solve() bool {
	t.Cancel()
	p, ok := LongestChord(t.circles)
	if !ok {
		return false
	}
	t.solution = Solution{
		Circles: [2]Circle{t.circles[p.I], t.circles[p.J]},
		Points:  [2]Point{p.Chord.P0, p.Chord.P1},
	}
	// J > I, so deleting J first keeps I valid.
	t.circles = slices.Delete(t.circles, p.J, p.J+1)
	t.circles = slices.Delete(t.circles, p.I, p.I+1)
	t.state = Solved
	return true
}

// Cancel reverts the most recent successful Solve, appending the two solved
// circles to the active set again. It does nothing if the task is unsolved.
func (t *Task) Cancel() {
	if t.state == Solved {
		t.circles = append(t.circles, t.solution.Circles[0], t.solution.Circles[1])
	}
	t.solution = Solution{}
	t.state = Unsolved
}

// Clear removes all circles, including a solved pair, and leaves the task
// unsolved.
func (t *Task) Clear() {
	t.circles = t.circles[:0]
	t.solution = Solution{}
	t.state = Unsolved
}
