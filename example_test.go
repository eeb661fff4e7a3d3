package chord_test

import (
	"fmt"

	"honnef.co/go/chord"
)

func ExampleTask_Solve() {
	t := chord.NewTask(chord.Rect{X0: -10, Y0: -10, X1: 10, Y1: 10}, []chord.Circle{
		{Center: chord.Pt(0, 0), Radius: 5},
		{Center: chord.Pt(0, 4), Radius: 2},
		{Center: chord.Pt(0, -4), Radius: 3},
		{Center: chord.Pt(0, 0), Radius: 1},
	})
	fmt.Println(t.Solve())

	sol, _ := t.Solution()
	fmt.Println(sol.Circles[0], sol.Circles[1])
	fmt.Println(sol.Points[0], sol.Points[1], sol.Length())
	fmt.Println(t.Circles())

	t.Cancel()
	fmt.Println(t.State(), t.Len())

	// Output:
	// true
	// circle((0, 0), 5) circle((0, -4), 3)
	// (3, -4) (-3, -4) 6
	// [circle((0, 4), 2) circle((0, 0), 1)]
	// unsolved 4
}

func ExampleIntersects() {
	a := chord.Circle{Center: chord.Pt(0, 0), Radius: 1}
	b := chord.Circle{Center: chord.Pt(2, 0), Radius: 1}
	c := chord.Circle{Center: chord.Pt(1, 0), Radius: 1}
	// a and b touch in a single point.
	fmt.Println(chord.Intersects(a, b), chord.Intersects(a, c))

	// Output:
	// false true
}
