package chord

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestIntersects(t *testing.T) {
	tests := []struct {
		name   string
		c1, c2 Circle
		want   bool
	}{
		{"crossing", Circle{Pt(0, 0), 5}, Circle{Pt(-2, -2), 5}, true},
		{"horizontal", Circle{Pt(0, 0), 1}, Circle{Pt(1, 0), 1}, true},
		{"vertical", Circle{Pt(0, 0), 5}, Circle{Pt(0, -4), 3}, true},
		{"concentric", Circle{Pt(0, 0), 5}, Circle{Pt(0, 0), 3}, false},
		{"identical", Circle{Pt(1, 2), 3}, Circle{Pt(1, 2), 3}, false},
		{"external tangent", Circle{Pt(0, 0), 1}, Circle{Pt(2, 0), 1}, false},
		{"internal tangent", Circle{Pt(0, 0), 3}, Circle{Pt(1, 0), 2}, false},
		{"disjoint", Circle{Pt(0, 0), 1}, Circle{Pt(5, 0), 1}, false},
		{"nested", Circle{Pt(0, 0), 5}, Circle{Pt(1, 0), 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intersects(tt.c1, tt.c2); got != tt.want {
				t.Errorf("Intersects(%s, %s) = %t, want %t", tt.c1, tt.c2, got, tt.want)
			}
			if got := tt.c2.Intersects(tt.c1); got != tt.want {
				t.Errorf("Intersects(%s, %s) = %t, want %t", tt.c2, tt.c1, got, tt.want)
			}
		})
	}
}

func TestIntersectionPoints(t *testing.T) {
	h := math.Sqrt(0.75)
	tests := []struct {
		name   string
		c1, c2 Circle
		want   [2]Point
	}{
		{"horizontal", Circle{Pt(0, 0), 1}, Circle{Pt(1, 0), 1}, [2]Point{Pt(0.5, h), Pt(0.5, -h)}},
		{"horizontal reversed", Circle{Pt(1, 0), 1}, Circle{Pt(0, 0), 1}, [2]Point{Pt(0.5, -h), Pt(0.5, h)}},
		{"vertical", Circle{Pt(0, 0), 5}, Circle{Pt(0, -4), 3}, [2]Point{Pt(3, -4), Pt(-3, -4)}},
		{"beyond center", Circle{Pt(0, 0), 5}, Circle{Pt(4, 0), 3}, [2]Point{Pt(4, 3), Pt(4, -3)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p0, p1 := IntersectionPoints(tt.c1, tt.c2)
			diff(t, tt.want, [2]Point{p0, p1}, cmpopts.EquateApprox(0, 1e-12))
		})
	}
}

func TestIntersectionPointsOnCircles(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	bounds := Rect{-10, -10, 10, 10}
	random := func() Circle {
		return Circle{bounds.RandomPoint(rng), 0.1 + 10*rng.Float64()}
	}

	var checked int
	for range 10000 {
		c1, c2 := random(), random()
		if Intersects(c1, c2) != Intersects(c2, c1) {
			t.Fatalf("Intersects isn't symmetric for %s and %s", c1, c2)
		}
		if !Intersects(c1, c2) {
			continue
		}
		if c1.Center.Distance(c2.Center) < 1e-3 {
			// Nearly concentric pairs lose precision in the foot of the chord.
			continue
		}
		checked++
		tol := 1e-9 * max(1, c1.Radius, c2.Radius)
		p0, p1 := IntersectionPoints(c1, c2)
		for _, p := range []Point{p0, p1} {
			for _, c := range []Circle{c1, c2} {
				if d := math.Abs(p.Distance(c.Center) - c.Radius); d > tol {
					t.Errorf("%s is %g away from %s", p, d, c)
				}
			}
		}

		q0, q1 := IntersectionPoints(c2, c1)
		if l0, l1 := p0.Distance(p1), q0.Distance(q1); math.Abs(l0-l1) > tol {
			t.Errorf("chord of %s and %s has length %g or %g depending on order", c1, c2, l0, l1)
		}
	}
	if checked == 0 {
		t.Fatal("no intersecting pairs were generated")
	}
}

func TestChord(t *testing.T) {
	if _, ok := Chord(Circle{Pt(0, 0), 1}, Circle{Pt(2, 0), 1}); ok {
		t.Error("tangent circles have a chord")
	}
	l, ok := Chord(Circle{Pt(0, 0), 5}, Circle{Pt(0, -4), 3})
	if !ok {
		t.Fatal("crossing circles have no chord")
	}
	if got := l.Length(); math.Abs(got-6) > 1e-12 {
		t.Errorf("got chord length %v, want 6", got)
	}
	diff(t, Line{Pt(3, -4), Pt(-3, -4)}, l, cmpopts.EquateApprox(0, 1e-12))
}

func TestCircleFlatten(t *testing.T) {
	c := Circle{Pt(2, -1), 4}
	const tolerance = 1e-2
	pts := c.Flatten(tolerance)
	if len(pts) < 4 {
		t.Fatalf("got %d points, want at least 4", len(pts))
	}
	if pts[0] != pts[len(pts)-1] {
		t.Errorf("polyline isn't closed: starts at %s, ends at %s", pts[0], pts[len(pts)-1])
	}
	for i, p := range pts {
		if d := math.Abs(p.Distance(c.Center) - c.Radius); d > 1e-12 {
			t.Errorf("point %d is %g off the circle", i, d)
		}
		if i == 0 {
			continue
		}
		mid := Pt((pts[i-1].X+p.X)/2, (pts[i-1].Y+p.Y)/2)
		if d := c.Radius - mid.Distance(c.Center); d > tolerance {
			t.Errorf("segment %d deviates by %g, more than %g", i, d, tolerance)
		}
	}

	// A tolerance larger than the circle still yields a closed polygon.
	if pts := (Circle{Pt(0, 0), 1}).Flatten(5); len(pts) != 4 {
		t.Errorf("got %d points, want 4", len(pts))
	}
}

func TestCirclePathElements(t *testing.T) {
	c := Circle{Pt(5, 5), 5}
	els := slices.Collect(c.PathElements(1e-3))
	if len(els) != 6 {
		t.Fatalf("got %d elements, want 6", len(els))
	}
	diff(t, MoveTo(Pt(10, 5)), els[0])
	diff(t, ClosePath(), els[5])
	last := els[4]
	if last.Kind != CubicToKind {
		t.Fatalf("got %s, want a cubic", last)
	}
	diff(t, Pt(10, 5), last.P2)
	diff(t, Pt(5, 10), els[1].P2, cmpopts.EquateApprox(0, 1e-12))
}

func TestCircleBoundingBox(t *testing.T) {
	c := Circle{Pt(5, 5), 5}
	diff(t, Rect{0, 0, 10, 10}, c.BoundingBox())
	if c.IsInf() || c.IsNaN() {
		t.Errorf("%s reported as infinite or NaN", c)
	}
	if c := (Circle{Pt(0, 0), math.Inf(1)}); !c.IsInf() {
		t.Errorf("%s is finite", c)
	}
	if c := (Circle{Pt(math.NaN(), 0), 1}); !c.IsNaN() {
		t.Errorf("%s isn't NaN", c)
	}
}
