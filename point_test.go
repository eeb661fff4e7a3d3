package chord

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p4.Distance(p3); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestPointIsInf(t *testing.T) {
	if Pt(1, 2).IsInf() || Pt(1, 2).IsNaN() {
		t.Error("finite point reported as infinite or NaN")
	}
	if !Pt(math.Inf(-1), 0).IsInf() {
		t.Error("point with infinite x is finite")
	}
	if !Pt(0, math.NaN()).IsNaN() {
		t.Error("point with NaN y isn't NaN")
	}
}

func TestVecTurn90(t *testing.T) {
	v := Vec(3, 4)
	diff(t, v.Turn90(), Vec(-4, 3))
	diff(t, v.Turn90().Turn90(), v.Negate())
	diff(t, Vec(0.6, 0.8), v.Normalize(), cmpopts.EquateApprox(0, 1e-12))
	if h := Vec(-1e-3, 7).Normalize().Hypot(); math.Abs(h-1) > 1e-12 {
		t.Errorf("got magnitude %v, want 1", h)
	}
}
