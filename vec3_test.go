package bspline

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestVec3Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, -5, 6)

	diff(t, V3(5, -3, 9), a.Add(b))
	diff(t, V3(-3, 7, -3), a.Sub(b))
	diff(t, V3(2, 4, 6), a.Mul(2))
	diff(t, V3(0.5, 1, 1.5), a.Div(2))
	diff(t, V3(-1, -2, -3), a.Negate())
	diff(t, 12.0, a.Dot(b))
	diff(t, V3(27, 6, -13), a.Cross(b))
	diff(t, V3(2.5, -1.5, 4.5), a.Midpoint(b))
	diff(t, a, a.Lerp(b, 0))
	diff(t, b, a.Lerp(b, 1))
	diff(t, a.Midpoint(b), a.Lerp(b, 0.5))
}

func TestVec3Metrics(t *testing.T) {
	v := V3(2, 3, 6)
	diff(t, 7.0, v.Hypot())
	diff(t, 49.0, v.Hypot2())
	diff(t, V3(2.0/7, 3.0/7, 6.0/7), v.Normalize(), cmpopts.EquateApprox(0, 1e-15))
	diff(t, 1.0, v.Normalize().Hypot(), cmpopts.EquateApprox(0, 1e-15))

	a := V3(1, 1, 1)
	b := V3(4, 5, 1)
	diff(t, 5.0, a.Distance(b))
	diff(t, 25.0, a.DistanceSquared(b))
}

func TestVec3Predicates(t *testing.T) {
	if V3(1, 2, 3).IsInf() || V3(1, 2, 3).IsNaN() {
		t.Error("finite vector flagged as non-finite")
	}
	if !V3(math.Inf(1), 0, 0).IsInf() {
		t.Error("infinite vector not flagged")
	}
	if !V3(0, math.NaN(), 0).IsNaN() {
		t.Error("NaN vector not flagged")
	}
}

func TestVec3String(t *testing.T) {
	if got, want := V3(1, 2.5, -3).String(), "⟨1, 2.5, -3⟩"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
