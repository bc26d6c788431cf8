package bspline

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestNormalizeKnots(t *testing.T) {
	want := KnotVector{0, 0.25, 0.5, 0.75, 1.0}
	for _, knots := range [][]float64{
		{0, 1, 2, 3, 4},
		// Affine-invariant: a shifted vector normalizes to the same
		// result.
		{2, 3, 4, 5, 6},
		// Idempotent.
		{0, 0.25, 0.5, 0.75, 1.0},
	} {
		got, err := NormalizeKnots(knots)
		if err != nil {
			t.Fatalf("NormalizeKnots(%v): %v", knots, err)
		}
		diff(t, want, got)
	}
}

func TestNormalizeKnotsDegenerate(t *testing.T) {
	assertValidationError(t, func() error {
		_, err := NormalizeKnots([]float64{1, 1, 1, 1})
		return err
	})
	assertValidationError(t, func() error {
		_, err := NormalizeKnots([]float64{0.5})
		return err
	})
	assertValidationError(t, func() error {
		_, err := NormalizeKnots(nil)
		return err
	})
}

func TestOpenUniformKnots(t *testing.T) {
	got := OpenUniformKnots(5, 3)
	want := KnotVector{0, 0, 0, 1.0 / 3.0, 2.0 / 3.0, 1, 1, 1}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-15))

	if !got.IsNonDecreasing() {
		t.Error("open uniform knot vector must be non-decreasing")
	}
	if !got.IsClamped(2) {
		t.Error("open uniform knot vector must be clamped")
	}
}

func TestSpan(t *testing.T) {
	const degree = 3
	knots := OpenUniformKnots(10, degree+1)
	count := len(knots) - degree - 1

	// Cross-check the binary search against a linear scan over the
	// valid span range.
	linear := func(u float64) int {
		for i := degree; i < count; i++ {
			if u >= knots[i] && u < knots[i+1] {
				return i
			}
		}
		return count - 1
	}
	for _, u := range []float64{0, 0.1, 0.2, 0.35, 0.5, 0.65, 0.8, 0.9, 1.0} {
		if got, want := knots.Span(degree, u), linear(u); got != want {
			t.Errorf("Span(%g) = %d, want %d", u, got, want)
		}
	}

	// The domain maximum must map to the last valid span, not
	// one-past-the-end.
	if got, want := knots.Span(degree, 1.0), count-1; got != want {
		t.Errorf("Span(1.0) = %d, want %d", got, want)
	}
}

func TestMultiplicity(t *testing.T) {
	knots := KnotVector{0, 0, 0, 0.5, 0.5, 1, 1, 1}
	if got := knots.Multiplicity(0); got != 3 {
		t.Errorf("Multiplicity(0) = %d, want 3", got)
	}
	if got := knots.Multiplicity(0.5); got != 2 {
		t.Errorf("Multiplicity(0.5) = %d, want 2", got)
	}
	if got := knots.Multiplicity(0.25); got != 0 {
		t.Errorf("Multiplicity(0.25) = %d, want 0", got)
	}
}

func TestKnotValidation(t *testing.T) {
	points := []Vec3{{0, 0, 0}, {1, 1, 0}, {2, 0, 0}, {3, 1, 0}}

	assertValidationError(t, func() error {
		_, err := NewBSplineKnots(points, 2, []float64{0, 0, 0, 0.7, 0.3, 1, 1}) // decreasing
		return err
	})
	assertValidationError(t, func() error {
		_, err := NewBSplineKnots(points, 2, []float64{0, 0, 0, 1, 1, 1}) // too short
		return err
	})
	assertValidationError(t, func() error {
		_, err := NewBSplineKnots(points, 2, []float64{1, 1, 1, 1, 1, 1, 1}) // degenerate
		return err
	})
}
