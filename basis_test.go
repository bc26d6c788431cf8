package bspline

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

// naiveBasis is the textbook recursive Cox–de Boor formulation, used as
// an independent reference for the iterative triangular-table code.
func naiveBasis(knots KnotVector, i, p int, u float64) float64 {
	if p == 0 {
		if knots[i] <= u && u < knots[i+1] {
			return 1
		}
		return 0
	}
	var left, right float64
	if d := knots[i+p] - knots[i]; d != 0 {
		left = (u - knots[i]) / d * naiveBasis(knots, i, p-1, u)
	}
	if d := knots[i+p+1] - knots[i+1]; d != 0 {
		right = (knots[i+p+1] - u) / d * naiveBasis(knots, i+1, p-1, u)
	}
	return left + right
}

func TestBasisVectorAgainstNaiveRecursion(t *testing.T) {
	const degree = 3
	const count = 10
	knots := OpenUniformKnots(count, degree+1)
	basis := NewBasis(knots, degree+1, count)

	for _, u := range []float64{0, 0.15, 0.25, 0.4, 0.5, 0.7, 0.85, 0.99} {
		got, err := basis.BasisVector(u)
		if err != nil {
			t.Fatalf("BasisVector(%g): %v", u, err)
		}
		want := make([]float64, count)
		for i := range want {
			want[i] = naiveBasis(knots, i, degree, u)
		}
		diff(t, want, got, cmpopts.EquateApprox(0, 1e-12))
	}
}

func TestBasisVectorPartitionOfUnity(t *testing.T) {
	const degree = 3
	const count = 10
	basis := NewBasis(OpenUniformKnots(count, degree+1), degree+1, count)

	r := rand.New(rand.NewSource(17))
	for i := 0; i < 100; i++ {
		u := r.Float64()
		vec, err := basis.BasisVector(u)
		if err != nil {
			t.Fatalf("BasisVector(%g): %v", u, err)
		}
		var sum float64
		for _, v := range vec {
			sum += v
		}
		if math.Abs(sum-1) > 1e-12 {
			t.Errorf("basis functions at %g sum to %g, want 1", u, sum)
		}
	}
}

func TestBasisVectorAtDomainMax(t *testing.T) {
	const degree = 3
	const count = 10
	basis := NewBasis(OpenUniformKnots(count, degree+1), degree+1, count)

	vec, err := basis.BasisVector(1)
	if err != nil {
		t.Fatalf("BasisVector(1): %v", err)
	}
	// A clamped curve interpolates its last control point.
	if got := vec[count-1]; math.Abs(got-1) > 1e-12 {
		t.Errorf("got last basis value %g, want 1", got)
	}
}

func TestBasisDerivativesBeyondDegree(t *testing.T) {
	const degree = 3
	const count = 10
	basis := NewBasis(OpenUniformKnots(count, degree+1), degree+1, count)

	ders, err := basis.Derivatives(0.4, 5)
	if err != nil {
		t.Fatalf("Derivatives: %v", err)
	}
	if len(ders) != 6 {
		t.Fatalf("got %d rows, want 6", len(ders))
	}
	for k := 4; k <= 5; k++ {
		for i, v := range ders[k] {
			if v != 0 {
				t.Errorf("derivative order %d entry %d = %g, want 0", k, i, v)
			}
		}
	}
}

func TestBasisDerivativesMatchBasisVector(t *testing.T) {
	const degree = 2
	const count = 7
	basis := NewBasis(OpenUniformKnots(count, degree+1), degree+1, count)

	for _, u := range []float64{0.1, 0.33, 0.5, 0.72, 0.95} {
		vec, err := basis.BasisVector(u)
		if err != nil {
			t.Fatal(err)
		}
		ders, err := basis.Derivatives(u, 2)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, vec, ders[0], cmpopts.EquateApprox(0, 1e-13))
	}
}

func TestBasisDomainErrors(t *testing.T) {
	const degree = 3
	const count = 5
	basis := NewBasis(OpenUniformKnots(count, degree+1), degree+1, count)

	assertDomainError(t, func() error {
		_, err := basis.BasisVector(-0.1)
		return err
	})
	assertDomainError(t, func() error {
		_, err := basis.Derivatives(1.1, 1)
		return err
	})
	assertConfigError(t, func() error {
		_, err := basis.Derivatives(0.5, -1)
		return err
	})
}
