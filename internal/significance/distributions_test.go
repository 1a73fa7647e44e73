package significance

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"
)

// The CDFs here are intentionally approximate; these tests pin their error
// against exact evaluations so a refactor cannot silently swap regimes or
// coefficients.

func TestNormalCDF_MatchesExact(t *testing.T) {
	for z := -6.0; z <= 6.0; z += 0.25 {
		got := normalCDF(z)
		want := distuv.UnitNormal.CDF(z)
		if math.Abs(got-want) > 1e-6 {
			t.Errorf("normalCDF(%v) = %v, want %v (|err| > 1e-6)", z, got, want)
		}
	}
}

func TestNormalCDF_SymmetryAndSaturation(t *testing.T) {
	for _, z := range []float64{0.3, 1.5, 4.2} {
		if sum := normalCDF(z) + normalCDF(-z); math.Abs(sum-1) > 1e-12 {
			t.Errorf("normalCDF(%v)+normalCDF(-%v) = %v, want 1", z, z, sum)
		}
	}

	if got := normalCDF(40); got != 1 {
		t.Errorf("normalCDF(40) = %v, want saturation to 1", got)
	}
	if got := normalCDF(-40); got != 0 {
		t.Errorf("normalCDF(-40) = %v, want saturation to 0", got)
	}
}

func TestChiSquareCDF_NonPositive(t *testing.T) {
	for _, x := range []float64{0, -1, -100} {
		if got := chiSquareCDF(x, 1); got != 0 {
			t.Errorf("chiSquareCDF(%v, 1) = %v, want 0", x, got)
		}
	}
}

func TestChiSquareCDF_DF1MatchesExact(t *testing.T) {
	exact := distuv.ChiSquared{K: 1}
	for _, x := range []float64{0.1, 0.5, 1, 2, 3.841, 6.635, 10, 36} {
		got := chiSquareCDF(x, 1)
		want := exact.CDF(x)
		if math.Abs(got-want) > 1e-6 {
			t.Errorf("chiSquareCDF(%v, 1) = %v, want %v", x, got, want)
		}
	}
}

func TestChiSquareCDF_WilsonHilfertyFallback(t *testing.T) {
	// df != 1 is outside the hot path; the cube-root approximation only
	// needs to be in the neighborhood of exact.
	exact := distuv.ChiSquared{K: 4}
	for _, x := range []float64{1, 3, 5, 9, 15} {
		got := chiSquareCDF(x, 4)
		want := exact.CDF(x)
		if math.Abs(got-want) > 0.01 {
			t.Errorf("chiSquareCDF(%v, 4) = %v, want %v within 0.01", x, got, want)
		}
	}
}

func TestTCDF_LargeDFUsesNormal(t *testing.T) {
	exact := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: 40}
	for _, tv := range []float64{-3, -1, 0, 1, 2, 3} {
		got := tCDF(tv, 40)
		want := exact.CDF(tv)
		if math.Abs(got-want) > 0.01 {
			t.Errorf("tCDF(%v, 40) = %v, want %v within 0.01", tv, got, want)
		}
	}
}

func TestTCDF_SmallDFShape(t *testing.T) {
	// At t=0, x = df/(df+0) = 1, the beta boundary gives I=1 and the CDF
	// must be exactly one half.
	if got := tCDF(0, 10); got != 0.5 {
		t.Errorf("tCDF(0, 10) = %v, want 0.5", got)
	}

	// Deep tails converge toward 0 and 1, and the two tails mirror.
	if got := tCDF(50, 10); got < 0.999 {
		t.Errorf("tCDF(50, 10) = %v, want near 1", got)
	}
	if got := tCDF(-50, 10); got > 0.001 {
		t.Errorf("tCDF(-50, 10) = %v, want near 0", got)
	}
	right := tCDF(6, 12)
	left := tCDF(-6, 12)
	if math.Abs((1-right)-left) > 1e-9 {
		t.Errorf("tail symmetry broken: 1-CDF(6)=%v, CDF(-6)=%v", 1-right, left)
	}

	// Tail p-values track exact values closely enough for decisions: t=6
	// at df=10 is significant by any account.
	exact := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: 10}
	got := 2 * (1 - tCDF(6, 10))
	want := 2 * (1 - exact.CDF(6))
	if math.Abs(got-want) > 0.001 {
		t.Errorf("two-tailed p at t=6 df=10: got %v, want %v within 0.001", got, want)
	}
}

func TestIncompleteBeta_Boundaries(t *testing.T) {
	if got := incompleteBeta(0, 2, 3); got != 0 {
		t.Errorf("incompleteBeta(0,..) = %v, want 0", got)
	}
	if got := incompleteBeta(-0.5, 2, 3); got != 0 {
		t.Errorf("incompleteBeta(-0.5,..) = %v, want 0", got)
	}
	if got := incompleteBeta(1, 2, 3); got != 1 {
		t.Errorf("incompleteBeta(1,..) = %v, want 1", got)
	}
	if got := incompleteBeta(1.5, 2, 3); got != 1 {
		t.Errorf("incompleteBeta(1.5,..) = %v, want 1", got)
	}
}

func TestIncompleteBeta_AlwaysInUnitInterval(t *testing.T) {
	for _, a := range []float64{0.5, 1, 2.5, 5, 15} {
		for _, b := range []float64{0.5, 1, 2.5, 5, 15} {
			for x := 0.05; x < 1; x += 0.05 {
				got := incompleteBeta(x, a, b)
				if got < 0 || got > 1 {
					t.Fatalf("incompleteBeta(%v, %v, %v) = %v outside [0,1]", x, a, b, got)
				}
			}
		}
	}
}

func TestIncompleteBeta_NormalRegime(t *testing.T) {
	// With a = b the beta distribution is symmetric around 1/2, so the
	// large-shape normal regime must return exactly normalCDF(0) there.
	got := incompleteBeta(0.5, 20, 20)
	if math.Abs(got-0.5) > 1e-6 {
		t.Errorf("incompleteBeta(0.5, 20, 20) = %v, want 0.5", got)
	}

	exact := distuv.Beta{Alpha: 20, Beta: 20}
	for _, x := range []float64{0.3, 0.4, 0.6, 0.7} {
		got := incompleteBeta(x, 20, 20)
		want := exact.CDF(x)
		if math.Abs(got-want) > 0.02 {
			t.Errorf("incompleteBeta(%v, 20, 20) = %v, want %v within 0.02", x, got, want)
		}
	}
}
