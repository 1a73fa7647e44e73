package significance

import "math"

// normalCDF approximates P(Z <= z) for the standard normal distribution using
// the Zelen & Severo rational polynomial (Abramowitz & Stegun 26.2.17).
// Absolute error is below 7.5e-8 across the real line; very large |z|
// saturates to 0 or 1 within floating-point precision.
func normalCDF(z float64) float64 {
	t := 1.0 / (1.0 + 0.2316419*math.Abs(z))
	d := 0.3989423 * math.Exp(-z*z/2)
	tail := d * t * (0.3193815 + t*(-0.3565638+t*(1.781478+t*(-1.821256+t*1.330274))))

	// The polynomial gives the right-tail probability for |z|; symmetry
	// handles the two halves.
	if z > 0 {
		return 1 - tail
	}
	return tail
}

// chiSquareCDF approximates P(X <= x) for a chi-square distribution with df
// degrees of freedom. df=1 uses the exact relation to the normal
// distribution; other df fall back to the Wilson-Hilferty cube-root normal
// approximation. The chi-square test itself only ever asks for df=1.
func chiSquareCDF(x, df float64) float64 {
	if x <= 0 {
		return 0
	}

	if df == 1 {
		// P(chi2_1 <= x) = 2*Phi(sqrt(x)) - 1
		return 2*normalCDF(math.Sqrt(x)) - 1
	}

	// Wilson-Hilferty: (X/df)^(1/3) is approximately normal with mean
	// 1 - 2/(9df) and variance 2/(9df).
	z := (math.Cbrt(x/df) - (1 - 2/(9*df))) / math.Sqrt(2/(9*df))
	return normalCDF(z)
}

// tCDF approximates P(T <= t) for a Student's t distribution with df degrees
// of freedom (df may be fractional, as produced by Welch-Satterthwaite).
// Large df delegates to the normal approximation; otherwise the standard
// identity to the regularized incomplete beta function is used, so p-values
// inherit the incompleteBeta approximation error and nothing else.
func tCDF(t, df float64) float64 {
	if df > 30 {
		return normalCDF(t)
	}

	x := df / (df + t*t)
	ib := incompleteBeta(x, df/2, 0.5)
	if t > 0 {
		return 1 - 0.5*ib
	}
	return 0.5 * ib
}

// incompleteBeta approximates the regularized incomplete beta integral
// I_x(a, b). For large shapes (a > 10 and b > 10) the beta distribution is
// close enough to normal that a moment-matched normal evaluation is used;
// otherwise a direct series expansion runs for at most 100 terms with an
// early exit once terms drop below 1e-10. The result is clamped to [0,1].
func incompleteBeta(x, a, b float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}

	if a > 10 && b > 10 {
		mean := a / (a + b)
		sd := math.Sqrt(a * b / ((a + b) * (a + b) * (a + b + 1)))
		return normalCDF((x - mean) / sd)
	}

	term := math.Pow(x, a) * math.Pow(1-x, b) / a
	sum := term
	for i := 0; i < 100; i++ {
		term *= (a + b + float64(i)) * x / ((a + float64(i) + 1) * (1 - x))
		sum += term
		if math.Abs(term) < 1e-10 {
			break
		}
	}

	return clamp01(sum)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
