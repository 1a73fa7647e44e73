// Package significance computes hypothesis tests, confidence intervals and
// effect sizes over preference-test vote counts and rating scores. Every
// operation is a pure function of its inputs: no state is retained between
// calls and any number of calls may run concurrently.
//
// The distribution CDFs underneath are deliberate closed-form approximations
// (see distributions.go), not exact special functions. Downstream fixtures
// depend on their documented error behavior.
package significance

import "math"

// Significance thresholds for the standard confidence levels.
const (
	alpha95 = 0.05
	alpha99 = 0.01
)

// ChiSquareResult holds the outcome of a two-proportion chi-square test.
// Statistic and PValue are full precision; rounding for display happens at
// the presentation layer so the flags can never disagree with the numbers
// that produced them.
type ChiSquareResult struct {
	Statistic     float64 `json:"statistic"`
	PValue        float64 `json:"p_value"`
	Significant95 bool    `json:"significant_95"`
	Significant99 bool    `json:"significant_99"`
}

// TTestResult holds the outcome of Welch's two-sample t-test.
type TTestResult struct {
	Statistic     float64 `json:"statistic"`
	PValue        float64 `json:"p_value"`
	DF            int     `json:"degrees_of_freedom"`
	MeanDiff      float64 `json:"mean_difference"`
	Significant95 bool    `json:"significant_95"`
	Significant99 bool    `json:"significant_99"`

	// InsufficientData is set when either sample has fewer than two
	// observations, where the unbiased variance is undefined. The numeric
	// fields are neutral (t=0, p=1) rather than NaN in that case.
	InsufficientData bool `json:"insufficient_data,omitempty"`
}

// ConfidenceInterval is a proportion interval clamped to [0,1].
type ConfidenceInterval struct {
	Lower    float64 `json:"lower"`
	Upper    float64 `json:"upper"`
	Estimate float64 `json:"estimate"`
}

// EffectSizeResult is Cohen's h with its conventional magnitude label.
type EffectSizeResult struct {
	Value     float64 `json:"value"`
	Magnitude string  `json:"magnitude"`
}

// ChiSquareTest runs a chi-square test of independence on two vote counts
// against the null hypothesis of an even split. Zero total observations is a
// degenerate case and yields the neutral result (statistic 0, p 1).
func ChiSquareTest(votesA, votesB int) ChiSquareResult {
	total := votesA + votesB
	if total == 0 {
		return ChiSquareResult{Statistic: 0, PValue: 1}
	}

	expected := float64(total) / 2
	da := float64(votesA) - expected
	db := float64(votesB) - expected
	statistic := da*da/expected + db*db/expected

	p := 1 - chiSquareCDF(statistic, 1)
	return ChiSquareResult{
		Statistic:     statistic,
		PValue:        p,
		Significant95: p < alpha95,
		Significant99: p < alpha99,
	}
}

// TTest runs Welch's unequal-variance two-sample t-test on two score
// sequences. Empty samples yield the neutral result; single-element samples
// yield the neutral result flagged InsufficientData, since the n-1 variance
// divisor is undefined. A zero standard error (both samples constant) is
// treated as no evidence: t=0, p=1.
func TTest(scoresA, scoresB []float64) TTestResult {
	n1 := float64(len(scoresA))
	n2 := float64(len(scoresB))
	if n1 == 0 || n2 == 0 {
		return TTestResult{Statistic: 0, PValue: 1}
	}

	mean1 := mean(scoresA)
	mean2 := mean(scoresB)
	meanDiff := mean1 - mean2

	if n1 < 2 || n2 < 2 {
		return TTestResult{Statistic: 0, PValue: 1, MeanDiff: meanDiff, InsufficientData: true}
	}

	var1 := sampleVariance(scoresA, mean1)
	var2 := sampleVariance(scoresB, mean2)

	se := math.Sqrt(var1/n1 + var2/n2)
	if se == 0 {
		return TTestResult{Statistic: 0, PValue: 1, MeanDiff: meanDiff}
	}

	t := meanDiff / se

	// Welch-Satterthwaite. Reported rounded, but the CDF gets the
	// fractional value.
	df := math.Pow(var1/n1+var2/n2, 2) /
		(math.Pow(var1/n1, 2)/(n1-1) + math.Pow(var2/n2, 2)/(n2-1))

	p := clamp01(2 * (1 - tCDF(math.Abs(t), df)))

	return TTestResult{
		Statistic:     t,
		PValue:        p,
		DF:            int(math.Round(df)),
		MeanDiff:      meanDiff,
		Significant95: p < alpha95,
		Significant99: p < alpha99,
	}
}

// ProportionConfidenceInterval returns a normal-approximation confidence
// interval for a binomial proportion. Only the 0.99 level is distinguished;
// any other confidence value uses the 95% z-score. Zero trials yields [0,0].
func ProportionConfidenceInterval(successes, total int, confidence float64) ConfidenceInterval {
	if total == 0 {
		return ConfidenceInterval{}
	}

	z := 1.96
	if confidence == 0.99 {
		z = 2.576
	}

	p := float64(successes) / float64(total)
	se := math.Sqrt(p * (1 - p) / float64(total))

	return ConfidenceInterval{
		Lower:    math.Max(0, p-z*se),
		Upper:    math.Min(1, p+z*se),
		Estimate: p,
	}
}

// EffectSize computes Cohen's h for the difference between two proportions,
// classified as small (<0.2), medium (<0.5) or large by absolute value.
func EffectSize(p1, p2 float64) EffectSizeResult {
	h := 2 * (math.Asin(math.Sqrt(p1)) - math.Asin(math.Sqrt(p2)))

	magnitude := "large"
	switch abs := math.Abs(h); {
	case abs < 0.2:
		magnitude = "small"
	case abs < 0.5:
		magnitude = "medium"
	}

	return EffectSizeResult{Value: h, Magnitude: magnitude}
}

// InterpretPValue maps a p-value to a human-readable confidence band.
// Thresholds are strict: p = 0.05 falls in the "not significant at 95%"
// band, not the significant one.
func InterpretPValue(p float64) string {
	switch {
	case p < 0.01:
		return "Highly significant (99%+ confidence). The difference is almost certainly real; safe to act on."
	case p < 0.05:
		return "Significant (95%+ confidence). The difference is unlikely to be chance; reasonable to act on."
	case p < 0.10:
		return "Marginally significant (90%+ confidence). Suggestive but not conclusive; consider collecting more data."
	default:
		return "Not significant. The observed difference is consistent with random variation."
	}
}

func mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

// sampleVariance is the unbiased (n-1) variance. Callers guarantee
// len(data) >= 2.
func sampleVariance(data []float64, mean float64) float64 {
	sumSq := 0.0
	for _, v := range data {
		diff := v - mean
		sumSq += diff * diff
	}
	return sumSq / float64(len(data)-1)
}
