// Package sweep runs the significance engine over every comparison in a
// dataset with bounded concurrency.
package sweep

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"sigdash/domain/compare"
	"sigdash/domain/core"
	"sigdash/internal/significance"
)

// Analysis joins one comparison with every engine output computed for it.
type Analysis struct {
	Comparison     compare.Comparison              `json:"comparison"`
	ChiSquare      significance.ChiSquareResult    `json:"chi_square"`
	TTest          significance.TTestResult        `json:"t_test"`
	Interval       significance.ConfidenceInterval `json:"interval"`
	Effect         significance.EffectSizeResult   `json:"effect"`
	Interpretation string                          `json:"interpretation"`
}

// Row flattens the analysis into a persistable result row for datasetID.
func (a Analysis) Row(datasetID core.DatasetID) compare.ResultRow {
	return compare.ResultRow{
		ID:             core.NewID(),
		DatasetID:      datasetID,
		TestName:       a.Comparison.Name,
		OptionA:        a.Comparison.OptionA,
		OptionB:        a.Comparison.OptionB,
		VotesA:         a.Comparison.VotesA,
		VotesB:         a.Comparison.VotesB,
		ChiSquare:      a.ChiSquare.Statistic,
		ChiPValue:      a.ChiSquare.PValue,
		Significant95:  a.ChiSquare.Significant95,
		Significant99:  a.ChiSquare.Significant99,
		TStatistic:     a.TTest.Statistic,
		TPValue:        a.TTest.PValue,
		TDF:            a.TTest.DF,
		MeanDiff:       a.TTest.MeanDiff,
		EffectH:        a.Effect.Value,
		Magnitude:      a.Effect.Magnitude,
		Interpretation: a.Interpretation,
		CreatedAt:      time.Now().UTC(),
	}
}

// Analyze runs every engine operation for one comparison. The confidence
// interval describes option A's share of the vote; the effect size compares
// the two options' shares.
func Analyze(c compare.Comparison) Analysis {
	shareA := c.ShareA()
	chi := significance.ChiSquareTest(c.VotesA, c.VotesB)

	var shareB float64
	if c.TotalVotes() > 0 {
		shareB = 1 - shareA
	}

	return Analysis{
		Comparison:     c,
		ChiSquare:      chi,
		TTest:          significance.TTest(c.ScoresA, c.ScoresB),
		Interval:       significance.ProportionConfidenceInterval(c.VotesA, c.TotalVotes(), 0.95),
		Effect:         significance.EffectSize(shareA, shareB),
		Interpretation: significance.InterpretPValue(chi.PValue),
	}
}

// Runner executes sweeps with a weighted semaphore bounding how many
// comparisons are analyzed at once.
type Runner struct {
	sem *semaphore.Weighted
}

// NewRunner creates a Runner allowing up to maxConcurrent analyses in flight.
func NewRunner(maxConcurrent int64) *Runner {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &Runner{sem: semaphore.NewWeighted(maxConcurrent)}
}

// Run analyzes every comparison in the dataset. Output order matches input
// order regardless of completion order. The only error source is context
// cancellation while waiting on the semaphore.
func (r *Runner) Run(ctx context.Context, ds compare.Dataset) ([]Analysis, error) {
	results := make([]Analysis, len(ds.Comparisons))

	var wg sync.WaitGroup
	for i, c := range ds.Comparisons {
		if err := r.sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return nil, err
		}

		wg.Add(1)
		go func(idx int, cmp compare.Comparison) {
			defer wg.Done()
			defer r.sem.Release(1)
			results[idx] = Analyze(cmp)
		}(i, c)
	}

	wg.Wait()
	return results, nil
}
