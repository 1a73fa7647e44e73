// Package compare holds the value records of a preference-test dataset: raw
// vote counts and rating scores per comparison, plus the flattened result row
// used for persistence and export.
package compare

import (
	"time"

	"sigdash/domain/core"
)

// Comparison is one A/B preference test: two options, the votes each
// received, and optional per-respondent rating scores per condition.
type Comparison struct {
	ID      core.ComparisonID `json:"id"`
	Name    string            `json:"name"`
	OptionA string            `json:"option_a"`
	OptionB string            `json:"option_b"`
	VotesA  int               `json:"votes_a"`
	VotesB  int               `json:"votes_b"`
	ScoresA []float64         `json:"scores_a,omitempty"`
	ScoresB []float64         `json:"scores_b,omitempty"`
}

// TotalVotes returns the combined vote count for both options.
func (c Comparison) TotalVotes() int {
	return c.VotesA + c.VotesB
}

// ShareA returns option A's share of the total vote, or 0 when no votes
// were cast.
func (c Comparison) ShareA() float64 {
	total := c.TotalVotes()
	if total == 0 {
		return 0
	}
	return float64(c.VotesA) / float64(total)
}

// Dataset is a named collection of comparisons loaded from one source file.
type Dataset struct {
	ID          core.DatasetID `json:"id"`
	Name        string         `json:"name"`
	SourceFile  string         `json:"source_file"`
	Comparisons []Comparison   `json:"comparisons"`
	CreatedAt   time.Time      `json:"created_at"`
}

// ResultRow is the flattened, display-ready form of one analyzed comparison.
// Numeric fields here are full precision; formatting happens in templates
// and exports.
type ResultRow struct {
	ID             core.ID        `db:"id" json:"id"`
	DatasetID      core.DatasetID `db:"dataset_id" json:"dataset_id"`
	TestName       string         `db:"test_name" json:"test_name"`
	OptionA        string         `db:"option_a" json:"option_a"`
	OptionB        string         `db:"option_b" json:"option_b"`
	VotesA         int            `db:"votes_a" json:"votes_a"`
	VotesB         int            `db:"votes_b" json:"votes_b"`
	ChiSquare      float64        `db:"chi_square" json:"chi_square"`
	ChiPValue      float64        `db:"chi_p_value" json:"chi_p_value"`
	Significant95  bool           `db:"significant_95" json:"significant_95"`
	Significant99  bool           `db:"significant_99" json:"significant_99"`
	TStatistic     float64        `db:"t_statistic" json:"t_statistic"`
	TPValue        float64        `db:"t_p_value" json:"t_p_value"`
	TDF            int            `db:"t_df" json:"t_df"`
	MeanDiff       float64        `db:"mean_diff" json:"mean_diff"`
	EffectH        float64        `db:"effect_h" json:"effect_h"`
	Magnitude      string         `db:"magnitude" json:"magnitude"`
	Interpretation string         `db:"interpretation" json:"interpretation"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
}
