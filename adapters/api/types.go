package api

import "sigdash/domain/compare"

// ChiSquareRequest carries the two vote counts for a chi-square test.
type ChiSquareRequest struct {
	VotesA int `json:"votes_a" binding:"min=0"`
	VotesB int `json:"votes_b" binding:"min=0"`
}

// TTestRequest carries the two score samples for Welch's t-test.
type TTestRequest struct {
	ScoresA []float64 `json:"scores_a"`
	ScoresB []float64 `json:"scores_b"`
}

// IntervalRequest carries the inputs for a proportion confidence interval.
// Confidence defaults to 0.95 when omitted.
type IntervalRequest struct {
	Successes  int     `json:"successes" binding:"min=0"`
	Total      int     `json:"total" binding:"min=0"`
	Confidence float64 `json:"confidence"`
}

// EffectSizeRequest carries two proportions for Cohen's h.
type EffectSizeRequest struct {
	P1 float64 `json:"p1" binding:"min=0,max=1"`
	P2 float64 `json:"p2" binding:"min=0,max=1"`
}

// AnalyzeRequest carries an in-memory dataset for a full sweep.
type AnalyzeRequest struct {
	Name        string              `json:"name" binding:"required"`
	Comparisons []ComparisonPayload `json:"comparisons" binding:"required,min=1"`
}

// ComparisonPayload is the wire form of one comparison.
type ComparisonPayload struct {
	Name    string    `json:"name" binding:"required"`
	OptionA string    `json:"option_a"`
	OptionB string    `json:"option_b"`
	VotesA  int       `json:"votes_a" binding:"min=0"`
	VotesB  int       `json:"votes_b" binding:"min=0"`
	ScoresA []float64 `json:"scores_a"`
	ScoresB []float64 `json:"scores_b"`
}

func (p ComparisonPayload) toDomain() compare.Comparison {
	return compare.Comparison{
		Name:    p.Name,
		OptionA: p.OptionA,
		OptionB: p.OptionB,
		VotesA:  p.VotesA,
		VotesB:  p.VotesB,
		ScoresA: p.ScoresA,
		ScoresB: p.ScoresB,
	}
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
