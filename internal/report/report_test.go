package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"sigdash/domain/compare"
	"sigdash/internal/sweep"
)

func sampleAnalyses() (compare.Dataset, []sweep.Analysis) {
	ds := compare.Dataset{
		Name:       "Homepage Experiments",
		SourceFile: "comparisons.csv",
		Comparisons: []compare.Comparison{
			{Name: "hero_copy", OptionA: "Punchy", OptionB: "Formal", VotesA: 80, VotesB: 20},
			{Name: "cta_color", OptionA: "Blue", OptionB: "Green", VotesA: 52, VotesB: 48},
		},
	}

	analyses := make([]sweep.Analysis, len(ds.Comparisons))
	for i, c := range ds.Comparisons {
		analyses[i] = sweep.Analyze(c)
	}
	return ds, analyses
}

func TestMarkdown_ContainsRoundedValues(t *testing.T) {
	ds, analyses := sampleAnalyses()

	md := Markdown(ds, analyses)

	assert.Contains(t, md, "# Significance Report: Homepage Experiments")
	assert.Contains(t, md, "## hero_copy")
	assert.Contains(t, md, "## cta_color")

	// Display rounding: statistic to 3 decimals, p-value to 4.
	assert.Contains(t, md, "χ² = 36.000", "80/20 over 100 votes has statistic exactly 36")
	assert.Contains(t, md, "p = 0.0000")
	assert.Contains(t, md, "(significant at 99%)")

	// The near-even comparison must not carry a significance note.
	ctaSection := md[strings.Index(md, "## cta_color"):]
	assert.NotContains(t, ctaSection, "significant at")
}

func TestMarkdown_CountsSignificantComparisons(t *testing.T) {
	ds, analyses := sampleAnalyses()

	md := Markdown(ds, analyses)
	assert.Contains(t, md, "**1 of 2** comparisons")
}

func TestMarkdown_InsufficientRatings(t *testing.T) {
	ds := compare.Dataset{
		Name: "Ratings Edge",
		Comparisons: []compare.Comparison{
			{Name: "one_rating", OptionA: "A", OptionB: "B", VotesA: 10, VotesB: 10,
				ScoresA: []float64{5}, ScoresB: []float64{3, 4}},
		},
	}
	analyses := []sweep.Analysis{sweep.Analyze(ds.Comparisons[0])}

	md := Markdown(ds, analyses)
	assert.Contains(t, md, "insufficient sample size")
}

func TestHTML_RendersMarkdown(t *testing.T) {
	ds, analyses := sampleAnalyses()

	html := string(HTML(ds, analyses))

	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "Homepage Experiments")
	assert.Contains(t, html, "<h2")
}
