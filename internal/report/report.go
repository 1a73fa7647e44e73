// Package report renders a significance report for a swept dataset. This is
// the display layer: test statistics are rounded to 3 decimals and p-values
// to 4, while the significance flags were already decided from full
// precision inside the engine.
package report

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"sigdash/domain/compare"
	"sigdash/internal/sweep"
)

// Markdown builds the report source for a dataset and its analyses.
func Markdown(ds compare.Dataset, analyses []sweep.Analysis) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Significance Report: %s\n\n", ds.Name)
	fmt.Fprintf(&b, "%d comparisons analyzed from `%s`.\n\n", len(analyses), ds.SourceFile)

	significant := 0
	for _, a := range analyses {
		if a.ChiSquare.Significant95 {
			significant++
		}
	}
	fmt.Fprintf(&b, "**%d of %d** comparisons show a significant preference at the 95%% level.\n\n", significant, len(analyses))

	for _, a := range analyses {
		c := a.Comparison
		fmt.Fprintf(&b, "## %s\n\n", c.Name)
		fmt.Fprintf(&b, "- Votes: %s %d vs %s %d\n", c.OptionA, c.VotesA, c.OptionB, c.VotesB)
		fmt.Fprintf(&b, "- Chi-square: χ² = %.3f, p = %.4f%s\n",
			a.ChiSquare.Statistic, a.ChiSquare.PValue, flagNote(a.ChiSquare.Significant95, a.ChiSquare.Significant99))

		if len(c.ScoresA) > 0 || len(c.ScoresB) > 0 {
			if a.TTest.InsufficientData {
				fmt.Fprintf(&b, "- Ratings: insufficient sample size for Welch's t-test\n")
			} else {
				fmt.Fprintf(&b, "- Ratings: t = %.3f, p = %.4f, df = %d, mean diff = %.3f\n",
					a.TTest.Statistic, a.TTest.PValue, a.TTest.DF, a.TTest.MeanDiff)
			}
		}

		fmt.Fprintf(&b, "- %s share: %.4f, 95%% CI [%.4f, %.4f]\n",
			c.OptionA, a.Interval.Estimate, a.Interval.Lower, a.Interval.Upper)
		fmt.Fprintf(&b, "- Effect size: h = %.3f (%s)\n", a.Effect.Value, a.Effect.Magnitude)
		fmt.Fprintf(&b, "- %s\n\n", a.Interpretation)
	}

	return b.String()
}

// HTML renders the markdown report to HTML for the dashboard.
func HTML(ds compare.Dataset, analyses []sweep.Analysis) template.HTML {
	src := Markdown(ds, analyses)

	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	out := markdown.ToHTML([]byte(src), p, renderer)

	return template.HTML(out)
}

func flagNote(sig95, sig99 bool) string {
	switch {
	case sig99:
		return " (significant at 99%)"
	case sig95:
		return " (significant at 95%)"
	default:
		return ""
	}
}
