package ui

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
)

// handleExportCSV writes the results table as CSV with the same display
// rounding as the dashboard (3 decimals statistics, 4 decimals p-values).
func (a *App) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	anonymized := r.URL.Query().Get("anonymize") == "1"

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="significance_results.csv"`)

	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{
		"test", "option_a", "option_b", "votes_a", "votes_b",
		"chi_square", "p_value", "significant_95", "significant_99",
		"share_a", "ci_lower", "ci_upper",
		"effect_h", "magnitude",
		"t_statistic", "t_p_value", "t_df", "mean_diff",
		"interpretation",
	}
	if err := writer.Write(header); err != nil {
		a.logger.Error("[ui] csv export failed: %v", err)
		return
	}

	for _, an := range a.analyses {
		row := a.viewFor(an, anonymized)

		record := []string{
			row.Name, row.OptionA, row.OptionB,
			strconv.Itoa(row.VotesA), strconv.Itoa(row.VotesB),
			fmt.Sprintf("%.3f", row.Statistic),
			fmt.Sprintf("%.4f", row.PValue),
			strconv.FormatBool(row.Sig95),
			strconv.FormatBool(row.Sig99),
			fmt.Sprintf("%.4f", row.Estimate),
			fmt.Sprintf("%.4f", row.CILower),
			fmt.Sprintf("%.4f", row.CIUpper),
			fmt.Sprintf("%.3f", row.EffectH),
			row.Magnitude,
			fmt.Sprintf("%.3f", row.TStatistic),
			fmt.Sprintf("%.4f", row.TPValue),
			strconv.Itoa(row.TDF),
			fmt.Sprintf("%.3f", row.MeanDiff),
			row.Interpretation,
		}
		if err := writer.Write(record); err != nil {
			a.logger.Error("[ui] csv export failed: %v", err)
			return
		}
	}
}
