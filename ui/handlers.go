package ui

import (
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"

	"sigdash/internal/profile"
	"sigdash/internal/report"
	"sigdash/internal/sweep"
)

// resultView is one table row with display-rounded numbers. The raw analysis
// keeps full precision; only the strings here are rounded.
type resultView struct {
	Name           string
	OptionA        string
	OptionB        string
	VotesA         int
	VotesB         int
	Statistic      float64
	PValue         float64
	Sig95          bool
	Sig99          bool
	Estimate       float64
	CILower        float64
	CIUpper        float64
	EffectH        float64
	Magnitude      string
	Interpretation string
	HasRatings     bool
	Insufficient   bool
	TStatistic     float64
	TPValue        float64
	TDF            int
	MeanDiff       float64
}

type indexPage struct {
	DatasetName string
	Total       int
	Shown       int
	Query       string
	SigFilter   string
	SortKey     string
	Anonymized  bool
	Rows        []resultView
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	sigFilter := r.URL.Query().Get("sig")
	sortKey := r.URL.Query().Get("sort")
	anonymized := r.URL.Query().Get("anonymize") == "1"

	rows := make([]resultView, 0, len(a.analyses))
	for _, an := range a.analyses {
		if q != "" && !strings.Contains(strings.ToLower(an.Comparison.Name), strings.ToLower(q)) {
			continue
		}
		switch sigFilter {
		case "95":
			if !an.ChiSquare.Significant95 {
				continue
			}
		case "99":
			if !an.ChiSquare.Significant99 {
				continue
			}
		}
		rows = append(rows, a.viewFor(an, anonymized))
	}

	sortRows(rows, sortKey)

	page := indexPage{
		DatasetName: a.dataset.Name,
		Total:       len(a.analyses),
		Shown:       len(rows),
		Query:       q,
		SigFilter:   sigFilter,
		SortKey:     sortKey,
		Anonymized:  anonymized,
		Rows:        rows,
	}

	if err := a.templates.ExecuteTemplate(w, "index.html", page); err != nil {
		a.logger.Error("[ui] failed to render index: %v", err)
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

type detailPage struct {
	Row      resultView
	SummaryA profile.Summary
	SummaryB profile.Summary
}

func (a *App) handleComparisonDetail(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	for _, an := range a.analyses {
		if an.Comparison.Name != name {
			continue
		}

		page := detailPage{
			Row:      a.viewFor(an, false),
			SummaryA: profile.Summarize(an.Comparison.ScoresA),
			SummaryB: profile.Summarize(an.Comparison.ScoresB),
		}
		if err := a.templates.ExecuteTemplate(w, "detail.html", page); err != nil {
			a.logger.Error("[ui] failed to render detail: %v", err)
			http.Error(w, "template error", http.StatusInternalServerError)
		}
		return
	}

	http.NotFound(w, r)
}

func (a *App) handleReport(w http.ResponseWriter, r *http.Request) {
	page := struct {
		DatasetName string
		Body        interface{}
	}{
		DatasetName: a.dataset.Name,
		Body:        report.HTML(a.dataset, a.analyses),
	}

	if err := a.templates.ExecuteTemplate(w, "report.html", page); err != nil {
		a.logger.Error("[ui] failed to render report: %v", err)
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

func (a *App) viewFor(an sweep.Analysis, anonymized bool) resultView {
	c := an.Comparison

	name, optA, optB := c.Name, c.OptionA, c.OptionB
	if anonymized {
		name = a.testAnon.Label(c.Name)
		optA = a.optAnon.Label(c.OptionA)
		optB = a.optAnon.Label(c.OptionB)
	}

	return resultView{
		Name:           name,
		OptionA:        optA,
		OptionB:        optB,
		VotesA:         c.VotesA,
		VotesB:         c.VotesB,
		Statistic:      an.ChiSquare.Statistic,
		PValue:         an.ChiSquare.PValue,
		Sig95:          an.ChiSquare.Significant95,
		Sig99:          an.ChiSquare.Significant99,
		Estimate:       an.Interval.Estimate,
		CILower:        an.Interval.Lower,
		CIUpper:        an.Interval.Upper,
		EffectH:        an.Effect.Value,
		Magnitude:      an.Effect.Magnitude,
		Interpretation: an.Interpretation,
		HasRatings:     len(c.ScoresA) > 0 || len(c.ScoresB) > 0,
		Insufficient:   an.TTest.InsufficientData,
		TStatistic:     an.TTest.Statistic,
		TPValue:        an.TTest.PValue,
		TDF:            an.TTest.DF,
		MeanDiff:       an.TTest.MeanDiff,
	}
}

func sortRows(rows []resultView, key string) {
	switch key {
	case "statistic":
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Statistic > rows[j].Statistic })
	case "name":
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	case "votes":
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].VotesA+rows[i].VotesB > rows[j].VotesA+rows[j].VotesB
		})
	default: // p-value ascending, most significant first
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].PValue < rows[j].PValue })
	}
}
