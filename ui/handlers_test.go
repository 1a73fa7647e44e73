package ui

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sigdash/domain/compare"
	"sigdash/internal/sweep"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	ds := compare.Dataset{
		Name: "UI Tests",
		Comparisons: []compare.Comparison{
			{Name: "hero_copy", OptionA: "Punchy", OptionB: "Formal", VotesA: 80, VotesB: 20,
				ScoresA: []float64{4, 5, 4, 5}, ScoresB: []float64{2, 3, 2, 3}},
			{Name: "cta_color", OptionA: "Blue", OptionB: "Green", VotesA: 52, VotesB: 48},
			{Name: "nav_layout", OptionA: "Tabs", OptionB: "Sidebar", VotesA: 95, VotesB: 5},
		},
	}

	analyses, err := sweep.NewRunner(2).Run(context.Background(), ds)
	require.NoError(t, err)

	app, err := NewApp(Config{Port: "0", Dataset: ds, Analyses: analyses})
	require.NoError(t, err)
	return app
}

func get(t *testing.T, app *App, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, req)
	return rec
}

func TestIndex_ShowsAllComparisons(t *testing.T) {
	app := newTestApp(t)

	rec := get(t, app, "/")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "hero_copy")
	assert.Contains(t, body, "cta_color")
	assert.Contains(t, body, "nav_layout")
	assert.Contains(t, body, "Showing 3 of 3")
}

func TestIndex_SignificanceFilter(t *testing.T) {
	app := newTestApp(t)

	rec := get(t, app, "/?sig=99")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "hero_copy")
	assert.Contains(t, body, "nav_layout")
	assert.NotContains(t, body, "cta_color")
}

func TestIndex_TextFilter(t *testing.T) {
	app := newTestApp(t)

	rec := get(t, app, "/?q=hero")
	body := rec.Body.String()
	assert.Contains(t, body, "hero_copy")
	assert.NotContains(t, body, "nav_layout")
}

func TestIndex_DefaultSortByPValue(t *testing.T) {
	app := newTestApp(t)

	body := get(t, app, "/").Body.String()

	// nav_layout (95/5) is the most lopsided and must render first.
	assert.Less(t, strings.Index(body, "nav_layout"), strings.Index(body, "hero_copy"))
	assert.Less(t, strings.Index(body, "hero_copy"), strings.Index(body, "cta_color"))
}

func TestIndex_AnonymizedLabelsAreStable(t *testing.T) {
	app := newTestApp(t)

	first := get(t, app, "/?anonymize=1&sort=name").Body.String()
	second := get(t, app, "/?anonymize=1&sort=name").Body.String()

	assert.NotContains(t, first, "hero_copy")
	assert.Contains(t, first, "Test 1")
	assert.Contains(t, first, "Option 1")

	// Memoized mapping: repeated requests render identical labels.
	assert.Equal(t, first, second)
}

func TestComparisonDetail(t *testing.T) {
	app := newTestApp(t)

	rec := get(t, app, "/comparisons/hero_copy")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "hero_copy")
	assert.Contains(t, body, "Welch")
	assert.Contains(t, body, "Punchy")

	rec = get(t, app, "/comparisons/does_not_exist")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReportPage(t *testing.T) {
	app := newTestApp(t)

	rec := get(t, app, "/report")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Significance Report")
}

func TestExportCSV(t *testing.T) {
	app := newTestApp(t)

	rec := get(t, app, "/export.csv")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	lines := strings.Split(strings.TrimSpace(body), "\n")
	require.Len(t, lines, 4, "header plus one line per comparison")
	assert.True(t, strings.HasPrefix(lines[0], "test,option_a,option_b"))
	assert.Contains(t, body, "hero_copy")
	// Display rounding carries into the export.
	assert.Contains(t, body, "36.000")
}
