// Package ui serves the analytics dashboard: the results table with
// filtering and sorting, per-comparison detail views, the rendered
// significance report, and CSV export.
package ui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"sigdash/domain/compare"
	"sigdash/internal"
	"sigdash/internal/anonymize"
	"sigdash/internal/sweep"
)

//go:embed templates/*.html
var embeddedFiles embed.FS

// App is the dashboard application over one swept dataset.
type App struct {
	router    *chi.Mux
	templates *template.Template
	dataset   compare.Dataset
	analyses  []sweep.Analysis
	testAnon  *anonymize.Anonymizer
	optAnon   *anonymize.Anonymizer
	logger    *internal.Logger
	port      string
}

// Config holds dashboard configuration
type Config struct {
	Port     string
	Dataset  compare.Dataset
	Analyses []sweep.Analysis
}

// NewApp creates a new dashboard application
func NewApp(cfg Config) (*App, error) {
	funcMap := template.FuncMap{
		// Display rounding: 3 decimals for statistics, 4 for p-values.
		// Significance flags were decided from full precision upstream.
		"stat3": func(v float64) string { return fmt.Sprintf("%.3f", v) },
		"pval4": func(v float64) string { return fmt.Sprintf("%.4f", v) },
		"pct":   func(v float64) string { return fmt.Sprintf("%.1f%%", v*100) },
	}

	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	app := &App{
		router:    chi.NewRouter(),
		templates: templates,
		dataset:   cfg.Dataset,
		analyses:  cfg.Analyses,
		testAnon:  anonymize.New("Test"),
		optAnon:   anonymize.New("Option"),
		logger:    internal.DefaultLogger,
		port:      cfg.Port,
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app, nil
}

func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

func (a *App) setupRoutes() {
	a.router.Get("/", a.handleIndex)
	a.router.Get("/comparisons/{name}", a.handleComparisonDetail)
	a.router.Get("/report", a.handleReport)
	a.router.Get("/export.csv", a.handleExportCSV)
}

// Start runs the HTTP server, blocking until it exits.
func (a *App) Start() error {
	addr := ":" + a.port
	a.logger.Info("[ui] dashboard listening on %s (%d comparisons)", addr, len(a.analyses))
	return http.ListenAndServe(addr, a.router)
}

// Router exposes the chi mux for tests.
func (a *App) Router() chi.Router {
	return a.router
}
