// Package api exposes the significance engine over a JSON HTTP API.
package api

import (
	"github.com/gin-gonic/gin"

	"sigdash/internal"
	"sigdash/internal/sweep"
	"sigdash/ports"
)

// Server is the JSON API server. The repositories are optional: without
// them the server runs stateless and /api/datasets endpoints that need
// persistence return 503.
type Server struct {
	router   *gin.Engine
	runner   *sweep.Runner
	datasets ports.DatasetRepository
	results  ports.ResultRepository
	logger   *internal.Logger
}

// NewServer creates the API server and registers its routes.
func NewServer(runner *sweep.Runner, datasets ports.DatasetRepository, results ports.ResultRepository) *Server {
	s := &Server{
		router:   gin.Default(),
		runner:   runner,
		datasets: datasets,
		results:  results,
		logger:   internal.DefaultLogger,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.Group("/api")

	// Direct engine operations
	api.POST("/tests/chi-square", s.handleChiSquare)
	api.POST("/tests/t-test", s.handleTTest)
	api.POST("/intervals/proportion", s.handleProportionInterval)
	api.POST("/effect-size", s.handleEffectSize)
	api.GET("/interpret", s.handleInterpret)

	// Dataset sweep and persistence
	api.POST("/datasets/analyze", s.handleAnalyze)
	api.GET("/datasets", s.handleListDatasets)
	api.GET("/datasets/:id/results", s.handleDatasetResults)

	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}

// Run starts the server on addr, blocking until it exits.
func (s *Server) Run(addr string) error {
	s.logger.Info("[api] listening on %s", addr)
	return s.router.Run(addr)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
