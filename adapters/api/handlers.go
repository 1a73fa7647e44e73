package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"sigdash/domain/compare"
	"sigdash/domain/core"
	"sigdash/internal/significance"
)

func (s *Server) handleChiSquare(c *gin.Context) {
	var req ChiSquareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, significance.ChiSquareTest(req.VotesA, req.VotesB))
}

func (s *Server) handleTTest(c *gin.Context) {
	var req TTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, significance.TTest(req.ScoresA, req.ScoresB))
}

func (s *Server) handleProportionInterval(c *gin.Context) {
	var req IntervalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if req.Successes > req.Total {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "successes cannot exceed total"})
		return
	}

	confidence := req.Confidence
	if confidence == 0 {
		confidence = 0.95
	}
	c.JSON(http.StatusOK, significance.ProportionConfidenceInterval(req.Successes, req.Total, confidence))
}

func (s *Server) handleEffectSize(c *gin.Context) {
	var req EffectSizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, significance.EffectSize(req.P1, req.P2))
}

func (s *Server) handleInterpret(c *gin.Context) {
	p, err := strconv.ParseFloat(c.Query("p"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "query parameter p must be a number"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"p_value": p, "interpretation": significance.InterpretPValue(p)})
}

// handleAnalyze sweeps an in-memory dataset and, when repositories are
// configured, persists the dataset metadata and result rows.
func (s *Server) handleAnalyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	ds := compare.Dataset{
		ID:        core.DatasetID(core.NewID()),
		Name:      req.Name,
		CreatedAt: time.Now().UTC(),
	}
	for _, p := range req.Comparisons {
		ds.Comparisons = append(ds.Comparisons, p.toDomain())
	}

	analyses, err := s.runner.Run(c.Request.Context(), ds)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	if s.datasets != nil && s.results != nil {
		if err := s.datasets.Create(c.Request.Context(), &ds); err != nil {
			s.logger.Error("[api] failed to persist dataset %s: %v", ds.ID, err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to persist dataset"})
			return
		}

		rows := make([]compare.ResultRow, len(analyses))
		for i, a := range analyses {
			rows[i] = a.Row(ds.ID)
		}
		if err := s.results.SaveAll(c.Request.Context(), rows); err != nil {
			s.logger.Error("[api] failed to persist results for %s: %v", ds.ID, err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to persist results"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"dataset_id": ds.ID, "analyses": analyses})
}

func (s *Server) handleListDatasets(c *gin.Context) {
	if s.datasets == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "persistence not configured"})
		return
	}

	limit, offset := paginationParams(c)
	datasets, err := s.datasets.List(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"datasets": datasets})
}

func (s *Server) handleDatasetResults(c *gin.Context) {
	if s.results == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "persistence not configured"})
		return
	}

	id := core.DatasetID(c.Param("id"))
	rows, err := s.results.ListByDataset(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": rows})
}

func paginationParams(c *gin.Context) (limit, offset int) {
	limit = 50
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 200 {
		limit = v
	}
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v >= 0 {
		offset = v
	}
	return limit, offset
}
