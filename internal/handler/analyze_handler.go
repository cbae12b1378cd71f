package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aruneshvv/review-intel/pkg/llm"
)

type Analyzer interface {
	Analyze(product string, comments []string) (*llm.SentimentResult, error)
}

// AnalyzeHandler serves the analysis API: comments in, sentiment out.
type AnalyzeHandler struct {
	analyzer Analyzer
}

func NewAnalyzeHandler(analyzer Analyzer) *AnalyzeHandler {
	return &AnalyzeHandler{analyzer: analyzer}
}

func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing product or comments"})
		return
	}

	if req.Product == "" || len(req.Comments) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing product or comments"})
		return
	}

	result, err := h.analyzer.Analyze(req.Product, req.Comments)
	if err != nil {
		slog.Error("analysis failed", "product", req.Product, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Analysis failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *AnalyzeHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
