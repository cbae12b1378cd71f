package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aruneshvv/review-intel/internal/model"
)

type AnalysisSession interface {
	State() model.AnalysisState
	Start(product string)
}

type AnalysisStore interface {
	GetAnalyses(limit, offset int) ([]model.AnalysisRecord, error)
	GetAnalysisTotal() (int, error)
	GetLatestByProduct(product string) (*model.AnalysisRecord, error)
}

// SessionHandler exposes the analysis session to collaborators: read
// the current state, kick off a run, browse past results.
type SessionHandler struct {
	session    AnalysisSession
	repository AnalysisStore
}

func NewSessionHandler(session AnalysisSession, repository AnalysisStore) *SessionHandler {
	return &SessionHandler{session: session, repository: repository}
}

func (h *SessionHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.session.State())
}

// StartAnalysis acknowledges immediately; the run completes in the
// background and is observed through GetState.
func (h *SessionHandler) StartAnalysis(c *gin.Context) {
	var req StartAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing text"})
		return
	}

	h.session.Start(req.Text)
	c.JSON(http.StatusAccepted, gin.H{"status": "started"})
}

func (h *SessionHandler) GetAnalyses(c *gin.Context) {
	if h.repository == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "History not enabled"})
		return
	}

	limit := getQueryInt("limit", 10, c)
	offset := getQueryInt("offset", 0, c)

	records, err := h.repository.GetAnalyses(limit, offset)
	if err != nil {
		slog.Error("error fetching analyses", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.repository.GetAnalysisTotal()
	if err != nil {
		slog.Error("error fetching analysis total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := AnalysesResponse{
		Analyses: []AnalysisResponse{},
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	}

	for _, rec := range records {
		res.Analyses = append(res.Analyses, toAnalysisResponse(rec))
	}

	c.JSON(http.StatusOK, res)
}

func (h *SessionHandler) GetLatestAnalysis(c *gin.Context) {
	if h.repository == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "History not enabled"})
		return
	}

	product := strings.TrimSpace(c.Query("product"))
	if product == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing product"})
		return
	}

	record, err := h.repository.GetLatestByProduct(product)
	if err != nil {
		slog.Error("error fetching latest analysis", "product", product, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No analysis for this product"})
		return
	}

	c.JSON(http.StatusOK, toAnalysisResponse(*record))
}

func (h *SessionHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func toAnalysisResponse(rec model.AnalysisRecord) AnalysisResponse {
	return AnalysisResponse{
		ID:         rec.ID,
		Product:    rec.Product,
		Score:      rec.Score,
		Sentiment:  rec.Sentiment,
		Summary:    rec.Summary,
		Positives:  rec.Positives,
		Negatives:  rec.Negatives,
		SampleSize: rec.SampleSize,
		CreatedAt:  rec.CreatedAt.Format(time.RFC3339),
	}
}
