package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

type AnalyzeRequest struct {
	Product  string   `json:"product"`
	Comments []string `json:"comments"`
}

type StartAnalysisRequest struct {
	Text string `json:"text"`
}

type AnalysisResponse struct {
	ID         int64    `json:"id"`
	Product    string   `json:"product"`
	Score      float64  `json:"score"`
	Sentiment  string   `json:"sentiment"`
	Summary    string   `json:"summary"`
	Positives  []string `json:"positives"`
	Negatives  []string `json:"negatives"`
	SampleSize int      `json:"sample_size"`
	CreatedAt  string   `json:"created_at"`
}

type AnalysesResponse struct {
	Analyses []AnalysisResponse `json:"analyses"`
	Total    int                `json:"total"`
	Limit    int                `json:"limit"`
	Offset   int                `json:"offset"`
}

func getQueryInt(name string, fallback int, c *gin.Context) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
