package model

import (
	"time"

	"github.com/aruneshvv/review-intel/pkg/llm"
)

const (
	StatusIdle    = "idle"
	StatusLoading = "loading"
	StatusSuccess = "success"
	StatusError   = "error"
)

// AnalysisState is the single source of truth for one analysis run.
// It is replaced wholesale on every transition, never mutated.
type AnalysisState struct {
	Status  string               `json:"status"`
	Product string               `json:"product,omitempty"`
	Result  *llm.SentimentResult `json:"result,omitempty"`
	Error   string               `json:"error,omitempty"`
}

// AnalysisRecord is a completed analysis as stored in postgres.
type AnalysisRecord struct {
	ID         int64
	Product    string
	Score      float64
	Sentiment  string
	Summary    string
	Positives  []string
	Negatives  []string
	SampleSize int
	CreatedAt  time.Time
}
