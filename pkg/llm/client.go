package llm

import (
	"fmt"
	"strings"
)

const (
	SentimentPositive = "positive"
	SentimentMixed    = "mixed"
	SentimentNegative = "negative"
)

// Only this many comments are forwarded to the model; the evidence
// sample itself may hold up to 50.
const maxCommentsSent = 30

type SentimentResult struct {
	Score      float64  `json:"score"`
	Sentiment  string   `json:"sentiment"`
	Summary    string   `json:"summary"`
	Positives  []string `json:"positives"`
	Negatives  []string `json:"negatives"`
	SampleSize int      `json:"sampleSize"`
}

type Analyzer interface {
	Analyze(product string, comments []string) (*SentimentResult, error)
}

// APIError reports a non-success status from an analysis backend.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("analysis backend error: %d - %s", e.Status, e.Body)
}

// ParseError reports a model response that could not be turned into a
// SentimentResult.
type ParseError struct {
	Content string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return "empty model response"
	}
	return fmt.Sprintf("failed to parse model response: %v, content: %s", e.Err, e.Content)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
