package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type analyzeRequest struct {
	Product  string   `json:"product"`
	Comments []string `json:"comments"`
}

// RemoteClient delegates analysis to a running review-intel analysis
// API over HTTP.
type RemoteClient struct {
	url        string
	httpClient *http.Client
}

func NewRemoteClient(url string) *RemoteClient {
	return &RemoteClient{
		url:        url,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *RemoteClient) Analyze(product string, comments []string) (*SentimentResult, error) {
	body, err := json.Marshal(analyzeRequest{Product: product, Comments: comments})
	if err != nil {
		return nil, fmt.Errorf("analysis request encode: %w", err)
	}

	resp, err := c.httpClient.Post(c.url, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("analysis request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errBody, _ := io.ReadAll(resp.Body)
		return nil, &APIError{Status: resp.StatusCode, Body: string(errBody)}
	}

	var result SentimentResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &ParseError{Err: err}
	}

	if result.Positives == nil {
		result.Positives = []string{}
	}
	if result.Negatives == nil {
		result.Negatives = []string{}
	}

	return &result, nil
}
