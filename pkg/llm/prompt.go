package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// sentimentPrompt builds the analysis instruction for up to the first
// 30 comments. The model is told to answer with JSON only.
func sentimentPrompt(product string, comments []string) (string, int) {
	sent := comments
	if len(sent) > maxCommentsSent {
		sent = sent[:maxCommentsSent]
	}

	prompt := fmt.Sprintf(`Analyze the sentiment of these Reddit comments about %q.

Comments:
%s

Provide a JSON response with:
1. "score": A number from 0 to 1 (0 = very negative, 0.5 = mixed, 1 = very positive)
2. "sentiment": One of "positive", "mixed", or "negative"
3. "summary": A 1-2 sentence summary of the overall sentiment
4. "positives": Array of 2-4 most mentioned positive points
5. "negatives": Array of 2-4 most mentioned negative points/complaints

Respond ONLY with valid JSON, no other text.`, product, strings.Join(sent, "\n---\n"))

	return prompt, len(sent)
}

// parseSentiment turns raw model output into a SentimentResult.
// Score and sentiment are taken as the model reports them; only the
// shape is enforced.
func parseSentiment(content string, sampleSize int) (*SentimentResult, error) {
	content = cleanJSONResponse(content)

	var parsed struct {
		Score     float64  `json:"score"`
		Sentiment string   `json:"sentiment"`
		Summary   string   `json:"summary"`
		Positives []string `json:"positives"`
		Negatives []string `json:"negatives"`
	}

	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, &ParseError{Content: content, Err: err}
	}

	result := &SentimentResult{
		Score:      parsed.Score,
		Sentiment:  parsed.Sentiment,
		Summary:    parsed.Summary,
		Positives:  parsed.Positives,
		Negatives:  parsed.Negatives,
		SampleSize: sampleSize,
	}

	if result.Positives == nil {
		result.Positives = []string{}
	}
	if result.Negatives == nil {
		result.Negatives = []string{}
	}

	return result, nil
}
