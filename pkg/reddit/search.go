package reddit

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// SearchError reports a non-success status from the Reddit search endpoint.
type SearchError struct {
	Status int
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("reddit search failed: %d", e.Status)
}

type searchResponse struct {
	Data struct {
		Children []struct {
			Data Post `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// Search returns up to 5 posts matching the query, in Reddit's own
// relevance order. An empty result is not an error.
func (c *Client) Search(query string) ([]Post, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("sort", "relevance")
	params.Set("t", "all")
	params.Set("limit", fmt.Sprintf("%d", maxPosts))

	req, err := http.NewRequest(http.MethodGet, searchURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("reddit search request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reddit search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &SearchError{Status: resp.StatusCode}
	}

	var raw searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("reddit search decode: %w", err)
	}

	posts := make([]Post, 0, len(raw.Data.Children))
	for _, child := range raw.Data.Children {
		posts = append(posts, child.Data)
	}

	return posts, nil
}
