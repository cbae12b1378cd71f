package reddit

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Replies never nest this deep in real payloads. The ceiling only
// guards against hostile response bodies.
const maxReplyDepth = 50

// FetchError reports a non-success status when fetching a post's comments.
type FetchError struct {
	Permalink string
	Status    int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch comments for %s: %d", e.Permalink, e.Status)
}

type commentListing struct {
	Data struct {
		Children []commentNode `json:"children"`
	} `json:"data"`
}

type commentNode struct {
	Kind string `json:"kind"`
	Data struct {
		Body      string       `json:"body"`
		Score     int          `json:"score"`
		Subreddit string       `json:"subreddit"`
		Replies   replyListing `json:"replies"`
	} `json:"data"`
}

// replyListing unwraps the replies field, which Reddit serializes as
// an empty string instead of null when a comment has no replies.
type replyListing struct {
	listing *commentListing
}

func (r *replyListing) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || b[0] != '{' {
		return nil
	}
	return json.Unmarshal(b, &r.listing)
}

// FetchPostComments retrieves a post's comment tree and flattens it.
// A well-formed post with no comments, or a payload that does not
// match the expected shape, yields an empty slice rather than an error.
func (c *Client) FetchPostComments(permalink string) ([]Comment, error) {
	url := fmt.Sprintf("%s%s.json?limit=%d", baseURL, permalink, maxCommentsPerPost)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("reddit comments request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reddit comments: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return nil, &FetchError{Permalink: permalink, Status: resp.StatusCode}
	}

	// The post data sits in element 0, the comment listing in element 1.
	var payload []commentListing
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return []Comment{}, nil
	}

	if len(payload) < 2 {
		return []Comment{}, nil
	}

	return extractComments(&payload[1], 0), nil
}

// extractComments walks the comment tree pre-order: each comment is
// emitted before its own replies. Only "t1" nodes with a body count;
// a skipped node's replies are not visited.
func extractComments(listing *commentListing, depth int) []Comment {
	if listing == nil || depth > maxReplyDepth {
		return nil
	}

	var comments []Comment
	for _, child := range listing.Data.Children {
		if child.Kind != "t1" || child.Data.Body == "" {
			continue
		}

		comments = append(comments, Comment{
			Body:      child.Data.Body,
			Score:     child.Data.Score,
			Subreddit: child.Data.Subreddit,
		})

		if child.Data.Replies.listing != nil {
			comments = append(comments, extractComments(child.Data.Replies.listing, depth+1)...)
		}
	}

	return comments
}
