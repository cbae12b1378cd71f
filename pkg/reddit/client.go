package reddit

import (
	"net/http"
	"time"
)

const (
	searchURL = "https://www.reddit.com/search.json"
	baseURL   = "https://www.reddit.com"
	userAgent = "ReviewIntel/0.1.0"

	maxPosts           = 5
	maxCommentsPerPost = 20
	maxComments        = 50
)

type Post struct {
	Title       string `json:"title"`
	Selftext    string `json:"selftext"`
	Subreddit   string `json:"subreddit"`
	Permalink   string `json:"permalink"`
	Score       int    `json:"score"`
	NumComments int    `json:"num_comments"`
}

type Comment struct {
	Body      string
	Score     int
	Subreddit string
}

type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}
