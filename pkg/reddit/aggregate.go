package reddit

import (
	"log/slog"
	"sort"
	"sync"
)

// CommentsForProduct searches Reddit for the product, fetches every
// matching post's comments in parallel and returns the top comment
// bodies ranked by score. A post whose fetch fails contributes
// nothing; only a failed search aborts the run. An empty slice means
// no discussions were found.
func (c *Client) CommentsForProduct(product string) ([]string, error) {
	posts, err := c.Search(product)
	if err != nil {
		return nil, err
	}

	if len(posts) == 0 {
		return []string{}, nil
	}

	// One result slot per post so a slow or failing fetch cannot
	// affect the others. Ties in score keep this discovery order.
	results := make([][]Comment, len(posts))

	var wg sync.WaitGroup
	for i, post := range posts {
		wg.Add(1)
		go func(i int, permalink string) {
			defer wg.Done()
			comments, err := c.FetchPostComments(permalink)
			if err != nil {
				slog.Warn("skipping post after fetch failure", "permalink", permalink, "error", err)
				return
			}
			results[i] = comments
		}(i, post.Permalink)
	}
	wg.Wait()

	var all []Comment
	for _, comments := range results {
		all = append(all, comments...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Score > all[j].Score
	})

	if len(all) > maxComments {
		all = all[:maxComments]
	}

	bodies := make([]string, len(all))
	for i, comment := range all {
		bodies[i] = comment.Body
	}

	return bodies, nil
}
