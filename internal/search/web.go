// README: Google web search engine queries used to ground agent prompts.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// WebResult is a single organic search hit.
type WebResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

type webResponse struct {
	OrganicResults []WebResult `json:"organic_results"`
}

// Digest renders web results as a bulleted list suitable for injecting into
// an agent prompt as grounding context.
func Digest(results []WebResult) string {
	if len(results) == 0 {
		return "No web search findings available."
	}
	var b []byte
	for _, r := range results {
		b = append(b, fmt.Sprintf("- %s (%s): %s\n", r.Title, r.Link, r.Snippet)...)
	}
	return string(b)
}

// WebSearch runs a plain Google search and returns up to limit organic hits.
func (c *Client) WebSearch(ctx context.Context, query string, limit int) ([]WebResult, error) {
	if limit <= 0 {
		limit = 5
	}

	params := url.Values{}
	params.Set("engine", "google")
	params.Set("q", query)
	params.Set("num", strconv.Itoa(limit))

	body, err := c.do(ctx, params)
	if err != nil {
		return nil, err
	}

	var resp webResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse web results: %w", err)
	}

	results := resp.OrganicResults
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}
