// Package wiki talks to a MediaWiki instance: full-text title search plus
// retrieval of the rendered HTML of a page. All requests pass a robots.txt
// gate and a per-host rate limiter before hitting the network.
package wiki

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/ppiankov/presbot/internal/model"
)

// ErrNoResults is returned when a search yields no hits
var ErrNoResults = errors.New("no search results")

// Client queries the MediaWiki Action API
type Client struct {
	fetcher  *Fetcher
	limiter  *Limiter
	robots   *RobotsChecker // nil when robots checking is disabled
	endpoint string
	verbose  bool
}

// NewClient creates a client from configuration
func NewClient(cfg *model.Config) *Client {
	var robots *RobotsChecker
	if cfg.Robots.Enabled {
		robots = NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout, cfg.Robots.TTL)
	}

	return &Client{
		fetcher:  NewFetcher(cfg.HTTP.Timeout, cfg.HTTP.UserAgent, cfg.HTTP.MaxBodyBytes),
		limiter:  NewLimiter(cfg.Rate.RequestsPerSecond, cfg.Rate.Burst),
		robots:   robots,
		endpoint: cfg.Wiki.APIEndpoint(),
		verbose:  cfg.Output.Verbose,
	}
}

// Search runs a full-text search and returns the matching page titles in
// relevance order
func (c *Client) Search(ctx context.Context, query string) ([]string, error) {
	apiURL := fmt.Sprintf("%s?action=query&list=search&format=json&formatversion=2&srlimit=5&srsearch=%s",
		c.endpoint, url.QueryEscape(query))

	body, err := c.get(ctx, apiURL)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	var payload struct {
		Query struct {
			Search []struct {
				Title string `json:"title"`
			} `json:"search"`
		} `json:"query"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	if len(payload.Query.Search) == 0 {
		return nil, fmt.Errorf("search %q: %w", query, ErrNoResults)
	}

	titles := make([]string, 0, len(payload.Query.Search))
	for _, hit := range payload.Query.Search {
		titles = append(titles, hit.Title)
	}
	return titles, nil
}

// PageHTML retrieves the rendered HTML content of a page by exact title
func (c *Client) PageHTML(ctx context.Context, title string) (string, error) {
	apiURL := fmt.Sprintf("%s?action=parse&prop=text&format=json&formatversion=2&redirects=1&page=%s",
		c.endpoint, url.QueryEscape(title))

	body, err := c.get(ctx, apiURL)
	if err != nil {
		return "", fmt.Errorf("page %q: %w", title, err)
	}

	var payload struct {
		Parse struct {
			Title string `json:"title"`
			Text  string `json:"text"`
		} `json:"parse"`
		Error *struct {
			Code string `json:"code"`
			Info string `json:"info"`
		} `json:"error"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return "", fmt.Errorf("decode parse response: %w", err)
	}

	if payload.Error != nil {
		return "", fmt.Errorf("page %q: mediawiki %s: %s", title, payload.Error.Code, payload.Error.Info)
	}

	return payload.Parse.Text, nil
}

// RenderedPage resolves a subject to its reference page: search, take the
// top hit, fetch its rendered content
func (c *Client) RenderedPage(ctx context.Context, subject string) (string, error) {
	titles, err := c.Search(ctx, subject)
	if err != nil {
		return "", err
	}

	if c.verbose {
		fmt.Fprintf(os.Stderr, "resolved %q -> %q\n", subject, titles[0])
	}

	return c.PageHTML(ctx, titles[0])
}

// get applies the robots gate and rate limiter, then fetches the URL
func (c *Client) get(ctx context.Context, rawURL string) (string, error) {
	crawlDelay := time.Duration(0)

	if c.robots != nil {
		allowed, delay, err := c.robots.CanFetch(ctx, rawURL)
		if err != nil {
			return "", fmt.Errorf("robots check: %w", err)
		}
		if !allowed {
			return "", fmt.Errorf("robots.txt disallows %s", rawURL)
		}
		crawlDelay = delay
	}

	if err := c.limiter.WaitWithDelay(ctx, rawURL, crawlDelay); err != nil {
		return "", fmt.Errorf("rate limit: %w", err)
	}

	if c.verbose {
		fmt.Fprintf(os.Stderr, "GET %s\n", rawURL)
	}

	return c.fetcher.Fetch(ctx, rawURL)
}
