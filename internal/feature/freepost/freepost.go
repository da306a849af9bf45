// Package freepost fetches a bounded list of posts from a third-party JSON
// API (jsonplaceholder by default) and optionally caches them in Redis.
package freepost

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"gin-task-forms/internal/core/cache"
	"gin-task-forms/internal/domain"
	"gin-task-forms/internal/resource"
)

const (
	DefaultURL   = "https://jsonplaceholder.typicode.com/posts"
	DefaultLimit = 5

	failedMsg = "Failed to fetch free API data."
)

type Post struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

type Fetcher interface {
	Fetch(ctx context.Context, limit int) ([]Post, error)
}

// Client talks to the upstream posts endpoint.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	return &Client{BaseURL: baseURL, HTTP: &http.Client{Timeout: timeout}}
}

// Fetch returns at most limit posts. Every failure is an UpstreamError with
// a generic message; the transport detail stays in Err.
func (c *Client) Fetch(ctx context.Context, limit int) ([]Post, error) {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, domain.Upstream(failedMsg, err)
	}
	q := u.Query()
	q.Set("_limit", strconv.Itoa(limit))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, domain.Upstream(failedMsg, err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, domain.Upstream("Free API request failed.", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, domain.Upstream(failedMsg, fmt.Errorf("upstream status %d", res.StatusCode))
	}

	var posts []Post
	if err := json.NewDecoder(res.Body).Decode(&posts); err != nil {
		return nil, domain.Upstream(failedMsg, fmt.Errorf("decode posts: %w", err))
	}
	if len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

type Service struct {
	fetcher Fetcher
	cache   *cache.Cache
	ttl     time.Duration
	limit   int
	log     *zap.Logger
}

func NewService(f Fetcher, c *cache.Cache, ttl time.Duration, limit int, l *zap.Logger) *Service {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if c == nil {
		c = &cache.Cache{}
	}
	return &Service{fetcher: f, cache: c, ttl: ttl, limit: limit, log: l}
}

// Posts never holds any local store lock and never mutates local state.
func (s *Service) Posts(ctx context.Context) resource.Outcome {
	key := "free-posts:" + strconv.Itoa(s.limit)
	posts, err := cache.GetOrLoadJSON(ctx, s.cache, key, s.ttl, func(ctx context.Context) ([]Post, error) {
		return s.fetcher.Fetch(ctx, s.limit)
	})
	if err != nil {
		s.log.Warn("free posts fetch failed", zap.Error(err))
		return resource.FromError(err)
	}

	items := make([]any, 0, len(posts))
	for _, p := range posts {
		items = append(items, p)
	}
	return resource.Listed(items)
}
