package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"newsdesk/app/config"
	"newsdesk/app/domain"
)

const apiKeyHeader = "x-api-key"

// Client fetches the raw article catalog from the external provider
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	logger     *slog.Logger
}

// NewClient creates a new article provider client
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if !isValidURL(cfg.ArticlesAPIURL) {
		return nil, fmt.Errorf("invalid articles API URL: %s", cfg.ArticlesAPIURL)
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.ClientTimeout},
		endpoint:   cfg.ArticlesAPIURL,
		apiKey:     cfg.ArticlesAPIKey,
		logger:     logger.With("component", "newsapi_client"),
	}, nil
}

// articlePayload mirrors the provider's wire format
type articlePayload struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	ThumbnailURL string    `json:"thumbnail_url"`
	URL          string    `json:"url"`
	Datetime     time.Time `json:"datetime"`
}

// FetchArticles issues an authenticated read against the provider endpoint.
// Any transport failure or non-2xx status is an upstream-unavailable error;
// the caller must treat it as fatal for the current request.
func (c *Client) FetchArticles(ctx context.Context) ([]domain.Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build articles request: %w", err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("article fetch failed", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.logger.Error("article fetch returned non-2xx",
			"status", resp.StatusCode,
			"body", string(body))
		return nil, fmt.Errorf("%w: status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var payload []articlePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decoding articles: %v", domain.ErrUpstreamUnavailable, err)
	}

	articles := make([]domain.Article, 0, len(payload))
	for _, p := range payload {
		articles = append(articles, domain.Article{
			ID:           p.ID,
			Title:        p.Title,
			Content:      p.Content,
			ThumbnailURL: p.ThumbnailURL,
			URL:          p.URL,
			Datetime:     p.Datetime,
		})
	}

	c.logger.Debug("fetched article catalog", "count", len(articles))
	return articles, nil
}

func isValidURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
