package workflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"newsdesk/app/config"
	"newsdesk/app/domain"
)

// Client invokes the external summarization workflow over a webhook
type Client struct {
	httpClient *http.Client
	endpoint   string
	logger     *slog.Logger
}

// NewClient creates a new workflow client
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	u, err := url.Parse(cfg.WorkflowURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid workflow URL: %s", cfg.WorkflowURL)
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.ClientTimeout},
		endpoint:   cfg.WorkflowURL,
		logger:     logger.With("component", "workflow_client"),
	}, nil
}

// request mirrors the workflow's inbound contract: the whole article plus
// the user's free-text commentary.
type request struct {
	Article   domain.Article `json:"article"`
	UserInput string         `json:"userInput"`
}

// response mirrors the workflow's outbound contract. Both output fields
// may be absent.
type response struct {
	Output struct {
		Summary        *string  `json:"summary"`
		RelevanceScore *float64 `json:"relevance_score"`
	} `json:"output"`
}

// Summarize forwards the payload to the workflow and parses its JSON
// response. Transport failures and malformed responses are workflow errors;
// the caller surfaces them as a processing failure with diagnostic detail.
func (c *Client) Summarize(ctx context.Context, article domain.Article, userInput string) (*domain.WorkflowResult, error) {
	body, err := json.Marshal(request{Article: article, UserInput: userInput})
	if err != nil {
		return nil, fmt.Errorf("failed to encode workflow request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build workflow request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("workflow call failed", "article_id", article.ID, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrWorkflowFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.logger.Error("workflow returned non-2xx",
			"article_id", article.ID,
			"status", resp.StatusCode,
			"body", string(detail))
		return nil, fmt.Errorf("%w: status %d", domain.ErrWorkflowFailed, resp.StatusCode)
	}

	var parsed response
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrWorkflowMalformed, err)
	}

	return &domain.WorkflowResult{
		Summary:        parsed.Output.Summary,
		RelevanceScore: parsed.Output.RelevanceScore,
	}, nil
}
