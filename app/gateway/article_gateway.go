package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"newsdesk/app/domain"
	"newsdesk/app/metrics"
	logutil "newsdesk/app/utils/logger"
)

// ArticleClient is the driver-side contract for the article provider
type ArticleClient interface {
	FetchArticles(ctx context.Context) ([]domain.Article, error)
}

// ArticleGateway implements port.ArticleSource.
// It acts as an anti-corruption layer between the domain and the external
// article provider.
type ArticleGateway struct {
	client ArticleClient
	logger *slog.Logger
}

// NewArticleGateway creates a new ArticleGateway instance
func NewArticleGateway(client ArticleClient, logger *slog.Logger) *ArticleGateway {
	return &ArticleGateway{
		client: client,
		logger: logutil.WithComponent(logger, "article_gateway"),
	}
}

// FetchArticles fetches the raw catalog from the provider. Failures abort
// the caller's request; there are no partial results.
func (g *ArticleGateway) FetchArticles(ctx context.Context) ([]domain.Article, error) {
	start := time.Now()

	articles, err := g.client.FetchArticles(ctx)
	metrics.UpstreamFetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		g.logger.Error("failed to fetch article catalog", "error", err)
		return nil, fmt.Errorf("fetching article catalog: %w", err)
	}

	g.logger.Debug("article catalog fetched",
		"count", len(articles),
		"duration_ms", time.Since(start).Milliseconds())
	return articles, nil
}
