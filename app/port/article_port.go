package port

//go:generate mockgen -source=article_port.go -destination=../mocks/mock_article_port.go

import (
	"context"

	"newsdesk/app/domain"
)

// ArticleUsecase defines the article listing and selection business logic
type ArticleUsecase interface {
	// ListRanked fetches the catalog, merges stored scores and returns the
	// ranked list. Upstream failure aborts the whole request.
	ListRanked(ctx context.Context) ([]domain.RankedArticle, error)

	// GetArticle resolves a single article from the fetched catalog.
	GetArticle(ctx context.Context, id string) (*domain.Article, error)

	// RecordSelection increments the selection counter for an article.
	// Best-effort: store failures are logged, never surfaced to the user.
	RecordSelection(ctx context.Context, articleID string)
}

// ArticleSource defines the gateway to the external article provider
type ArticleSource interface {
	FetchArticles(ctx context.Context) ([]domain.Article, error)
}
