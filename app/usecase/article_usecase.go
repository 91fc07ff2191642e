package usecase

import (
	"context"
	"log/slog"

	"newsdesk/app/domain"
	"newsdesk/app/port"
	apperrors "newsdesk/app/utils/errors"
)

// ArticleUseCase implements article listing, lookup and selection tracking
type ArticleUseCase struct {
	source port.ArticleSource
	scores port.ScoreRepository
	logger *slog.Logger
}

// NewArticleUseCase creates a new ArticleUseCase instance
func NewArticleUseCase(source port.ArticleSource, scores port.ScoreRepository, logger *slog.Logger) *ArticleUseCase {
	return &ArticleUseCase{
		source: source,
		scores: scores,
		logger: logger.With("component", "article_usecase"),
	}
}

// ListRanked fetches the catalog and stored scores, then merges them into
// the ranked list. Either read failing aborts the whole request; the score
// fields always reflect the rows at read time, nothing is cached.
func (uc *ArticleUseCase) ListRanked(ctx context.Context) ([]domain.RankedArticle, error) {
	articles, err := uc.source.FetchArticles(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeUpstreamUnavailable, "article source unavailable", err)
	}

	scores, err := uc.scores.ListScores(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeStoreError, "score listing failed", err)
	}

	return domain.MergeRank(articles, scores), nil
}

// GetArticle resolves one article from the fetched catalog by id
func (uc *ArticleUseCase) GetArticle(ctx context.Context, id string) (*domain.Article, error) {
	articles, err := uc.source.FetchArticles(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeUpstreamUnavailable, "article source unavailable", err)
	}

	for i := range articles {
		if articles[i].ID == id {
			return &articles[i], nil
		}
	}

	return nil, domain.ErrArticleNotFound
}

// RecordSelection increments the selection counter for an article.
// Best-effort telemetry: the user-facing flow has already completed, so a
// store failure is logged and swallowed, never surfaced.
func (uc *ArticleUseCase) RecordSelection(ctx context.Context, articleID string) {
	if err := uc.scores.IncrementSelection(ctx, articleID); err != nil {
		uc.logger.Error("selection count update failed", "article_id", articleID, "error", err)
	}
}
