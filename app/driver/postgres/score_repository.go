package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"newsdesk/app/domain"
	"newsdesk/app/port"
)

// ScoreRepository implements port.ScoreRepository for PostgreSQL
type ScoreRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewScoreRepository creates a new PostgreSQL score repository
func NewScoreRepository(db DatabaseIface, logger *slog.Logger) port.ScoreRepository {
	return &ScoreRepository{
		db:     db,
		logger: logger.With("component", "score_repository"),
	}
}

// ListScores returns every score row in the table
func (r *ScoreRepository) ListScores(ctx context.Context) ([]domain.ArticleScore, error) {
	query := `
		SELECT article_id, selection_count, ai_powered_score, created_at, updated_at
		FROM article_scores`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error("failed to list scores", "error", err)
		return nil, fmt.Errorf("%w: listing scores: %v", domain.ErrStoreFailed, err)
	}
	defer rows.Close()

	scores := make([]domain.ArticleScore, 0)
	for rows.Next() {
		var s domain.ArticleScore
		if err := rows.Scan(&s.ArticleID, &s.SelectionCount, &s.AIPoweredScore, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning score row: %v", domain.ErrStoreFailed, err)
		}
		scores = append(scores, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating score rows: %v", domain.ErrStoreFailed, err)
	}

	return scores, nil
}

// IncrementSelection atomically upserts the selection counter: a missing row
// is created with count 1, an existing row is incremented. The store's
// conflict handling serializes concurrent writes to the same article.
func (r *ScoreRepository) IncrementSelection(ctx context.Context, articleID string) error {
	query := `
		INSERT INTO article_scores (article_id, selection_count)
		VALUES ($1, 1)
		ON CONFLICT (article_id)
		DO UPDATE SET
			selection_count = article_scores.selection_count + 1,
			updated_at = NOW()`

	if _, err := r.db.Exec(ctx, query, articleID); err != nil {
		r.logger.Error("failed to increment selection count", "article_id", articleID, "error", err)
		return fmt.Errorf("%w: incrementing selection for %s: %v", domain.ErrStoreFailed, articleID, err)
	}

	return nil
}

// SetAIScore unconditionally overwrites the AI score for the article,
// creating the row when absent. The score is replaced, never accumulated.
func (r *ScoreRepository) SetAIScore(ctx context.Context, articleID string, score float64) error {
	query := `
		INSERT INTO article_scores (article_id, ai_powered_score)
		VALUES ($1, $2)
		ON CONFLICT (article_id)
		DO UPDATE SET
			ai_powered_score = EXCLUDED.ai_powered_score,
			updated_at = NOW()`

	if _, err := r.db.Exec(ctx, query, articleID, score); err != nil {
		r.logger.Error("failed to set ai score", "article_id", articleID, "score", score, "error", err)
		return fmt.Errorf("%w: setting ai score for %s: %v", domain.ErrStoreFailed, articleID, err)
	}

	return nil
}
