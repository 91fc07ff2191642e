package port

//go:generate mockgen -source=score_port.go -destination=../mocks/mock_score_port.go

import (
	"context"

	"newsdesk/app/domain"
)

// ScoreRepository defines data access for per-article popularity signals
type ScoreRepository interface {
	// ListScores returns every score row; an empty table yields an empty slice.
	ListScores(ctx context.Context) ([]domain.ArticleScore, error)

	// IncrementSelection atomically upserts the row: count=1 when absent,
	// count+1 otherwise.
	IncrementSelection(ctx context.Context, articleID string) error

	// SetAIScore unconditionally overwrites the AI score, creating the row
	// when absent. The score is replaced, never accumulated.
	SetAIScore(ctx context.Context, articleID string, score float64) error
}
