package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"newsdesk/app/domain"
	"newsdesk/app/port"
)

// SummaryRepository implements port.SummaryRepository for PostgreSQL
type SummaryRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewSummaryRepository creates a new PostgreSQL summary repository
func NewSummaryRepository(db DatabaseIface, logger *slog.Logger) port.SummaryRepository {
	return &SummaryRepository{
		db:     db,
		logger: logger.With("component", "summary_repository"),
	}
}

// Insert persists a new summary row. Rows are insert-only.
func (r *SummaryRepository) Insert(ctx context.Context, summary *domain.Summary) error {
	query := `
		INSERT INTO summaries (id, article_id, article_title, summary, user_input, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query,
		summary.ID,
		summary.ArticleID,
		summary.ArticleTitle,
		summary.Summary,
		summary.UserInput,
		summary.CreatedAt,
	)
	if err != nil {
		r.logger.Error("failed to insert summary", "summary_id", summary.ID, "article_id", summary.ArticleID, "error", err)
		return fmt.Errorf("%w: inserting summary: %v", domain.ErrStoreFailed, err)
	}

	return nil
}

// List returns the full summary history, most recent first
func (r *SummaryRepository) List(ctx context.Context) ([]domain.Summary, error) {
	query := `
		SELECT id, article_id, article_title, summary, user_input, created_at
		FROM summaries
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error("failed to list summaries", "error", err)
		return nil, fmt.Errorf("%w: listing summaries: %v", domain.ErrStoreFailed, err)
	}
	defer rows.Close()

	summaries := make([]domain.Summary, 0)
	for rows.Next() {
		var s domain.Summary
		if err := rows.Scan(&s.ID, &s.ArticleID, &s.ArticleTitle, &s.Summary, &s.UserInput, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning summary row: %v", domain.ErrStoreFailed, err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating summary rows: %v", domain.ErrStoreFailed, err)
	}

	return summaries, nil
}

// Delete removes exactly one row by id
func (r *SummaryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM summaries WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("failed to delete summary", "summary_id", id, "error", err)
		return fmt.Errorf("%w: deleting summary %s: %v", domain.ErrStoreFailed, id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSummaryMissing
	}

	return nil
}
