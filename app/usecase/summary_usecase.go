package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"newsdesk/app/domain"
	"newsdesk/app/port"
	apperrors "newsdesk/app/utils/errors"
	"newsdesk/app/utils/validator"
)

// SummaryUseCase implements summary ingestion and history management
type SummaryUseCase struct {
	workflow  port.SummaryWorkflow
	scores    port.ScoreRepository
	summaries port.SummaryRepository
	logger    *slog.Logger
}

// NewSummaryUseCase creates a new SummaryUseCase instance
func NewSummaryUseCase(
	workflow port.SummaryWorkflow,
	scores port.ScoreRepository,
	summaries port.SummaryRepository,
	logger *slog.Logger,
) *SummaryUseCase {
	return &SummaryUseCase{
		workflow:  workflow,
		scores:    scores,
		summaries: summaries,
		logger:    logger.With("component", "summary_usecase"),
	}
}

// Process runs the single linear ingestion path: invoke the workflow,
// overwrite the AI score when the response carries one, persist the summary
// row. A score-write failure is logged and swallowed; a summary-insert
// failure is terminal and surfaces to the caller.
func (uc *SummaryUseCase) Process(ctx context.Context, article domain.Article, userInput string) (string, error) {
	result, err := uc.workflow.Summarize(ctx, article, userInput)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeWorkflowError, "workflow invocation failed", err)
	}

	if result.RelevanceScore != nil {
		if !validator.IsValidRelevanceScore(*result.RelevanceScore) {
			uc.logger.Warn("relevance score outside unit interval",
				"article_id", article.ID,
				"score", *result.RelevanceScore)
		}
		if err := uc.scores.SetAIScore(ctx, article.ID, *result.RelevanceScore); err != nil {
			uc.logger.Error("ai score update failed", "article_id", article.ID, "error", err)
		}
	}

	var summaryText string
	if result.Summary != nil {
		summaryText = *result.Summary
	}

	summary := domain.NewSummary(article, summaryText, userInput)
	if err := uc.summaries.Insert(ctx, summary); err != nil {
		uc.logger.Error("summary insert failed", "article_id", article.ID, "error", err)
		return "", apperrors.Wrap(apperrors.ErrCodeStoreError, "summary persistence failed", err)
	}

	uc.logger.Info("summary persisted",
		"summary_id", summary.ID,
		"article_id", article.ID)
	return summaryText, nil
}

// ListSummaries returns the persisted history, most recent first
func (uc *SummaryUseCase) ListSummaries(ctx context.Context) ([]domain.Summary, error) {
	summaries, err := uc.summaries.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeStoreError, "summary listing failed", err)
	}
	return summaries, nil
}

// DeleteSummary removes exactly one row by id
func (uc *SummaryUseCase) DeleteSummary(ctx context.Context, id uuid.UUID) error {
	if err := uc.summaries.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("summary deleted", "summary_id", id)
	return nil
}
