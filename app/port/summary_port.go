package port

//go:generate mockgen -source=summary_port.go -destination=../mocks/mock_summary_port.go

import (
	"context"

	"github.com/google/uuid"

	"newsdesk/app/domain"
)

// SummaryUsecase defines the summary ingestion and history business logic
type SummaryUsecase interface {
	// Process forwards the article and commentary to the summarization
	// workflow, persists the outcome and updates the AI score signal.
	// It returns the generated summary text.
	Process(ctx context.Context, article domain.Article, userInput string) (string, error)

	// ListSummaries returns the persisted history, most recent first.
	ListSummaries(ctx context.Context) ([]domain.Summary, error)

	// DeleteSummary removes exactly one row by id.
	DeleteSummary(ctx context.Context, id uuid.UUID) error
}

// SummaryRepository defines data access for persisted summaries
type SummaryRepository interface {
	Insert(ctx context.Context, summary *domain.Summary) error
	List(ctx context.Context) ([]domain.Summary, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SummaryWorkflow defines the gateway to the external summarization workflow
type SummaryWorkflow interface {
	Summarize(ctx context.Context, article domain.Article, userInput string) (*domain.WorkflowResult, error)
}
