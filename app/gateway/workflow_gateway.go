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

// WorkflowClient is the driver-side contract for the summarization workflow
type WorkflowClient interface {
	Summarize(ctx context.Context, article domain.Article, userInput string) (*domain.WorkflowResult, error)
}

// WorkflowGateway implements port.SummaryWorkflow over the webhook client
type WorkflowGateway struct {
	client WorkflowClient
	logger *slog.Logger
}

// NewWorkflowGateway creates a new WorkflowGateway instance
func NewWorkflowGateway(client WorkflowClient, logger *slog.Logger) *WorkflowGateway {
	return &WorkflowGateway{
		client: client,
		logger: logutil.WithComponent(logger, "workflow_gateway"),
	}
}

// Summarize invokes the workflow once; there are no retries. The result's
// summary and relevance score are both optional.
func (g *WorkflowGateway) Summarize(ctx context.Context, article domain.Article, userInput string) (*domain.WorkflowResult, error) {
	start := time.Now()

	result, err := g.client.Summarize(ctx, article, userInput)
	if err != nil {
		metrics.RecordWorkflowRun("failure")
		g.logger.Error("workflow invocation failed", "article_id", article.ID, "error", err)
		return nil, fmt.Errorf("invoking summarization workflow: %w", err)
	}
	metrics.RecordWorkflowRun("success")

	logutil.LogDuration(g.logger, start, "workflow_invocation",
		"article_id", article.ID,
		"has_summary", result.Summary != nil,
		"has_relevance_score", result.RelevanceScore != nil)
	return result, nil
}
