package domain

import (
	"time"

	"github.com/google/uuid"
)

// Summary pairs a user's commentary with the synopsis the workflow produced
// for one article. The article title is a denormalized snapshot taken at
// insert time, not a live reference. Rows are never updated after creation.
type Summary struct {
	ID           uuid.UUID `json:"id"`
	ArticleID    string    `json:"article_id"`
	ArticleTitle string    `json:"article_title"`
	Summary      string    `json:"summary"`
	UserInput    string    `json:"user_input"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewSummary builds a Summary snapshot for an article with a fresh id.
func NewSummary(article Article, summaryText, userInput string) *Summary {
	return &Summary{
		ID:           uuid.New(),
		ArticleID:    article.ID,
		ArticleTitle: article.Title,
		Summary:      summaryText,
		UserInput:    userInput,
		CreatedAt:    time.Now().UTC(),
	}
}

// WorkflowResult is the parsed outcome of one summarization workflow call.
// Both fields are optional in the workflow's response.
type WorkflowResult struct {
	Summary        *string  `json:"summary,omitempty"`
	RelevanceScore *float64 `json:"relevance_score,omitempty"`
}
