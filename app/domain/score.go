package domain

import "time"

// ArticleScore holds the popularity signals this service maintains for one
// article: how often users opened it, and the latest relevance score
// reported by the summarization workflow.
type ArticleScore struct {
	ArticleID      string    `json:"article_id"`
	SelectionCount int       `json:"selection_count"`
	AIPoweredScore float64   `json:"ai_powered_score"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
