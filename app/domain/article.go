package domain

import (
	"time"
)

// Article represents a news item sourced from the external article provider.
// Articles are read-only to this service; the provider owns their identity.
type Article struct {
	ID           string    `json:"id" validate:"required"`
	Title        string    `json:"title" validate:"required"`
	Content      string    `json:"content"`
	ThumbnailURL string    `json:"thumbnail_url"`
	URL          string    `json:"url"`
	Datetime     time.Time `json:"datetime"`
}

// RankedArticle is an Article combined with its popularity signals.
// It is derived on every list request and never persisted.
type RankedArticle struct {
	Article
	SelectionCount int     `json:"selection_count"`
	AIPoweredScore float64 `json:"ai_powered_score"`
}
