package domain

import "errors"

// Failure taxonomy for the three external collaborators. Every failure is
// terminal for the current request; there is no retry anywhere.
var (
	// Upstream article provider errors
	ErrUpstreamUnavailable = errors.New("article source unavailable")
	ErrArticleNotFound     = errors.New("article not found")

	// Summarization workflow errors
	ErrWorkflowFailed    = errors.New("summarization workflow failed")
	ErrWorkflowMalformed = errors.New("malformed workflow response")

	// Persistence errors
	ErrStoreFailed    = errors.New("store operation failed")
	ErrSummaryMissing = errors.New("summary not found")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
)
