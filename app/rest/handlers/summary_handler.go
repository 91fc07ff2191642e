package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"newsdesk/app/domain"
	"newsdesk/app/port"
	apperrors "newsdesk/app/utils/errors"
	"newsdesk/app/utils/validator"
)

// SummaryHandler handles summarization HTTP requests
type SummaryHandler struct {
	summaryUsecase port.SummaryUsecase
	validator      *validator.Validator
	logger         *slog.Logger
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(summaryUsecase port.SummaryUsecase, logger *slog.Logger) *SummaryHandler {
	return &SummaryHandler{
		summaryUsecase: summaryUsecase,
		validator:      validator.New(),
		logger:         logger,
	}
}

// ProcessRequest is the inbound payload for the summarization endpoint.
type ProcessRequest struct {
	Article   domain.Article `json:"article" validate:"required"`
	UserInput string         `json:"userInput"`
}

// ProcessResponse is returned when the workflow run completed and the
// summary row was persisted.
type ProcessResponse struct {
	OK      bool   `json:"ok"`
	Summary string `json:"summary"`
}

// Process runs the summarization workflow for one article
// @Summary Summarize an article
// @Description Forward the article to the external workflow, persist the
// @Description resulting summary, and overwrite the AI score when present
// @Tags summaries
// @Accept json
// @Produce json
// @Success 200 {object} ProcessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/process [post]
func (h *SummaryHandler) Process(c echo.Context) error {
	ctx := c.Request().Context()

	var req ProcessRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Warn("malformed process payload", "error", err)
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
	}

	if err := h.validator.Validate(req); err != nil {
		h.logger.Warn("process payload rejected", "error", err)
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: err.Error(),
		})
	}

	summary, err := h.summaryUsecase.Process(ctx, req.Article, req.UserInput)
	if err != nil {
		h.logger.Error("summarization failed",
			"article_id", req.Article.ID,
			"error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "summarization failed",
			Details: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, ProcessResponse{
		OK:      true,
		Summary: summary,
	})
}

// ListSummaries returns the persisted summaries, most recent first
// @Summary List summaries
// @Tags summaries
// @Produce json
// @Success 200 {array} domain.Summary
// @Failure 500 {object} ErrorResponse
// @Router /v1/summaries [get]
func (h *SummaryHandler) ListSummaries(c echo.Context) error {
	ctx := c.Request().Context()

	summaries, err := h.summaryUsecase.ListSummaries(ctx)
	if err != nil {
		h.logger.Error("summary listing failed", "error", err)
		return c.JSON(apperrors.GetHTTPStatusCode(err), ErrorResponse{
			Error: "failed to list summaries",
		})
	}

	if summaries == nil {
		summaries = []domain.Summary{}
	}
	return c.JSON(http.StatusOK, summaries)
}

// DeleteSummary removes one summary row
// @Summary Delete a summary
// @Tags summaries
// @Param id path string true "Summary ID (UUID)"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/summaries/{id} [delete]
func (h *SummaryHandler) DeleteSummary(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid summary id",
		})
	}

	if err := h.summaryUsecase.DeleteSummary(ctx, id); err != nil {
		if errors.Is(err, domain.ErrSummaryMissing) {
			return c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "summary not found",
			})
		}
		h.logger.Error("summary delete failed", "summary_id", id, "error", err)
		return c.JSON(apperrors.GetHTTPStatusCode(err), ErrorResponse{
			Error: "failed to delete summary",
		})
	}

	return c.NoContent(http.StatusNoContent)
}
