package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"newsdesk/app/domain"
	"newsdesk/app/port"
	apperrors "newsdesk/app/utils/errors"
	"newsdesk/app/utils/validator"
)

// ArticleHandler handles article HTTP requests
type ArticleHandler struct {
	articleUsecase port.ArticleUsecase
	logger         *slog.Logger
}

// NewArticleHandler creates a new article handler
func NewArticleHandler(articleUsecase port.ArticleUsecase, logger *slog.Logger) *ArticleHandler {
	return &ArticleHandler{
		articleUsecase: articleUsecase,
		logger:         logger,
	}
}

// ListArticles returns the ranked article list
// @Summary List ranked articles
// @Description Fetch the article catalog and return it ordered by popularity
// @Tags articles
// @Produce json
// @Success 200 {array} domain.RankedArticle
// @Failure 502 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/articles [get]
func (h *ArticleHandler) ListArticles(c echo.Context) error {
	ctx := c.Request().Context()

	ranked, err := h.articleUsecase.ListRanked(ctx)
	if err != nil {
		h.logger.Error("article listing failed", "error", err)
		if errors.Is(err, domain.ErrUpstreamUnavailable) {
			return c.JSON(http.StatusBadGateway, ErrorResponse{
				Error: "article source unavailable",
			})
		}
		return c.JSON(apperrors.GetHTTPStatusCode(err), ErrorResponse{
			Error: "failed to list articles",
		})
	}

	if ranked == nil {
		ranked = []domain.RankedArticle{}
	}
	return c.JSON(http.StatusOK, ranked)
}

// GetArticle returns a single article from the fetched catalog
// @Summary Get article by id
// @Tags articles
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} domain.Article
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /v1/articles/{id} [get]
func (h *ArticleHandler) GetArticle(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	if !validator.IsValidArticleID(id) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid article id",
		})
	}

	article, err := h.articleUsecase.GetArticle(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrArticleNotFound):
			return c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "article not found",
			})
		case errors.Is(err, domain.ErrUpstreamUnavailable):
			h.logger.Error("article lookup failed", "article_id", id, "error", err)
			return c.JSON(http.StatusBadGateway, ErrorResponse{
				Error: "article source unavailable",
			})
		default:
			h.logger.Error("article lookup failed", "article_id", id, "error", err)
			return c.JSON(apperrors.GetHTTPStatusCode(err), ErrorResponse{
				Error: "failed to get article",
			})
		}
	}

	return c.JSON(http.StatusOK, article)
}

// RecordSelection bumps the selection counter for an article. The write is
// best-effort: the response is 204 whether or not the store accepted it.
// @Summary Record article selection
// @Tags articles
// @Param id path string true "Article ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Router /v1/articles/{id}/selection [post]
func (h *ArticleHandler) RecordSelection(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	if !validator.IsValidArticleID(id) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid article id",
		})
	}

	h.articleUsecase.RecordSelection(ctx, id)
	return c.NoContent(http.StatusNoContent)
}
