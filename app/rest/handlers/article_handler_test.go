package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"newsdesk/app/domain"
	mock_port "newsdesk/app/mocks"
)

func TestListArticles(t *testing.T) {
	ranked := []domain.RankedArticle{
		{
			Article: domain.Article{
				ID:       "a-1",
				Title:    "Most selected",
				Datetime: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
			},
			SelectionCount: 7,
			AIPoweredScore: 0.4,
		},
		{
			Article: domain.Article{
				ID:    "a-2",
				Title: "Runner up",
			},
		},
	}

	tests := []struct {
		name           string
		setupMocks     func(*mock_port.MockArticleUsecase)
		expectedStatus int
		expectedBody   func(*testing.T, []byte)
	}{
		{
			name: "returns the ranked list",
			setupMocks: func(uc *mock_port.MockArticleUsecase) {
				uc.EXPECT().ListRanked(gomock.Any()).Return(ranked, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: func(t *testing.T, body []byte) {
				var got []domain.RankedArticle
				require.NoError(t, json.Unmarshal(body, &got))
				require.Len(t, got, 2)
				assert.Equal(t, "a-1", got[0].ID)
				assert.Equal(t, 7, got[0].SelectionCount)
			},
		},
		{
			name: "empty catalog yields an empty array",
			setupMocks: func(uc *mock_port.MockArticleUsecase) {
				uc.EXPECT().ListRanked(gomock.Any()).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: func(t *testing.T, body []byte) {
				assert.JSONEq(t, "[]", string(body))
			},
		},
		{
			name: "upstream failure maps to bad gateway",
			setupMocks: func(uc *mock_port.MockArticleUsecase) {
				uc.EXPECT().ListRanked(gomock.Any()).
					Return(nil, domain.ErrUpstreamUnavailable)
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody: func(t *testing.T, body []byte) {
				var v ErrorResponse
				require.NoError(t, json.Unmarshal(body, &v))
				assert.Equal(t, "article source unavailable", v.Error)
			},
		},
		{
			name: "store failure maps to internal error",
			setupMocks: func(uc *mock_port.MockArticleUsecase) {
				uc.EXPECT().ListRanked(gomock.Any()).
					Return(nil, domain.ErrStoreFailed)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody: func(t *testing.T, body []byte) {
				var v ErrorResponse
				require.NoError(t, json.Unmarshal(body, &v))
				assert.NotEmpty(t, v.Error)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUsecase := mock_port.NewMockArticleUsecase(ctrl)
			tt.setupMocks(mockUsecase)
			logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

			handler := NewArticleHandler(mockUsecase, logger)

			req := httptest.NewRequest(http.MethodGet, "/v1/articles", nil)
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			require.NoError(t, handler.ListArticles(c))
			require.Equal(t, tt.expectedStatus, rec.Code)
			tt.expectedBody(t, rec.Body.Bytes())
		})
	}
}

func TestGetArticle(t *testing.T) {
	article := &domain.Article{ID: "a-1", Title: "Found"}

	tests := []struct {
		name           string
		paramID        string
		setupMocks     func(*mock_port.MockArticleUsecase)
		expectedStatus int
	}{
		{
			name:    "returns the article",
			paramID: "a-1",
			setupMocks: func(uc *mock_port.MockArticleUsecase) {
				uc.EXPECT().GetArticle(gomock.Any(), "a-1").Return(article, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "unknown id yields 404",
			paramID: "a-99",
			setupMocks: func(uc *mock_port.MockArticleUsecase) {
				uc.EXPECT().GetArticle(gomock.Any(), "a-99").
					Return(nil, domain.ErrArticleNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:    "upstream failure yields 502",
			paramID: "a-1",
			setupMocks: func(uc *mock_port.MockArticleUsecase) {
				uc.EXPECT().GetArticle(gomock.Any(), "a-1").
					Return(nil, domain.ErrUpstreamUnavailable)
			},
			expectedStatus: http.StatusBadGateway,
		},
		{
			name:           "id with whitespace is rejected before the usecase",
			paramID:        "a 1",
			setupMocks:     func(uc *mock_port.MockArticleUsecase) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUsecase := mock_port.NewMockArticleUsecase(ctrl)
			tt.setupMocks(mockUsecase)
			logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

			handler := NewArticleHandler(mockUsecase, logger)

			req := httptest.NewRequest(http.MethodGet, "/v1/articles/"+url.PathEscape(tt.paramID), nil)
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)
			c.SetParamNames("id")
			c.SetParamValues(tt.paramID)

			require.NoError(t, handler.GetArticle(c))
			require.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				var got domain.Article
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, "Found", got.Title)
			}
		})
	}
}

func TestRecordSelection(t *testing.T) {
	tests := []struct {
		name           string
		paramID        string
		setupMocks     func(*mock_port.MockArticleUsecase)
		expectedStatus int
	}{
		{
			name:    "records the selection and returns no content",
			paramID: "a-1",
			setupMocks: func(uc *mock_port.MockArticleUsecase) {
				uc.EXPECT().RecordSelection(gomock.Any(), "a-1")
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "empty id is rejected",
			paramID:        "",
			setupMocks:     func(uc *mock_port.MockArticleUsecase) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUsecase := mock_port.NewMockArticleUsecase(ctrl)
			tt.setupMocks(mockUsecase)
			logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

			handler := NewArticleHandler(mockUsecase, logger)

			req := httptest.NewRequest(http.MethodPost, "/v1/articles/"+tt.paramID+"/selection", nil)
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)
			c.SetParamNames("id")
			c.SetParamValues(tt.paramID)

			require.NoError(t, handler.RecordSelection(c))
			require.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
