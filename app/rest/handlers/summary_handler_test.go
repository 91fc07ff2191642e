package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"newsdesk/app/domain"
	mock_port "newsdesk/app/mocks"
)

func TestProcess(t *testing.T) {
	article := domain.Article{
		ID:       "a-1",
		Title:    "Quarterly results",
		Content:  "Revenue grew.",
		Datetime: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	validBody := `{
		"article": {
			"id": "a-1",
			"title": "Quarterly results",
			"content": "Revenue grew.",
			"datetime": "2025-03-01T09:00:00Z"
		},
		"userInput": "focus on the numbers"
	}`

	tests := []struct {
		name           string
		body           string
		setupMocks     func(*mock_port.MockSummaryUsecase)
		expectedStatus int
		expectedBody   func(*testing.T, []byte)
	}{
		{
			name: "successful run returns the summary",
			body: validBody,
			setupMocks: func(uc *mock_port.MockSummaryUsecase) {
				uc.EXPECT().
					Process(gomock.Any(), article, "focus on the numbers").
					Return("Revenue grew 12% year over year.", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: func(t *testing.T, body []byte) {
				var v ProcessResponse
				require.NoError(t, json.Unmarshal(body, &v))
				assert.True(t, v.OK)
				assert.Equal(t, "Revenue grew 12% year over year.", v.Summary)
			},
		},
		{
			name: "workflow failure returns the error body",
			body: validBody,
			setupMocks: func(uc *mock_port.MockSummaryUsecase) {
				uc.EXPECT().
					Process(gomock.Any(), article, "focus on the numbers").
					Return("", domain.ErrWorkflowFailed)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody: func(t *testing.T, body []byte) {
				var v ErrorResponse
				require.NoError(t, json.Unmarshal(body, &v))
				assert.Equal(t, "summarization failed", v.Error)
				assert.NotEmpty(t, v.Details)
			},
		},
		{
			name: "persistence failure returns the error body",
			body: validBody,
			setupMocks: func(uc *mock_port.MockSummaryUsecase) {
				uc.EXPECT().
					Process(gomock.Any(), article, "focus on the numbers").
					Return("", domain.ErrStoreFailed)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody: func(t *testing.T, body []byte) {
				var v ErrorResponse
				require.NoError(t, json.Unmarshal(body, &v))
				assert.Equal(t, "summarization failed", v.Error)
			},
		},
		{
			name:           "malformed JSON is rejected",
			body:           `{"article": {`,
			setupMocks:     func(uc *mock_port.MockSummaryUsecase) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody: func(t *testing.T, body []byte) {
				var v ErrorResponse
				require.NoError(t, json.Unmarshal(body, &v))
				assert.Equal(t, "invalid request body", v.Error)
			},
		},
		{
			name:           "article without id fails validation",
			body:           `{"article": {"title": "No id"}, "userInput": ""}`,
			setupMocks:     func(uc *mock_port.MockSummaryUsecase) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody: func(t *testing.T, body []byte) {
				var v ErrorResponse
				require.NoError(t, json.Unmarshal(body, &v))
				assert.Equal(t, "validation failed", v.Error)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUsecase := mock_port.NewMockSummaryUsecase(ctrl)
			tt.setupMocks(mockUsecase)
			logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

			handler := NewSummaryHandler(mockUsecase, logger)

			req := httptest.NewRequest(http.MethodPost, "/v1/process", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			require.NoError(t, handler.Process(c))
			require.Equal(t, tt.expectedStatus, rec.Code)
			tt.expectedBody(t, rec.Body.Bytes())
		})
	}
}

func TestListSummaries(t *testing.T) {
	stored := []domain.Summary{
		{ID: uuid.New(), ArticleID: "a-2", ArticleTitle: "Newest", Summary: "latest recap"},
		{ID: uuid.New(), ArticleID: "a-1", ArticleTitle: "Older", Summary: "older recap"},
	}

	tests := []struct {
		name           string
		setupMocks     func(*mock_port.MockSummaryUsecase)
		expectedStatus int
		expectedBody   func(*testing.T, []byte)
	}{
		{
			name: "returns the history",
			setupMocks: func(uc *mock_port.MockSummaryUsecase) {
				uc.EXPECT().ListSummaries(gomock.Any()).Return(stored, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: func(t *testing.T, body []byte) {
				var got []domain.Summary
				require.NoError(t, json.Unmarshal(body, &got))
				require.Len(t, got, 2)
				assert.Equal(t, "a-2", got[0].ArticleID)
			},
		},
		{
			name: "empty history yields an empty array",
			setupMocks: func(uc *mock_port.MockSummaryUsecase) {
				uc.EXPECT().ListSummaries(gomock.Any()).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: func(t *testing.T, body []byte) {
				assert.JSONEq(t, "[]", string(body))
			},
		},
		{
			name: "store failure maps to internal error",
			setupMocks: func(uc *mock_port.MockSummaryUsecase) {
				uc.EXPECT().ListSummaries(gomock.Any()).
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

			mockUsecase := mock_port.NewMockSummaryUsecase(ctrl)
			tt.setupMocks(mockUsecase)
			logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

			handler := NewSummaryHandler(mockUsecase, logger)

			req := httptest.NewRequest(http.MethodGet, "/v1/summaries", nil)
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			require.NoError(t, handler.ListSummaries(c))
			require.Equal(t, tt.expectedStatus, rec.Code)
			tt.expectedBody(t, rec.Body.Bytes())
		})
	}
}

func TestDeleteSummary(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name           string
		paramID        string
		setupMocks     func(*mock_port.MockSummaryUsecase)
		expectedStatus int
	}{
		{
			name:    "deletes the summary",
			paramID: id.String(),
			setupMocks: func(uc *mock_port.MockSummaryUsecase) {
				uc.EXPECT().DeleteSummary(gomock.Any(), id).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:    "unknown id yields 404",
			paramID: id.String(),
			setupMocks: func(uc *mock_port.MockSummaryUsecase) {
				uc.EXPECT().DeleteSummary(gomock.Any(), id).
					Return(domain.ErrSummaryMissing)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "non-uuid id is rejected",
			paramID:        "not-a-uuid",
			setupMocks:     func(uc *mock_port.MockSummaryUsecase) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "store failure maps to internal error",
			paramID: id.String(),
			setupMocks: func(uc *mock_port.MockSummaryUsecase) {
				uc.EXPECT().DeleteSummary(gomock.Any(), id).
					Return(domain.ErrStoreFailed)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUsecase := mock_port.NewMockSummaryUsecase(ctrl)
			tt.setupMocks(mockUsecase)
			logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

			handler := NewSummaryHandler(mockUsecase, logger)

			req := httptest.NewRequest(http.MethodDelete, "/v1/summaries/"+tt.paramID, nil)
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)
			c.SetParamNames("id")
			c.SetParamValues(tt.paramID)

			require.NoError(t, handler.DeleteSummary(c))
			require.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
