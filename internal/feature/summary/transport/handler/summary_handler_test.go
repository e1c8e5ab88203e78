package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"teamcall_backend/internal/feature/summary/domain"
	"teamcall_backend/internal/feature/summary/domain/entity"
	"teamcall_backend/internal/feature/summary/usecase"
)

// mockSummaryUsecase is a mock implementation of the SummaryUsecase
// interface.
type mockSummaryUsecase struct {
	SaveFunc          func(ctx context.Context, in usecase.SaveInput) (string, error)
	GenerateFunc      func(ctx context.Context, in usecase.GenerateInput) (string, string, error)
	LatestFunc        func(ctx context.Context, meetingID string) (*entity.Summary, error)
	LatestForUserFunc func(ctx context.Context, meetingID, userID string) (*entity.Summary, error)
	AllFunc           func(ctx context.Context, meetingID string) ([]entity.Summary, error)
}

func (m *mockSummaryUsecase) Save(ctx context.Context, in usecase.SaveInput) (string, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, in)
	}
	return "summary-id", nil
}

func (m *mockSummaryUsecase) Generate(ctx context.Context, in usecase.GenerateInput) (string, string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, in)
	}
	return "summary-id", "generated text", nil
}

func (m *mockSummaryUsecase) Latest(ctx context.Context, meetingID string) (*entity.Summary, error) {
	if m.LatestFunc != nil {
		return m.LatestFunc(ctx, meetingID)
	}
	return nil, domain.ErrSummaryNotFound
}

func (m *mockSummaryUsecase) LatestForUser(ctx context.Context, meetingID, userID string) (*entity.Summary, error) {
	if m.LatestForUserFunc != nil {
		return m.LatestForUserFunc(ctx, meetingID, userID)
	}
	return nil, domain.ErrSummaryNotFound
}

func (m *mockSummaryUsecase) All(ctx context.Context, meetingID string) ([]entity.Summary, error) {
	if m.AllFunc != nil {
		return m.AllFunc(ctx, meetingID)
	}
	return nil, nil
}

func doJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSummaryHandler_Save(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("stores a summary", func(t *testing.T) {
		var got usecase.SaveInput
		h := NewSummaryHandler(&mockSummaryUsecase{
			SaveFunc: func(ctx context.Context, in usecase.SaveInput) (string, error) {
				got = in
				return "abc123", nil
			},
		})
		router := gin.New()
		router.POST("/summaries", h.Save)

		w := doJSON(router, http.MethodPost, "/summaries", gin.H{
			"meetingId": "A1b-2C3-d4E",
			"summary":   "We shipped it.",
			"userId":    "uid-1",
			"userName":  "Grace",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "We shipped it.", got.Text)
		var res map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "abc123", res["summaryId"])
	})

	t.Run("a missing summary text is rejected", func(t *testing.T) {
		h := NewSummaryHandler(&mockSummaryUsecase{})
		router := gin.New()
		router.POST("/summaries", h.Save)

		w := doJSON(router, http.MethodPost, "/summaries", gin.H{"meetingId": "m1"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSummaryHandler_Generate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns the generated text with the id", func(t *testing.T) {
		h := NewSummaryHandler(&mockSummaryUsecase{
			GenerateFunc: func(ctx context.Context, in usecase.GenerateInput) (string, string, error) {
				return "abc123", "The team planned the launch.", nil
			},
		})
		router := gin.New()
		router.POST("/summaries/generate", h.Generate)

		w := doJSON(router, http.MethodPost, "/summaries/generate", gin.H{
			"meetingId":  "A1b-2C3-d4E",
			"transcript": "Alice: launch in Q3?",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		var res map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "abc123", res["summaryId"])
		assert.Equal(t, "The team planned the launch.", res["summary"])
	})

	t.Run("a missing transcript is rejected", func(t *testing.T) {
		h := NewSummaryHandler(&mockSummaryUsecase{})
		router := gin.New()
		router.POST("/summaries/generate", h.Generate)

		w := doJSON(router, http.MethodPost, "/summaries/generate", gin.H{"meetingId": "m1"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSummaryHandler_Latest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	generatedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		latestFunc     func(ctx context.Context, meetingID string) (*entity.Summary, error)
		expectedStatus int
	}{
		{
			name: "found",
			latestFunc: func(ctx context.Context, meetingID string) (*entity.Summary, error) {
				return &entity.Summary{MeetingID: meetingID, Text: "latest", GeneratedAt: generatedAt}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "not found",
			latestFunc:     nil, // default: ErrSummaryNotFound
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewSummaryHandler(&mockSummaryUsecase{LatestFunc: tt.latestFunc})
			router := gin.New()
			router.GET("/summaries/:meetingId", h.Latest)

			req, _ := http.NewRequest(http.MethodGet, "/summaries/A1b-2C3-d4E", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestSummaryHandler_LatestForUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewSummaryHandler(&mockSummaryUsecase{
		LatestForUserFunc: func(ctx context.Context, meetingID, userID string) (*entity.Summary, error) {
			return &entity.Summary{MeetingID: meetingID, UserID: userID, Text: "mine"}, nil
		},
	})
	router := gin.New()
	router.GET("/summaries/:meetingId/user/:userId", h.LatestForUser)

	req, _ := http.NewRequest(http.MethodGet, "/summaries/A1b-2C3-d4E/user/uid-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var res map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "uid-1", res["userId"])
}

func TestSummaryHandler_All(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewSummaryHandler(&mockSummaryUsecase{
		AllFunc: func(ctx context.Context, meetingID string) ([]entity.Summary, error) {
			return []entity.Summary{
				{MeetingID: meetingID, Text: "newer"},
				{MeetingID: meetingID, Text: "older"},
			}, nil
		},
	})
	router := gin.New()
	router.GET("/summaries/:meetingId/all", h.All)

	req, _ := http.NewRequest(http.MethodGet, "/summaries/A1b-2C3-d4E/all", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var res []map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Len(t, res, 2)
	assert.Equal(t, "newer", res[0]["summary"])
}
