// Package handler provides the HTTP handlers for the summary feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"teamcall_backend/internal/api"
	"teamcall_backend/internal/feature/summary/domain"
	"teamcall_backend/internal/feature/summary/domain/entity"
	"teamcall_backend/internal/feature/summary/transport/http/dto"
	"teamcall_backend/internal/feature/summary/usecase"
)

// SummaryUsecase defines the summary operations the handlers depend
// on.
type SummaryUsecase interface {
	Save(ctx context.Context, in usecase.SaveInput) (string, error)
	Generate(ctx context.Context, in usecase.GenerateInput) (string, string, error)
	Latest(ctx context.Context, meetingID string) (*entity.Summary, error)
	LatestForUser(ctx context.Context, meetingID, userID string) (*entity.Summary, error)
	All(ctx context.Context, meetingID string) ([]entity.Summary, error)
}

// SummaryHandler handles the HTTP requests of the summary feature.
type SummaryHandler struct {
	summaries SummaryUsecase
}

// NewSummaryHandler creates a new instance of SummaryHandler.
func NewSummaryHandler(summaries SummaryUsecase) *SummaryHandler {
	return &SummaryHandler{summaries: summaries}
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrSummaryNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrEmptyTranscript):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	default:
		slog.Error("summary operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
	}
}

// Save handles POST /summaries.
func (h *SummaryHandler) Save(c *gin.Context) {
	var req dto.SaveSummaryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	id, err := h.summaries.Save(c.Request.Context(), usecase.SaveInput{
		MeetingID: req.MeetingID,
		UserID:    req.UserID,
		UserName:  req.UserName,
		Text:      req.Summary,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	slog.Info("summary saved", "meeting", req.MeetingID, "summary", id)
	c.JSON(http.StatusCreated, dto.SaveSummaryRes{SummaryID: id})
}

// Generate handles POST /summaries/generate.
func (h *SummaryHandler) Generate(c *gin.Context) {
	var req dto.GenerateSummaryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	id, text, err := h.summaries.Generate(c.Request.Context(), usecase.GenerateInput{
		MeetingID:  req.MeetingID,
		UserID:     req.UserID,
		UserName:   req.UserName,
		Transcript: req.Transcript,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	slog.Info("summary generated", "meeting", req.MeetingID, "summary", id)
	c.JSON(http.StatusCreated, dto.GenerateSummaryRes{SummaryID: id, Summary: text})
}

// Latest handles GET /summaries/:meetingId.
func (h *SummaryHandler) Latest(c *gin.Context) {
	s, err := h.summaries.Latest(c.Request.Context(), c.Param("meetingId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSummaryRes(s))
}

// LatestForUser handles GET /summaries/:meetingId/user/:userId.
func (h *SummaryHandler) LatestForUser(c *gin.Context) {
	s, err := h.summaries.LatestForUser(c.Request.Context(), c.Param("meetingId"), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSummaryRes(s))
}

// All handles GET /summaries/:meetingId/all.
func (h *SummaryHandler) All(c *gin.Context) {
	summaries, err := h.summaries.All(c.Request.Context(), c.Param("meetingId"))
	if err != nil {
		respondError(c, err)
		return
	}

	res := make([]dto.SummaryRes, 0, len(summaries))
	for i := range summaries {
		res = append(res, dto.NewSummaryRes(&summaries[i]))
	}
	c.JSON(http.StatusOK, res)
}
