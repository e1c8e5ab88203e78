// Package handler provides the HTTP handlers for the meeting feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"teamcall_backend/internal/api"
	"teamcall_backend/internal/feature/meeting/domain"
	"teamcall_backend/internal/feature/meeting/domain/entity"
	"teamcall_backend/internal/feature/meeting/transport/http/dto"
	jwtmw "teamcall_backend/internal/platform/jwt"
)

// MeetingUsecase defines the meeting operations the handlers depend
// on.
type MeetingUsecase interface {
	Create(ctx context.Context, createdBy, topic string) (*entity.Meeting, error)
	Get(ctx context.Context, code string) (*entity.Meeting, error)
	List(ctx context.Context, createdBy string) ([]entity.Meeting, error)
	UpdateTopic(ctx context.Context, code, topic string) error
	Finish(ctx context.Context, code string) error
	Delete(ctx context.Context, code string) error
}

// MeetingHandler handles the HTTP requests of the meeting feature.
type MeetingHandler struct {
	meetings MeetingUsecase
}

// NewMeetingHandler creates a new instance of MeetingHandler.
func NewMeetingHandler(meetings MeetingUsecase) *MeetingHandler {
	return &MeetingHandler{meetings: meetings}
}

func respondError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrMeetingNotFound) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
		return
	}
	slog.Error("meeting operation failed", "error", err)
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
}

// Create handles POST /meetings/create.
func (h *MeetingHandler) Create(c *gin.Context) {
	userID, ok := jwtmw.SubjectID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "missing subject"})
		return
	}

	// Topic is optional; an empty body is a meeting without one.
	var req dto.CreateMeetingReq
	_ = c.ShouldBindJSON(&req)

	m, err := h.meetings.Create(c.Request.Context(), userID, req.Topic)
	if err != nil {
		respondError(c, err)
		return
	}

	slog.Info("meeting created", "meeting", m.Code, "created_by", userID)
	c.JSON(http.StatusCreated, dto.NewMeetingRes(m))
}

// Get handles GET /meetings/:id.
func (h *MeetingHandler) Get(c *gin.Context) {
	m, err := h.meetings.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMeetingRes(m))
}

// List handles GET /meetings, optionally filtered by ?createdBy=.
func (h *MeetingHandler) List(c *gin.Context) {
	meetings, err := h.meetings.List(c.Request.Context(), c.Query("createdBy"))
	if err != nil {
		respondError(c, err)
		return
	}

	res := make([]dto.MeetingRes, 0, len(meetings))
	for i := range meetings {
		res = append(res, dto.NewMeetingRes(&meetings[i]))
	}
	c.JSON(http.StatusOK, res)
}

// Update handles PUT /meetings/:id.
func (h *MeetingHandler) Update(c *gin.Context) {
	var req dto.UpdateMeetingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	if err := h.meetings.UpdateTopic(c.Request.Context(), c.Param("id"), req.Topic); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "meeting updated"})
}

// Finish handles PATCH /meetings/finish/:id.
func (h *MeetingHandler) Finish(c *gin.Context) {
	code := c.Param("id")
	if err := h.meetings.Finish(c.Request.Context(), code); err != nil {
		respondError(c, err)
		return
	}

	slog.Info("meeting finished", "meeting", code)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "meeting finished"})
}

// Delete handles DELETE /meetings/:id.
func (h *MeetingHandler) Delete(c *gin.Context) {
	if err := h.meetings.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "meeting deleted"})
}
