// Package handler provides the HTTP handlers for the participant
// feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"teamcall_backend/internal/api"
	meetingdomain "teamcall_backend/internal/feature/meeting/domain"
	"teamcall_backend/internal/feature/participant/domain"
	"teamcall_backend/internal/feature/participant/domain/entity"
	"teamcall_backend/internal/feature/participant/transport/http/dto"
	"teamcall_backend/internal/feature/participant/usecase"
	jwtmw "teamcall_backend/internal/platform/jwt"
)

// ParticipantUsecase defines the participant operations the handlers
// depend on.
type ParticipantUsecase interface {
	Join(ctx context.Context, in usecase.JoinInput) (*entity.Participant, error)
	Roster(ctx context.Context, meetingID string) ([]entity.Participant, error)
	Leave(ctx context.Context, meetingID, userID string) error
	FinishMeeting(ctx context.Context, meetingID, recipient string) ([]entity.Participant, error)
}

// ParticipantHandler handles the HTTP requests of the participant
// feature.
type ParticipantHandler struct {
	participants ParticipantUsecase
}

// NewParticipantHandler creates a new instance of ParticipantHandler.
func NewParticipantHandler(participants ParticipantUsecase) *ParticipantHandler {
	return &ParticipantHandler{participants: participants}
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrParticipantNotFound),
		errors.Is(err, meetingdomain.ErrMeetingNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
	default:
		slog.Error("participant operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
	}
}

// Join handles POST /participants/join.
func (h *ParticipantHandler) Join(c *gin.Context) {
	userID, ok := jwtmw.SubjectID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "missing subject"})
		return
	}

	var req dto.JoinReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	p, err := h.participants.Join(c.Request.Context(), usecase.JoinInput{
		MeetingID: req.MeetingID,
		UserID:    userID,
		Name:      req.Name,
		Email:     req.Email,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	slog.Info("participant joined", "meeting", req.MeetingID, "user", userID)
	c.JSON(http.StatusOK, dto.NewParticipantRes(p))
}

// Roster handles GET /participants/:meetingId.
func (h *ParticipantHandler) Roster(c *gin.Context) {
	roster, err := h.participants.Roster(c.Request.Context(), c.Param("meetingId"))
	if err != nil {
		respondError(c, err)
		return
	}

	res := make([]dto.ParticipantRes, 0, len(roster))
	for i := range roster {
		res = append(res, dto.NewParticipantRes(&roster[i]))
	}
	c.JSON(http.StatusOK, res)
}

// Leave handles DELETE /participants/:meetingId.
func (h *ParticipantHandler) Leave(c *gin.Context) {
	userID, ok := jwtmw.SubjectID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "missing subject"})
		return
	}

	if err := h.participants.Leave(c.Request.Context(), c.Param("meetingId"), userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "participant removed"})
}

// Finish handles POST /participants/finish/:meetingId. It ends the
// meeting and mails the attendance digest to the given address.
func (h *ParticipantHandler) Finish(c *gin.Context) {
	var req dto.FinishReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	meetingID := c.Param("meetingId")
	roster, err := h.participants.FinishMeeting(c.Request.Context(), meetingID, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	slog.Info("meeting finished with digest", "meeting", meetingID, "participants", len(roster))
	c.JSON(http.StatusOK, gin.H{
		"message":      "meeting finished",
		"participants": len(roster),
	})
}
