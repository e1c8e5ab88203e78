// Package dto defines the request and response payloads for the
// participant endpoints.
package dto

import (
	"time"

	"teamcall_backend/internal/feature/participant/domain/entity"
)

// JoinReq is the request body for joining a meeting.
type JoinReq struct {
	MeetingID string `json:"meetingId" binding:"required"`
	Name      string `json:"name"      binding:"required"`
	Email     string `json:"email"     binding:"required,email"`
}

// FinishReq is the request body for finishing a meeting. Email is the
// address the attendance digest is sent to.
type FinishReq struct {
	Email string `json:"email" binding:"required,email"`
}

// ParticipantRes is a single roster entry.
type ParticipantRes struct {
	MeetingID string    `json:"meetingId"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	JoinedAt  time.Time `json:"joinedAt"`
}

// NewParticipantRes converts a participant entity into its response
// representation.
func NewParticipantRes(p *entity.Participant) ParticipantRes {
	return ParticipantRes{
		MeetingID: p.MeetingID,
		UserID:    p.UserID,
		Name:      p.Name,
		Email:     p.Email,
		JoinedAt:  p.JoinedAt,
	}
}
