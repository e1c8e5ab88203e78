// Package dto defines data transfer objects for the meeting feature's
// HTTP transport layer.
package dto

import (
	"time"

	"teamcall_backend/internal/feature/meeting/domain/entity"
)

// CreateMeetingReq represents the request body for /meetings/create.
// The creator comes from the access token, not the body.
type CreateMeetingReq struct {
	Topic string `json:"topic"`
}

// UpdateMeetingReq represents the request body for PUT /meetings/:id.
type UpdateMeetingReq struct {
	Topic string `json:"topic" binding:"required"`
}

// MeetingRes is the public projection of a meeting record.
type MeetingRes struct {
	MeetingID  string     `json:"meetingId"`
	Topic      string     `json:"topic,omitempty"`
	CreatedBy  string     `json:"createdBy"`
	CreatedAt  time.Time  `json:"createdAt"`
	FinishedAt *time.Time `json:"finishedAt"`
}

// NewMeetingRes projects a meeting entity into its response shape.
func NewMeetingRes(m *entity.Meeting) MeetingRes {
	return MeetingRes{
		MeetingID:  m.Code,
		Topic:      m.Topic,
		CreatedBy:  m.CreatedBy,
		CreatedAt:  m.CreatedAt,
		FinishedAt: m.FinishedAt,
	}
}
