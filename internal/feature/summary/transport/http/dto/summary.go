// Package dto defines the request and response payloads for the
// summary endpoints.
package dto

import (
	"time"

	"teamcall_backend/internal/feature/summary/domain/entity"
)

// SaveSummaryReq is the request body for storing a summary.
type SaveSummaryReq struct {
	MeetingID string `json:"meetingId" binding:"required"`
	Summary   string `json:"summary"   binding:"required"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
}

// GenerateSummaryReq is the request body for generating a summary
// from a transcript.
type GenerateSummaryReq struct {
	MeetingID  string `json:"meetingId"  binding:"required"`
	Transcript string `json:"transcript" binding:"required"`
	UserID     string `json:"userId"`
	UserName   string `json:"userName"`
}

// SaveSummaryRes carries the id of a stored summary.
type SaveSummaryRes struct {
	SummaryID string `json:"summaryId"`
}

// GenerateSummaryRes carries the id and the generated text.
type GenerateSummaryRes struct {
	SummaryID string `json:"summaryId"`
	Summary   string `json:"summary"`
}

// SummaryRes is a stored summary in API form.
type SummaryRes struct {
	MeetingID   string    `json:"meetingId"`
	UserID      string    `json:"userId,omitempty"`
	UserName    string    `json:"userName,omitempty"`
	Summary     string    `json:"summary"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// NewSummaryRes converts a summary entity into its response
// representation.
func NewSummaryRes(s *entity.Summary) SummaryRes {
	return SummaryRes{
		MeetingID:   s.MeetingID,
		UserID:      s.UserID,
		UserName:    s.UserName,
		Summary:     s.Text,
		GeneratedAt: s.GeneratedAt,
	}
}
