// Package usecase implements the meeting lifecycle business logic.
package usecase

import (
	"context"
	"time"

	"teamcall_backend/internal/feature/meeting/domain/entity"
)

// MeetingRepository abstracts the persistence layer for meetings.
// The interface is defined by the consumer (usecase), not the provider
// (adapters).
type MeetingRepository interface {
	// Create persists a new meeting record.
	Create(ctx context.Context, m *entity.Meeting) error

	// FindByCode retrieves a meeting by its human-facing code.
	// Returns domain.ErrMeetingNotFound when absent.
	FindByCode(ctx context.Context, code string) (*entity.Meeting, error)

	// FindAll retrieves every meeting.
	FindAll(ctx context.Context) ([]entity.Meeting, error)

	// FindByCreator retrieves the meetings created by one user.
	FindByCreator(ctx context.Context, userID string) ([]entity.Meeting, error)

	// Update applies the given fields to the meeting.
	// Returns domain.ErrMeetingNotFound when absent.
	Update(ctx context.Context, code string, fields map[string]any) error

	// Delete removes the meeting.
	// Returns domain.ErrMeetingNotFound when absent.
	Delete(ctx context.Context, code string) error
}

// meetingUsecase implements the meeting business logic.
type meetingUsecase struct {
	meetings MeetingRepository
	now      func() time.Time
}

// NewMeetingUsecase creates a new instance of meetingUsecase.
func NewMeetingUsecase(meetings MeetingRepository) *meetingUsecase {
	return &meetingUsecase{meetings: meetings, now: time.Now}
}

// Create opens a new meeting with a freshly generated code.
func (u *meetingUsecase) Create(ctx context.Context, createdBy, topic string) (*entity.Meeting, error) {
	m := &entity.Meeting{
		Code:      newMeetingCode(),
		Topic:     topic,
		CreatedBy: createdBy,
		CreatedAt: u.now(),
	}
	if err := u.meetings.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Get retrieves a meeting by code.
func (u *meetingUsecase) Get(ctx context.Context, code string) (*entity.Meeting, error) {
	return u.meetings.FindByCode(ctx, code)
}

// List retrieves every meeting, or only one creator's meetings when
// createdBy is non-empty.
func (u *meetingUsecase) List(ctx context.Context, createdBy string) ([]entity.Meeting, error) {
	if createdBy != "" {
		return u.meetings.FindByCreator(ctx, createdBy)
	}
	return u.meetings.FindAll(ctx)
}

// UpdateTopic changes a meeting's display title.
func (u *meetingUsecase) UpdateTopic(ctx context.Context, code, topic string) error {
	return u.meetings.Update(ctx, code, map[string]any{"topic": topic})
}

// Finish stamps the meeting as finished. Finishing an already finished
// meeting just refreshes the timestamp.
func (u *meetingUsecase) Finish(ctx context.Context, code string) error {
	return u.meetings.Update(ctx, code, map[string]any{"finishedAt": u.now()})
}

// Delete removes the meeting record.
func (u *meetingUsecase) Delete(ctx context.Context, code string) error {
	return u.meetings.Delete(ctx, code)
}
