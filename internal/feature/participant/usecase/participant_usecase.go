// Package usecase implements the application logic for the
// participant feature.
package usecase

import (
	"context"
	"time"

	"teamcall_backend/internal/feature/participant/domain/entity"
	"teamcall_backend/internal/platform/email"
)

// ParticipantRepository defines the persistence operations the
// participant usecase depends on.
type ParticipantRepository interface {
	Upsert(ctx context.Context, p *entity.Participant) error
	FindByMeeting(ctx context.Context, meetingID string) ([]entity.Participant, error)
	Delete(ctx context.Context, meetingID, userID string) error
}

// MeetingFinisher marks a meeting as ended.
type MeetingFinisher interface {
	Finish(ctx context.Context, code string) error
}

// Mailer delivers mail in the background.
type Mailer interface {
	Dispatch(msg email.Message)
}

// JoinInput carries the identity of a user joining a meeting.
type JoinInput struct {
	MeetingID string
	UserID    string
	Name      string
	Email     string
}

type participantUsecase struct {
	participants ParticipantRepository
	meetings     MeetingFinisher
	mail         Mailer
	now          func() time.Time
}

// NewParticipantUsecase creates a new instance of the participant
// usecase.
func NewParticipantUsecase(participants ParticipantRepository, meetings MeetingFinisher, mail Mailer) *participantUsecase {
	return &participantUsecase{
		participants: participants,
		meetings:     meetings,
		mail:         mail,
		now:          time.Now,
	}
}

// Join records a user's membership in a meeting. Joining the same
// meeting twice refreshes the existing record instead of adding a
// duplicate.
func (u *participantUsecase) Join(ctx context.Context, in JoinInput) (*entity.Participant, error) {
	p := &entity.Participant{
		ID:        entity.DocumentID(in.MeetingID, in.UserID),
		MeetingID: in.MeetingID,
		UserID:    in.UserID,
		Name:      in.Name,
		Email:     in.Email,
		JoinedAt:  u.now(),
	}
	if err := u.participants.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Roster returns every participant of a meeting. A meeting nobody has
// joined yields an empty roster, not an error.
func (u *participantUsecase) Roster(ctx context.Context, meetingID string) ([]entity.Participant, error) {
	return u.participants.FindByMeeting(ctx, meetingID)
}

// Leave removes a user's membership from a meeting.
func (u *participantUsecase) Leave(ctx context.Context, meetingID, userID string) error {
	return u.participants.Delete(ctx, meetingID, userID)
}

// FinishMeeting ends the meeting and mails the requester a digest of
// everyone who attended. Mail delivery happens in the background and
// never fails the request.
func (u *participantUsecase) FinishMeeting(ctx context.Context, meetingID, recipient string) ([]entity.Participant, error) {
	if err := u.meetings.Finish(ctx, meetingID); err != nil {
		return nil, err
	}

	roster, err := u.participants.FindByMeeting(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	if recipient != "" {
		digest := make([]email.DigestParticipant, 0, len(roster))
		for _, p := range roster {
			digest = append(digest, email.DigestParticipant{Name: p.Name, Email: p.Email})
		}
		u.mail.Dispatch(email.MeetingDigestMessage(recipient, meetingID, digest))
	}

	return roster, nil
}
