// Package usecase implements the application logic for the summary
// feature.
package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"teamcall_backend/internal/feature/summary/domain"
	"teamcall_backend/internal/feature/summary/domain/entity"
)

// GenerationPromptTemplate is the prompt used to turn a transcript
// into a concise meeting summary.
const GenerationPromptTemplate = "Summarize the following meeting transcript in a few short paragraphs. " +
	"Cover the main topics, decisions made and action items.\n\nTranscript:\n%s"

// SummaryRepository defines the persistence operations the summary
// usecase depends on.
type SummaryRepository interface {
	Create(ctx context.Context, s *entity.Summary) (string, error)
	FindLatest(ctx context.Context, meetingID, userID string) (*entity.Summary, error)
	FindAll(ctx context.Context, meetingID string) ([]entity.Summary, error)
}

// SummaryGenerator produces a summary text from a prompt.
// Following Go convention, the interface is defined on the consumer
// side.
type SummaryGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// SaveInput carries a client-supplied summary.
type SaveInput struct {
	MeetingID string
	UserID    string
	UserName  string
	Text      string
}

// GenerateInput carries a transcript to be summarized.
type GenerateInput struct {
	MeetingID  string
	UserID     string
	UserName   string
	Transcript string
}

type summaryUsecase struct {
	summaries SummaryRepository
	generator SummaryGenerator
	now       func() time.Time
}

// NewSummaryUsecase creates a new instance of the summary usecase.
func NewSummaryUsecase(summaries SummaryRepository, generator SummaryGenerator) *summaryUsecase {
	return &summaryUsecase{
		summaries: summaries,
		generator: generator,
		now:       time.Now,
	}
}

// Save stores a summary supplied by the client.
func (u *summaryUsecase) Save(ctx context.Context, in SaveInput) (string, error) {
	now := u.now()
	return u.summaries.Create(ctx, &entity.Summary{
		MeetingID:   in.MeetingID,
		UserID:      in.UserID,
		UserName:    in.UserName,
		Text:        in.Text,
		GeneratedAt: now,
		CreatedAt:   now,
	})
}

// Generate produces a summary from a transcript and stores it like a
// client-supplied one.
func (u *summaryUsecase) Generate(ctx context.Context, in GenerateInput) (string, string, error) {
	if strings.TrimSpace(in.Transcript) == "" {
		return "", "", domain.ErrEmptyTranscript
	}

	prompt := fmt.Sprintf(GenerationPromptTemplate, in.Transcript)
	text, err := u.generator.Generate(ctx, prompt)
	if err != nil {
		return "", "", fmt.Errorf("summary generation failed: %w", err)
	}

	id, err := u.Save(ctx, SaveInput{
		MeetingID: in.MeetingID,
		UserID:    in.UserID,
		UserName:  in.UserName,
		Text:      text,
	})
	if err != nil {
		return "", "", err
	}
	return id, text, nil
}

// Latest returns the newest summary of a meeting.
func (u *summaryUsecase) Latest(ctx context.Context, meetingID string) (*entity.Summary, error) {
	return u.summaries.FindLatest(ctx, meetingID, "")
}

// LatestForUser returns the newest summary a specific user generated
// for a meeting.
func (u *summaryUsecase) LatestForUser(ctx context.Context, meetingID, userID string) (*entity.Summary, error) {
	return u.summaries.FindLatest(ctx, meetingID, userID)
}

// All returns every summary of a meeting, newest first.
func (u *summaryUsecase) All(ctx context.Context, meetingID string) ([]entity.Summary, error) {
	return u.summaries.FindAll(ctx, meetingID)
}
