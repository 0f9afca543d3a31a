package tracker

import (
	"context"

	"careeros/pkg/domain"
)

//go:generate mockgen -package mocktracker -source=interface.go -destination=mock/mocktracker.go *
type Tracker interface {
	Create(ctx context.Context, userID domain.UserID, input CreateInput) (*domain.TrackedJob, error)
	List(ctx context.Context, userID domain.UserID, filter domain.TrackedJobFilter) ([]domain.TrackedJob, error)
	Get(ctx context.Context, userID domain.UserID, id domain.TrackedJobID) (*domain.TrackedJob, error)
	Update(ctx context.Context, userID domain.UserID, id domain.TrackedJobID, patch Patch) (*domain.TrackedJob, error)
	Delete(ctx context.Context, userID domain.UserID, id domain.TrackedJobID) error
	AddNote(ctx context.Context, userID domain.UserID, id domain.TrackedJobID, content string) (*domain.TrackedJob, error)
	AddReminder(ctx context.Context,
		userID domain.UserID,
		id domain.TrackedJobID,
		input ReminderInput) (*domain.TrackedJob, error)
	AddInterview(ctx context.Context,
		userID domain.UserID,
		id domain.TrackedJobID,
		input InterviewInput) (*domain.TrackedJob, error)
	AddAttachment(ctx context.Context,
		userID domain.UserID,
		id domain.TrackedJobID,
		input AttachmentInput) (*domain.TrackedJob, error)
	BulkUpdateStage(ctx context.Context, userID domain.UserID, ids []string, stage domain.Stage) (*BulkResult, error)
}
