package storage

import (
	"context"

	"careeros/pkg/domain"
)

// TrackerStorage persists tracked applications. Sub-documents (history,
// notes, reminders, attachments, interviews) travel with the job.
type TrackerStorage interface {
	StoreTrackedJob(ctx context.Context, job domain.TrackedJob) (*domain.TrackedJob, error)
	// TrackedJobByID returns the user's job or nil. forUpdate locks the row
	// until the surrounding transaction ends.
	TrackedJobByID(ctx context.Context,
		userID domain.UserID,
		id domain.TrackedJobID,
		forUpdate bool) (*domain.TrackedJob, error)
	// TrackedJobsByIDs returns the user's jobs among ids, locking them when forUpdate is set.
	TrackedJobsByIDs(ctx context.Context,
		userID domain.UserID,
		ids []domain.TrackedJobID,
		forUpdate bool) ([]domain.TrackedJob, error)
	// TrackedJobs returns the user's jobs matching filter, most recently updated first.
	TrackedJobs(ctx context.Context, userID domain.UserID, filter domain.TrackedJobFilter) ([]domain.TrackedJob, error)
	// UpdateTrackedJob overwrites every mutable field of the job and returns
	// the stored row, or nil if it does not exist.
	UpdateTrackedJob(ctx context.Context, job domain.TrackedJob) (*domain.TrackedJob, error)
	// DeleteTrackedJob removes the user's job and returns it, or nil.
	DeleteTrackedJob(ctx context.Context, userID domain.UserID, id domain.TrackedJobID) (*domain.TrackedJob, error)
}
