package tracker

import (
	"context"
	"fmt"
	"strings"
	"time"

	"careeros/pkg/domain"
	"careeros/pkg/serrors"
	"careeros/pkg/storage"

	"github.com/google/uuid"
)

const (
	defaultAttachmentType = "application/pdf"
	bulkUpdateNote        = "Bulk update"
)

// tracker is the concrete implementation of the Tracker interface.
type tracker struct {
	storage storage.Storage
	now     func() time.Time
}

// Create validates input, applies the defaults and stores a new job.
func (t tracker) Create(ctx context.Context, userID domain.UserID, input CreateInput) (*domain.TrackedJob, error) {
	job, err := newTrackedJob(userID, input, t.now().UTC())
	if err != nil {
		return nil, err
	}

	res, err := t.storage.StoreTrackedJob(ctx, job)
	if err != nil {
		return nil, fmt.Errorf("could not store tracked job: %w", err)
	}

	return res, nil
}

// List returns the user's jobs matching filter, most recently updated first.
func (t tracker) List(ctx context.Context,
	userID domain.UserID,
	filter domain.TrackedJobFilter) ([]domain.TrackedJob, error) {
	if filter.Stage != "" && !filter.Stage.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid stage: %s", filter.Stage)
	}
	if filter.Priority != "" && !filter.Priority.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid priority: %s", filter.Priority)
	}
	filter.Company = strings.TrimSpace(filter.Company)
	filter.Search = strings.TrimSpace(filter.Search)

	jobs, err := t.storage.TrackedJobs(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("could not get tracked jobs: %w", err)
	}

	return jobs, nil
}

func (t tracker) Get(ctx context.Context, userID domain.UserID, id domain.TrackedJobID) (*domain.TrackedJob, error) {
	job, err := t.storage.TrackedJobByID(ctx, userID, id, false)
	if err != nil {
		return nil, fmt.Errorf("could not get tracked job: %w", err)
	}
	if job == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Job not found")
	}

	return job, nil
}

// Update applies patch to the job while holding its row lock.
func (t tracker) Update(ctx context.Context,
	userID domain.UserID,
	id domain.TrackedJobID,
	patch Patch) (*domain.TrackedJob, error) {
	return t.mutate(ctx, userID, id, func(job *domain.TrackedJob, now time.Time) error {
		return patch.Apply(job, now)
	})
}

func (t tracker) Delete(ctx context.Context, userID domain.UserID, id domain.TrackedJobID) error {
	res, err := t.storage.DeleteTrackedJob(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("could not delete tracked job: %w", err)
	}
	if res == nil {
		return serrors.With(serrors.ErrNotFound, "Job not found")
	}

	return nil
}

func (t tracker) AddNote(ctx context.Context,
	userID domain.UserID,
	id domain.TrackedJobID,
	content string) (*domain.TrackedJob, error) {
	if strings.TrimSpace(content) == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "Note content is required")
	}

	return t.mutate(ctx, userID, id, func(job *domain.TrackedJob, now time.Time) error {
		job.Notes = append(job.Notes, domain.Note{ID: uuid.New(), Content: content, CreatedAt: now})

		return nil
	})
}

func (t tracker) AddReminder(ctx context.Context,
	userID domain.UserID,
	id domain.TrackedJobID,
	input ReminderInput) (*domain.TrackedJob, error) {
	date := input.Date.ptr()
	if date == nil || strings.TrimSpace(input.Message) == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "Date and message are required")
	}

	return t.mutate(ctx, userID, id, func(job *domain.TrackedJob, _ time.Time) error {
		job.Reminders = append(job.Reminders, domain.Reminder{
			ID:        uuid.New(),
			Date:      *date,
			Message:   input.Message,
			Completed: false,
		})

		return nil
	})
}

func (t tracker) AddInterview(ctx context.Context,
	userID domain.UserID,
	id domain.TrackedJobID,
	input InterviewInput) (*domain.TrackedJob, error) {
	interview, err := newInterview(input)
	if err != nil {
		return nil, err
	}

	return t.mutate(ctx, userID, id, func(job *domain.TrackedJob, _ time.Time) error {
		job.Interviews = append(job.Interviews, interview)

		return nil
	})
}

func (t tracker) AddAttachment(ctx context.Context,
	userID domain.UserID,
	id domain.TrackedJobID,
	input AttachmentInput) (*domain.TrackedJob, error) {
	if strings.TrimSpace(input.FileName) == "" || strings.TrimSpace(input.FileURL) == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "fileName and fileUrl are required")
	}
	fileType := input.FileType
	if fileType == "" {
		fileType = defaultAttachmentType
	}

	return t.mutate(ctx, userID, id, func(job *domain.TrackedJob, now time.Time) error {
		job.Attachments = append(job.Attachments, domain.Attachment{
			ID:         uuid.New(),
			FileName:   input.FileName,
			FileURL:    input.FileURL,
			FileType:   fileType,
			UploadedAt: now,
		})

		return nil
	})
}

// BulkUpdateStage moves every listed job of the user to stage. Ids that are
// malformed or belong to nobody are counted as requested but not updated.
func (t tracker) BulkUpdateStage(ctx context.Context,
	userID domain.UserID,
	ids []string,
	stage domain.Stage) (*BulkResult, error) {
	if len(ids) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "Job IDs array is required")
	}
	if stage == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "Stage is required")
	}
	if !stage.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid stage: %s", stage)
	}

	jobIDs := make([]domain.TrackedJobID, 0, len(ids))
	for _, raw := range ids {
		id, err := domain.ParseTrackedJobID(raw)
		if err != nil {
			continue
		}
		jobIDs = append(jobIDs, id)
	}

	result := &BulkResult{Requested: len(ids)}
	if len(jobIDs) == 0 {
		return result, nil
	}

	if err := t.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		jobs, err := tx.TrackedJobsByIDs(ctx, userID, jobIDs, true)
		if err != nil {
			return fmt.Errorf("could not get tracked jobs: %w", err)
		}

		now := t.now().UTC()
		for i := range jobs {
			job := &jobs[i]
			if job.Stage == stage {
				continue
			}

			job.Stage = stage
			job.StatusHistory = append(job.StatusHistory, domain.StatusChange{
				Stage:     stage,
				ChangedAt: now,
				Note:      bulkUpdateNote,
			})
			if _, err := tx.UpdateTrackedJob(ctx, *job); err != nil {
				return fmt.Errorf("could not update tracked job: %w", err)
			}
			result.Updated++
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not bulk update stage: %w", err)
	}

	return result, nil
}

// mutate loads the job under a row lock, lets fn change it and writes it back
// in the same transaction.
func (t tracker) mutate(ctx context.Context,
	userID domain.UserID,
	id domain.TrackedJobID,
	fn func(job *domain.TrackedJob, now time.Time) error) (*domain.TrackedJob, error) {
	var updated *domain.TrackedJob
	if err := t.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		job, err := tx.TrackedJobByID(ctx, userID, id, true)
		if err != nil {
			return fmt.Errorf("could not get tracked job: %w", err)
		}
		if job == nil {
			return serrors.With(serrors.ErrNotFound, "Job not found")
		}

		if err := fn(job, t.now().UTC()); err != nil {
			return err
		}

		updated, err = tx.UpdateTrackedJob(ctx, *job)
		if err != nil {
			return fmt.Errorf("could not update tracked job: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrNotFound, "Job not found")
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

// New creates a new Tracker backed by the provided storage.
func New(storage storage.Storage) Tracker {
	return &tracker{
		storage: storage,
		now:     time.Now,
	}
}
