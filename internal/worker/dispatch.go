package worker

import (
	"context"
	"fmt"

	"careeros/internal/dispatch"
	"careeros/pkg/broker"
	"careeros/pkg/domain"
	"careeros/pkg/logger"
	"careeros/pkg/storage"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

const (
	analysisDispatchFailed = "could not dispatch analysis"
	huntDispatchFailed     = "[ERROR] could not dispatch job hunt"
)

// DispatchWorker is a River worker publishing outbox jobs to the broker.
// Failed publishes are retried by River with backoff. When the last attempt
// fails the announced record is marked failed so the user is not left waiting
// on a run no worker will ever pick up.
type DispatchWorker struct {
	river.WorkerDefaults[dispatch.JobArgs]

	publisher broker.Publisher
	storage   storage.AllStorage
}

// NewDispatchWorker constructs a DispatchWorker publishing through publisher.
func NewDispatchWorker(publisher broker.Publisher, storage storage.AllStorage) *DispatchWorker {
	return &DispatchWorker{
		publisher: publisher,
		storage:   storage,
	}
}

// Work publishes the job payload and maps failures to River actions.
func (d *DispatchWorker) Work(ctx context.Context, job *river.Job[dispatch.JobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("queue", job.Args.Queue),
		zap.String("subjectKind", string(job.Args.Subject.Kind)),
		zap.String("subjectID", job.Args.Subject.ID))

	err := d.publisher.Publish(ctx, job.Args.Queue, job.Args.Payload)
	if err == nil {
		logger.Info(ctx, "message dispatched")

		return nil
	}

	logger.Error(ctx, "could not publish message", zap.Int("attempt", job.Attempt), zap.Error(err))

	if job.Attempt < job.MaxAttempts {
		return fmt.Errorf("could not publish message: %w", err)
	}

	if ferr := d.failSubject(ctx, job.Args.Subject); ferr != nil {
		return fmt.Errorf("could not mark dispatch subject failed: %w", ferr)
	}

	return river.JobCancel(fmt.Errorf("giving up dispatch: %w", err)) //nolint: wrapcheck
}

func (d *DispatchWorker) failSubject(ctx context.Context, subject dispatch.Subject) error {
	switch subject.Kind {
	case dispatch.SubjectAnalysis:
		id, err := domain.ParseRunID(subject.ID)
		if err != nil {
			return fmt.Errorf("invalid run id: %w", err)
		}
		if _, err := d.storage.FailAnalysis(ctx, id, analysisDispatchFailed); err != nil {
			return fmt.Errorf("could not fail analysis: %w", err)
		}
	case dispatch.SubjectHunterSession:
		id, err := domain.ParseSessionID(subject.ID)
		if err != nil {
			return fmt.Errorf("invalid session id: %w", err)
		}
		if _, err := d.storage.FailHunterSession(ctx, id, huntDispatchFailed); err != nil {
			return fmt.Errorf("could not fail hunter session: %w", err)
		}
	case dispatch.SubjectPartialProfile:
		id, err := uuid.Parse(subject.ID)
		if err != nil {
			return fmt.Errorf("invalid partial profile id: %w", err)
		}
		if err := d.storage.FailPartialProfile(ctx, id); err != nil {
			return fmt.Errorf("could not fail partial profile: %w", err)
		}
	default:
		logger.Warn(ctx, "unknown dispatch subject, nothing to fail")

		return nil
	}

	logger.Info(ctx, "marked dispatch subject failed")

	return nil
}
