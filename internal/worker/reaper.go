package worker

import (
	"context"
	"fmt"
	"time"

	"careeros/pkg/logger"
	"careeros/pkg/storage"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

const (
	analysisTimedOut = "analysis timed out"
	huntTimedOut     = "[ERROR] job hunt timed out"
)

// ReaperArgs are the arguments of the periodic job failing stuck runs.
type ReaperArgs struct {
	// StaleAfter is how long a run may go without progress before it is failed.
	StaleAfter time.Duration `json:"staleAfter"`
}

// Kind returns the River job kind used to register the reaper worker.
func (args ReaperArgs) Kind() string { return "ReapStaleRunsJob" }

// InsertOpts makes a missed reaper run not worth retrying; the next tick covers it.
func (args ReaperArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{MaxAttempts: 1}
}

// ReaperWorker fails analyses and hunter sessions the external workers
// stopped reporting on.
type ReaperWorker struct {
	river.WorkerDefaults[ReaperArgs]

	storage storage.AllStorage
	now     func() time.Time
}

// NewReaperWorker constructs a ReaperWorker over storage.
func NewReaperWorker(storage storage.AllStorage) *ReaperWorker {
	return &ReaperWorker{
		storage: storage,
		now:     time.Now,
	}
}

func (r *ReaperWorker) Work(ctx context.Context, job *river.Job[ReaperArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))
	before := r.now().Add(-job.Args.StaleAfter)

	analyses, err := r.storage.FailStaleAnalyses(ctx, before, analysisTimedOut)
	if err != nil {
		return fmt.Errorf("could not fail stale analyses: %w", err)
	}

	sessions, err := r.storage.FailStaleHunterSessions(ctx, before, huntTimedOut)
	if err != nil {
		return fmt.Errorf("could not fail stale hunter sessions: %w", err)
	}

	if analyses > 0 || sessions > 0 {
		logger.Info(ctx, "failed stale runs", zap.Int64("analyses", analyses), zap.Int64("sessions", sessions))
	}

	return nil
}
