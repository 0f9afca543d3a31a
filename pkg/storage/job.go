package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs. When called on a TxStorage the job
// becomes visible only if the surrounding transaction commits, which is what
// makes it usable as an outbox next to the record the job announces.
type JobStorage interface {
	// AddJob enqueues a job and reports whether it was inserted (false when a
	// uniqueness rule skipped it as a duplicate).
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
