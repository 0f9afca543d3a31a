// Package worker runs the background jobs of the gateway on River: the outbox
// dispatcher and the periodic reaper.
package worker

import (
	"context"
	"fmt"
	"time"

	"careeros/internal/config"
	"careeros/pkg/broker"
	"careeros/pkg/logger"
	"careeros/pkg/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

// Options configure the River client.
type Options struct {
	// Workers is the maximum number of jobs worked concurrently.
	Workers int
	// ReaperInterval is how often stale runs are looked for.
	ReaperInterval time.Duration
	// StaleAfter is how long a run may go without progress.
	StaleAfter time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Workers:        cfg.River.Workers,
		ReaperInterval: cfg.Reaper.Interval,
		StaleAfter:     cfg.Reaper.StaleAfter,
	}
}

// NewClient registers the workers and periodic jobs on a River client without starting it.
func NewClient(ctx context.Context,
	dbPool *pgxpool.Pool,
	publisher broker.Publisher,
	strg storage.AllStorage,
	options Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewDispatchWorker(publisher, strg))
	river.AddWorker(workers, NewReaperWorker(strg))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: options.Workers},
		},
		Workers: workers,
		PeriodicJobs: []*river.PeriodicJob{
			river.NewPeriodicJob(
				river.PeriodicInterval(options.ReaperInterval),
				func() (river.JobArgs, *river.InsertOpts) {
					return ReaperArgs{StaleAfter: options.StaleAfter}, nil
				},
				&river.PeriodicJobOpts{RunOnStart: true},
			),
		},
		Logger: logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	return riverClient, nil
}

// Start creates the River client and starts working jobs until ctx is done
// or Stop is called on the returned client.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	publisher broker.Publisher,
	strg storage.AllStorage,
	options Options) (*river.Client[pgx.Tx], error) {
	riverClient, err := NewClient(ctx, dbPool, publisher, strg, options)
	if err != nil {
		return nil, err
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
