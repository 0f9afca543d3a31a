// Package dispatch turns broker publishes into river jobs. A dispatch job is
// inserted in the same transaction as the record it announces, so the message
// is sent if and only if the record was committed.
package dispatch

import (
	"context"
	"encoding/json"
	"fmt"

	"careeros/pkg/storage"

	"github.com/riverqueue/river"
)

// SubjectKind names the kind of record a dispatch announces.
type SubjectKind string

const (
	SubjectPartialProfile SubjectKind = "partial_profile"
	SubjectAnalysis       SubjectKind = "analysis"
	SubjectHunterSession  SubjectKind = "hunter_session"
)

// Subject is the record that must be marked failed when its message can not
// be delivered.
type Subject struct {
	Kind SubjectKind `json:"kind"`
	ID   string      `json:"id"`
}

// JobArgs contains the arguments of a dispatch job submitted to River.
type JobArgs struct {
	// Queue is the broker queue the payload is published to.
	Queue string `json:"queue"`
	// Payload is the JSON message body.
	Payload json.RawMessage `json:"payload"`
	Subject Subject         `json:"subject"`

	// maxAttempts configures the maximum number of times River should retry the publish.
	maxAttempts int
}

// Kind returns the River job kind used to register the dispatch worker.
func (args JobArgs) Kind() string { return "DispatchJob" }

// InsertOpts returns the River options the job is enqueued with.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
	}
}

// NewJobArgs marshals payload into a dispatch job for queue.
func NewJobArgs(queue string, payload any, subject Subject, maxAttempts int) (JobArgs, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return JobArgs{}, fmt.Errorf("could not marshal payload: %w", err)
	}

	return JobArgs{
		Queue:       queue,
		Payload:     body,
		Subject:     subject,
		maxAttempts: maxAttempts,
	}, nil
}

// Enqueue adds a dispatch of payload to queue. Called on a transactional
// handle, the job is only visible once the transaction commits.
func Enqueue(ctx context.Context,
	jobs storage.JobStorage,
	queue string,
	payload any,
	subject Subject,
	maxAttempts int) error {
	args, err := NewJobArgs(queue, payload, subject, maxAttempts)
	if err != nil {
		return err
	}

	if _, err := jobs.AddJob(ctx, args, nil); err != nil {
		return fmt.Errorf("could not add dispatch job: %w", err)
	}

	return nil
}
