// Package broker defines how the gateway hands work to the external AI
// workers and how it receives their progress messages.
package broker

import (
	"context"

	"github.com/streadway/amqp"
)

// Queues the gateway talks to.
const (
	ResumeProcessingQueue = "resume_processing_queue"
	JDAnalysisQueue       = "jd_analysis_queue"
	JobHunterQueue        = "job_hunter_queue"
	JobHuntLogsQueue      = "job_hunt_logs_queue"
)

// Publisher delivers messages to a work queue.
//
//go:generate mockgen -package mockbroker -source=interface.go -destination=mock/mockbroker.go *
type Publisher interface {
	// Publish marshals payload as JSON and publishes it as a persistent
	// message. It returns once the broker confirmed the message.
	Publish(ctx context.Context, queue string, payload any) error
}

// Consumer subscribes to a queue with manual acknowledgements.
type Consumer interface {
	// Consume returns the deliveries of queue. At most prefetch deliveries are
	// unacknowledged at any time. The subscription ends when ctx is done or
	// the connection drops, which closes the returned channel.
	Consume(ctx context.Context, queue string, prefetch int) (<-chan amqp.Delivery, error)
}

// Broker is a connection able to both publish and consume.
type Broker interface {
	Publisher
	Consumer

	Close() error
}
