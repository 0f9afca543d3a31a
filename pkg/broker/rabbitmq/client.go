// Package rabbitmq provides a broker.Broker backed by RabbitMQ.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"careeros/pkg/broker"
	"careeros/pkg/logger"
	"careeros/pkg/metrics"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var (
	// ErrNacked is returned when the broker refuses a published message.
	ErrNacked = errors.New("message nacked by broker")
	// ErrClosed is returned after Close.
	ErrClosed = errors.New("broker client closed")
)

// Options configures the RabbitMQ client.
type Options struct {
	URL string
	// Queues are declared durable on every (re)connect.
	Queues []string
	// ConfirmTimeout bounds the wait for a publisher confirm.
	ConfirmTimeout time.Duration
}

// Client is a RabbitMQ connection shared by publishers and consumers. Publishes
// are serialized on a single confirm-mode channel. It is safe for concurrent use.
type Client struct {
	options Options
	dial    func(url string) (*amqp.Connection, error)

	mu       sync.Mutex
	conn     *amqp.Connection
	pubCh    *amqp.Channel
	confirms chan amqp.Confirmation
	closed   bool

	tracer    trace.Tracer
	published metric.Int64Counter
	consumed  metric.Int64Counter
}

var _ broker.Broker = (*Client)(nil)

// New dials RabbitMQ and declares the configured queues.
func New(ctx context.Context, options Options, meter metric.Meter) (*Client, error) {
	if options.ConfirmTimeout <= 0 {
		options.ConfirmTimeout = 5 * time.Second
	}

	published, err := meter.Int64Counter("broker.messages.published",
		metric.WithDescription("Messages confirmed by the broker."))
	if err != nil {
		return nil, fmt.Errorf("could not create published counter: %w", err)
	}
	consumed, err := meter.Int64Counter("broker.messages.consumed",
		metric.WithDescription("Messages delivered to consumers."))
	if err != nil {
		return nil, fmt.Errorf("could not create consumed counter: %w", err)
	}

	c := &Client{
		options:   options,
		dial:      amqp.Dial,
		tracer:    otel.Tracer(metrics.MeterName + "/broker"),
		published: published,
		consumed:  consumed,
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.connectLocked(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

// connectLocked dials the broker when the connection is gone and opens the
// publish channel in confirm mode when it is missing. Queues are declared on
// every new publish channel. c.mu must be held.
func (c *Client) connectLocked(ctx context.Context) error {
	if c.closed {
		return ErrClosed
	}
	if c.conn == nil || c.conn.IsClosed() {
		c.resetLocked()

		conn, err := c.dial(c.options.URL)
		if err != nil {
			return fmt.Errorf("could not dial rabbitmq: %w", err)
		}
		c.conn = conn

		logger.Info(ctx, "connected to rabbitmq", zap.Strings("queues", c.options.Queues))
	}
	if c.pubCh != nil {
		return nil
	}

	ch, err := c.conn.Channel()
	if err != nil {
		return fmt.Errorf("could not open rabbitmq channel: %w", err)
	}

	for _, q := range c.options.Queues {
		if _, err := ch.QueueDeclare(q, true, false, false, false, nil); err != nil {
			_ = ch.Close()

			return fmt.Errorf("could not declare queue %s: %w", q, err)
		}
	}

	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()

		return fmt.Errorf("could not enable publisher confirms: %w", err)
	}

	c.pubCh = ch
	c.confirms = ch.NotifyPublish(make(chan amqp.Confirmation, 1))

	return nil
}

// resetPublishLocked drops the publish channel and leaves the connection, and
// the consumers on it, alone.
func (c *Client) resetPublishLocked() {
	if c.pubCh != nil {
		_ = c.pubCh.Close()
	}
	c.pubCh = nil
	c.confirms = nil
}

func (c *Client) resetLocked() {
	c.resetPublishLocked()
	if c.conn != nil && !c.conn.IsClosed() {
		_ = c.conn.Close()
	}
	c.conn = nil
}

// Publish implements broker.Publisher.
func (c *Client) Publish(ctx context.Context, queue string, payload any) (err error) {
	ctx, span := c.tracer.Start(ctx, "broker.publish",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(attribute.String("messaging.destination.name", queue)))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("could not marshal %s payload: %w", queue, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.connectLocked(ctx); err != nil {
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := c.pubCh.Publish("", queue, false, false, msg); err != nil {
		c.resetPublishLocked()

		return fmt.Errorf("could not publish to %s: %w", queue, err)
	}

	timer := time.NewTimer(c.options.ConfirmTimeout)
	defer timer.Stop()

	select {
	case confirm, ok := <-c.confirms:
		if !ok {
			c.resetPublishLocked()

			return fmt.Errorf("channel closed before confirm on %s", queue)
		}
		if !confirm.Ack {
			return fmt.Errorf("could not publish to %s: %w", queue, ErrNacked)
		}
	case <-timer.C:
		// a late confirm would be read as the next message's; start over
		c.resetPublishLocked()

		return fmt.Errorf("timed out waiting for confirm on %s", queue)
	case <-ctx.Done():
		c.resetPublishLocked()

		return ctx.Err()
	}

	c.published.Add(ctx, 1, metric.WithAttributes(attribute.String("queue", queue)))
	logger.Debug(ctx, "published message", zap.String("queue", queue), zap.String("message_id", msg.MessageId))

	return nil
}

// Consume implements broker.Consumer. Each subscription gets its own channel.
func (c *Client) Consume(ctx context.Context, queue string, prefetch int) (<-chan amqp.Delivery, error) {
	c.mu.Lock()
	if err := c.connectLocked(ctx); err != nil {
		c.mu.Unlock()

		return nil, err
	}
	conn := c.conn
	c.mu.Unlock()

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("could not open consumer channel: %w", err)
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()

		return nil, fmt.Errorf("could not declare queue %s: %w", queue, err)
	}
	if prefetch > 0 {
		if err := ch.Qos(prefetch, 0, false); err != nil {
			_ = ch.Close()

			return nil, fmt.Errorf("could not set qos: %w", err)
		}
	}

	tag := "careeros-" + uuid.NewString()
	deliveries, err := ch.Consume(queue, tag, false, false, false, false, nil)
	if err != nil {
		_ = ch.Close()

		return nil, fmt.Errorf("could not consume %s: %w", queue, err)
	}

	out := make(chan amqp.Delivery)
	go func() {
		defer close(out)
		defer func() { _ = ch.Close() }()

		for {
			select {
			case <-ctx.Done():
				_ = ch.Cancel(tag, false)

				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}
				c.consumed.Add(ctx, 1, metric.WithAttributes(attribute.String("queue", queue)))
				select {
				case out <- d:
				case <-ctx.Done():
					_ = d.Nack(false, true)
					_ = ch.Cancel(tag, false)

					return
				}
			}
		}
	}()

	return out, nil
}

// Close closes the publish channel and the connection. Active consumers see
// their delivery channels closed.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	c.resetLocked()

	return nil
}
