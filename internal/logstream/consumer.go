package logstream

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"careeros/internal/config"
	"careeros/pkg/broker"
	"careeros/pkg/domain"
	"careeros/pkg/logger"
	"careeros/pkg/storage"

	"github.com/streadway/amqp"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

var errMalformedEntry = errors.New("log message is not a json object")

// timestampLayouts are tried in order. Times without a zone are UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// parseTimestamp reads RFC 3339 strings, ISO 8601 strings without a zone and
// unix epochs in seconds or milliseconds.
func parseTimestamp(v gjson.Result) (time.Time, bool) {
	switch v.Type {
	case gjson.String:
		raw := strings.TrimSpace(v.Str)
		for _, layout := range timestampLayouts {
			if ts, err := time.Parse(layout, raw); err == nil {
				return ts.UTC(), true
			}
		}
	case gjson.Number:
		epoch := v.Float()
		if epoch <= 0 || math.IsInf(epoch, 0) {
			return time.Time{}, false
		}
		// anything past 1e11 seconds is year 5138, so it must be milliseconds
		if epoch > 1e11 {
			return time.UnixMilli(int64(epoch)).UTC(), true
		}
		sec, frac := math.Modf(epoch)

		return time.Unix(int64(sec), int64(frac*1e9)).UTC(), true
	default:
	}

	return time.Time{}, false
}

// decodeEntry reads a worker log message. A missing or unreadable timestamp
// becomes received.
func decodeEntry(body []byte, received time.Time) (domain.LogEntry, error) {
	if !gjson.ValidBytes(body) {
		return domain.LogEntry{}, errMalformedEntry
	}
	msg := gjson.ParseBytes(body)
	if !msg.IsObject() {
		return domain.LogEntry{}, errMalformedEntry
	}

	fields := msg.Map()
	entry := domain.LogEntry{
		SessionID: fields["sessionId"].String(),
		UserID:    fields["userId"].String(),
		Level:     domain.LogLevel(strings.ToLower(strings.TrimSpace(fields["level"].String()))),
		Message:   fields["message"].String(),
		Timestamp: received.UTC(),
	}
	if ts, ok := parseTimestamp(fields["timestamp"]); ok {
		entry.Timestamp = ts
	}
	if entry.Level == "" {
		entry.Level = domain.LogLevelInfo
	}

	return entry, nil
}

// Options configures the log consumer.
type Options struct {
	Queue          string
	Prefetch       int
	ReconnectDelay time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Queue:          cfg.RabbitMQ.Queues.JobHuntLogs,
		Prefetch:       cfg.RabbitMQ.Prefetch,
		ReconnectDelay: cfg.RabbitMQ.ReconnectDelay,
	}
}

// Consumer stores the progress messages the hunter worker publishes and
// forwards them to the hub.
type Consumer struct {
	storage  storage.HunterStorage
	consumer broker.Consumer
	hub      *Hub
	options  Options
	now      func() time.Time
}

// NewConsumer creates a Consumer.
func NewConsumer(s storage.HunterStorage, c broker.Consumer, hub *Hub, options Options) *Consumer {
	return &Consumer{
		storage:  s,
		consumer: c,
		hub:      hub,
		options:  options,
		now:      time.Now,
	}
}

// Run consumes until ctx is done, resubscribing after ReconnectDelay whenever
// the subscription fails or ends. It always returns nil.
func (c *Consumer) Run(ctx context.Context) error {
	ctx = logger.WithFields(ctx, zap.String("queue", c.options.Queue))

	for {
		deliveries, err := c.consumer.Consume(ctx, c.options.Queue, c.options.Prefetch)
		if err != nil {
			logger.Error(ctx, "could not subscribe to log queue", zap.Error(err))
		} else {
			logger.Info(ctx, "consuming hunter logs")
			for d := range deliveries {
				c.handle(ctx, d)
			}
		}

		if ctx.Err() != nil {
			logger.Info(ctx, "log consumer stopped")

			return nil
		}

		logger.Warn(ctx, "log subscription ended, reconnecting", zap.Duration("delay", c.options.ReconnectDelay))
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(c.options.ReconnectDelay):
		}
	}
}

func (c *Consumer) handle(ctx context.Context, d amqp.Delivery) {
	entry, err := decodeEntry(d.Body, c.now())
	if err != nil {
		logger.Warn(ctx, "dropping malformed log message", zap.Error(err), zap.String("message_id", d.MessageId))
		_ = d.Ack(false)

		return
	}

	id, err := domain.ParseSessionID(strings.TrimSpace(entry.SessionID))
	if err != nil {
		logger.Warn(ctx, "dropping log message without session id",
			zap.String("session_id", entry.SessionID),
			zap.String("message_id", d.MessageId))
		_ = d.Ack(false)

		return
	}

	ctx = logger.WithFields(ctx, zap.Stringer("session_id", id))

	seq, err := c.storage.AppendHunterSessionLog(ctx, id, entry.Line())
	if err != nil {
		logger.Error(ctx, "could not append hunter log, requeueing", zap.Error(err))
		_ = d.Nack(false, true)

		return
	}
	if seq == 0 {
		logger.Warn(ctx, "dropping log message of unknown session")
		_ = d.Ack(false)

		return
	}

	entry.Seq = seq
	c.hub.Publish(id, entry)
	_ = d.Ack(false)
}
