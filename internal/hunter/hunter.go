package hunter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"careeros/internal/config"
	"careeros/internal/dispatch"
	"careeros/pkg/broker"
	"careeros/pkg/domain"
	"careeros/pkg/logger"
	"careeros/pkg/serrors"
	"careeros/pkg/storage"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// Options configure how job hunts are dispatched.
type Options struct {
	// Queue is the broker queue hunts are dispatched to.
	Queue string
	// MaxAttempts is the number of publish attempts of the dispatch job.
	MaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Queue:       cfg.RabbitMQ.Queues.JobHunter,
		MaxAttempts: cfg.Dispatch.MaxAttempts,
	}
}

// hunter is the concrete implementation of the Hunter interface.
type hunter struct {
	options Options
	storage storage.Storage
	logs    LogSource
	now     func() time.Time
}

// ValidCriteria reports whether criteria is an object naming a role, a list
// of job titles or a location.
func ValidCriteria(criteria json.RawMessage) bool {
	c := gjson.ParseBytes(criteria)
	if !c.IsObject() {
		return false
	}

	if role := c.Get("role"); role.Type == gjson.String && strings.TrimSpace(role.String()) != "" {
		return true
	}
	if titles := c.Get("jobTitles"); titles.IsArray() && len(titles.Array()) > 0 {
		return true
	}
	if location := c.Get("location"); location.Type == gjson.String && strings.TrimSpace(location.String()) != "" {
		return true
	}

	return false
}

// Start stores a queued session and dispatches it to the hunter agent in the
// same transaction.
func (h hunter) Start(ctx context.Context,
	userID domain.UserID,
	criteria json.RawMessage) (*domain.HunterSession, error) {
	if !ValidCriteria(criteria) {
		return nil, serrors.With(serrors.ErrBadRequest, "Invalid criteria: role, jobTitles, or location required")
	}

	now := h.now().UTC()
	var session *domain.HunterSession
	if err := h.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		session, err = tx.StoreHunterSession(ctx, domain.HunterSession{
			ID:       domain.NewSessionID(),
			UserID:   userID,
			Status:   domain.SessionStatusQueued,
			Logs:     []string{fmt.Sprintf("[%s] Job hunt session created", now.Format(time.RFC3339))},
			Criteria: criteria,
		})
		if err != nil {
			return fmt.Errorf("could not store hunter session: %w", err)
		}

		return dispatch.Enqueue(ctx, tx, h.options.Queue,
			broker.HuntMessage{SessionID: session.ID.String(), UserID: userID.String(), Criteria: criteria},
			dispatch.Subject{Kind: dispatch.SubjectHunterSession, ID: session.ID.String()},
			h.options.MaxAttempts)
	}); err != nil {
		return nil, fmt.Errorf("could not start job hunt: %w", err)
	}

	logger.Info(ctx, "job hunt queued", zap.Stringer("sessionID", session.ID))

	return session, nil
}

func (h hunter) Session(ctx context.Context, userID domain.UserID, id domain.SessionID) (*domain.HunterSession, error) {
	res, err := h.storage.HunterSessionByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("could not get hunter session: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Session not found.")
	}

	return res, nil
}

// Results returns the session with the jobs found so far, best match first.
func (h hunter) Results(ctx context.Context,
	userID domain.UserID,
	id domain.SessionID) (*domain.HunterSession, []domain.JobResult, error) {
	session, err := h.Session(ctx, userID, id)
	if err != nil {
		return nil, nil, err
	}

	results, err := h.storage.SessionJobResults(ctx, userID, id)
	if err != nil {
		return nil, nil, fmt.Errorf("could not get job results: %w", err)
	}

	return session, results, nil
}

func (h hunter) Follow(ctx context.Context,
	userID domain.UserID,
	id domain.SessionID) (*domain.HunterSession, <-chan domain.LogEntry, func(), error) {
	// subscribe first so nothing published between the load and the
	// subscription is lost
	entries, cancel := h.logs.Subscribe(id)

	session, err := h.Session(ctx, userID, id)
	if err != nil {
		cancel()

		return nil, nil, nil, err
	}

	return session, entries, cancel, nil
}

// New creates a new Hunter backed by the provided storage, streaming live
// logs from logs.
func New(storage storage.Storage, logs LogSource, options Options) Hunter {
	return &hunter{
		options: options,
		storage: storage,
		logs:    logs,
		now:     time.Now,
	}
}
