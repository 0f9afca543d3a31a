package storage

import (
	"context"
	"time"

	"careeros/pkg/domain"
)

// HunterStorage persists job hunt sessions and the results the worker found.
type HunterStorage interface {
	StoreHunterSession(ctx context.Context, s domain.HunterSession) (*domain.HunterSession, error)
	// HunterSessionByID returns the user's session or nil.
	HunterSessionByID(ctx context.Context, userID domain.UserID, id domain.SessionID) (*domain.HunterSession, error)
	// AppendHunterSessionLog appends line to the session logs and returns the
	// number of lines stored afterwards, or 0 when the session does not exist.
	AppendHunterSessionLog(ctx context.Context, id domain.SessionID, line string) (int, error)
	// FailHunterSession moves a queued or running session to failed and
	// appends line to its logs. It reports whether a row changed.
	FailHunterSession(ctx context.Context, id domain.SessionID, line string) (bool, error)
	// FailStaleHunterSessions fails every queued or running session last
	// updated before the given time, appending line to each.
	FailStaleHunterSessions(ctx context.Context, before time.Time, line string) (int64, error)
	// SessionJobResults returns the results of the user's session ordered by
	// match score, best first.
	SessionJobResults(ctx context.Context, userID domain.UserID, id domain.SessionID) ([]domain.JobResult, error)
}
