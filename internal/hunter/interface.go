package hunter

import (
	"context"
	"encoding/json"

	"careeros/pkg/domain"
)

//go:generate mockgen -package mockhunter -source=interface.go -destination=mock/mockhunter.go *
type Hunter interface {
	Start(ctx context.Context, userID domain.UserID, criteria json.RawMessage) (*domain.HunterSession, error)
	Session(ctx context.Context, userID domain.UserID, id domain.SessionID) (*domain.HunterSession, error)
	Results(ctx context.Context, userID domain.UserID, id domain.SessionID) (*domain.HunterSession, []domain.JobResult, error)
	// Follow subscribes to the live log entries of the session and then
	// returns its stored state. Entries published while the session is loaded
	// may appear both in the stored logs and on the channel. cancel must be
	// called once the caller stops reading.
	Follow(ctx context.Context,
		userID domain.UserID,
		id domain.SessionID) (*domain.HunterSession, <-chan domain.LogEntry, func(), error)
}

// LogSource fans out live log entries by session.
type LogSource interface {
	Subscribe(id domain.SessionID) (<-chan domain.LogEntry, func())
}
