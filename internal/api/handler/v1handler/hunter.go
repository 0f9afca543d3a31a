package v1handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"careeros/pkg/domain"
	"careeros/pkg/logger"

	"go.uber.org/zap"
)

const sessionNotFound = "Session not found."

type StartHuntResponse struct {
	SessionID domain.SessionID `json:"sessionId"`
	Message   string           `json:"message"`
}

type HuntSessionResponse struct {
	SessionID domain.SessionID     `json:"sessionId"`
	Status    domain.SessionStatus `json:"status"`
	Logs      []string             `json:"logs"`
	Criteria  json.RawMessage      `json:"criteria"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

type HuntResultsResponse struct {
	SessionID    domain.SessionID     `json:"sessionId"`
	Status       domain.SessionStatus `json:"status"`
	TotalResults int                  `json:"totalResults"`
	Results      []domain.JobResult   `json:"results"`
}

// streamEvent is the payload of one SSE "data:" line.
type streamEvent struct {
	Type      domain.LogLevel `json:"type"`
	Message   string          `json:"message"`
	Timestamp *time.Time      `json:"timestamp,omitempty"`
}

// huntCriteria reads the criteria of a start request. Bodies without a
// "criteria" key are taken as the criteria themselves.
func huntCriteria(body []byte) json.RawMessage {
	var req struct {
		Criteria json.RawMessage `json:"criteria"`
	}
	if err := json.Unmarshal(body, &req); err == nil && len(req.Criteria) > 0 {
		return req.Criteria
	}

	return bytes.TrimSpace(body)
}

// StartHunt queues a job hunt for the posted criteria.
func (h Handler) StartHunt(w http.ResponseWriter, r *http.Request) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxJSONBody))
	if err != nil {
		return fmt.Errorf("could not read body: %w", err)
	}

	session, err := h.deps.Hunter.Start(r.Context(), GetUserIDFromContext(r.Context()), huntCriteria(body))
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusAccepted, StartHuntResponse{
		SessionID: session.ID,
		Message:   "Job hunt started successfully",
	})

	return nil
}

func (h Handler) HuntSession(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, "sessionId", domain.ParseSessionID, sessionNotFound)
	if err != nil {
		return err
	}

	s, err := h.deps.Hunter.Session(r.Context(), GetUserIDFromContext(r.Context()), id)
	if err != nil {
		return err //nolint: wrapcheck
	}

	logs := s.Logs
	if logs == nil {
		logs = []string{}
	}
	writeJSON(w, http.StatusOK, HuntSessionResponse{
		SessionID: s.ID,
		Status:    s.Status,
		Logs:      logs,
		Criteria:  s.Criteria,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	})

	return nil
}

// HuntResults returns the jobs found by the session, best match first.
func (h Handler) HuntResults(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, "sessionId", domain.ParseSessionID, sessionNotFound)
	if err != nil {
		return err
	}

	s, results, err := h.deps.Hunter.Results(r.Context(), GetUserIDFromContext(r.Context()), id)
	if err != nil {
		return err //nolint: wrapcheck
	}
	if results == nil {
		results = []domain.JobResult{}
	}

	writeJSON(w, http.StatusOK, HuntResultsResponse{
		SessionID:    s.ID,
		Status:       s.Status,
		TotalResults: len(results),
		Results:      results,
	})

	return nil
}

// HuntLogs streams the session's log as server-sent events. Stored lines are
// replayed first, then live entries follow until the client goes away. Live
// entries already covered by the replay are skipped.
func (h Handler) HuntLogs(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := pathID(r, "sessionId", domain.ParseSessionID, sessionNotFound)
	if err != nil {
		return err
	}

	session, entries, cancel, err := h.deps.Hunter.Follow(ctx, GetUserIDFromContext(ctx), id)
	if err != nil {
		return err //nolint: wrapcheck
	}
	defer cancel()

	h.activeStreams.Add(ctx, 1)
	defer h.activeStreams.Add(ctx, -1)

	rc := http.NewResponseController(w)
	// the stream outlives the server write timeout
	_ = rc.SetWriteDeadline(time.Time{})

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	for _, line := range session.Logs {
		if err := writeEvent(w, streamEvent{Type: domain.LogLevelInfo, Message: line}); err != nil {
			return nil
		}
	}
	if err := rc.Flush(); err != nil {
		logger.Debug(ctx, "could not flush log stream", zap.Error(err))
	}
	replayed := len(session.Logs)

	heartbeat := time.NewTicker(h.options.HeartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-h.closing:
			return nil
		case entry, ok := <-entries:
			if !ok {
				return nil
			}
			// stored between the subscription and the session load
			if entry.Seq > 0 && entry.Seq <= replayed {
				continue
			}

			level := entry.Level
			if level == "" {
				level = domain.LogLevelInfo
			}
			ts := entry.Timestamp
			if ts.IsZero() {
				ts = time.Now().UTC()
			}
			if err := writeEvent(w, streamEvent{Type: level, Message: entry.Message, Timestamp: &ts}); err != nil {
				return nil
			}
		case <-heartbeat.C:
			if _, err := io.WriteString(w, ": heartbeat\n\n"); err != nil {
				return nil
			}
		}

		if err := rc.Flush(); err != nil {
			logger.Debug(ctx, "could not flush log stream", zap.Error(err))

			return nil
		}
	}
}

func writeEvent(w io.Writer, event streamEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not marshal event: %w", err)
	}

	_, err = fmt.Fprintf(w, "data: %s\n\n", data)

	return err //nolint: wrapcheck
}
