package v1handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"careeros/internal/api/handler/v1handler"
	"careeros/pkg/domain"
	"careeros/pkg/serrors"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStartHunt(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "wrapped criteria", body: `{"criteria":{"role":"SRE","location":"Berlin"}}`},
		{name: "bare criteria", body: `{"role":"SRE","location":"Berlin"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t, nil)
			sessionID := domain.NewSessionID()

			api.hunter.EXPECT().Start(gomock.Any(), testUser, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ domain.UserID, criteria json.RawMessage) (*domain.HunterSession, error) {
					require.JSONEq(t, `{"role":"SRE","location":"Berlin"}`, string(criteria))

					return &domain.HunterSession{ID: sessionID, Status: domain.SessionStatusQueued}, nil
				})

			rec := api.do(t, http.MethodPost, "/api/hunter/start", tt.body)
			require.Equal(t, http.StatusAccepted, rec.Code)
			require.JSONEq(t, `{"sessionId":"`+sessionID.String()+`","message":"Job hunt started successfully"}`,
				rec.Body.String())
		})
	}
}

func TestStartHunt_InvalidCriteria(t *testing.T) {
	api := newTestAPI(t, nil)

	api.hunter.EXPECT().Start(gomock.Any(), testUser, gomock.Any()).
		Return(nil, serrors.With(serrors.ErrBadRequest, "Invalid criteria: role, jobTitles, or location required"))

	rec := api.do(t, http.MethodPost, "/api/hunter/start", `{"criteria":{}}`)
	body := requireError(t, rec, http.StatusBadRequest, serrors.ErrBadRequest)
	require.Equal(t, "Invalid criteria: role, jobTitles, or location required", body.Message)
}

func TestHuntSession(t *testing.T) {
	api := newTestAPI(t, nil)
	id := domain.NewSessionID()
	created := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	api.hunter.EXPECT().Session(gomock.Any(), testUser, id).Return(&domain.HunterSession{
		ID:        id,
		Status:    domain.SessionStatusRunning,
		Logs:      []string{"[INFO] searching"},
		Criteria:  json.RawMessage(`{"role":"SRE"}`),
		CreatedAt: created,
		UpdatedAt: created.Add(time.Minute),
	}, nil)

	rec := api.do(t, http.MethodGet, "/api/hunter/session/"+id.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{
		"sessionId": "`+id.String()+`",
		"status": "running",
		"logs": ["[INFO] searching"],
		"criteria": {"role": "SRE"},
		"createdAt": "2026-04-01T10:00:00Z",
		"updatedAt": "2026-04-01T10:01:00Z"
	}`, rec.Body.String())
}

func TestHuntSession_NotFound(t *testing.T) {
	api := newTestAPI(t, nil)
	id := domain.NewSessionID()

	api.hunter.EXPECT().Session(gomock.Any(), testUser, id).
		Return(nil, serrors.With(serrors.ErrNotFound, "Session not found."))

	rec := api.do(t, http.MethodGet, "/api/hunter/session/"+id.String(), nil)
	requireError(t, rec, http.StatusNotFound, serrors.ErrNotFound)
}

func TestHuntResults(t *testing.T) {
	api := newTestAPI(t, nil)
	id := domain.NewSessionID()

	api.hunter.EXPECT().Results(gomock.Any(), testUser, id).Return(
		&domain.HunterSession{ID: id, Status: domain.SessionStatusCompleted},
		[]domain.JobResult{{Title: "SRE", MatchScore: 91}, {Title: "DevOps", MatchScore: 64}},
		nil)

	rec := api.do(t, http.MethodGet, "/api/hunter/results/"+id.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody[struct {
		SessionID    string             `json:"sessionId"`
		Status       string             `json:"status"`
		TotalResults int                `json:"totalResults"`
		Results      []domain.JobResult `json:"results"`
	}](t, rec)
	require.Equal(t, id.String(), body.SessionID)
	require.Equal(t, "completed", body.Status)
	require.Equal(t, 2, body.TotalResults)
	require.Equal(t, "SRE", body.Results[0].Title)
}

func TestHuntLogs(t *testing.T) {
	api := newTestAPI(t, nil)
	id := domain.NewSessionID()
	ts := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	live := make(chan domain.LogEntry, 2)
	live <- domain.LogEntry{SessionID: id.String(), Level: domain.LogLevelSuccess, Message: "found 3 jobs", Timestamp: ts}
	live <- domain.LogEntry{SessionID: id.String(), Message: "ranking"}
	close(live)
	var entries <-chan domain.LogEntry = live

	cancelled := false
	api.hunter.EXPECT().Follow(gomock.Any(), testUser, id).Return(
		&domain.HunterSession{ID: id, Logs: []string{"[2026-04-01T09:59:00Z] Job hunt session created"}},
		entries,
		func() { cancelled = true },
		nil)

	rec := api.do(t, http.MethodGet, "/api/hunter/logs/"+id.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, cancelled)
	require.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	require.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
	require.Equal(t, "no", rec.Header().Get("X-Accel-Buffering"))

	var events []map[string]any
	for _, line := range strings.Split(rec.Body.String(), "\n") {
		data, ok := strings.CutPrefix(line, "data: ")
		if !ok {
			continue
		}
		var event map[string]any
		require.NoError(t, json.Unmarshal([]byte(data), &event))
		events = append(events, event)
	}

	require.Len(t, events, 3)
	require.Equal(t, map[string]any{
		"type":    "info",
		"message": "[2026-04-01T09:59:00Z] Job hunt session created",
	}, events[0])
	require.Equal(t, map[string]any{
		"type":      "success",
		"message":   "found 3 jobs",
		"timestamp": "2026-04-01T10:00:00Z",
	}, events[1])
	require.Equal(t, "info", events[2]["type"])
	require.NotEmpty(t, events[2]["timestamp"])
}

func TestHuntLogs_SkipsReplayedEntries(t *testing.T) {
	api := newTestAPI(t, nil)
	id := domain.NewSessionID()

	live := make(chan domain.LogEntry, 2)
	live <- domain.LogEntry{SessionID: id.String(), Message: "searching adzuna", Seq: 2}
	live <- domain.LogEntry{SessionID: id.String(), Message: "searching google", Seq: 3}
	close(live)
	var entries <-chan domain.LogEntry = live

	api.hunter.EXPECT().Follow(gomock.Any(), testUser, id).Return(
		&domain.HunterSession{ID: id, Logs: []string{"[INFO] Session queued", "[INFO] searching adzuna"}},
		entries,
		func() {},
		nil)

	rec := api.do(t, http.MethodGet, "/api/hunter/logs/"+id.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	require.Equal(t, 3, strings.Count(body, "data: "))
	require.Equal(t, 1, strings.Count(body, "searching adzuna"))
	require.Contains(t, body, `"message":"searching google"`)
}

func TestHuntLogs_Heartbeat(t *testing.T) {
	api := newTestAPIWithOptions(t, nil, v1handler.Options{HeartbeatInterval: 10 * time.Millisecond, MaxUploadSize: 1 << 20})
	id := domain.NewSessionID()

	live := make(chan domain.LogEntry)
	var entries <-chan domain.LogEntry = live
	go func() {
		time.Sleep(200 * time.Millisecond)
		live <- domain.LogEntry{SessionID: id.String(), Message: "ranking"}
		close(live)
	}()

	api.hunter.EXPECT().Follow(gomock.Any(), testUser, id).Return(&domain.HunterSession{ID: id}, entries, func() {}, nil)

	rec := api.do(t, http.MethodGet, "/api/hunter/logs/"+id.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	heartbeat := strings.Index(body, ": heartbeat\n\n")
	require.GreaterOrEqual(t, heartbeat, 0, "no heartbeat in %q", body)
	require.Less(t, heartbeat, strings.Index(body, "data: "))
}

func TestHuntLogs_StopsWhenClientLeaves(t *testing.T) {
	api := newTestAPI(t, nil)
	id := domain.NewSessionID()

	api.hunter.EXPECT().Follow(gomock.Any(), testUser, id).Return(
		&domain.HunterSession{ID: id},
		make(<-chan domain.LogEntry),
		func() {},
		nil)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequestWithContext(ctx, http.MethodGet, "/api/hunter/logs/"+id.String(), nil)
	api.authorize(t, req)

	done := make(chan struct{})
	go func() {
		defer close(done)
		api.handler.ServeHTTP(httptest.NewRecorder(), req)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("stream did not stop after the client went away")
	}
}

func TestHuntLogs_StopsOnShutdown(t *testing.T) {
	api := newTestAPI(t, nil)
	id := domain.NewSessionID()

	unsubscribed := make(chan struct{})
	api.hunter.EXPECT().Follow(gomock.Any(), testUser, id).Return(
		&domain.HunterSession{ID: id},
		make(<-chan domain.LogEntry),
		func() { close(unsubscribed) },
		nil)

	req := httptest.NewRequest(http.MethodGet, "/api/hunter/logs/"+id.String(), nil)
	api.authorize(t, req)

	done := make(chan struct{})
	go func() {
		defer close(done)
		api.handler.ServeHTTP(httptest.NewRecorder(), req)
	}()

	api.h.CloseStreams()
	api.h.CloseStreams()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("stream did not stop on shutdown")
	}
	<-unsubscribed
}

func TestHuntLogs_UnknownSession(t *testing.T) {
	api := newTestAPI(t, nil)
	id := domain.NewSessionID()

	api.hunter.EXPECT().Follow(gomock.Any(), testUser, id).
		Return(nil, nil, nil, serrors.With(serrors.ErrNotFound, "Session not found."))

	rec := api.do(t, http.MethodGet, "/api/hunter/logs/"+id.String(), nil)
	requireError(t, rec, http.StatusNotFound, serrors.ErrNotFound)
}
