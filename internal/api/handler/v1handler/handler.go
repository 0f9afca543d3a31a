// Package v1handler implements the /api routes used by the CareerOS web app.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"careeros/internal/config"
	"careeros/internal/hunter"
	"careeros/internal/matcher"
	"careeros/internal/profile"
	"careeros/internal/resume"
	"careeros/internal/tracker"
	"careeros/pkg/controller"
	"careeros/pkg/logger"
	"careeros/pkg/serrors"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

// maxJSONBody caps JSON request bodies. Profiles are the largest documents.
const maxJSONBody = 1 << 20

// Deps are the services the handlers delegate to.
type Deps struct {
	Profiles profile.Profiles
	Uploader resume.Uploader
	Matcher  matcher.Matcher
	Hunter   hunter.Hunter
	Tracker  tracker.Tracker
	// Meter records handler level instruments. A no-op meter is used when nil.
	Meter metric.Meter
}

// Options configure the handlers.
type Options struct {
	// HeartbeatInterval is how often an idle log stream sends a comment line.
	HeartbeatInterval time.Duration
	// MaxUploadSize is the largest accepted resume in bytes.
	MaxUploadSize int64
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		HeartbeatInterval: cfg.Stream.HeartbeatInterval,
		MaxUploadSize:     cfg.Upload.MaxFileSize,
	}
}

type Handler struct {
	deps    Deps
	options Options

	activeStreams metric.Int64UpDownCounter
	// closing is closed by CloseStreams to end every open log stream.
	closing   chan struct{}
	closeOnce *sync.Once
}

func New(deps Deps, options Options) *Handler {
	if deps.Meter == nil {
		deps.Meter = noop.NewMeterProvider().Meter("")
	}
	if options.HeartbeatInterval <= 0 {
		options.HeartbeatInterval = 15 * time.Second
	}

	activeStreams, err := deps.Meter.Int64UpDownCounter("careeros.hunter.log_streams.active",
		metric.WithDescription("Number of open hunter log streams."))
	if err != nil {
		activeStreams, _ = noop.NewMeterProvider().Meter("").Int64UpDownCounter("")
	}

	return &Handler{
		deps:          deps,
		options:       options,
		activeStreams: activeStreams,
		closing:       make(chan struct{}),
		closeOnce:     &sync.Once{},
	}
}

// CloseStreams ends every open log stream. http.Server.Shutdown waits for
// active connections to go idle, which streams never do on their own.
func (h *Handler) CloseStreams() {
	h.closeOnce.Do(func() {
		close(h.closing)
	})
}

// Meter returns the meter the handlers record to.
func (h *Handler) Meter() metric.Meter {
	return h.deps.Meter
}

// Routes registers every /api route on a new mux. Routes that create work
// are throttled per user by limiter, which may be nil.
func (h *Handler) Routes(sec *SecHandler, limiter *controller.KeyedLimiter) *http.ServeMux {
	mux := http.NewServeMux()

	authed := func(fn apiFunc) http.Handler {
		return sec.Middleware(h.handle(fn))
	}
	limited := func(fn apiFunc) http.Handler {
		return sec.Middleware(h.rateLimited(limiter, h.handle(fn)))
	}

	mux.Handle("GET /api/health", h.handle(h.Health))

	mux.Handle("GET /api/onboarding/status", authed(h.OnboardingStatus))

	mux.Handle("GET /api/profile/partial", authed(h.PartialProfile))
	mux.Handle("POST /api/profile/complete", authed(h.CompleteProfile))
	mux.Handle("GET /api/profile/full", authed(h.FullProfile))
	mux.Handle("PUT /api/profile/full", authed(h.UpdateFullProfile))

	mux.Handle("POST /api/uploads/resume", limited(h.UploadResume))

	mux.Handle("POST /api/matcher/analyze", limited(h.AnalyzeJD))
	mux.Handle("GET /api/matcher/status/{runId}", authed(h.AnalysisStatus))
	mux.Handle("GET /api/matcher/results/{runId}", authed(h.AnalysisResults))
	mux.Handle("GET /api/matcher/history", authed(h.AnalysisHistory))
	mux.Handle("DELETE /api/matcher/{runId}", authed(h.DeleteAnalysis))

	mux.Handle("POST /api/hunter/start", limited(h.StartHunt))
	mux.Handle("GET /api/hunter/session/{sessionId}", authed(h.HuntSession))
	mux.Handle("GET /api/hunter/results/{sessionId}", authed(h.HuntResults))
	mux.Handle("GET /api/hunter/logs/{sessionId}", authed(h.HuntLogs))

	mux.Handle("POST /api/tracker/jobs", authed(h.CreateTrackedJob))
	mux.Handle("GET /api/tracker/jobs", authed(h.ListTrackedJobs))
	mux.Handle("PATCH /api/tracker/jobs/bulk/stage", authed(h.BulkUpdateStage))
	mux.Handle("GET /api/tracker/jobs/{id}", authed(h.GetTrackedJob))
	mux.Handle("PATCH /api/tracker/jobs/{id}", authed(h.UpdateTrackedJob))
	mux.Handle("DELETE /api/tracker/jobs/{id}", authed(h.DeleteTrackedJob))
	mux.Handle("POST /api/tracker/jobs/{id}/notes", authed(h.AddNote))
	mux.Handle("POST /api/tracker/jobs/{id}/reminders", authed(h.AddReminder))
	mux.Handle("POST /api/tracker/jobs/{id}/interviews", authed(h.AddInterview))
	mux.Handle("POST /api/tracker/jobs/{id}/attachments", authed(h.AddAttachment))

	mux.Handle("/api/", h.handle(func(http.ResponseWriter, *http.Request) error {
		return serrors.With(serrors.ErrNotFound, "route not found")
	}))

	return mux
}

// apiFunc is a handler that reports failures as errors, which are rendered
// by NewError.
type apiFunc func(w http.ResponseWriter, r *http.Request) error

func (h *Handler) handle(fn apiFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.writeError(w, r, err)
		}
	})
}

// ErrorBody is the JSON body of every failed request.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"error"`
}

// ErrorResponse is an error rendered for the client.
type ErrorResponse struct {
	StatusCode int
	Response   ErrorBody
}

type errorMapping struct {
	status  int
	message string
}

var errorMappings = map[serrors.Kind]errorMapping{ //nolint: gochecknoglobals
	serrors.ErrNotFound:      {http.StatusNotFound, "resource not found"},
	serrors.ErrUnauthorized:  {http.StatusUnauthorized, "unauthorized"},
	serrors.ErrForbidden:     {http.StatusForbidden, "forbidden"},
	serrors.ErrBadRequest:    {http.StatusBadRequest, "bad request"},
	serrors.ErrConflict:      {http.StatusConflict, "conflict"},
	serrors.ErrUnprocessable: {http.StatusUnprocessableEntity, "unprocessable entity"},
	serrors.ErrTimeout:       {http.StatusServiceUnavailable, "request timed out"}, // same as http.TimeoutHandler
	serrors.ErrUnavailable:   {http.StatusServiceUnavailable, "service unavailable"},
	serrors.ErrRateLimited:   {http.StatusTooManyRequests, "too many requests"},
}

// NewError translates err into a status code and body. Internal errors are
// logged and their details are hidden from the client.
func (h Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	kind := serrors.KindOf(err)

	mapping, ok := errorMappings[kind]
	if !ok {
		logger.Error(ctx, "request failed", zap.Error(err))

		return &ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Response: ErrorBody{
				Code:    serrors.ErrInternal.Error(),
				Message: "internal error",
			},
		}
	}

	msg := serrors.MessageOf(err)
	if msg == "" {
		msg = mapping.message
	}
	if mapping.status >= http.StatusInternalServerError {
		logger.Warn(ctx, "request failed", zap.Error(err))
	}

	return &ErrorResponse{
		StatusCode: mapping.status,
		Response: ErrorBody{
			Code:    kind.Error(),
			Message: msg,
		},
	}
}

func (h Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(w, res.StatusCode, res.Response)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// decodeJSON reads the request body into dst. An empty body leaves dst untouched.
func decodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(io.LimitReader(r.Body, maxJSONBody)).Decode(dst)
	switch {
	case err == nil, errors.Is(err, io.EOF):
		return nil
	default:
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid JSON body")
	}
}

// pathID parses the named path value with parse. Malformed ids cannot match
// any record and are reported as not found with notFound as the message.
func pathID[T any](r *http.Request, name string, parse func(string) (T, error), notFound string) (T, error) {
	id, err := parse(r.PathValue(name))
	if err != nil {
		return id, serrors.Wrap(serrors.ErrNotFound, err, "%s", notFound)
	}

	return id, nil
}

// Health reports that the gateway is up. It does not check dependencies.
func (h Handler) Health(w http.ResponseWriter, _ *http.Request) error {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "api-gateway"})

	return nil
}
