// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the CareerOS API gateway.
package api

import (
	_ "embed"
	"fmt"
	"net/http"
	"strings"
	"time"

	"careeros/internal/api/handler/v1handler"
	"careeros/internal/config"
	"careeros/pkg/controller"
	"careeros/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// streamPrefix is the path prefix of the long-lived SSE routes, which are
// exempt from the request timeout.
const streamPrefix = "/api/hunter/logs/"

// limiterTTL is how long an idle user's rate limit bucket is kept.
const limiterTTL = time.Hour

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// All durations are used to configure server timeouts, and zero values
// should be considered as using the defaults provided by net/http where applicable.
type Options struct {
	// SecHandlerOptions configures bearer token verification for /api routes.
	SecHandlerOptions *v1handler.SecHandlerOptions
	// HandlerOptions configures the /api handlers.
	HandlerOptions v1handler.Options

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	// Log streams clear it for their own connection.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the timeout applied via http.TimeoutHandler to every non-streaming request.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// AllowedOrigins lists the origins allowed by CORS.
	AllowedOrigins []string
	// Pprof mounts the profiling endpoints under /debug/pprof/.
	Pprof bool
	// RateLimitPerMinute and RateLimitBurst throttle the routes that create work.
	RateLimitPerMinute int
	RateLimitBurst     int
}

// NewOptions constructs an Options value from the provided application configuration.
// Profiling is never exposed in production.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),
		HandlerOptions:    v1handler.NewOptions(cfg),

		Addr:               cfg.HTTP.Addr,
		ReadTimeout:        cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout:  cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:       cfg.HTTP.WriteTimeout,
		IdleTimeout:        cfg.HTTP.IdleTimeout,
		RequestTimeout:     cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:     cfg.HTTP.MaxHeaderBytes,
		MetricsPath:        cfg.HTTP.MetricsPath,
		AllowedOrigins:     cfg.HTTP.AllowedOrigins,
		Pprof:              cfg.HTTP.Pprof && cfg.Environment != logger.ProductionEnvironment,
		RateLimitPerMinute: cfg.RateLimit.PerMinute,
		RateLimitBurst:     cfg.RateLimit.Burst,
	}
}

type Deps struct {
	v1handler.Deps

	// Gatherer backs the metrics endpoint. prometheus.DefaultGatherer is used when nil.
	Gatherer prometheus.Gatherer
	// JobsUI is the River dashboard, mounted under /riverui/ when set.
	JobsUI http.Handler
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - Embedded OpenAPI v1 spec and Swagger UI
// - /api routes with per-route duration metrics
// - pprof endpoints for profiling, when enabled
// - the River dashboard, when provided
// It also wraps the mux with CORS and logging middlewares and applies a request timeout.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	mux := http.NewServeMux()

	// prometheus metrics server
	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	mux.Handle(opts.MetricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// v1 specs file
	mux.HandleFunc("GET /docs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("/docs/", v5emb.New(
		"CareerOS API",
		"/docs/v1.yaml",
		"/docs/",
	))

	// v1 api
	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	handler := v1handler.New(deps.Deps, opts.HandlerOptions)
	limiter := controller.NewKeyedLimiter(float64(opts.RateLimitPerMinute), opts.RateLimitBurst, limiterTTL)
	withMetrics, err := controller.WithMetrics(handler.Meter())
	if err != nil {
		return nil, fmt.Errorf("could not create http metrics: %w", err)
	}
	mux.Handle("/api/", withMetrics(handler.Routes(secHandler, limiter)))

	// pprof
	if opts.Pprof {
		mux.Handle("/debug/pprof/", http.StripPrefix("/debug/pprof", controller.PprofMux()))
	}

	// river dashboard
	if deps.JobsUI != nil {
		mux.Handle("/riverui/", deps.JobsUI)
	}

	// cors
	root := controller.WithCORS(opts.AllowedOrigins)(mux)

	// logger
	root = controller.WithLogger(root)

	server := &http.Server{
		Addr:              opts.Addr,
		Handler:           withTimeout(root, opts.RequestTimeout),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}
	server.RegisterOnShutdown(handler.CloseStreams)

	return server, nil
}

// withTimeout applies http.TimeoutHandler to everything but the log streams,
// which need to flush and stay open.
func withTimeout(next http.Handler, timeout time.Duration) http.Handler {
	if timeout <= 0 {
		return next
	}

	timed := http.TimeoutHandler(next, timeout, `{"code":"TIMEOUT","error":"request timed out"}`)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, streamPrefix) {
			next.ServeHTTP(w, r)

			return
		}

		timed.ServeHTTP(w, r)
	})
}
