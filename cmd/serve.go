package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"careeros/internal/api"
	"careeros/internal/api/handler/v1handler"
	"careeros/internal/config"
	"careeros/internal/hunter"
	"careeros/internal/logstream"
	"careeros/internal/matcher"
	"careeros/internal/profile"
	"careeros/internal/resume"
	"careeros/internal/tracker"
	"careeros/internal/worker"
	"careeros/pkg/blob/s3blob"
	"careeros/pkg/broker/rabbitmq"
	"careeros/pkg/logger"
	"careeros/pkg/metrics"

	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/riverqueue/river"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"riverqueue.com/riverui"
)

// getBroker connects to RabbitMQ and declares every queue the gateway uses.
func getBroker(ctx context.Context, cfg *config.Config, meter metric.Meter) (*rabbitmq.Client, func()) {
	queues := cfg.RabbitMQ.Queues
	client, err := rabbitmq.New(ctx, rabbitmq.Options{
		URL:            cfg.RabbitMQ.URL,
		Queues:         []string{queues.ResumeProcessing, queues.JDAnalysis, queues.JobHunter, queues.JobHuntLogs},
		ConfirmTimeout: cfg.RabbitMQ.ConfirmTimeout,
	}, meter)
	if err != nil {
		logger.Fatal(ctx, "could not connect to rabbitmq", zap.Error(err))
	}

	return client, func() {
		logger.Info(ctx, "closing rabbitmq client...")
		if err := client.Close(); err != nil {
			logger.Warn(ctx, "could not close rabbitmq connection", zap.Error(err))
		}
	}
}

func getBlobStore(ctx context.Context, cfg *config.Config) *s3blob.Client {
	blobs, err := s3blob.New(ctx, s3blob.Options{
		Endpoint:   cfg.Blob.Endpoint,
		Region:     cfg.Blob.Region,
		Bucket:     cfg.Blob.Bucket,
		AccessKey:  cfg.Blob.AccessKey,
		SecretKey:  cfg.Blob.SecretKey,
		PathStyle:  cfg.Blob.PathStyle,
		PresignTTL: cfg.Blob.PresignTTL,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create blob store", zap.Error(err))
	}

	return blobs
}

// setupJobsUI creates the River dashboard for the running client.
func setupJobsUI(ctx context.Context, riverClient *river.Client[pgx.Tx]) http.Handler {
	handler, err := riverui.NewHandler(&riverui.HandlerOpts{
		Endpoints: riverui.NewEndpoints(riverClient, nil),
		Logger:    logger.Slog(ctx),
		Prefix:    "/riverui",
	})
	if err != nil {
		logger.Fatal(ctx, "could not create river ui", zap.Error(err))
	}
	if err = handler.Start(ctx); err != nil {
		logger.Fatal(ctx, "could not start river ui", zap.Error(err))
	}

	return handler
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the API server, the hunter log consumer and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			meterProvider, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			defer func() {
				_ = meterProvider.Shutdown(context.Background())
			}()
			meter := metrics.Meter(meterProvider)

			pgsql, closeStrg := getPostgres(ctx, cfg, "careeros-api")
			defer closeStrg()

			brokerClient, closeBroker := getBroker(ctx, cfg, meter)
			defer closeBroker()

			blobs := getBlobStore(ctx, cfg)

			riverClient, err := worker.Start(ctx, pgsql.Pool, brokerClient, pgsql, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start background workers", zap.Error(err))
			}

			hub := logstream.NewHub(cfg.Stream.BufferSize)
			consumer := logstream.NewConsumer(pgsql, brokerClient, hub, logstream.NewOptions(cfg))

			server, err := api.NewServer(api.Deps{
				Deps: v1handler.Deps{
					Profiles: profile.New(pgsql),
					Uploader: resume.New(pgsql, blobs, resume.NewOptions(cfg)),
					Matcher:  matcher.New(pgsql, matcher.NewOptions(cfg)),
					Hunter:   hunter.New(pgsql, hub, hunter.NewOptions(cfg)),
					Tracker:  tracker.New(pgsql),
					Meter:    meter,
				},
				Gatherer: prometheus.DefaultGatherer,
				JobsUI:   setupJobsUI(ctx, riverClient),
			}, api.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create webserver", zap.Error(err))
			}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return consumer.Run(gctx)
			})
			g.Go(func() error {
				logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}

				return nil
			})
			g.Go(func() error {
				// wait for interrupt, or for the webserver to fail
				<-gctx.Done()

				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
				defer cancel()

				logger.Info(ctx, "stopping webserver...")
				if err := server.Shutdown(shutdownCtx); err != nil {
					logger.Error(ctx, "could not stop webserver", zap.Error(err))
				}

				logger.Info(ctx, "stopping background workers...")
				if err := riverClient.Stop(shutdownCtx); err != nil {
					logger.Error(ctx, "could not stop background workers", zap.Error(err))
				}

				return nil
			})

			if err := g.Wait(); err != nil {
				logger.Error(ctx, "server exited with error", zap.Error(err))
			}
		},
	}

	return cmd
}
