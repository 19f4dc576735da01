package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"nhl-stats-crawler/internal/config"
	"nhl-stats-crawler/internal/crawler"
	"nhl-stats-crawler/internal/logging"
	"nhl-stats-crawler/internal/metrics"
	"nhl-stats-crawler/internal/notify"
	"nhl-stats-crawler/internal/providers"
	"nhl-stats-crawler/internal/providers/fixture"
	"nhl-stats-crawler/internal/providers/nhl"
	"nhl-stats-crawler/internal/runner"
	"nhl-stats-crawler/internal/storage"
	"nhl-stats-crawler/internal/timeutil"
)

func run(ctx context.Context, startDate, endDate string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "nhl-stats-crawler",
		Version: appVersion,
	})

	dates, err := parseRange(startDate, endDate)
	if err != nil {
		return err
	}

	rec, promHandler, shutdownMetrics, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.MetricsEnabled,
		ServiceName:  "nhl-stats-crawler",
		OtlpEndpoint: cfg.OtlpEndpoint,
		OtlpInsecure: cfg.OtlpInsecure,
	})
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownMetrics(shutdownCtx); err != nil {
			logging.Error(logger, "metrics shutdown failed", err)
		}
	}()
	if promHandler != nil {
		go serveMetrics(ctx, logger, cfg.MetricsPort, promHandler)
	}

	provider := buildProvider(cfg, logger, rec)

	store, err := buildStore(cfg)
	if err != nil {
		return fmt.Errorf("connecting to object store: %w", err)
	}
	writer := storage.NewWriter(store, logger, rec)

	c := crawler.New(provider, writer, logger, rec, crawler.Config{
		Table:       cfg.Table,
		Concurrency: cfg.Concurrency,
	})

	var notifier notify.Notifier = notify.Noop{}
	if cfg.SlackWebhookURL != "" {
		notifier = notify.NewSlackWebhook(cfg.SlackWebhookURL)
	}

	r := runner.New(logger, notifier, runner.Config{
		MaxAttempts: cfg.MaxAttempts,
		Wait:        cfg.RetryWait,
	})

	return r.Run(ctx, func(ctx context.Context) error {
		return c.Crawl(ctx, dates).Err
	})
}

func buildProvider(cfg *config.Config, logger *slog.Logger, rec *metrics.Recorder) providers.StatsProvider {
	if cfg.Provider == "fixture" {
		return fixture.New()
	}
	return nhl.NewClient(nhl.Config{
		BaseURL:    cfg.ProviderBaseURL,
		HTTPClient: &http.Client{Timeout: cfg.ProviderTimeout},
		Logger:     logger,
		Metrics:    rec,
	})
}

func buildStore(cfg *config.Config) (storage.ObjectStore, error) {
	if cfg.Store == "fs" {
		return storage.NewFSStore(cfg.FSPath), nil
	}
	return storage.NewS3Store(storage.S3Config{
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.S3Region,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Bucket:    cfg.S3Bucket,
		UseSSL:    cfg.S3UseSSL,
	})
}

func parseRange(startDate, endDate string) (timeutil.DateRange, error) {
	start, err := timeutil.ParseDate(startDate)
	if err != nil {
		return timeutil.DateRange{}, fmt.Errorf("invalid --start-date %q: %w", startDate, err)
	}
	end, err := timeutil.ParseDate(endDate)
	if err != nil {
		return timeutil.DateRange{}, fmt.Errorf("invalid --end-date %q: %w", endDate, err)
	}
	return timeutil.NewDateRange(start, end)
}

func serveMetrics(ctx context.Context, logger *slog.Logger, port string, handler http.Handler) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)

	srv := &http.Server{Addr: ":" + port, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logging.Info(logger, "metrics endpoint listening", slog.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logging.Error(logger, "metrics server failed", err)
	}
}
