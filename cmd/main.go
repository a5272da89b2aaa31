package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/moviehub/migration-proxy/config"
	"github.com/moviehub/migration-proxy/internal/backend"
	"github.com/moviehub/migration-proxy/internal/handler"
	"github.com/moviehub/migration-proxy/internal/healthcheck"
	"github.com/moviehub/migration-proxy/internal/httpserver"
	"github.com/moviehub/migration-proxy/internal/metrics"
	"github.com/moviehub/migration-proxy/pkg/logger"
)

const (
	serviceMonolith = "monolith"
	serviceMovies   = "movies-microservice"
	serviceEvents   = "events-service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("err", err))
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, true, cfg.Server.Environment)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	targets, err := initializeTargets(cfg)
	if err != nil {
		log.Error("Failed to initialize backend targets", slog.Any("err", err))
		os.Exit(1)
	}

	timeout, err := time.ParseDuration(cfg.Proxy.Timeout)
	if err != nil {
		log.Error("Invalid proxy timeout", slog.Any("err", err))
		os.Exit(1)
	}

	registry := metrics.NewRegistry()
	client := backend.NewClient(timeout)

	startHealthChecks(ctx, cfg, targets, registry, log)

	log.Info("Migration policy",
		slog.Bool("gradual", cfg.Migration.Enabled),
		slog.Int("percent", cfg.Migration.Percent))

	proxy := handler.NewProxyHandler(log, client, registry, cfg.Migration, nil, targets)

	srv, err := httpserver.New(cfg.Server.Address, setupRouter(proxy, registry))
	if err != nil {
		log.Error("Failed to create server", slog.Any("err", err))
		os.Exit(1)
	}

	srvErrCh := make(chan error, 1)

	go func() {
		srvErrCh <- srv.Start()
	}()

	log.Info("Proxy listening", slog.String("address", cfg.Server.Address))

	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
		if err := srv.Shutdown(context.Background()); err != nil {
			log.Error("Error during shutdown", slog.Any("err", err))
		}
	case err := <-srvErrCh:
		if err != nil {
			log.Error("Error starting proxy", slog.Any("err", err))
			os.Exit(1)
		}
	}
}

func initializeTargets(cfg *config.Config) (handler.Targets, error) {
	var targets handler.Targets

	monolithURL, err := url.Parse(cfg.Backends.Monolith)
	if err != nil {
		return targets, err
	}

	moviesURL, err := url.Parse(cfg.Backends.Movies)
	if err != nil {
		return targets, err
	}

	eventsURL, err := url.Parse(cfg.Backends.Events)
	if err != nil {
		return targets, err
	}

	targets = handler.Targets{
		Monolith: backend.NewTarget(serviceMonolith, monolithURL),
		Movies:   backend.NewTarget(serviceMovies, moviesURL),
		Events:   backend.NewTarget(serviceEvents, eventsURL),
	}

	return targets, nil
}

func startHealthChecks(
	ctx context.Context,
	cfg *config.Config,
	targets handler.Targets,
	registry *metrics.Registry,
	log *slog.Logger,
) {
	interval, err := time.ParseDuration(cfg.HealthCheck.Interval)
	if err != nil {
		log.Warn("Invalid health check interval, probing disabled", slog.Any("err", err))
		return
	}

	for _, target := range []*backend.Target{targets.Monolith, targets.Movies, targets.Events} {
		go healthcheck.Watch(ctx, target, interval, registry, log)
	}
}
