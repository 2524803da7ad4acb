package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/evensplit/internal/calculator"
	"github.com/mmynk/evensplit/internal/config"
	"github.com/mmynk/evensplit/internal/events"
	"github.com/mmynk/evensplit/internal/metrics"
	"github.com/mmynk/evensplit/internal/service"
	"github.com/mmynk/evensplit/internal/storage/sqlite"
	"github.com/mmynk/evensplit/internal/worker"
	"github.com/mmynk/evensplit/pkg/logging"
)

// metricsAddr is where the worker exposes /metrics.
const metricsAddr = ":9091"

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	cfg := config.Load()
	logging.Configure(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	slog.Info("Starting settle-worker")

	if err := cfg.Validate(); err != nil {
		slog.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	if cfg.AMQPURL == "" {
		slog.Error("AMQP_URL is required for the settle-worker")
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		slog.Error("Worker failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Worker shutdown complete")
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}
	defer store.Close()

	client, err := events.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		return fmt.Errorf("initialize AMQP client: %w", err)
	}
	defer client.Close()

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
	}

	engine := calculator.NewEngine(cfg.EngineOptions()...)
	auditor := worker.NewAuditor(service.NewSettler(store, engine, m))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := client.Consume(gctx, auditor.HandleExpenseChanged)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	if m != nil {
		srv := &http.Server{
			Addr:              metricsAddr,
			Handler:           m.Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			slog.Info("Serving worker metrics", "address", metricsAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	return g.Wait()
}
