package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/joho/godotenv"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/evensplit/internal/auth"
	"github.com/mmynk/evensplit/internal/calculator"
	"github.com/mmynk/evensplit/internal/config"
	"github.com/mmynk/evensplit/internal/events"
	"github.com/mmynk/evensplit/internal/metrics"
	"github.com/mmynk/evensplit/internal/middleware"
	"github.com/mmynk/evensplit/internal/rest"
	"github.com/mmynk/evensplit/internal/service"
	"github.com/mmynk/evensplit/internal/storage/sqlite"
	"github.com/mmynk/evensplit/pkg/logging"
	"github.com/mmynk/evensplit/pkg/proto/protoconnect"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	cfg := config.Load()
	logging.Configure(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		slog.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	if cfg.UsesDefaultSecret() {
		slog.Warn("JWT_SECRET not set, using development secret")
	}

	if err := run(cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize SQLite storage
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
	}

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.AMQPURL != "" {
		client, err := events.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			return fmt.Errorf("initialize AMQP client: %w", err)
		}
		publisher = client
		slog.Info("Publishing expense changes", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
	} else {
		slog.Info("AMQP_URL not set, expense change events disabled")
	}
	defer publisher.Close()

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)
	engine := calculator.NewEngine(cfg.EngineOptions()...)
	settler := service.NewSettler(store, engine, m)

	interceptors := connect.WithInterceptors(
		m.Interceptor(),
		middleware.RequireAuth(jwtManager,
			protoconnect.AuthServiceRegisterProcedure,
			protoconnect.AuthServiceLoginProcedure,
		),
		middleware.LoggingInterceptor(),
	)

	mux := http.NewServeMux()

	// Register Connect services
	mux.Handle(protoconnect.NewAuthServiceHandler(
		service.NewAuthService(authenticator, jwtManager, store, slog.Default()), interceptors))
	mux.Handle(protoconnect.NewProjectServiceHandler(service.NewProjectService(store), interceptors))
	mux.Handle(protoconnect.NewExpenseServiceHandler(service.NewExpenseService(store, publisher, m), interceptors))
	mux.Handle(protoconnect.NewSettlementServiceHandler(service.NewSettlementService(settler), interceptors))

	rest.NewHandler(settler, jwtManager).Register(mux)
	if m != nil {
		mux.Handle("GET /metrics", m.Handler())
	}

	staticHandler, err := staticFiles(cfg.StaticPath)
	if err != nil {
		return err
	}
	mux.Handle("/", staticHandler)

	handler := middleware.Logging(middleware.CORS(cfg.CORSOrigin)(mux))

	srv := &http.Server{
		Addr: ":" + cfg.Port,
		// Wrap with h2c for HTTP/2 without TLS (required for Connect gRPC clients)
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Connect server starting", "address", srv.Addr, "url", fmt.Sprintf("http://localhost:%s", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("Server stopped gracefully")
	return nil
}

// staticFiles serves the browser client, falling back to index.html for
// unknown paths so client-side routes resolve.
func staticFiles(staticPath string) (http.Handler, error) {
	staticDir, err := filepath.Abs(staticPath)
	if err != nil {
		return nil, fmt.Errorf("resolve static path: %w", err)
	}
	slog.Info("Serving static files", "path", staticDir)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Unregistered RPC paths are API misses, not pages.
		if strings.HasPrefix(r.URL.Path, "/evensplit.v1.") {
			http.NotFound(w, r)
			return
		}

		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}
		filePath := filepath.Join(staticDir, filepath.Clean("/"+urlPath))

		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
			return
		}
		http.ServeFile(w, r, filePath)
	}), nil
}
