package service

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/evensplit/internal/auth"
	"github.com/mmynk/evensplit/internal/calculator"
	"github.com/mmynk/evensplit/internal/events"
	"github.com/mmynk/evensplit/internal/metrics"
	"github.com/mmynk/evensplit/internal/middleware"
	"github.com/mmynk/evensplit/internal/storage/sqlite"
	pb "github.com/mmynk/evensplit/pkg/proto"
	"github.com/mmynk/evensplit/pkg/proto/protoconnect"
)

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*events.ExpenseChanged
}

func (p *recordingPublisher) PublishExpenseChanged(ctx context.Context, msg *events.ExpenseChanged) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, msg)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) actions() []events.Action {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.Action, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Action)
	}
	return out
}

// testServer bundles the clients of a running test server.
type testServer struct {
	auth       protoconnect.AuthServiceClient
	projects   protoconnect.ProjectServiceClient
	expenses   protoconnect.ExpenseServiceClient
	settlement protoconnect.SettlementServiceClient
	publisher  *recordingPublisher
	metrics    *metrics.Metrics
}

// setupTestServer starts all services over a temp SQLite database, wired the
// way the server binary wires them.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store).WithCost(bcrypt.MinCost)
	m := metrics.New()
	publisher := &recordingPublisher{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	interceptors := connect.WithInterceptors(
		m.Interceptor(),
		middleware.RequireAuth(jwtManager,
			protoconnect.AuthServiceRegisterProcedure,
			protoconnect.AuthServiceLoginProcedure,
		),
		middleware.LoggingInterceptor(),
	)

	mux := http.NewServeMux()
	mux.Handle(protoconnect.NewAuthServiceHandler(NewAuthService(authenticator, jwtManager, store, logger), interceptors))
	mux.Handle(protoconnect.NewProjectServiceHandler(NewProjectService(store), interceptors))
	mux.Handle(protoconnect.NewExpenseServiceHandler(NewExpenseService(store, publisher, m), interceptors))
	settler := NewSettler(store, calculator.NewEngine(), m)
	mux.Handle(protoconnect.NewSettlementServiceHandler(NewSettlementService(settler), interceptors))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return &testServer{
		auth:       protoconnect.NewAuthServiceClient(http.DefaultClient, server.URL),
		projects:   protoconnect.NewProjectServiceClient(http.DefaultClient, server.URL),
		expenses:   protoconnect.NewExpenseServiceClient(http.DefaultClient, server.URL),
		settlement: protoconnect.NewSettlementServiceClient(http.DefaultClient, server.URL),
		publisher:  publisher,
		metrics:    m,
	}
}

// signUp registers username and returns a bearer token for it.
func (s *testServer) signUp(t *testing.T, username string) string {
	t.Helper()
	ctx := context.Background()

	_, err := s.auth.Register(ctx, connect.NewRequest(&pb.RegisterRequest{Username: username, Password: "password123"}))
	if err != nil {
		t.Fatalf("Register(%s) failed: %v", username, err)
	}
	resp, err := s.auth.Login(ctx, connect.NewRequest(&pb.LoginRequest{Username: username, Password: "password123"}))
	if err != nil {
		t.Fatalf("Login(%s) failed: %v", username, err)
	}
	return resp.Msg.AccessToken
}

// createProject creates a project owned by token's user with extra members.
func (s *testServer) createProject(t *testing.T, token, name string, members ...string) *pb.Project {
	t.Helper()
	resp, err := s.projects.CreateProject(context.Background(), authed(token, &pb.CreateProjectRequest{
		Name:    name,
		Members: members,
	}))
	if err != nil {
		t.Fatalf("CreateProject(%s) failed: %v", name, err)
	}
	return resp.Msg.Project
}

// authed builds a request carrying a bearer token.
func authed[T any](token string, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+token)
	return req
}

// assertMetric checks the metrics endpoint exposes line.
func assertMetric(t *testing.T, s *testServer, line string) {
	t.Helper()
	rec := httptest.NewRecorder()
	s.metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(rec.Body.String(), line) {
		t.Errorf("metrics missing %q", line)
	}
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Errorf("expected code %v, got %v (%v)", want, got, err)
	}
}
