package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/evensplit/internal/auth"
	"github.com/mmynk/evensplit/internal/calculator"
	"github.com/mmynk/evensplit/internal/models"
	"github.com/mmynk/evensplit/internal/service"
	"github.com/mmynk/evensplit/internal/storage/sqlite"
)

type fixture struct {
	server  *httptest.Server
	store   *sqlite.SQLiteStore
	jwt     *auth.JWTManager
	project *models.Project
}

func setup(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	users := map[string]*models.User{}
	for _, name := range []string{"alice", "bob", "carol", "mallory"} {
		u := &models.User{Username: name, PasswordHash: "x"}
		if err := store.CreateUser(ctx, u); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}
		users[name] = u
	}

	project := &models.Project{Name: "Dinner", CreatedBy: users["alice"].ID}
	if err := store.CreateProject(ctx, project); err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}
	if err := store.AddMembers(ctx, project.ID, []string{"bob", "carol"}); err != nil {
		t.Fatalf("AddMembers failed: %v", err)
	}
	err = store.CreateExpense(ctx, &models.Expense{
		ProjectID: project.ID, Item: "Dinner", Date: "2026-05-01", Amount: 9000,
		PaidBy: "alice", PaidFor: []string{"alice", "bob", "carol"}, CreatedBy: users["alice"].ID,
	})
	if err != nil {
		t.Fatalf("CreateExpense failed: %v", err)
	}

	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	mux := http.NewServeMux()
	NewHandler(service.NewSettler(store, calculator.NewEngine(), nil), jwtManager).Register(mux)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	f := &fixture{server: server, store: store, jwt: jwtManager, project: project}
	return f
}

func (f *fixture) get(t *testing.T, path, username string) (*http.Response, map[string]json.RawMessage) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, f.server.URL+path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if username != "" {
		user, err := f.store.GetUserByUsername(context.Background(), username)
		if err != nil {
			t.Fatalf("GetUserByUsername failed: %v", err)
		}
		token, err := f.jwt.Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var body map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	return resp, body
}

func TestSettlementRoutes(t *testing.T) {
	f := setup(t)

	for _, path := range []string{"/projects/" + f.project.ID + "/settlement", "/settlement"} {
		t.Run(path, func(t *testing.T) {
			resp, body := f.get(t, path, "bob")
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d, body = %v", resp.StatusCode, body)
			}

			var balances map[string]decimal.Decimal
			if err := json.Unmarshal(body["balances"], &balances); err != nil {
				t.Fatalf("bad balances: %v", err)
			}
			if !balances["alice"].Equal(decimal.NewFromInt(60)) || !balances["bob"].Equal(decimal.NewFromInt(-30)) {
				t.Errorf("unexpected balances: %v", balances)
			}

			var plan []struct {
				From   string          `json:"from"`
				To     string          `json:"to"`
				Amount decimal.Decimal `json:"amount"`
			}
			if err := json.Unmarshal(body["settlementPlan"], &plan); err != nil {
				t.Fatalf("bad settlementPlan: %v", err)
			}
			if len(plan) != 2 || plan[0].From != "bob" || plan[0].To != "alice" || !plan[0].Amount.Equal(decimal.NewFromInt(30)) {
				t.Errorf("unexpected plan: %+v", plan)
			}
		})
	}
}

func TestSettlementRoutes_Errors(t *testing.T) {
	f := setup(t)

	tests := []struct {
		name     string
		path     string
		username string
		status   int
	}{
		{"no token", "/settlement", "", http.StatusUnauthorized},
		{"not a member", "/projects/" + f.project.ID + "/settlement", "mallory", http.StatusForbidden},
		{"no default project", "/settlement", "mallory", http.StatusNotFound},
		{"unknown project", "/projects/nope/settlement", "alice", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := f.get(t, tt.path, tt.username)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			if _, ok := body["detail"]; !ok {
				t.Errorf("expected detail in error body, got %v", body)
			}
		})
	}
}

func TestSummaryRoutes(t *testing.T) {
	f := setup(t)

	tests := []struct {
		name     string
		path     string
		username string
		netDebt  string
	}{
		{"project path", "/projects/" + f.project.ID + "/summary", "bob", `"30.00"`},
		{"query parameter", "/summary?project_id=" + f.project.ID, "carol", `"30.00"`},
		{"default project", "/summary", "alice", `"-60.00"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := f.get(t, tt.path, tt.username)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d, body = %v", resp.StatusCode, body)
			}
			if got := string(body["totalExpense"]); got != `"90.00"` {
				t.Errorf("totalExpense = %s, want 90.00", got)
			}
			if got := string(body["yourNetDebt"]); got != tt.netDebt {
				t.Errorf("yourNetDebt = %s, want %s", got, tt.netDebt)
			}
			if got := string(body["expenseCount"]); got != "1" {
				t.Errorf("expenseCount = %s, want 1", got)
			}
			if got := string(body["projectId"]); got != `"`+f.project.ID+`"` {
				t.Errorf("projectId = %s, want %s", got, f.project.ID)
			}
		})
	}
}

func TestSummaryRoutes_Errors(t *testing.T) {
	f := setup(t)

	tests := []struct {
		name     string
		path     string
		username string
		status   int
	}{
		{"no token", "/summary", "", http.StatusUnauthorized},
		{"not a member", "/summary?project_id=" + f.project.ID, "mallory", http.StatusForbidden},
		{"no default project", "/summary", "mallory", http.StatusNotFound},
		{"unknown project", "/projects/nope/summary", "alice", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := f.get(t, tt.path, tt.username)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			if _, ok := body["detail"]; !ok {
				t.Errorf("expected detail in error body, got %v", body)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	f := setup(t)
	resp, body := f.get(t, "/healthz", "")
	if resp.StatusCode != http.StatusOK || string(body["status"]) != `"ok"` {
		t.Errorf("unexpected health response: %d %v", resp.StatusCode, body)
	}
}
