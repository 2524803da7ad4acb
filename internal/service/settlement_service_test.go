package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/evensplit/internal/auth"
	"github.com/mmynk/evensplit/internal/calculator"
	"github.com/mmynk/evensplit/internal/storage"
	pb "github.com/mmynk/evensplit/pkg/proto"
)

func addExpense(t *testing.T, srv *testServer, token, projectID, amount, paidBy string, paidFor ...string) {
	t.Helper()
	_, err := srv.expenses.CreateExpense(context.Background(), authed(token, &pb.CreateExpenseRequest{
		ProjectId: projectID,
		Expense: &pb.ExpenseInput{
			Item:    "item",
			Date:    "2026-05-01",
			Amount:  amount,
			PaidBy:  paidBy,
			PaidFor: paidFor,
		},
	}))
	if err != nil {
		t.Fatalf("CreateExpense failed: %v", err)
	}
}

func TestGetSettlement(t *testing.T) {
	srv := setupTestServer(t)
	ctx := context.Background()
	alice := srv.signUp(t, "alice")
	bob := srv.signUp(t, "bob")
	srv.signUp(t, "carol")
	project := srv.createProject(t, alice, "Dinner", "bob", "carol")

	addExpense(t, srv, alice, project.Id, "90", "alice", "alice", "bob", "carol")

	resp, err := srv.settlement.GetSettlement(ctx, authed(bob, &pb.GetSettlementRequest{ProjectId: project.Id}))
	if err != nil {
		t.Fatalf("GetSettlement failed: %v", err)
	}

	wantBalances := map[string]string{"alice": "60.00", "bob": "-30.00", "carol": "-30.00"}
	if !reflect.DeepEqual(resp.Msg.Balances, wantBalances) {
		t.Errorf("balances = %v, want %v", resp.Msg.Balances, wantBalances)
	}

	var plan []string
	for _, tr := range resp.Msg.SettlementPlan {
		plan = append(plan, fmt.Sprintf("%s->%s:%s", tr.From, tr.To, tr.Amount))
	}
	if want := []string{"bob->alice:30.00", "carol->alice:30.00"}; !reflect.DeepEqual(plan, want) {
		t.Errorf("plan = %v, want %v", plan, want)
	}

	assertMetric(t, srv, `evensplit_settlements_total{result="ok",source="rpc"} 1`)
}

func TestGetSettlement_OffsettingExpenses(t *testing.T) {
	srv := setupTestServer(t)
	alice := srv.signUp(t, "alice")
	srv.signUp(t, "bob")
	project := srv.createProject(t, alice, "Swap", "bob")

	addExpense(t, srv, alice, project.Id, "100", "alice", "bob")
	addExpense(t, srv, alice, project.Id, "100", "bob", "alice")

	resp, err := srv.settlement.GetSettlement(context.Background(), authed(alice, &pb.GetSettlementRequest{ProjectId: project.Id}))
	if err != nil {
		t.Fatalf("GetSettlement failed: %v", err)
	}
	for who, b := range resp.Msg.Balances {
		if b != "0.00" {
			t.Errorf("balance[%s] = %s, want 0", who, b)
		}
	}
	if len(resp.Msg.SettlementPlan) != 0 {
		t.Errorf("expected empty plan, got %v", resp.Msg.SettlementPlan)
	}
}

func TestGetSettlement_DefaultProject(t *testing.T) {
	srv := setupTestServer(t)
	ctx := context.Background()
	alice := srv.signUp(t, "alice")
	loner := srv.signUp(t, "loner")

	first := srv.createProject(t, alice, "First")
	srv.createProject(t, alice, "Second")

	resp, err := srv.settlement.GetSettlement(ctx, authed(alice, &pb.GetSettlementRequest{}))
	if err != nil {
		t.Fatalf("GetSettlement failed: %v", err)
	}
	if resp.Msg.ProjectId != first.Id {
		t.Errorf("project_id = %s, want first project %s", resp.Msg.ProjectId, first.Id)
	}
	if len(resp.Msg.SettlementPlan) != 0 {
		t.Errorf("expected empty plan, got %v", resp.Msg.SettlementPlan)
	}

	_, err = srv.settlement.GetSettlement(ctx, authed(loner, &pb.GetSettlementRequest{}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestGetSettlement_Access(t *testing.T) {
	srv := setupTestServer(t)
	ctx := context.Background()
	alice := srv.signUp(t, "alice")
	mallory := srv.signUp(t, "mallory")
	project := srv.createProject(t, alice, "Private")

	_, err := srv.settlement.GetSettlement(ctx, authed(mallory, &pb.GetSettlementRequest{ProjectId: project.Id}))
	assertCode(t, err, connect.CodePermissionDenied)

	_, err = srv.settlement.GetSettlement(ctx, authed(alice, &pb.GetSettlementRequest{ProjectId: "missing"}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestGetSummary(t *testing.T) {
	srv := setupTestServer(t)
	ctx := context.Background()
	alice := srv.signUp(t, "alice")
	bob := srv.signUp(t, "bob")
	mallory := srv.signUp(t, "mallory")
	project := srv.createProject(t, alice, "Dinner", "bob")

	addExpense(t, srv, alice, project.Id, "90", "alice", "alice", "bob")
	addExpense(t, srv, bob, project.Id, "10.50", "bob", "alice")

	tests := []struct {
		name    string
		token   string
		netDebt string
	}{
		{"debtor", bob, "34.50"},
		{"creditor", alice, "-34.50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := srv.settlement.GetSummary(ctx, authed(tt.token, &pb.GetSummaryRequest{ProjectId: project.Id}))
			if err != nil {
				t.Fatalf("GetSummary failed: %v", err)
			}
			if resp.Msg.ProjectId != project.Id {
				t.Errorf("project_id = %s, want %s", resp.Msg.ProjectId, project.Id)
			}
			if resp.Msg.TotalExpense != "100.50" || resp.Msg.ExpenseCount != 2 {
				t.Errorf("total = %s over %d expenses, want 100.50 over 2", resp.Msg.TotalExpense, resp.Msg.ExpenseCount)
			}
			if resp.Msg.YourNetDebt != tt.netDebt {
				t.Errorf("your_net_debt = %s, want %s", resp.Msg.YourNetDebt, tt.netDebt)
			}
		})
	}

	t.Run("default project", func(t *testing.T) {
		resp, err := srv.settlement.GetSummary(ctx, authed(bob, &pb.GetSummaryRequest{}))
		if err != nil {
			t.Fatalf("GetSummary failed: %v", err)
		}
		if resp.Msg.ProjectId != project.Id || resp.Msg.TotalExpense != "100.50" {
			t.Errorf("unexpected summary: %+v", resp.Msg)
		}
	})

	t.Run("empty project", func(t *testing.T) {
		empty := srv.createProject(t, alice, "Empty")
		resp, err := srv.settlement.GetSummary(ctx, authed(alice, &pb.GetSummaryRequest{ProjectId: empty.Id}))
		if err != nil {
			t.Fatalf("GetSummary failed: %v", err)
		}
		if resp.Msg.TotalExpense != "0.00" || resp.Msg.YourNetDebt != "0.00" || resp.Msg.ExpenseCount != 0 {
			t.Errorf("unexpected summary: %+v", resp.Msg)
		}
	})

	t.Run("non-member", func(t *testing.T) {
		_, err := srv.settlement.GetSummary(ctx, authed(mallory, &pb.GetSummaryRequest{ProjectId: project.Id}))
		assertCode(t, err, connect.CodePermissionDenied)
	})

	t.Run("no projects", func(t *testing.T) {
		_, err := srv.settlement.GetSummary(ctx, authed(mallory, &pb.GetSummaryRequest{}))
		assertCode(t, err, connect.CodeNotFound)
	})

	assertMetric(t, srv, `evensplit_settlements_total{result="ok",source="rpc"} 4`)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   connect.Code
		status int
	}{
		{"not found", fmt.Errorf("project x: %w", storage.ErrNotFound), connect.CodeNotFound, http.StatusNotFound},
		{"no project", ErrNoProject, connect.CodeNotFound, http.StatusNotFound},
		{"not member", ErrNotMember, connect.CodePermissionDenied, http.StatusForbidden},
		{"taken", auth.ErrUsernameTaken, connect.CodeAlreadyExists, http.StatusConflict},
		{"invalid token", auth.ErrInvalidToken, connect.CodeUnauthenticated, http.StatusUnauthorized},
		{"bad argument", invalidArgument(errors.New("x")), connect.CodeInvalidArgument, http.StatusBadRequest},
		{"unsettleable data", fmt.Errorf("project x: %w", &calculator.ValidationError{Field: "amount"}), connect.CodeFailedPrecondition, http.StatusPreconditionFailed},
		{"unexpected", errors.New("disk on fire"), connect.CodeInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Code(tt.err); got != tt.code {
				t.Errorf("Code() = %v, want %v", got, tt.code)
			}
			if got := HTTPStatus(tt.err); got != tt.status {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.status)
			}
		})
	}
}
