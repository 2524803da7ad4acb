package worker

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/mmynk/evensplit/internal/calculator"
	"github.com/mmynk/evensplit/internal/events"
	"github.com/mmynk/evensplit/internal/models"
	"github.com/mmynk/evensplit/internal/service"
	"github.com/mmynk/evensplit/internal/storage"
	"github.com/mmynk/evensplit/internal/storage/sqlite"
)

type stubSettler struct {
	err     error
	calls   int
	project string
	source  string
}

func (s *stubSettler) Settle(ctx context.Context, projectID, source string) (*calculator.Result, error) {
	s.calls++
	s.project, s.source = projectID, source
	if s.err != nil {
		return nil, s.err
	}
	return &calculator.Result{Balances: calculator.Balances{}}, nil
}

func TestAuditor_HandleExpenseChanged(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		requeue bool
	}{
		{"settles", nil, false},
		{"project gone", fmt.Errorf("load: %w", storage.ErrNotFound), false},
		{"invalid stored expense", fmt.Errorf("project p1: %w", &calculator.ValidationError{ExpenseID: "e1", Field: "amount"}), false},
		{"unbalanced ledger", &calculator.UnbalancedLedgerError{Sum: 3}, false},
		{"overflow", &calculator.RoundingOverflowError{ExpenseID: "e1"}, false},
		{"database down", errors.New("database is locked"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settler := &stubSettler{err: tt.err}
			auditor := NewAuditor(settler)

			err := auditor.HandleExpenseChanged(context.Background(),
				events.NewExpenseChanged("p1", "e1", events.ActionCreated))
			if (err != nil) != tt.requeue {
				t.Errorf("HandleExpenseChanged() error = %v, want requeue %v", err, tt.requeue)
			}
			if settler.calls != 1 || settler.project != "p1" || settler.source != "auditor" {
				t.Errorf("unexpected settle call: %+v", settler)
			}
		})
	}
}

func TestAuditor_WithStore(t *testing.T) {
	ctx := context.Background()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer store.Close()

	alice := &models.User{Username: "alice", PasswordHash: "x"}
	if err := store.CreateUser(ctx, alice); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	project := &models.Project{Name: "Solo", CreatedBy: alice.ID}
	if err := store.CreateProject(ctx, project); err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}
	expense := &models.Expense{
		ProjectID: project.ID, Item: "Lunch", Date: "2026-05-01", Amount: 1234,
		PaidBy: "alice", PaidFor: []string{"alice"}, CreatedBy: alice.ID,
	}
	if err := store.CreateExpense(ctx, expense); err != nil {
		t.Fatalf("CreateExpense failed: %v", err)
	}

	auditor := NewAuditor(service.NewSettler(store, calculator.NewEngine(), nil))
	msg := events.NewExpenseChanged(project.ID, expense.ID, events.ActionCreated)
	if err := auditor.HandleExpenseChanged(ctx, msg); err != nil {
		t.Errorf("HandleExpenseChanged() error = %v", err)
	}

	gone := events.NewExpenseChanged("deleted-project", "e1", events.ActionDeleted)
	if err := auditor.HandleExpenseChanged(ctx, gone); err != nil {
		t.Errorf("missing project should not requeue, got %v", err)
	}
}
