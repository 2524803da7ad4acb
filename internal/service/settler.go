package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmynk/evensplit/internal/calculator"
	"github.com/mmynk/evensplit/internal/metrics"
	"github.com/mmynk/evensplit/internal/models"
	"github.com/mmynk/evensplit/internal/money"
	"github.com/mmynk/evensplit/internal/storage"
)

// Settler loads a project snapshot and runs the settlement engine on it.
// It backs the SettlementService RPC, the REST routes and the ledger auditor.
type Settler struct {
	store   storage.Store
	engine  *calculator.Engine
	metrics *metrics.Metrics
}

// NewSettler creates a Settler. m may be nil.
func NewSettler(store storage.Store, engine *calculator.Engine, m *metrics.Metrics) *Settler {
	return &Settler{store: store, engine: engine, metrics: m}
}

// Settle computes balances and a plan for one project.
func (s *Settler) Settle(ctx context.Context, projectID, source string) (*calculator.Result, error) {
	snapshot, err := s.snapshot(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return s.compute(snapshot, source)
}

// SettleForMember is Settle restricted to project members. An empty
// projectID selects the member's default project. It returns the project
// that was settled.
func (s *Settler) SettleForMember(ctx context.Context, userID, username, projectID, source string) (string, *calculator.Result, error) {
	snapshot, projectID, err := s.memberSnapshot(ctx, userID, username, projectID)
	if err != nil {
		return projectID, nil, err
	}
	result, err := s.compute(snapshot, source)
	return projectID, result, err
}

// Summary is the overview of one project from a member's point of view.
type Summary struct {
	ProjectID    string
	TotalExpense money.Cents
	ExpenseCount int
	// NetDebt is what the member owes once the project is settled; negative
	// when the member is owed money.
	NetDebt money.Cents
}

// SummaryForMember totals a project's expenses and the member's net debt.
// Project selection and membership rules are those of SettleForMember.
func (s *Settler) SummaryForMember(ctx context.Context, userID, username, projectID, source string) (*Summary, error) {
	snapshot, projectID, err := s.memberSnapshot(ctx, userID, username, projectID)
	if err != nil {
		return nil, err
	}
	result, err := s.compute(snapshot, source)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		ProjectID:    projectID,
		ExpenseCount: len(snapshot.Expenses),
		NetDebt:      -result.Balances[username],
	}
	for _, e := range snapshot.Expenses {
		summary.TotalExpense, err = money.Add(summary.TotalExpense, e.Amount)
		if err != nil {
			return nil, fmt.Errorf("project %s: %w", projectID, &calculator.RoundingOverflowError{ExpenseID: e.ID, Reason: err.Error()})
		}
	}
	return summary, nil
}

func (s *Settler) memberSnapshot(ctx context.Context, userID, username, projectID string) (*models.ProjectSnapshot, string, error) {
	if projectID == "" {
		var err error
		projectID, err = s.DefaultProject(ctx, userID)
		if err != nil {
			return nil, "", err
		}
	}

	snapshot, err := s.snapshot(ctx, projectID)
	if err != nil {
		return nil, projectID, err
	}
	if !snapshot.Project.HasMember(username) {
		return nil, projectID, ErrNotMember
	}
	return snapshot, projectID, nil
}

// DefaultProject picks the project used when none is named: the user's only
// project, or the first one they joined.
func (s *Settler) DefaultProject(ctx context.Context, userID string) (string, error) {
	projects, err := s.store.ListProjectsForUser(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to list projects: %w", err)
	}
	if len(projects) == 0 {
		return "", ErrNoProject
	}
	return projects[0].ID, nil
}

func (s *Settler) snapshot(ctx context.Context, projectID string) (*models.ProjectSnapshot, error) {
	snapshot, err := s.store.GetProjectSnapshot(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load project snapshot: %w", err)
	}
	return snapshot, nil
}

func (s *Settler) compute(snapshot *models.ProjectSnapshot, source string) (*calculator.Result, error) {
	start := time.Now()
	result, err := s.engine.Settle(snapshot.ForBalance(), snapshot.Project.Members)

	transfers := 0
	if result != nil {
		transfers = len(result.Plan)
	}
	s.metrics.ObserveSettlement(source, start, transfers, err)
	if err != nil {
		return nil, fmt.Errorf("project %s: %w", snapshot.Project.ID, err)
	}

	slog.Debug("Settlement computed",
		"project_id", snapshot.Project.ID,
		"source", source,
		"expenses", len(snapshot.Expenses),
		"transfers", transfers,
	)
	return result, nil
}
