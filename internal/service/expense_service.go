package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/evensplit/internal/calculator"
	"github.com/mmynk/evensplit/internal/events"
	"github.com/mmynk/evensplit/internal/metrics"
	"github.com/mmynk/evensplit/internal/models"
	"github.com/mmynk/evensplit/internal/money"
	"github.com/mmynk/evensplit/internal/storage"
	pb "github.com/mmynk/evensplit/pkg/proto"
	"github.com/mmynk/evensplit/pkg/proto/protoconnect"
)

var _ protoconnect.ExpenseServiceHandler = (*ExpenseService)(nil)

// ExpenseService implements the Connect ExpenseService.
type ExpenseService struct {
	store     storage.Store
	publisher events.Publisher
	metrics   *metrics.Metrics
}

// NewExpenseService creates an ExpenseService. Change events go to publisher;
// m may be nil.
func NewExpenseService(store storage.Store, publisher events.Publisher, m *metrics.Metrics) *ExpenseService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &ExpenseService{store: store, publisher: publisher, metrics: m}
}

// CreateExpense records a new expense in a project the caller belongs to.
func (s *ExpenseService) CreateExpense(ctx context.Context, req *connect.Request[pb.CreateExpenseRequest]) (*connect.Response[pb.CreateExpenseResponse], error) {
	c, err := requireCaller(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("CreateExpense request received",
		"project_id", req.Msg.ProjectId,
		"amount", req.Msg.GetExpense().GetAmount(),
		"paid_for_count", len(req.Msg.GetExpense().GetPaidFor()),
	)

	project, err := memberProject(ctx, s.store, req.Msg.ProjectId, c)
	if err != nil {
		return nil, toConnectError(err)
	}

	expense := &models.Expense{
		ProjectID: project.ID,
		CreatedBy: c.userID,
	}
	if err := applyExpenseInput(expense, req.Msg.GetExpense(), project); err != nil {
		return nil, invalidArgument(err)
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.Error("CreateExpense failed", "project_id", project.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Expense created", "expense_id", expense.ID, "project_id", project.ID)
	s.publish(ctx, expense.ProjectID, expense.ID, events.ActionCreated)
	return connect.NewResponse(&pb.CreateExpenseResponse{Expense: toProtoExpense(expense)}), nil
}

// GetExpense retrieves one expense.
func (s *ExpenseService) GetExpense(ctx context.Context, req *connect.Request[pb.GetExpenseRequest]) (*connect.Response[pb.GetExpenseResponse], error) {
	c, err := requireCaller(ctx)
	if err != nil {
		return nil, err
	}

	expense, _, err := s.memberExpense(ctx, req.Msg.ExpenseId, c)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.GetExpenseResponse{Expense: toProtoExpense(expense)}), nil
}

// UpdateExpense replaces the editable fields of an expense.
func (s *ExpenseService) UpdateExpense(ctx context.Context, req *connect.Request[pb.UpdateExpenseRequest]) (*connect.Response[pb.UpdateExpenseResponse], error) {
	c, err := requireCaller(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("UpdateExpense request received", "expense_id", req.Msg.ExpenseId)

	expense, project, err := s.memberExpense(ctx, req.Msg.ExpenseId, c)
	if err != nil {
		return nil, toConnectError(err)
	}
	if err := applyExpenseInput(expense, req.Msg.GetExpense(), project); err != nil {
		return nil, invalidArgument(err)
	}

	if err := s.store.UpdateExpense(ctx, expense); err != nil {
		slog.Error("UpdateExpense failed", "expense_id", expense.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Expense updated", "expense_id", expense.ID)
	s.publish(ctx, expense.ProjectID, expense.ID, events.ActionUpdated)
	return connect.NewResponse(&pb.UpdateExpenseResponse{Expense: toProtoExpense(expense)}), nil
}

// DeleteExpense removes an expense.
func (s *ExpenseService) DeleteExpense(ctx context.Context, req *connect.Request[pb.DeleteExpenseRequest]) (*connect.Response[pb.DeleteExpenseResponse], error) {
	c, err := requireCaller(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("DeleteExpense request received", "expense_id", req.Msg.ExpenseId)

	expense, _, err := s.memberExpense(ctx, req.Msg.ExpenseId, c)
	if err != nil {
		return nil, toConnectError(err)
	}

	if err := s.store.DeleteExpense(ctx, expense.ID); err != nil {
		slog.Error("DeleteExpense failed", "expense_id", expense.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Expense deleted", "expense_id", expense.ID)
	s.publish(ctx, expense.ProjectID, expense.ID, events.ActionDeleted)
	return connect.NewResponse(&pb.DeleteExpenseResponse{}), nil
}

// ListExpenses returns a project's expenses, newest first.
func (s *ExpenseService) ListExpenses(ctx context.Context, req *connect.Request[pb.ListExpensesRequest]) (*connect.Response[pb.ListExpensesResponse], error) {
	c, err := requireCaller(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := memberProject(ctx, s.store, req.Msg.ProjectId, c); err != nil {
		return nil, toConnectError(err)
	}

	expenses, err := s.store.ListExpenses(ctx, req.Msg.ProjectId)
	if err != nil {
		slog.Error("ListExpenses failed", "project_id", req.Msg.ProjectId, "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*pb.Expense, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, toProtoExpense(e))
	}
	return connect.NewResponse(&pb.ListExpensesResponse{Expenses: out}), nil
}

// memberExpense loads an expense whose project the caller belongs to.
func (s *ExpenseService) memberExpense(ctx context.Context, expenseID string, c caller) (*models.Expense, *models.Project, error) {
	if expenseID == "" {
		return nil, nil, invalidArgument(errors.New("expense_id is required"))
	}
	expense, err := s.store.GetExpense(ctx, expenseID)
	if err != nil {
		return nil, nil, err
	}
	project, err := memberProject(ctx, s.store, expense.ProjectID, c)
	if err != nil {
		return nil, nil, err
	}
	return expense, project, nil
}

// publish emits a change event. Failures are logged and never fail the write.
func (s *ExpenseService) publish(ctx context.Context, projectID, expenseID string, action events.Action) {
	err := s.publisher.PublishExpenseChanged(ctx, events.NewExpenseChanged(projectID, expenseID, action))
	s.metrics.ObservePublish(string(action), err)
	if err != nil {
		slog.Warn("Failed to publish expense change",
			"project_id", projectID,
			"expense_id", expenseID,
			"action", action,
			"error", err,
		)
	}
}

// applyExpenseInput validates in against the project roster and copies it
// onto expense. The engine's own expense rules are applied so anything
// stored here can be settled.
func applyExpenseInput(expense *models.Expense, in *pb.ExpenseInput, project *models.Project) error {
	if in == nil {
		return errors.New("expense is required")
	}
	item := strings.TrimSpace(in.Item)
	if item == "" {
		return errors.New("item is required")
	}

	date := in.Date
	if date == "" {
		date = time.Now().Format(dateLayout)
	}
	if err := validateDate(date); err != nil {
		return err
	}

	amount, err := money.Parse(in.Amount)
	if err != nil {
		return fmt.Errorf("amount: %w", err)
	}

	candidate := calculator.ExpenseForBalance{
		ID:      expense.ID,
		Amount:  amount,
		PaidBy:  strings.TrimSpace(in.PaidBy),
		PaidFor: calculator.DedupeParticipants(in.PaidFor),
	}
	if _, err := calculator.ComputeBalances([]calculator.ExpenseForBalance{candidate}, project.Members); err != nil {
		return err
	}

	expense.Item = item
	expense.Category = strings.TrimSpace(in.Category)
	expense.Date = date
	expense.Amount = amount
	expense.PaidBy = candidate.PaidBy
	expense.PaidFor = candidate.PaidFor
	return nil
}
