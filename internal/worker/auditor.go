// Package worker holds the background consumers of expense change events.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mmynk/evensplit/internal/calculator"
	"github.com/mmynk/evensplit/internal/events"
	"github.com/mmynk/evensplit/internal/metrics"
	"github.com/mmynk/evensplit/internal/storage"
)

// Settler computes the settlement of one project.
type Settler interface {
	Settle(ctx context.Context, projectID, source string) (*calculator.Result, error)
}

// Auditor recomputes a project's settlement whenever its expenses change and
// reports ledgers the engine cannot settle.
type Auditor struct {
	settler Settler
}

func NewAuditor(settler Settler) *Auditor {
	return &Auditor{settler: settler}
}

// HandleExpenseChanged is an events.Handler. Only storage failures are
// returned, so only they requeue the message; a ledger the engine rejects
// will be rejected again on redelivery.
func (a *Auditor) HandleExpenseChanged(ctx context.Context, msg *events.ExpenseChanged) error {
	slog.InfoContext(ctx, "Auditing project",
		"project_id", msg.ProjectID,
		"expense_id", msg.ExpenseID,
		"action", msg.Action,
	)

	result, err := a.settler.Settle(ctx, msg.ProjectID, metrics.SourceAuditor)
	switch {
	case err == nil:
		slog.InfoContext(ctx, "Project ledger settles",
			"project_id", msg.ProjectID,
			"participants", len(result.Balances),
			"transfers", len(result.Plan),
		)
		return nil
	case errors.Is(err, storage.ErrNotFound):
		slog.WarnContext(ctx, "Project no longer exists, skipping audit", "project_id", msg.ProjectID)
		return nil
	case isEngineError(err):
		slog.ErrorContext(ctx, "Project ledger cannot be settled",
			"project_id", msg.ProjectID,
			"expense_id", msg.ExpenseID,
			"error", err,
		)
		return nil
	default:
		return fmt.Errorf("audit project %s: %w", msg.ProjectID, err)
	}
}

func isEngineError(err error) bool {
	var (
		validation *calculator.ValidationError
		unbalanced *calculator.UnbalancedLedgerError
		overflow   *calculator.RoundingOverflowError
	)
	return errors.As(err, &validation) || errors.As(err, &unbalanced) || errors.As(err, &overflow)
}
