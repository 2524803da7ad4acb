package calculator

import (
	"fmt"

	"github.com/mmynk/evensplit/internal/money"
)

// ValidationError reports a malformed expense. The whole computation is
// rejected when one is returned.
type ValidationError struct {
	ExpenseID string
	Field     string
	Reason    string
}

func (e *ValidationError) Error() string {
	if e.ExpenseID == "" {
		return fmt.Sprintf("invalid expense: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid expense %s: %s: %s", e.ExpenseID, e.Field, e.Reason)
}

// UnbalancedLedgerError reports balances that do not sum to zero within the
// tolerance, or a plan that could not discharge every balance.
type UnbalancedLedgerError struct {
	Sum       money.Cents
	Tolerance money.Cents
	// Participant is set when a single remainder was left undischarged.
	Participant string
}

func (e *UnbalancedLedgerError) Error() string {
	if e.Participant != "" {
		return fmt.Sprintf("unbalanced ledger: %s left with %s (tolerance %s)",
			e.Participant, e.Sum, e.Tolerance)
	}
	return fmt.Sprintf("unbalanced ledger: balances sum to %s (tolerance %s)", e.Sum, e.Tolerance)
}

// RoundingOverflowError reports minor-unit arithmetic that cannot be
// resolved exactly.
type RoundingOverflowError struct {
	ExpenseID string
	Reason    string
}

func (e *RoundingOverflowError) Error() string {
	return fmt.Sprintf("rounding overflow in expense %s: %s", e.ExpenseID, e.Reason)
}
