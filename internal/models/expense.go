package models

import (
	"github.com/mmynk/evensplit/internal/calculator"
	"github.com/mmynk/evensplit/internal/money"
)

// Expense is one shared payment within a project.
type Expense struct {
	ID        string
	ProjectID string

	// Item describes what was bought.
	Item     string
	Category string

	// Date is the YYYY-MM-DD day the expense happened.
	Date string

	Amount money.Cents

	// PaidBy is the username of the payer.
	PaidBy string

	// PaidFor are the usernames sharing the cost, split equally.
	PaidFor []string

	CreatedBy string
	CreatedAt int64
	UpdatedAt int64
}

// ProjectSnapshot is the state of one project read at a single point in time.
type ProjectSnapshot struct {
	Project  *Project
	Expenses []*Expense
}

// ForBalance converts the snapshot's expenses into calculator input.
func (s *ProjectSnapshot) ForBalance() []calculator.ExpenseForBalance {
	out := make([]calculator.ExpenseForBalance, 0, len(s.Expenses))
	for _, e := range s.Expenses {
		out = append(out, calculator.ExpenseForBalance{
			ID:      e.ID,
			Amount:  e.Amount,
			PaidBy:  e.PaidBy,
			PaidFor: e.PaidFor,
		})
	}
	return out
}
