package calculator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mmynk/evensplit/internal/money"
)

// ExpenseForBalance is the minimal view of an expense the aggregator needs.
type ExpenseForBalance struct {
	ID      string
	Amount  money.Cents
	PaidBy  string
	PaidFor []string
}

// Balances maps a participant to its net position.
// Positive = owed money, negative = owes money.
type Balances map[string]money.Cents

// Participants returns the participant ids in ascending order.
func (b Balances) Participants() []string {
	ids := make([]string, 0, len(b))
	for id := range b {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Sum returns the total of all balances.
func (b Balances) Sum() (money.Cents, error) {
	var total money.Cents
	for _, id := range b.Participants() {
		next, err := money.Add(total, b[id])
		if err != nil {
			return 0, err
		}
		total = next
	}
	return total, nil
}

// DedupeParticipants drops blank and repeated ids, keeping first-seen order.
func DedupeParticipants(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}
	return unique
}

// ComputeBalances folds expenses into one net balance per participant.
//
// Each amount is split equally across the unique beneficiaries, rounded
// half-to-even to the minor unit. The rounding residual stays with the payer,
// so every expense contributes exactly zero to the ledger total.
//
// members is the project roster. When non-nil, payers and beneficiaries
// outside it are rejected.
func ComputeBalances(expenses []ExpenseForBalance, members []string) (Balances, error) {
	var roster map[string]bool
	if members != nil {
		roster = make(map[string]bool, len(members))
		for _, m := range members {
			roster[m] = true
		}
	}

	balances := make(Balances)
	for _, expense := range expenses {
		payer, beneficiaries, err := validateExpense(expense, roster)
		if err != nil {
			return nil, err
		}

		share, residual, err := money.SplitEven(expense.Amount, len(beneficiaries))
		if err != nil {
			return nil, &RoundingOverflowError{ExpenseID: expense.ID, Reason: err.Error()}
		}
		if residual.Abs() >= money.Cents(len(beneficiaries)) {
			return nil, &RoundingOverflowError{
				ExpenseID: expense.ID,
				Reason:    fmt.Sprintf("residual %d not below %d shares", residual, len(beneficiaries)),
			}
		}

		// Payer is credited what the shares actually cover.
		if err := credit(balances, payer, expense.Amount-residual, expense.ID); err != nil {
			return nil, err
		}
		for _, participant := range beneficiaries {
			if err := credit(balances, participant, -share, expense.ID); err != nil {
				return nil, err
			}
		}
	}

	return balances, nil
}

func validateExpense(expense ExpenseForBalance, roster map[string]bool) (string, []string, error) {
	if expense.Amount <= 0 {
		return "", nil, &ValidationError{ExpenseID: expense.ID, Field: "amount", Reason: "must be positive"}
	}
	if expense.Amount > money.MaxAmount {
		return "", nil, &ValidationError{ExpenseID: expense.ID, Field: "amount", Reason: "exceeds maximum supported amount"}
	}
	payer := strings.TrimSpace(expense.PaidBy)
	if payer == "" {
		return "", nil, &ValidationError{ExpenseID: expense.ID, Field: "paid_by", Reason: "is required"}
	}
	if roster != nil && !roster[payer] {
		return "", nil, &ValidationError{
			ExpenseID: expense.ID,
			Field:     "paid_by",
			Reason:    fmt.Sprintf("%q is not a project member", payer),
		}
	}

	beneficiaries := DedupeParticipants(expense.PaidFor)
	if len(beneficiaries) == 0 {
		return "", nil, &ValidationError{ExpenseID: expense.ID, Field: "paid_for", Reason: "must name at least one participant"}
	}
	if roster != nil {
		for _, p := range beneficiaries {
			if !roster[p] {
				return "", nil, &ValidationError{
					ExpenseID: expense.ID,
					Field:     "paid_for",
					Reason:    fmt.Sprintf("%q is not a project member", p),
				}
			}
		}
	}
	return payer, beneficiaries, nil
}

func credit(balances Balances, participant string, amount money.Cents, expenseID string) error {
	next, err := money.Add(balances[participant], amount)
	if err != nil {
		return &RoundingOverflowError{ExpenseID: expenseID, Reason: err.Error()}
	}
	balances[participant] = next
	return nil
}
