package calculator

import (
	"errors"
	"reflect"
	"testing"

	"github.com/mmynk/evensplit/internal/money"
)

func TestComputeBalances(t *testing.T) {
	tests := []struct {
		name     string
		expenses []ExpenseForBalance
		members  []string
		want     Balances
	}{
		{
			name: "one payer split three ways",
			expenses: []ExpenseForBalance{
				{ID: "e1", Amount: 9000, PaidBy: "A", PaidFor: []string{"A", "B", "C"}},
			},
			want: Balances{"A": 6000, "B": -3000, "C": -3000},
		},
		{
			name: "mutual expenses cancel out",
			expenses: []ExpenseForBalance{
				{ID: "e1", Amount: 10000, PaidBy: "A", PaidFor: []string{"B"}},
				{ID: "e2", Amount: 10000, PaidBy: "B", PaidFor: []string{"A"}},
			},
			want: Balances{"A": 0, "B": 0},
		},
		{
			name:     "no expenses",
			expenses: nil,
			want:     Balances{},
		},
		{
			name: "payer as sole beneficiary nets to zero",
			expenses: []ExpenseForBalance{
				{ID: "e1", Amount: 1234, PaidBy: "A", PaidFor: []string{"A"}},
			},
			want: Balances{"A": 0},
		},
		{
			name: "duplicate beneficiaries split once",
			expenses: []ExpenseForBalance{
				{ID: "e1", Amount: 9000, PaidBy: "A", PaidFor: []string{"B", "C", "B", "C"}},
			},
			want: Balances{"A": 9000, "B": -4500, "C": -4500},
		},
		{
			name: "payer outside beneficiaries",
			expenses: []ExpenseForBalance{
				{ID: "e1", Amount: 5000, PaidBy: "A", PaidFor: []string{"B", "C"}},
			},
			want: Balances{"A": 5000, "B": -2500, "C": -2500},
		},
		{
			name: "rounding residual stays with the payer",
			expenses: []ExpenseForBalance{
				// 10.00 / 3 = 3.33 each, one cent left over.
				{ID: "e1", Amount: 1000, PaidBy: "A", PaidFor: []string{"A", "B", "C"}},
			},
			want: Balances{"A": 666, "B": -333, "C": -333},
		},
		{
			name: "negative residual when shares round up",
			expenses: []ExpenseForBalance{
				// 20.00 / 3 = 6.67 each, payer credited 20.01.
				{ID: "e1", Amount: 2000, PaidBy: "D", PaidFor: []string{"A", "B", "C"}},
			},
			want: Balances{"A": -667, "B": -667, "C": -667, "D": 2001},
		},
		{
			name:    "roster check passes for members",
			members: []string{"A", "B"},
			expenses: []ExpenseForBalance{
				{ID: "e1", Amount: 200, PaidBy: "A", PaidFor: []string{"A", "B"}},
			},
			want: Balances{"A": 100, "B": -100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeBalances(tt.expenses, tt.members)
			if err != nil {
				t.Fatalf("ComputeBalances() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ComputeBalances() = %v, want %v", got, tt.want)
			}
			sum, err := got.Sum()
			if err != nil || sum != 0 {
				t.Errorf("balances sum = %d (err %v), want 0", sum, err)
			}
		})
	}
}

func TestComputeBalances_ValidationErrors(t *testing.T) {
	tests := []struct {
		name      string
		expense   ExpenseForBalance
		members   []string
		wantField string
	}{
		{
			name:      "negative amount",
			expense:   ExpenseForBalance{ID: "e1", Amount: -500, PaidBy: "A", PaidFor: []string{"A"}},
			wantField: "amount",
		},
		{
			name:      "zero amount",
			expense:   ExpenseForBalance{ID: "e1", Amount: 0, PaidBy: "A", PaidFor: []string{"A"}},
			wantField: "amount",
		},
		{
			name:      "amount above maximum",
			expense:   ExpenseForBalance{ID: "e1", Amount: money.MaxAmount + 1, PaidBy: "A", PaidFor: []string{"A"}},
			wantField: "amount",
		},
		{
			name:      "no beneficiaries",
			expense:   ExpenseForBalance{ID: "e1", Amount: 500, PaidBy: "A"},
			wantField: "paid_for",
		},
		{
			name:      "only blank beneficiaries",
			expense:   ExpenseForBalance{ID: "e1", Amount: 500, PaidBy: "A", PaidFor: []string{"", "  "}},
			wantField: "paid_for",
		},
		{
			name:      "missing payer",
			expense:   ExpenseForBalance{ID: "e1", Amount: 500, PaidFor: []string{"A"}},
			wantField: "paid_by",
		},
		{
			name:      "payer not a member",
			expense:   ExpenseForBalance{ID: "e1", Amount: 500, PaidBy: "Z", PaidFor: []string{"A"}},
			members:   []string{"A", "B"},
			wantField: "paid_by",
		},
		{
			name:      "beneficiary not a member",
			expense:   ExpenseForBalance{ID: "e1", Amount: 500, PaidBy: "A", PaidFor: []string{"A", "Z"}},
			members:   []string{"A", "B"},
			wantField: "paid_for",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid := ExpenseForBalance{ID: "e0", Amount: 100, PaidBy: "A", PaidFor: []string{"A", "B"}}
			got, err := ComputeBalances([]ExpenseForBalance{valid, tt.expense}, tt.members)
			if got != nil {
				t.Errorf("expected no partial balances, got %v", got)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %T: %v", err, err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", verr.Field, tt.wantField)
			}
			if verr.ExpenseID != "e1" {
				t.Errorf("ExpenseID = %q, want e1", verr.ExpenseID)
			}
		})
	}
}

func TestComputeBalances_OverflowIsReported(t *testing.T) {
	var expenses []ExpenseForBalance
	// Enough maximal expenses to push one payer past int64.
	for i := 0; i < 1_000_000; i++ {
		expenses = append(expenses, ExpenseForBalance{ID: "big", Amount: money.MaxAmount, PaidBy: "A", PaidFor: []string{"B"}})
	}
	_, err := ComputeBalances(expenses, nil)
	var oerr *RoundingOverflowError
	if !errors.As(err, &oerr) {
		t.Fatalf("expected RoundingOverflowError, got %v", err)
	}
}

func TestDedupeParticipants(t *testing.T) {
	got := DedupeParticipants([]string{"b", "a", " b", "", "c", "a"})
	want := []string{"b", "a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DedupeParticipants() = %v, want %v", got, want)
	}
}
