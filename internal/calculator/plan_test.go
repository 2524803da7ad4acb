package calculator

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/mmynk/evensplit/internal/money"
)

func TestComputePlan(t *testing.T) {
	tests := []struct {
		name     string
		balances Balances
		want     []Transfer
	}{
		{
			name:     "two debtors one creditor",
			balances: Balances{"A": 6000, "B": -3000, "C": -3000},
			want: []Transfer{
				{From: "B", To: "A", Amount: 3000},
				{From: "C", To: "A", Amount: 3000},
			},
		},
		{
			name:     "already settled",
			balances: Balances{"A": 0, "B": 0},
			want:     nil,
		},
		{
			name:     "empty ledger",
			balances: Balances{},
			want:     nil,
		},
		{
			name:     "one debtor two creditors",
			balances: Balances{"A": 5000, "B": 3000, "C": -8000},
			want: []Transfer{
				{From: "C", To: "A", Amount: 5000},
				{From: "C", To: "B", Amount: 3000},
			},
		},
		{
			name:     "largest positions matched first",
			balances: Balances{"A": 100, "B": 700, "C": -500, "D": -300},
			want: []Transfer{
				{From: "C", To: "B", Amount: 500},
				{From: "D", To: "B", Amount: 200},
				{From: "D", To: "A", Amount: 100},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputePlan(tt.balances)
			if err != nil {
				t.Fatalf("ComputePlan() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ComputePlan() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputePlan_Unbalanced(t *testing.T) {
	_, err := ComputePlan(Balances{"A": 100, "B": -99})
	var uerr *UnbalancedLedgerError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UnbalancedLedgerError, got %v", err)
	}
	if uerr.Sum != 1 {
		t.Errorf("Sum = %d, want 1", uerr.Sum)
	}
}

func TestEngine_Tolerance(t *testing.T) {
	engine := NewEngine(WithTolerance(1))
	if engine.Tolerance() != 1 {
		t.Fatalf("Tolerance() = %d, want 1", engine.Tolerance())
	}

	// Off by one cent overall; B's one-cent debt is within tolerance.
	plan, err := engine.Plan(Balances{"A": 500, "B": -1, "C": -500})
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	want := []Transfer{{From: "C", To: "A", Amount: 500}}
	if !reflect.DeepEqual(plan, want) {
		t.Errorf("Plan() = %v, want %v", plan, want)
	}

	if _, err := engine.Plan(Balances{"A": 500, "B": -498}); err == nil {
		t.Error("expected error for ledger off by more than tolerance")
	}

	if NewEngine(WithTolerance(-5)).Tolerance() != 0 {
		t.Error("negative tolerance should be ignored")
	}
}

func TestEngine_ToleranceKeepsBalancedLedgers(t *testing.T) {
	tests := []struct {
		name      string
		tolerance money.Cents
		balances  Balances
		want      []Transfer
	}{
		{
			name:      "dust creditors outweigh tolerance together",
			tolerance: 5,
			balances:  Balances{"A": 5, "B": 5, "C": -10},
			want:      []Transfer{{From: "C", To: "B", Amount: 5}},
		},
		{
			name:      "dust on both sides cancels",
			tolerance: 5,
			balances:  Balances{"A": 4, "B": -4, "C": 100, "D": -100},
			want:      []Transfer{{From: "D", To: "C", Amount: 100}},
		},
		{
			name:      "every balance is dust",
			tolerance: 3,
			balances:  Balances{"A": 3, "B": 3, "C": -3, "D": -3},
			want:      nil,
		},
		{
			name:      "many small debtors",
			tolerance: 2,
			balances:  Balances{"A": 8, "B": -2, "C": -2, "D": -2, "E": -2},
			want: []Transfer{
				{From: "C", To: "A", Amount: 2},
				{From: "D", To: "A", Amount: 2},
				{From: "E", To: "A", Amount: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := NewEngine(WithTolerance(tt.tolerance)).Plan(tt.balances)
			if err != nil {
				t.Fatalf("Plan() error = %v", err)
			}
			if !reflect.DeepEqual(plan, tt.want) {
				t.Errorf("Plan() = %v, want %v", plan, tt.want)
			}

			remaining := make(Balances, len(tt.balances))
			for id, b := range tt.balances {
				remaining[id] = b
			}
			for _, tr := range plan {
				remaining[tr.From] += tr.Amount
				remaining[tr.To] -= tr.Amount
			}
			for id, b := range remaining {
				if !money.Within(b, tt.tolerance) {
					t.Errorf("participant %s left with %d, tolerance %d", id, b, tt.tolerance)
				}
			}
		})
	}
}

func TestEngine_Settle(t *testing.T) {
	engine := NewEngine()

	t.Run("aggregates and plans", func(t *testing.T) {
		result, err := engine.Settle([]ExpenseForBalance{
			{ID: "e1", Amount: 9000, PaidBy: "A", PaidFor: []string{"A", "B", "C"}},
		}, nil)
		if err != nil {
			t.Fatalf("Settle() error = %v", err)
		}
		if result.Balances["A"] != 6000 {
			t.Errorf("balance A = %d, want 6000", result.Balances["A"])
		}
		if len(result.Plan) != 2 {
			t.Errorf("plan length = %d, want 2", len(result.Plan))
		}
	})

	t.Run("no expenses", func(t *testing.T) {
		result, err := engine.Settle(nil, nil)
		if err != nil {
			t.Fatalf("Settle() error = %v", err)
		}
		if len(result.Balances) != 0 || len(result.Plan) != 0 {
			t.Errorf("expected empty result, got %+v", result)
		}
	})

	t.Run("invalid expense yields no result", func(t *testing.T) {
		result, err := engine.Settle([]ExpenseForBalance{
			{ID: "e1", Amount: -500, PaidBy: "A", PaidFor: []string{"A", "B"}},
		}, nil)
		if result != nil {
			t.Errorf("expected nil result, got %+v", result)
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})
}

func TestEngine_ExactPlanning(t *testing.T) {
	balances := Balances{"A": 600, "B": 500, "C": -500, "D": -300, "E": -300}

	greedy, err := NewEngine().Plan(balances)
	if err != nil {
		t.Fatalf("greedy Plan() error = %v", err)
	}
	if len(greedy) != 4 {
		t.Fatalf("greedy plan = %v, want 4 transfers", greedy)
	}

	exact, err := NewEngine(WithExactPlanning(8)).Plan(balances)
	if err != nil {
		t.Fatalf("exact Plan() error = %v", err)
	}
	want := []Transfer{
		{From: "D", To: "A", Amount: 300},
		{From: "E", To: "A", Amount: 300},
		{From: "C", To: "B", Amount: 500},
	}
	if !reflect.DeepEqual(exact, want) {
		t.Errorf("exact Plan() = %v, want %v", exact, want)
	}
	assertSettles(t, balances, exact)

	// Above the limit the greedy planner is used.
	limited, err := NewEngine(WithExactPlanning(4)).Plan(balances)
	if err != nil {
		t.Fatalf("limited Plan() error = %v", err)
	}
	if !reflect.DeepEqual(limited, greedy) {
		t.Errorf("limited Plan() = %v, want greedy %v", limited, greedy)
	}
}

// TestPlanProperties checks conservation, correctness and the transfer bound
// over generated ledgers.
func TestPlanProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 42))

	for round := 0; round < 200; round++ {
		n := 2 + rng.IntN(10)
		people := make([]string, n)
		for i := range people {
			people[i] = fmt.Sprintf("p%02d", i)
		}

		var expenses []ExpenseForBalance
		for i := 0; i < 1+rng.IntN(15); i++ {
			var paidFor []string
			for _, p := range people {
				if rng.IntN(2) == 0 {
					paidFor = append(paidFor, p)
				}
			}
			if len(paidFor) == 0 {
				paidFor = people[:1]
			}
			expenses = append(expenses, ExpenseForBalance{
				ID:      fmt.Sprintf("e%d", i),
				Amount:  money.Cents(1 + rng.IntN(100_000)),
				PaidBy:  people[rng.IntN(n)],
				PaidFor: paidFor,
			})
		}

		for _, engine := range []*Engine{NewEngine(), NewEngine(WithExactPlanning(MaxExactParticipants))} {
			result, err := engine.Settle(expenses, people)
			if err != nil {
				t.Fatalf("round %d: Settle() error = %v", round, err)
			}
			sum, _ := result.Balances.Sum()
			if sum != 0 {
				t.Fatalf("round %d: balances sum to %d", round, sum)
			}

			open := 0
			for _, b := range result.Balances {
				if b != 0 {
					open++
				}
			}
			if open > 0 && len(result.Plan) > open-1 {
				t.Errorf("round %d: %d transfers for %d open participants", round, len(result.Plan), open)
			}
			assertSettles(t, result.Balances, result.Plan)

			again, err := engine.Settle(expenses, people)
			if err != nil {
				t.Fatalf("round %d: second Settle() error = %v", round, err)
			}
			if !reflect.DeepEqual(again.Plan, result.Plan) {
				t.Errorf("round %d: plan not deterministic", round)
			}
		}
	}
}

func assertSettles(t *testing.T, balances Balances, plan []Transfer) {
	t.Helper()
	remaining := make(Balances, len(balances))
	for id, b := range balances {
		remaining[id] = b
	}
	for _, tr := range plan {
		if tr.From == tr.To {
			t.Errorf("self transfer %v", tr)
		}
		if tr.Amount <= 0 {
			t.Errorf("non-positive transfer %v", tr)
		}
		remaining[tr.From] += tr.Amount
		remaining[tr.To] -= tr.Amount
	}
	for id, b := range remaining {
		if b != 0 {
			t.Errorf("participant %s left with %d after plan", id, b)
		}
	}
}
