package calculator

import (
	"math"

	"github.com/mmynk/evensplit/internal/money"
)

// Engine runs the balance aggregator and settlement planner with a fixed set
// of options. The zero value is not usable; construct with NewEngine.
type Engine struct {
	tolerance  money.Cents
	exactLimit int
}

// Option configures an Engine.
type Option func(*Engine)

// WithTolerance treats balances within tol of zero as settled and accepts
// ledgers whose total is within tol of zero.
func WithTolerance(tol money.Cents) Option {
	return func(e *Engine) {
		if tol > 0 {
			e.tolerance = tol
		}
	}
}

// WithExactPlanning enables the exact planner for groups of at most limit
// open participants. Larger groups, and limits above MaxExactParticipants,
// use the greedy planner.
func WithExactPlanning(limit int) Option {
	return func(e *Engine) {
		e.exactLimit = min(max(limit, 0), MaxExactParticipants)
	}
}

// NewEngine returns a greedy, zero-tolerance engine adjusted by opts.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Result is the outcome of a settlement computation.
type Result struct {
	Balances Balances
	Plan     []Transfer
}

// Tolerance returns the configured settlement tolerance.
func (e *Engine) Tolerance() money.Cents { return e.tolerance }

// Plan produces transfers that drive every balance to zero.
func (e *Engine) Plan(balances Balances) ([]Transfer, error) {
	if err := checkBalanced(balances, e.tolerance); err != nil {
		return nil, err
	}

	debtors, creditors := partition(balances, e.tolerance)
	if e.useExact(debtors, creditors) {
		return planExact(debtors, creditors)
	}
	return planGreedy(debtors, creditors, e.tolerance)
}

// Settle aggregates expenses and plans their settlement in one pass.
func (e *Engine) Settle(expenses []ExpenseForBalance, members []string) (*Result, error) {
	balances, err := ComputeBalances(expenses, members)
	if err != nil {
		return nil, err
	}
	plan, err := e.Plan(balances)
	if err != nil {
		return nil, err
	}
	return &Result{Balances: balances, Plan: plan}, nil
}

func (e *Engine) useExact(debtors, creditors []position) bool {
	n := len(debtors) + len(creditors)
	if e.exactLimit == 0 || n > e.exactLimit {
		return false
	}

	// Subset sums must stay exact and representable.
	const bound = math.MaxInt64 / MaxExactParticipants
	var net money.Cents
	for _, d := range debtors {
		if d.amount > bound {
			return false
		}
		net -= d.amount
	}
	for _, c := range creditors {
		if c.amount > bound {
			return false
		}
		net += c.amount
	}
	return net == 0
}
