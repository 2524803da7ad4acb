package calculator

import (
	"container/heap"

	"github.com/mmynk/evensplit/internal/money"
)

// Transfer is one payment of a settlement plan.
type Transfer struct {
	From   string // debtor
	To     string // creditor
	Amount money.Cents
}

// position is an outstanding magnitude owed or owed to one participant.
type position struct {
	participant string
	amount      money.Cents
}

// positionHeap is a max-heap by amount; ties go to the smaller participant id.
type positionHeap []position

func (h positionHeap) Len() int { return len(h) }

func (h positionHeap) Less(i, j int) bool {
	if h[i].amount != h[j].amount {
		return h[i].amount > h[j].amount
	}
	return h[i].participant < h[j].participant
}

func (h positionHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *positionHeap) Push(x any) { *h = append(*h, x.(position)) }

func (h *positionHeap) Pop() any {
	old := *h
	n := len(old)
	p := old[n-1]
	*h = old[:n-1]
	return p
}

// ComputePlan settles balances with the greedy planner and zero tolerance.
func ComputePlan(balances Balances) ([]Transfer, error) {
	return NewEngine().Plan(balances)
}

// checkBalanced fails when the balances do not sum to zero within tolerance.
func checkBalanced(balances Balances, tolerance money.Cents) error {
	sum, err := balances.Sum()
	if err != nil {
		return &RoundingOverflowError{Reason: err.Error()}
	}
	if !money.Within(sum, tolerance) {
		return &UnbalancedLedgerError{Sum: sum, Tolerance: tolerance}
	}
	return nil
}

// partition splits balances into debtor and creditor magnitudes. A participant
// within tolerance is dropped as settled only while the balances still in play
// sum to within tolerance, so the planner never strands more than the ledger's
// own rounding error. Both slices are ordered by participant id.
func partition(balances Balances, tolerance money.Cents) (debtors, creditors []position) {
	var open money.Cents
	for _, amount := range balances {
		open += amount
	}

	for _, id := range balances.Participants() {
		amount := balances[id]
		if amount == 0 {
			continue
		}
		if money.Within(amount, tolerance) && money.Within(open-amount, tolerance) {
			open -= amount
			continue
		}
		if amount > 0 {
			creditors = append(creditors, position{participant: id, amount: amount})
		} else {
			debtors = append(debtors, position{participant: id, amount: -amount})
		}
	}
	return debtors, creditors
}

// planGreedy repeatedly matches the largest debtor with the largest creditor.
// Every emitted transfer retires at least one side, so n participants need at
// most n-1 transfers.
func planGreedy(debtors, creditors []position, tolerance money.Cents) ([]Transfer, error) {
	dh := positionHeap(append([]position(nil), debtors...))
	ch := positionHeap(append([]position(nil), creditors...))
	heap.Init(&dh)
	heap.Init(&ch)

	var plan []Transfer
	for dh.Len() > 0 && ch.Len() > 0 {
		debtor := heap.Pop(&dh).(position)
		creditor := heap.Pop(&ch).(position)

		amount := min(debtor.amount, creditor.amount)
		plan = append(plan, Transfer{
			From:   debtor.participant,
			To:     creditor.participant,
			Amount: amount,
		})

		debtor.amount -= amount
		creditor.amount -= amount
		if debtor.amount > 0 {
			heap.Push(&dh, debtor)
		}
		if creditor.amount > 0 {
			heap.Push(&ch, creditor)
		}
	}

	for _, rest := range [][]position{dh, ch} {
		for _, p := range rest {
			if p.amount > tolerance {
				return nil, &UnbalancedLedgerError{Sum: p.amount, Tolerance: tolerance, Participant: p.participant}
			}
		}
	}
	return plan, nil
}
