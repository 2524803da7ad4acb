package calculator

import (
	"math/bits"

	"github.com/mmynk/evensplit/internal/money"
)

// MaxExactParticipants caps the subset search; its tables grow as 2^n.
const MaxExactParticipants = 16

// planExact finds the largest partition of the open positions into zero-sum
// groups and settles each group with the greedy matcher. A group of k
// members needs at most k-1 transfers, so the plan has n - groups transfers,
// which is the minimum possible.
//
// Callers guarantee len(debtors)+len(creditors) <= MaxExactParticipants and
// that the positions sum to exactly zero.
func planExact(debtors, creditors []position) ([]Transfer, error) {
	type member struct {
		position
		debtor bool
	}

	// Participants ids are disjoint across the two sides; merge them by id so
	// index order is stable for identical input.
	members := make([]member, 0, len(debtors)+len(creditors))
	i, j := 0, 0
	for i < len(debtors) || j < len(creditors) {
		if j >= len(creditors) || (i < len(debtors) && debtors[i].participant < creditors[j].participant) {
			members = append(members, member{debtors[i], true})
			i++
		} else {
			members = append(members, member{creditors[j], false})
			j++
		}
	}

	n := len(members)
	if n == 0 {
		return nil, nil
	}
	full := uint32(1)<<n - 1

	sums := make([]money.Cents, full+1)
	groups := make([]uint8, full+1)
	for mask := uint32(1); mask <= full; mask++ {
		low := bits.TrailingZeros32(mask)
		v := members[low].amount
		if members[low].debtor {
			v = -v
		}
		sums[mask] = sums[mask&(mask-1)] + v

		var best uint8
		for rest := mask; rest != 0; rest &= rest - 1 {
			bit := rest & -rest
			if g := groups[mask^bit]; g > best {
				best = g
			}
		}
		if sums[mask] == 0 {
			best++
		}
		groups[mask] = best
	}

	// Walk back down one optimal chain. Each time the remaining set sums to
	// zero, the members removed since the previous zero-sum set form a group.
	var plan []Transfer
	prev := full
	for mask := full; mask != 0; {
		want := groups[mask]
		if sums[mask] == 0 {
			want--
		}
		for rest := mask; rest != 0; rest &= rest - 1 {
			bit := rest & -rest
			if groups[mask^bit] == want {
				mask ^= bit
				break
			}
		}
		if sums[mask] != 0 {
			continue
		}

		var groupDebtors, groupCreditors []position
		for g := prev &^ mask; g != 0; g &= g - 1 {
			m := members[bits.TrailingZeros32(g)]
			if m.debtor {
				groupDebtors = append(groupDebtors, m.position)
			} else {
				groupCreditors = append(groupCreditors, m.position)
			}
		}
		transfers, err := planGreedy(groupDebtors, groupCreditors, 0)
		if err != nil {
			return nil, err
		}
		plan = append(plan, transfers...)
		prev = mask
	}
	return plan, nil
}
