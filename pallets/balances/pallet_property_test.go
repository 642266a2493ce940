// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package balances

import (
	"errors"
	"math"
	"testing"

	"pgregory.net/rapid"
)

var testAccounts = []string{"alice", "bob", "charlie"}

func drawBalance(t *rapid.T, label string) testBalance {
	return testBalance(rapid.OneOf(
		rapid.Uint64Range(0, 1_000),
		rapid.Uint64Range(math.MaxUint64-1_000, math.MaxUint64),
	).Draw(t, label))
}

// A successful transfer conserves the sum of both balances and debits the
// caller by exactly the amount. A failed transfer changes nothing.
func TestTransferConservationProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		balances := newTestPallet()
		for _, who := range testAccounts {
			balances.SetBalance(who, drawBalance(t, who))
		}
		caller := rapid.SampledFrom(testAccounts).Draw(t, "caller")
		to := rapid.SampledFrom(testAccounts).Draw(t, "to")
		amount := drawBalance(t, "amount")

		callerBefore := balances.Balance(caller)
		toBefore := balances.Balance(to)

		err := balances.Transfer(caller, to, amount)

		callerAfter := balances.Balance(caller)
		toAfter := balances.Balance(to)
		switch {
		case err == nil && caller != to:
			if callerAfter != callerBefore-amount {
				t.Fatalf("caller debited %d, want %d", callerBefore-callerAfter, amount)
			}
			// Wrapping arithmetic preserves equality of the true sums.
			if callerAfter+toAfter != callerBefore+toBefore {
				t.Fatalf("transfer did not conserve funds")
			}
		case err == nil:
			if callerAfter != callerBefore {
				t.Fatalf("self transfer changed balance from %d to %d", callerBefore, callerAfter)
			}
		case errors.Is(err, ErrInsufficientFunds):
			if amount <= callerBefore {
				t.Fatalf("rejected affordable transfer of %d from %d", amount, callerBefore)
			}
			if callerAfter != callerBefore || toAfter != toBefore {
				t.Fatalf("failed transfer changed balances")
			}
		case errors.Is(err, ErrBalanceOverflow):
			if callerAfter != callerBefore || toAfter != toBefore {
				t.Fatalf("failed transfer changed balances")
			}
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestInsufficientFundsBoundaryProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		balances := newTestPallet()
		funds := testBalance(rapid.Uint64Range(0, math.MaxUint64-1).Draw(t, "funds"))
		balances.SetBalance("alice", funds)

		if err := balances.Transfer("alice", "bob", funds+1); !errors.Is(err, ErrInsufficientFunds) {
			t.Fatalf("transfer of balance+1 returned %v", err)
		}
		if err := balances.Transfer("alice", "bob", funds); err != nil {
			t.Fatalf("transfer of entire balance returned %v", err)
		}
		if got := balances.Balance("alice"); got != 0 {
			t.Fatalf("balance after transferring everything = %d", got)
		}
	})
}
