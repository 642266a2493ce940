// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package balances tracks the balance of every account and moves funds
// between accounts.
package balances

import (
	"fmt"

	"github.com/ava-labs/palletsdk/pallets/system"
	"github.com/ava-labs/palletsdk/state"
)

type Pallet[A system.AccountID, B Balance[B]] struct {
	balances *state.AccountState[A, B]
}

// New returns a pallet where every account has a zero balance. Balance
// changes are recorded in [journal], which may be nil.
func New[A system.AccountID, B Balance[B]](journal *state.Journal) *Pallet[A, B] {
	return &Pallet[A, B]{
		balances: state.NewAccountState[A, B](journal),
	}
}

// SetBalance overwrites the balance of [who]. It performs no validation and
// is meant for genesis and tests.
func (p *Pallet[A, B]) SetBalance(who A, amount B) {
	p.balances.Put(who, amount)
}

// Balance returns the balance of [who], or zero if [who] has never held
// funds.
func (p *Pallet[A, B]) Balance(who A) B {
	return p.balances.GetOrDefault(who)
}

// Transfer moves [amount] from [caller] to [to].
//
// Both new balances are computed before either is written, so a failed
// transfer leaves every balance untouched.
func (p *Pallet[A, B]) Transfer(caller A, to A, amount B) error {
	callerBalance := p.Balance(caller)
	toBalance := p.Balance(to)

	newCallerBalance, ok := callerBalance.CheckedSub(amount)
	if !ok {
		return fmt.Errorf("%w: balance=%v, amount=%v", ErrInsufficientFunds, callerBalance, amount)
	}
	newToBalance, ok := toBalance.CheckedAdd(amount)
	if !ok {
		return fmt.Errorf("%w: balance=%v, amount=%v", ErrBalanceOverflow, toBalance, amount)
	}

	if caller == to {
		// Funds never leave the account.
		return nil
	}
	p.balances.Put(caller, newCallerBalance)
	p.balances.Put(to, newToBalance)
	return nil
}

// TotalIssuance sums the balances of all accounts. It returns false if the
// sum cannot be represented by B.
func (p *Pallet[A, B]) TotalIssuance() (B, bool) {
	var (
		total B
		ok    = true
	)
	p.balances.Ascend(func(_ A, balance B) bool {
		total, ok = total.CheckedAdd(balance)
		return ok
	})
	return total, ok
}
