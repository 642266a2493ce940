// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package balances

import (
	"fmt"

	"github.com/ava-labs/palletsdk/consts"
	"github.com/ava-labs/palletsdk/pallets/system"
)

// Call is the closed set of dispatchable balances operations.
type Call[A system.AccountID, B Balance[B]] interface {
	// Name identifies the call in logs and metrics.
	Name() string

	balancesCall()
}

// Transfer moves [Amount] from the caller to [To].
type Transfer[A system.AccountID, B Balance[B]] struct {
	To     A `json:"to" yaml:"to"`
	Amount B `json:"amount" yaml:"amount"`
}

func (Transfer[A, B]) Name() string {
	return consts.BalancesPallet + ".transfer"
}

func (Transfer[A, B]) balancesCall() {}

// Dispatch routes [call] to the operation that implements it.
func (p *Pallet[A, B]) Dispatch(caller A, call Call[A, B]) error {
	switch c := call.(type) {
	case Transfer[A, B]:
		return p.Transfer(caller, c.To, c.Amount)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownCall, call)
	}
}
