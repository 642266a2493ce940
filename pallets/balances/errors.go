// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package balances

import "errors"

var (
	ErrInsufficientFunds = errors.New("not enough funds")
	ErrBalanceOverflow   = errors.New("balance overflow")
	ErrUnknownCall       = errors.New("unknown balances call")
)
