// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:generate go run go.uber.org/mock/mockgen -package=chaintest -destination=chaintest/mocks.go . System,Dispatcher,Checkpointer

package chain

import "context"

// Call is implemented by every dispatchable operation.
type Call interface {
	// Name identifies the call in logs and metrics.
	Name() string
}

// System tracks block and nonce bookkeeping on behalf of the [Executor].
type System[A any, B any] interface {
	BlockNumber() B
	IncBlockNumber()
	IncNonce(who A)
}

// Dispatcher routes a call to the pallet that implements it.
type Dispatcher[A any, C any] interface {
	// Dispatch executes [call] on behalf of [caller]. If Dispatch returns an
	// error, the [Executor] reverts any state it modified.
	Dispatch(ctx context.Context, caller A, call C) error
}

// Checkpointer reverts state modified since a restore point.
type Checkpointer interface {
	OpIndex() int
	Rollback(restorePoint int)
	Commit()
}
