// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package system tracks the current block number and the number of
// transactions each account has submitted.
package system

import "github.com/ava-labs/palletsdk/state"

type Pallet[A AccountID, B Counter, N Counter] struct {
	blockNumber B
	nonce       *state.AccountState[A, N]
}

// New returns a pallet at block 0 with no known accounts. Nonce changes are
// recorded in [journal], which may be nil.
func New[A AccountID, B Counter, N Counter](journal *state.Journal) *Pallet[A, B, N] {
	return &Pallet[A, B, N]{
		nonce: state.NewAccountState[A, N](journal),
	}
}

func (p *Pallet[A, B, N]) BlockNumber() B {
	return p.blockNumber
}

// IncBlockNumber advances the block number by one. Only the block executor
// should call this.
func (p *Pallet[A, B, N]) IncBlockNumber() {
	p.blockNumber++
}

// Nonce returns the number of transactions [who] has submitted. Unknown
// accounts have a nonce of 0.
func (p *Pallet[A, B, N]) Nonce(who A) N {
	return p.nonce.GetOrDefault(who)
}

// IncNonce increments the nonce of [who] by exactly one.
func (p *Pallet[A, B, N]) IncNonce(who A) {
	p.nonce.Put(who, p.nonce.GetOrDefault(who)+1)
}
