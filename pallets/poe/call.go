// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package poe

import (
	"fmt"

	"github.com/ava-labs/palletsdk/consts"
	"github.com/ava-labs/palletsdk/pallets/system"
)

// Call is the closed set of dispatchable proof of existence operations.
type Call[A system.AccountID, C Content] interface {
	// Name identifies the call in logs and metrics.
	Name() string

	poeCall()
}

type CreateClaim[A system.AccountID, C Content] struct {
	Claim C `json:"claim" yaml:"claim"`
}

func (CreateClaim[A, C]) Name() string {
	return consts.ProofOfExistencePallet + ".create_claim"
}

func (CreateClaim[A, C]) poeCall() {}

type RevokeClaim[A system.AccountID, C Content] struct {
	Claim C `json:"claim" yaml:"claim"`
}

func (RevokeClaim[A, C]) Name() string {
	return consts.ProofOfExistencePallet + ".revoke_claim"
}

func (RevokeClaim[A, C]) poeCall() {}

// Dispatch routes [call] to the operation that implements it.
func (p *Pallet[A, C]) Dispatch(caller A, call Call[A, C]) error {
	switch c := call.(type) {
	case CreateClaim[A, C]:
		return p.CreateClaim(caller, c.Claim)
	case RevokeClaim[A, C]:
		return p.RevokeClaim(caller, c.Claim)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownCall, call)
	}
}
